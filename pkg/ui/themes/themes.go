// Package themes derives lipgloss styles from chroma color schemes, so the
// notice and its chrome follow whatever style name the config selects.
package themes

import (
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/osintkit/attest/pkg/ui/styles"
)

const Ellipsis = "…"

var DefaultTheme = NewTheme("github")

type Theme struct {
	GenericTextStyle    lipgloss.Style
	LogoStyle           lipgloss.Style
	SelectedStyle       lipgloss.Style
	SelectedSubtleStyle lipgloss.Style
	SubtleStyle         lipgloss.Style
	HelpStyle           lipgloss.Style
	ErrorTitleStyle     lipgloss.Style

	StatusBarStyle            lipgloss.Style
	StatusBarNoteStyle        lipgloss.Style
	StatusBarHelpStyle        lipgloss.Style
	StatusBarMessageStyle     lipgloss.Style
	StatusBarMessageHelpStyle lipgloss.Style
	StatusBarErrorStyle       lipgloss.Style
	StatusBarErrorHelpStyle   lipgloss.Style

	// Notice slots.
	NoticeReminderStyle  lipgloss.Style
	NoticeBlockStyle     lipgloss.Style
	NoticeHeadingStyle   lipgloss.Style
	NoticeStatementStyle lipgloss.Style
	NoticeBulletStyle    lipgloss.Style
	NoticeFinePrintStyle lipgloss.Style

	ChromaStyle *chroma.Style
	Ellipsis    string
}

func NewTheme(theme string) *Theme {
	style := newChromaStyle(theme)

	var (
		genericStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Background))

		logoStyle = genericStyle.
				Background(style.fromToken(chroma.Keyword)).
				Bold(true)

		selectedStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Keyword))

		selectedSubtleStyle = lipgloss.NewStyle().
					Foreground(style.fromTokenWithFactor(chroma.Keyword, 0.3))

		subtleStyle = lipgloss.NewStyle().
				Foreground(style.fromToken(chroma.Comment))

		helpStyle = lipgloss.NewStyle().
				Foreground(style.fromTokenWithFactor(chroma.Background, 0.2)).
				Background(style.fromTokenBgWithFactor(chroma.Background, 0.2))

		statusBarStyle = lipgloss.NewStyle().
				Foreground(style.fromTokenWithFactor(chroma.Background, 0.1)).
				Background(style.fromTokenBgWithFactor(chroma.Background, 0.1))

		statusBarNoteStyle = lipgloss.NewStyle().
					Foreground(style.fromTokenWithFactor(chroma.Background, 0.15)).
					Background(style.fromTokenBgWithFactor(chroma.Background, 0.1))

		statusBarMessageStyle = lipgloss.NewStyle().
					Foreground(style.fromTokenWithFactor(chroma.Background, 0.2)).
					Background(style.fromTokenWithFactor(chroma.Keyword, 0.2))

		statusBarMessageHelpStyle = genericStyle.
						Background(style.fromToken(chroma.Keyword))

		statusBarErrorStyle = genericStyle.
					Background(style.fromToken(chroma.GenericDeleted))

		statusBarErrorHelpStyle = lipgloss.NewStyle().
					Foreground(style.fromToken(chroma.GenericDeleted)).
					Background(style.fromTokenBgWithFactor(chroma.Background, 0.2))

		errorTitleStyle = genericStyle.
				Background(style.fromToken(chroma.GenericDeleted))

		// The warning register of the notice maps onto the scheme's
		// string-literal color, which reads as amber or gold in most
		// chroma styles.
		warningColor = style.warningColor()

		noticeReminderStyle = lipgloss.NewStyle().
					Foreground(warningColor)

		noticeBlockStyle = genericStyle.
					Border(lipgloss.RoundedBorder()).
					BorderForeground(warningColor).
					Padding(0, 1)

		noticeHeadingStyle = lipgloss.NewStyle().
					Foreground(warningColor).
					Bold(true)

		noticeStatementStyle = genericStyle.
					Bold(true)

		noticeBulletStyle = genericStyle

		noticeFinePrintStyle = subtleStyle
	)

	return &Theme{
		GenericTextStyle:    genericStyle,
		LogoStyle:           logoStyle,
		SelectedStyle:       selectedStyle,
		SelectedSubtleStyle: selectedSubtleStyle,
		SubtleStyle:         subtleStyle,
		HelpStyle:           helpStyle,
		ErrorTitleStyle:     errorTitleStyle,

		StatusBarStyle:            statusBarStyle,
		StatusBarNoteStyle:        statusBarNoteStyle,
		StatusBarHelpStyle:        helpStyle,
		StatusBarMessageStyle:     statusBarMessageStyle,
		StatusBarMessageHelpStyle: statusBarMessageHelpStyle,
		StatusBarErrorStyle:       statusBarErrorStyle,
		StatusBarErrorHelpStyle:   statusBarErrorHelpStyle,

		NoticeReminderStyle:  noticeReminderStyle,
		NoticeBlockStyle:     noticeBlockStyle,
		NoticeHeadingStyle:   noticeHeadingStyle,
		NoticeStatementStyle: noticeStatementStyle,
		NoticeBulletStyle:    noticeBulletStyle,
		NoticeFinePrintStyle: noticeFinePrintStyle,

		ChromaStyle: style.style,
		Ellipsis:    Ellipsis,
	}
}

type chromaStyle struct {
	style *chroma.Style
}

func newChromaStyle(theme string) chromaStyle {
	s := chromastyles.Get(getStyle(theme))
	if s == nil {
		s = chromastyles.Fallback
	}

	return chromaStyle{
		style: s,
	}
}

// warningColor prefers the scheme's string-literal color, falling back to a
// fixed amber when the scheme leaves it unset.
func (cs chromaStyle) warningColor() lipgloss.TerminalColor {
	s := cs.style.Get(chroma.LiteralString)
	if !s.Colour.IsSet() {
		return styles.Amber
	}

	return lipgloss.Color(s.Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) fromToken(c chroma.TokenType) lipgloss.Color {
	s := cs.style.Get(c)

	return lipgloss.Color(s.Colour.String()) //nolint:misspell // Chroma naming.
}

func (cs chromaStyle) fromTokenWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	s := cs.style.Get(c)
	sc := s.Colour.BrightenOrDarken(factor) //nolint:misspell // Chroma naming.

	return lipgloss.Color(sc.String())
}

func (cs chromaStyle) fromTokenBgWithFactor(c chroma.TokenType, factor float64) lipgloss.Color {
	s := cs.style.Get(c)
	sc := s.Background.BrightenOrDarken(factor)

	return lipgloss.Color(sc.String())
}

func getStyle(style string) string {
	switch style {
	case "dark":
		return "github-dark"
	case "light":
		return "github"
	case "auto", "":
		return getDefaultStyle()
	default:
		return style
	}
}

func getDefaultStyle() string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return "" // Fallback.
	}
	if termenv.HasDarkBackground() {
		return "github-dark"
	}

	return "github"
}
