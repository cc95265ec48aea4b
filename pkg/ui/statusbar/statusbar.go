// Package statusbar renders the single-line status bar of the preview TUI.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/osintkit/attest/pkg/ui/styles"
	"github.com/osintkit/attest/pkg/ui/themes"
	"github.com/osintkit/attest/pkg/version"
)

const (
	helpText  = " ? Help "
	errorText = " ! Error "

	minWidth = 30
)

// Style selects the render variants of the bar.
type Style int

const (
	StyleNormal Style = iota
	StyleSuccess
	StyleError
)

// Renderer handles status bar rendering.
type Renderer struct {
	theme   *themes.Theme
	message string
	width   int
	style   Style
}

func NewRenderer(theme *themes.Theme, width int, opts ...RendererOpt) *Renderer {
	if width < minWidth {
		width = minWidth
	}

	r := &Renderer{
		theme: theme,
		width: width,
		style: StyleNormal,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

type RendererOpt func(*Renderer)

// WithMessage overrides the note with a transient status message.
func WithMessage(message string, style Style) RendererOpt {
	return func(r *Renderer) {
		r.style = style
		r.message = message
	}
}

func WithError(message string) RendererOpt {
	return func(r *Renderer) {
		r.style = StyleError
		r.message = message
	}
}

// Render renders the complete status bar: logo, note, spacer, right-hand
// note (typically the active variant), and the help hint.
func (r *Renderer) Render(msg, rightNote string) string {
	logo := r.logoView()
	right := r.renderRightNote(rightNote)
	helpNote := r.renderHelpNote()
	note := r.renderNote(msg, logo, right, helpNote)
	emptySpace := r.renderEmptySpace(logo, note, right, helpNote)

	return fmt.Sprintf("%s%s%s%s%s", logo, note, emptySpace, right, helpNote)
}

func (r *Renderer) getMessage(msg string) string {
	if r.message != "" {
		return r.message
	}

	return msg
}

func (r *Renderer) renderRightNote(note string) string {
	if note == "" {
		return ""
	}

	note = " " + note + " "

	switch r.style {
	case StyleError:
		return r.theme.StatusBarErrorStyle.Render(note)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(note)
	default:
		return r.theme.StatusBarNoteStyle.Render(note)
	}
}

func (r *Renderer) renderHelpNote() string {
	switch r.style {
	case StyleError:
		return r.theme.StatusBarErrorHelpStyle.Render(errorText)
	case StyleSuccess:
		return r.theme.StatusBarMessageHelpStyle.Render(helpText)
	default:
		return r.theme.StatusBarHelpStyle.Render(helpText)
	}
}

func (r *Renderer) renderNote(msg string, others ...string) string {
	note := strings.TrimSpace(strings.ReplaceAll(r.getMessage(msg), "\n", " "))

	availableWidth := r.width
	for _, other := range others {
		availableWidth -= ansi.PrintableRuneWidth(other)
	}

	note = truncate.StringWithTail(" "+note+" ",
		uint(max(0, availableWidth)), styles.Ellipsis) //nolint:gosec // Uses max.

	switch r.style {
	case StyleError:
		return r.theme.StatusBarErrorStyle.Render(note)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(note)
	default:
		return r.theme.StatusBarStyle.Render(note)
	}
}

func (r *Renderer) renderEmptySpace(components ...string) string {
	padding := r.width
	for _, comp := range components {
		padding -= ansi.PrintableRuneWidth(comp)
	}

	emptySpace := strings.Repeat(" ", max(0, padding))

	switch r.style {
	case StyleError:
		return r.theme.StatusBarErrorStyle.Render(emptySpace)
	case StyleSuccess:
		return r.theme.StatusBarMessageStyle.Render(emptySpace)
	default:
		return r.theme.StatusBarStyle.Render(emptySpace)
	}
}

func (r *Renderer) logoView() string {
	return r.theme.LogoStyle.Render(fmt.Sprintf(" attest %s ", version.GetVersion()))
}
