// Package notice renders the consent notice shown before any subject search.
//
// The notice is a pure mapping from a small configuration record to styled
// terminal output. It performs no I/O and holds no state, so hosts can render
// it on every frame.
package notice

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/osintkit/attest/pkg/ui/styles"
	"github.com/osintkit/attest/pkg/ui/themes"
	"github.com/osintkit/attest/pkg/ui/view"
)

// Variant selects which of the two fixed layouts is produced.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantProminent Variant = "prominent"

	// DefaultWidth is used when the caller provides no usable width.
	DefaultWidth = 72

	// Side-by-side bullets need at least this much room, otherwise they
	// stack vertically.
	minColumnsWidth = 56

	Heading = "Consent Required - Real Data Only"

	reminderText = "Consent Reminder: confirm subject consent before searching. Real data only."

	statementText = "By continuing, you confirm you have explicit consent " +
		"from the subject of this search."

	bulletEducation = "Consented data is used for educational demonstration only."
	bulletRealData  = "All results are real, public data. Nothing is simulated."

	finePrintText = "Results may vary. If consent is uncertain, use fictional " +
		"data or search for yourself."
)

var AllVariants = []string{
	string(VariantDefault),
	string(VariantProminent),
}

// ParseVariant parses s case-insensitively. Unrecognized values fall back to
// [VariantDefault] so rendering stays total; the error lets strict surfaces
// (flags, config schema) reject typos.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantDefault, "":
		return VariantDefault, nil
	case VariantProminent:
		return VariantProminent, nil
	}

	return VariantDefault, fmt.Errorf("unknown variant %q, must be one of: %s",
		s, strings.Join(AllVariants, ", "))
}

// Prominent reports whether v selects the full consent block.
func (v Variant) Prominent() bool {
	return v == VariantProminent
}

// Config is the notice configuration record. It is consumed once per render.
type Config struct {
	// Variant selects the display mode.
	Variant Variant `json:"variant,omitempty" jsonschema:"title=Variant,enum=default,enum=prominent,default=default"`
}

// NewConfig returns a fresh config with defaults applied. Callers may mutate
// the result freely.
func NewConfig() *Config {
	c := &Config{}
	c.EnsureDefaults()

	return c
}

func (c *Config) EnsureDefaults() {
	if c.Variant == "" {
		c.Variant = VariantDefault
	}
}

// Renderer renders the consent notice for a fixed theme, width and variant.
type Renderer struct {
	theme   *themes.Theme
	variant Variant
	width   int
}

func NewRenderer(opts ...RendererOpt) *Renderer {
	r := &Renderer{
		theme:   themes.DefaultTheme,
		variant: VariantDefault,
		width:   DefaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

type RendererOpt func(*Renderer)

func WithTheme(t *themes.Theme) RendererOpt {
	return func(r *Renderer) {
		if t != nil {
			r.theme = t
		}
	}
}

func WithVariant(v Variant) RendererOpt {
	return func(r *Renderer) {
		if v.Prominent() {
			r.variant = VariantProminent
		} else {
			r.variant = VariantDefault
		}
	}
}

func WithConfig(c *Config) RendererOpt {
	return func(r *Renderer) {
		if c == nil {
			return
		}

		WithVariant(c.Variant)(r)
	}
}

func WithWidth(width int) RendererOpt {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Render produces the notice. It never fails and has no side effects.
func (r *Renderer) Render() string {
	if r.variant.Prominent() {
		return r.renderProminent()
	}

	return r.renderReminder()
}

// renderReminder produces the compact single-sentence notice box.
func (r *Renderer) renderReminder() string {
	content := wordwrap.String(
		fmt.Sprintf("%s %s", styles.Warning, reminderText),
		r.contentWidth(),
	)

	box := r.theme.GenericTextStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.SubtleStyle.GetForeground()).
		Padding(0, 1).
		Width(r.contentWidth() + 2)

	return box.Render(r.theme.NoticeReminderStyle.Render(content))
}

// renderProminent produces the full bordered consent block.
func (r *Renderer) renderProminent() string {
	width := r.contentWidth()

	heading := r.theme.NoticeHeadingStyle.Render(
		fmt.Sprintf("%s  %s %s", styles.Warning, styles.Shield, Heading),
	)

	statement := r.theme.NoticeStatementStyle.Render(
		wordwrap.String(statementText, width),
	)

	finePrint := r.theme.NoticeFinePrintStyle.Render(
		wordwrap.String(finePrintText, width),
	)

	body := view.NewBuilder().
		AddSection(heading).
		AddBlank().
		AddSection(statement).
		AddBlank().
		AddSection(r.renderBullets(width)).
		AddBlank().
		AddSection(finePrint).
		Build()

	return r.theme.NoticeBlockStyle.Width(width + 2).Render(body)
}

// renderBullets lays out the two confirmation points side by side, or
// stacked when the block is too narrow for columns.
func (r *Renderer) renderBullets(width int) string {
	bullets := []string{bulletEducation, bulletRealData}

	if width < minColumnsWidth {
		rows := make([]string, 0, len(bullets))
		for _, b := range bullets {
			rows = append(rows, r.renderBullet(b, width))
		}

		return strings.Join(rows, "\n")
	}

	const gap = 2

	colWidth := (width - gap) / 2
	left := r.renderBullet(bullets[0], colWidth)
	right := r.renderBullet(bullets[1], colWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left, strings.Repeat(" ", gap), right)
}

func (r *Renderer) renderBullet(text string, width int) string {
	prefix := styles.Check + " "

	wrapped := wordwrap.String(text, max(1, width-len([]rune(prefix))))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = prefix + line
		} else {
			lines[i] = "  " + line
		}
	}

	return r.theme.NoticeBulletStyle.Render(strings.Join(lines, "\n"))
}

// contentWidth is the usable inner width after the block border and padding.
func (r *Renderer) contentWidth() int {
	width := r.width
	if width <= 0 {
		width = DefaultWidth
	}

	// Border and horizontal padding take two cells each side.
	return max(20, width-4)
}
