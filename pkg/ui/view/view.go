// Package view composes multi-section terminal views.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Builder accumulates styled sections and joins them vertically.
type Builder struct {
	sections []string
	styles   []lipgloss.Style
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddSection appends a section with optional styling. Empty sections are
// dropped so callers can add conditionally without tracking blank lines.
func (b *Builder) AddSection(content string, style ...lipgloss.Style) *Builder {
	if content == "" {
		return b
	}

	b.sections = append(b.sections, content)
	if len(style) > 0 {
		b.styles = append(b.styles, style[0])
	} else {
		b.styles = append(b.styles, lipgloss.Style{})
	}

	return b
}

// AddBlank appends an unstyled blank line between sections.
func (b *Builder) AddBlank() *Builder {
	b.sections = append(b.sections, " ")
	b.styles = append(b.styles, lipgloss.Style{})

	return b
}

// Build renders the accumulated sections joined by newlines.
func (b *Builder) Build() string {
	if len(b.sections) == 0 {
		return ""
	}

	var result strings.Builder
	for i, section := range b.sections {
		result.WriteString(b.styles[i].Render(section))
		if i < len(b.sections)-1 {
			result.WriteString("\n")
		}
	}

	return result.String()
}
