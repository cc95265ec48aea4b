package themes

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme adapts a [Theme] for huh forms.
func HuhTheme(t *Theme) *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Base = h.Focused.Base.BorderForeground(t.SelectedStyle.GetForeground())
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(t.SelectedStyle.GetForeground()).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.
		Foreground(t.SelectedStyle.GetForeground()).
		Bold(true).
		MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(t.SelectedSubtleStyle.GetForeground())
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(t.ErrorTitleStyle.GetForeground())
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(t.ErrorTitleStyle.GetForeground())
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(t.LogoStyle.GetBackground())
	h.Focused.Next = h.Focused.FocusedButton
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(t.LogoStyle.GetForeground()).
		Background(t.SubtleStyle.GetForeground())

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
