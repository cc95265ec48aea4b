// Package styles holds the shared icons and fallback palette for the attest UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Icons.
const (
	Ellipsis = "…"
	Warning  = "⚠"
	Shield   = "🛡"
	Check    = "✓"
)

// Amber carries the warning register of the consent notice when the active
// chroma style defines no string-literal color.
var Amber = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
