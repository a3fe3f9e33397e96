// Package style provides shared UI styling primitives including brand colors
// and icons for consistent terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Violet = lipgloss.Color("#646CFF")
	Amber  = lipgloss.Color("#FFC517")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)
