// Package style provides shared UI styling primitives including brand
// colors and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#14B8A6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Index renders a 1-based option index.
var Index = lipgloss.NewStyle().Foreground(Teal).Bold(true)

// Product renders a product name in an option listing.
var Product = lipgloss.NewStyle().Foreground(White).Bold(true)

// Muted renders secondary information such as display paths.
var Muted = lipgloss.NewStyle().Foreground(Slate)

// Success renders confirmation markers.
var Success = lipgloss.NewStyle().Foreground(Green)
