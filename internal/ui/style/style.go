// Package style provides the palette and icons shared by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Lime   = lipgloss.Color("#84CC16")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Iris   = lipgloss.Color("#8B5CF6")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Arrow   = "→"
)

// hints maps the colour names steps describe themselves with onto the palette.
var hints = map[string]lipgloss.Color{
	"light-green": Lime,
	"green":       Green,
	"red":         Red,
	"yellow":      Yellow,
	"magenta":     Iris,
}

// Hint returns the palette colour for a step colour hint, or Slate when the hint is unknown.
func Hint(name string) lipgloss.Color {
	if c, ok := hints[name]; ok {
		return c
	}
	return Slate
}
