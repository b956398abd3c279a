package styles

import "github.com/charmbracelet/lipgloss"

var (
	colorNeedles = lipgloss.Color("34")  // Fir green - branches
	colorBark    = lipgloss.Color("130") // Warm brown - trunk
)

var (
	styleNeedles = lipgloss.NewStyle().Foreground(colorNeedles)
	styleBark    = lipgloss.NewStyle().Foreground(colorBark).Bold(true)
)

// Festive colors rows for terminal display: green branches, brown trunk.
type Festive struct{}

func (Festive) Branch(row string) string { return styleNeedles.Render(row) }
func (Festive) Trunk(row string) string  { return styleBark.Render(row) }
