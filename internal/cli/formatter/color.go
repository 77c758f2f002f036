package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox dark palette. Only the colors the huh theme needs directly are
// exported; everything else goes through the styles below.
var (
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorDim    = lipgloss.Color("#928374")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorRed    = lipgloss.Color("#fb4934")
)

// Summary chart and yield bar colors: green is accepted output, yellow second
// grade, blue rework, red scrap.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	StyleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	StyleBlue   = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
)

var (
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	styleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders an upper-cased section title over a rule of the same width.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return StyleHeader.Render(upper) + "\n" + styleDim.Render(strings.Repeat("─", lipgloss.Width(upper)))
}

func Dim(text string) string {
	return styleDim.Render(text)
}

func Bold(text string) string {
	return styleBold.Render(text)
}
