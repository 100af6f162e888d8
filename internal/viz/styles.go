package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const hudWidth = 40

// Styles are the HUD styles derived from a theme.
type Styles struct {
	Theme   Theme
	Canvas  lipgloss.Style
	Panel   lipgloss.Style
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Graph   lipgloss.Style
	Help    lipgloss.Style
	Crash   lipgloss.Style
	Escape  lipgloss.Style
	Overlay lipgloss.Style

	barHigh, barMid, barLow lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:  t,
		Canvas: lipgloss.NewStyle().Foreground(t.Secondary),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(0, 1).
			Width(hudWidth),
		Header: lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		Label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:  lipgloss.NewStyle().Foreground(t.Text),
		Graph:  lipgloss.NewStyle().Foreground(t.Accent),
		Help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Crash: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Error).
			Padding(0, 2),
		Escape: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Success).
			Padding(0, 2),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(t.Primary).
			Padding(0, 2),
		barHigh: lipgloss.NewStyle().Foreground(t.Error),
		barMid:  lipgloss.NewStyle().Foreground(t.Warning),
		barLow:  lipgloss.NewStyle().Foreground(t.Success),
	}
}

// ProgressBar renders frac of width cells. The bar turns from success to
// error color as it fills.
func (s Styles) ProgressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case frac > 0.8:
		return s.barHigh.Render(bar)
	case frac > 0.4:
		return s.barMid.Render(bar)
	}
	return s.barLow.Render(bar)
}

// Separator draws a muted rule across width cells.
func (s Styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.Help.Render(left + " ◆ " + right)
}
