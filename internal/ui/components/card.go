package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/engpower/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the cards on a screen.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded-border box at content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(1, 2).
		Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// ActionBar is a horizontal row of actions picked with left/right.
type ActionBar struct {
	Labels   []string
	Selected int
}

// Move shifts the selection by delta, clamped to the ends.
func (a ActionBar) Move(delta int) ActionBar {
	a.Selected = min(max(a.Selected+delta, 0), len(a.Labels)-1)
	return a
}

// View renders the actions side by side.
func (a ActionBar) View() string {
	parts := make([]string, 0, 2*len(a.Labels))
	for i, label := range a.Labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		if i == a.Selected {
			parts = append(parts, theme.ButtonActive.Render("▸ "+label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
