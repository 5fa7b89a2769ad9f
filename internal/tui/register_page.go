package tui

import "github.com/charmbracelet/lipgloss"

// registerView renders the placeholder second page: a single oversized
// title and nothing else. The shared footer carries the way back.
func (m AppModel) registerView(compact bool) string {
	st := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(textColor(m.state.Theme))).
		Padding(2, 8)
	if compact {
		st = st.Padding(0, 2)
	}
	return st.Render("Page two")
}
