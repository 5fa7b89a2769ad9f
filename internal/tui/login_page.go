package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jenkinpan/teaform/internal/theme"
)

// loginView renders the login form: heading, the two inputs, and the
// submit button, wrapped in its own frame inside the page frame.
func (m AppModel) loginView(compact bool) string {
	heading := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(textColor(m.state.Theme))).
		Render("Graphical User Interface - Bubble Tea")

	email := m.inputBox(focusEmail)
	password := m.inputBox(focusPassword)
	submit := m.button("Login", theme.ButtonStandard, m.currentTarget() == focusSubmit, lipgloss.Width(email)-2)

	rows := []string{heading}
	if !compact {
		rows = append(rows, "")
	}
	rows = append(rows, email, password)
	if !compact {
		rows = append(rows, "")
	}
	rows = append(rows, submit)
	form := lipgloss.JoinVertical(lipgloss.Center, rows...)

	if compact {
		// The page frame alone must do; a second border eats too many rows.
		return form
	}

	inner := theme.MustLookup(theme.Container, m.state.Theme)
	border := lipgloss.NormalBorder()
	if inner.Rounded {
		border = lipgloss.RoundedBorder()
	}

	framed := m.renderer.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(inner.Border)).
		Padding(1, 2).
		Render(form)
	if inner.Shadow {
		framed = dropShadow(m.renderer, framed)
	}

	return framed
}

// inputBox renders a text input inside its field border.
func (m AppModel) inputBox(t focusTarget) string {
	borderColor := theme.ColorFrame
	if m.currentTarget() == t {
		borderColor = ColorAccentBright
	}

	return m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Render(m.inputs[t].View())
}
