package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI on the local terminal and blocks until
// the user quits. It returns the final application state so callers can
// persist the pieces they care about.
func Run(opts Options) (State, error) {
	// The TUI owns the terminal, so debug output goes to a file.
	if os.Getenv("TEAFORM_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return State{}, fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	model := NewAppModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return State{}, err
	}

	m, ok := finalModel.(AppModel)
	if !ok {
		return State{}, fmt.Errorf("unexpected final model %T", finalModel)
	}
	return m.State(), nil
}
