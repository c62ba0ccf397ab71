package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runShell starts the interactive chat shell. It blocks until the user
// exits the conversation.
func runShell(app *App) error {
	p := tea.NewProgram(newShellModel(app))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat shell: %w", err)
	}
	return nil
}
