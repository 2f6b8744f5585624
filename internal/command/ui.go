// Package command provides UI command functionality
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aherranz/fichas-cli/internal/tui"
)

// NewUICommand creates the UI command
func NewUICommand(groupID string) *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Short:   "Launch interactive terminal interface",
		Long:    "Launch the fichas terminal user interface for the whole workflow: client selection, uploads, record editing, validation, generation and download.",
		RunE:    runUI,
		GroupID: groupID,
	}
}

func runUI(cmd *cobra.Command, args []string) error {
	client, err := RequireClient(cmd.Context())
	if err != nil {
		return err
	}

	model := tui.NewModel(client, GetConfig(cmd.Context()))

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
