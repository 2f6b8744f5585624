// Package tui provides the entry screen
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MainMenuModel represents the entry screen. The whole application is a
// single linear workflow, so instead of a menu it shows the backend
// target and the workflow steps, and a single key continues into client
// selection.
type MainMenuModel struct {
	apiURL string
}

// NewMainMenuModel creates the entry screen
func NewMainMenuModel(apiURL string) *MainMenuModel {
	return &MainMenuModel{apiURL: apiURL}
}

// Init returns the initial command for the entry screen
func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the entry screen
func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", " ", "c":
			return m, func() tea.Msg { return NavigateMsg(ClientesView) }
		}
	}
	return m, nil
}

// View renders the entry screen
func (m MainMenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(backendStyle.Render("Backend: " + m.apiURL))
	b.WriteString("\n\n")

	b.WriteString("Workflow:\n")
	for _, step := range []string{
		"1. Select a client and project",
		"2. Upload the Anexo spreadsheet and CV PDFs",
		"3. Review and edit the record collections",
		"4. Validate, generate and download the fichas",
	} {
		b.WriteString(workflowStepStyle.Render("  " + step))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpTextStyle.Render("press enter to select a client"))
	b.WriteString("\n")
	return b.String()
}

// Styles for the entry screen
var (
	backendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	workflowStepStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))
)
