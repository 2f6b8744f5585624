// Package tui provides project registration functionality
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CreateProyectoModel represents the project registration form state
type CreateProyectoModel struct {
	acronimoInput textinput.Model
	err           string
}

// NewCreateProyectoModel creates a new project registration form
func NewCreateProyectoModel() *CreateProyectoModel {
	acronimoInput := textinput.New()
	acronimoInput.Placeholder = "Enter project acronym (e.g., IAP24)"
	acronimoInput.Focus()
	acronimoInput.CharLimit = 30
	acronimoInput.Width = 50
	acronimoInput.Prompt = "Acronym: "

	return &CreateProyectoModel{
		acronimoInput: acronimoInput,
	}
}

// Init returns the initial command
func (m CreateProyectoModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the project registration form
func (m CreateProyectoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return NavigateMsg(ProyectosView) }

		case "enter":
			acronimo := strings.TrimSpace(m.acronimoInput.Value())
			if acronimo == "" {
				m.err = "The acronym is required"
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg {
				return CreateProyectoMsg{Acronimo: acronimo}
			}

		default:
			m.acronimoInput, cmd = m.acronimoInput.Update(msg)
		}
	}

	return m, cmd
}

// View renders the project registration form
func (m CreateProyectoModel) View() string {
	var b strings.Builder

	b.WriteString(formTitleStyle.Render("Register New Project"))
	b.WriteString("\n\n")

	b.WriteString(m.acronimoInput.View())
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(formErrorStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	b.WriteString(helpTextStyle.Render("enter: register • esc: cancel"))

	return b.String()
}
