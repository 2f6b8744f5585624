// Package tui provides client selection functionality
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aherranz/fichas-cli/internal/api"
)

// ClientesModel represents the client list view state
type ClientesModel struct {
	clientes []api.Cliente
	cursor   int
}

// NewClientesModel creates a new client list model
func NewClientesModel() *ClientesModel {
	return &ClientesModel{
		clientes: []api.Cliente{},
		cursor:   0,
	}
}

// SetClientes updates the client list
func (m *ClientesModel) SetClientes(clientes []api.Cliente) {
	m.clientes = clientes
	m.cursor = 0
}

// Init returns the initial command for the client list
func (m ClientesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the client list
func (m ClientesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.clientes)-1 {
				m.cursor++
			}

		case "enter", " ":
			if len(m.clientes) > 0 && m.cursor < len(m.clientes) {
				selected := m.clientes[m.cursor]
				return m, func() tea.Msg {
					return SelectClienteMsg{Cliente: selected}
				}
			}

		case "n":
			return m, func() tea.Msg { return NavigateMsg(CreateClienteView) }

		case "esc":
			return m, func() tea.Msg { return NavigateMsg(MainMenuView) }
		}
	}

	return m, nil
}

// View renders the client list
func (m ClientesModel) View() string {
	if len(m.clientes) == 0 {
		return noItemsStyle.Render(
			"\nNo clients found.\n\nPress 'n' to register a new client\nPress 'esc' to go back",
		)
	}

	s := "\nClients:\n\n"

	for i, cliente := range m.clientes {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		info := fmt.Sprintf("%s %s", cursor, cliente.NIF)
		if cliente.Nombre != "" {
			info += fmt.Sprintf(" - %s", cliente.Nombre)
		}

		if m.cursor == i {
			s += selectedItemStyle.Render(info)
		} else {
			s += normalItemStyle.Render(info)
		}
		s += "\n"
	}

	s += "\n" + helpTextStyle.Render("enter: select • n: new client • esc: back")
	return s
}

// Styles for list views
var (
	noItemsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	helpTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
