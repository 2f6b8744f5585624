// Package tui provides client registration functionality
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aherranz/fichas-cli/internal/generator"
)

// CreateClienteModel represents the client registration form state
type CreateClienteModel struct {
	nifInput    textinput.Model
	nombreInput textinput.Model

	// Navigation
	focused int
	err     string
}

const (
	clienteNIFInput int = iota
	clienteNombreInput
)

// NewCreateClienteModel creates a new client registration form
func NewCreateClienteModel() *CreateClienteModel {
	nifInput := textinput.New()
	nifInput.Placeholder = "Enter tax id (e.g., B12345674)"
	nifInput.Focus()
	nifInput.CharLimit = 9
	nifInput.Width = 50
	nifInput.Prompt = "NIF: "

	nombreInput := textinput.New()
	nombreInput.Placeholder = "Enter company name"
	nombreInput.CharLimit = 100
	nombreInput.Width = 50
	nombreInput.Prompt = "Name: "

	return &CreateClienteModel{
		nifInput:    nifInput,
		nombreInput: nombreInput,
	}
}

// Init returns the initial command
func (m CreateClienteModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the client registration form
func (m CreateClienteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return NavigateMsg(ClientesView) }

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focused--
			} else {
				m.focused++
			}

			if m.focused > 1 {
				m.focused = 0
			} else if m.focused < 0 {
				m.focused = 1
			}

			m.updateFocus()
			return m, textinput.Blink

		case "enter":
			nif := strings.ToUpper(strings.TrimSpace(m.nifInput.Value()))
			nombre := strings.TrimSpace(m.nombreInput.Value())
			if nif == "" || nombre == "" {
				m.err = "Both NIF and name are required"
				return m, nil
			}
			if !generator.ValidTaxID(nif) {
				m.err = "Not a valid DNI, NIE or CIF"
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg {
				return CreateClienteMsg{NIF: nif, Nombre: nombre}
			}

		default:
			switch m.focused {
			case clienteNIFInput:
				m.nifInput, cmd = m.nifInput.Update(msg)
			case clienteNombreInput:
				m.nombreInput, cmd = m.nombreInput.Update(msg)
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// updateFocus updates the focus state of inputs
func (m *CreateClienteModel) updateFocus() {
	m.nifInput.Blur()
	m.nombreInput.Blur()

	switch m.focused {
	case clienteNIFInput:
		m.nifInput.Focus()
	case clienteNombreInput:
		m.nombreInput.Focus()
	}
}

// View renders the client registration form
func (m CreateClienteModel) View() string {
	var b strings.Builder

	b.WriteString(formTitleStyle.Render("Register New Client"))
	b.WriteString("\n\n")

	b.WriteString(m.nifInput.View())
	b.WriteString("\n")
	b.WriteString(m.nombreInput.View())
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(formErrorStyle.Render(m.err))
		b.WriteString("\n\n")
	}

	b.WriteString(helpTextStyle.Render("tab: next field • enter: register • esc: cancel"))

	return b.String()
}

// Styles for the registration forms
var (
	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33")).
			MarginBottom(1)

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)
