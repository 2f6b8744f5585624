// Package tui provides project selection functionality
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aherranz/fichas-cli/internal/api"
)

// ProyectosModel represents the project list view state. The first entry
// is always the client-level bucket, for clients that keep their data
// outside any project.
type ProyectosModel struct {
	clienteNIF string
	proyectos  []api.Proyecto
	cursor     int
}

// NewProyectosModel creates a new project list model
func NewProyectosModel() *ProyectosModel {
	return &ProyectosModel{
		proyectos: []api.Proyecto{},
		cursor:    0,
	}
}

// SetProyectos updates the project list
func (m *ProyectosModel) SetProyectos(clienteNIF string, proyectos []api.Proyecto) {
	m.clienteNIF = clienteNIF
	m.proyectos = proyectos
	m.cursor = 0
}

// Init returns the initial command for the project list
func (m ProyectosModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the project list
func (m ProyectosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			// One extra slot for the client-level bucket
			if m.cursor < len(m.proyectos) {
				m.cursor++
			}

		case "enter", " ":
			acronimo := ""
			if m.cursor > 0 {
				acronimo = m.proyectos[m.cursor-1].Acronimo
			}
			return m, func() tea.Msg {
				return SelectProyectoMsg{Proyecto: acronimo}
			}

		case "n":
			return m, func() tea.Msg { return NavigateMsg(CreateProyectoView) }

		case "esc":
			return m, func() tea.Msg { return NavigateMsg(ClientesView) }
		}
	}

	return m, nil
}

// View renders the project list
func (m ProyectosModel) View() string {
	s := fmt.Sprintf("\nProjects of %s:\n\n", m.clienteNIF)

	entries := make([]string, 0, len(m.proyectos)+1)
	entries = append(entries, "(no project — client-level data)")
	for _, p := range m.proyectos {
		entries = append(entries, p.Acronimo)
	}

	for i, entry := range entries {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		line := cursor + " " + entry
		if m.cursor == i {
			s += selectedItemStyle.Render(line)
		} else {
			s += normalItemStyle.Render(line)
		}
		s += "\n"
	}

	s += "\n" + helpTextStyle.Render("enter: select • n: new project • esc: back")
	return s
}
