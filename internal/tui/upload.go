// Package tui provides upload functionality
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aherranz/fichas-cli/internal/api"
)

// UploadModel represents the upload form state. One text input takes
// either the Anexo spreadsheet path or a space-separated list of CV PDF
// paths, depending on the selected mode.
type UploadModel struct {
	pathInput textinput.Model
	bar       progress.Model

	anexo     bool
	uploading bool
	percent   int
	metadata  *api.AnexoMetadata
}

// NewUploadModel creates a new upload form
func NewUploadModel() *UploadModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "Path to Anexo .xlsx"
	pathInput.Focus()
	pathInput.CharLimit = 500
	pathInput.Width = 60
	pathInput.Prompt = "File: "

	return &UploadModel{
		pathInput: pathInput,
		bar:       progress.New(progress.WithDefaultGradient()),
		anexo:     true,
	}
}

// SetProgress updates the transfer percentage
func (m *UploadModel) SetProgress(pct int) {
	if m.uploading {
		m.percent = pct
	}
}

// SetDone marks the current upload as finished. A failed transfer drops
// its partial progress.
func (m *UploadModel) SetDone(md *api.AnexoMetadata, err error) {
	m.uploading = false
	if err != nil {
		m.percent = 0
		return
	}
	if md != nil {
		m.metadata = md
	}
}

// Init returns the initial command
func (m UploadModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the upload form
func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.uploading {
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, func() tea.Msg { return NavigateMsg(ActionsView) }

		case "tab":
			m.anexo = !m.anexo
			if m.anexo {
				m.pathInput.Placeholder = "Path to Anexo .xlsx"
			} else {
				m.pathInput.Placeholder = "Paths to CV PDFs, space separated"
			}
			return m, nil

		case "enter":
			paths := strings.Fields(m.pathInput.Value())
			if len(paths) == 0 {
				return m, nil
			}
			m.uploading = true
			m.percent = 0
			m.metadata = nil
			anexo := m.anexo
			return m, func() tea.Msg {
				return StartUploadMsg{Anexo: anexo, Paths: paths}
			}

		default:
			m.pathInput, cmd = m.pathInput.Update(msg)
		}
	}

	return m, cmd
}

// View renders the upload form
func (m UploadModel) View() string {
	var b strings.Builder

	mode := "Anexo spreadsheet"
	if !m.anexo {
		mode = "CV PDFs"
	}
	b.WriteString(formTitleStyle.Render("Upload " + mode))
	b.WriteString("\n\n")

	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")

	if m.uploading || m.percent > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
		b.WriteString("\n\n")
	}

	if m.metadata != nil {
		b.WriteString("Extracted metadata:\n")
		b.WriteString(fmt.Sprintf("  Año fiscal:           %s\n", m.metadata.AnioFiscal))
		b.WriteString(fmt.Sprintf("  NIF cliente:          %s\n", m.metadata.NIFCliente))
		b.WriteString(fmt.Sprintf("  Entidad solicitante:  %s\n", m.metadata.EntidadSolicitante))
		b.WriteString("\n")
	}

	b.WriteString(helpTextStyle.Render("tab: switch mode • enter: upload • esc: back"))

	return b.String()
}
