// Package tui provides the ficha workflow view
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/generator"
	"github.com/aherranz/fichas-cli/internal/records"
)

const (
	overrideEntidadInput int = iota
	overrideNIFInput
	overrideAnioInput
)

// ActionsModel represents the ficha workflow view: availability of each
// ficha, validation results, generation and download.
type ActionsModel struct {
	key          api.TenancyKey
	availability api.Availability
	validation   *api.ValidationResult
	files        []string
	cursor       int

	busy    bool
	spin    spinner.Model
	bar     progress.Model
	percent int

	// Generation overrides, prefilled from the Anexo metadata
	editingOverrides bool
	overrideInputs   [3]textinput.Model
	overrideFocus    int
	overrideErr      string
}

// NewActionsModel creates a new ficha workflow model
func NewActionsModel() *ActionsModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &ActionsModel{
		spin: spin,
		bar:  progress.New(progress.WithDefaultGradient()),
	}

	prompts := [3]string{"Entidad solicitante: ", "NIF cliente: ", "Año fiscal: "}
	for i := range m.overrideInputs {
		in := textinput.New()
		in.Prompt = prompts[i]
		in.CharLimit = 100
		in.Width = 40
		m.overrideInputs[i] = in
	}
	return m
}

// SetMetadata prefills the generation override form from the Anexo
// metadata of the selected client.
func (m *ActionsModel) SetMetadata(md api.AnexoMetadata) {
	if m.editingOverrides {
		return
	}
	m.overrideInputs[overrideEntidadInput].SetValue(md.EntidadSolicitante)
	m.overrideInputs[overrideNIFInput].SetValue(md.NIFCliente)
	m.overrideInputs[overrideAnioInput].SetValue(md.AnioFiscal)
}

// overrides builds the generation override payload from the form
func (m ActionsModel) overrides() api.GenerateOverrides {
	return api.GenerateOverrides{
		EntidadSolicitante: strings.TrimSpace(m.overrideInputs[overrideEntidadInput].Value()),
		NIFCliente:         strings.TrimSpace(m.overrideInputs[overrideNIFInput].Value()),
		AnioFiscal:         strings.TrimSpace(m.overrideInputs[overrideAnioInput].Value()),
	}
}

// SetKey records the tenancy key this view works against
func (m *ActionsModel) SetKey(key api.TenancyKey) {
	m.key = key
	m.validation = nil
	m.files = nil
	m.cursor = 0
	m.percent = 0
}

// SetAvailability updates the availability flags
func (m *ActionsModel) SetAvailability(av api.Availability) {
	m.availability = av
}

// SetValidation stores the latest validation result
func (m *ActionsModel) SetValidation(res *api.ValidationResult) {
	m.busy = false
	m.validation = res
}

// SetFiles stores the latest generated file names
func (m *ActionsModel) SetFiles(files []string) {
	m.busy = false
	if len(files) > 0 {
		m.files = files
		m.cursor = 0
	}
}

// SetProgress updates the download percentage
func (m *ActionsModel) SetProgress(pct int) {
	m.percent = pct
	if pct >= 100 {
		m.busy = false
	}
}

// SetDownloadDone clears the busy state once a download attempt has
// resolved, whatever the outcome. A failed transfer drops its partial
// progress.
func (m *ActionsModel) SetDownloadDone(err error) {
	m.busy = false
	if err != nil {
		m.percent = 0
	}
}

// Init returns the initial command
func (m ActionsModel) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles messages for the ficha workflow view
func (m ActionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.editingOverrides {
			return m.updateOverrides(msg)
		}

		switch msg.String() {
		case "o":
			m.editingOverrides = true
			m.overrideFocus = 0
			m.overrideErr = ""
			m.updateOverrideFocus()
			return m, textinput.Blink

		case "esc":
			return m, func() tea.Msg { return NavigateMsg(ProyectosView) }

		case "u":
			return m, func() tea.Msg { return NavigateMsg(UploadView) }

		case "p":
			return m, openData(records.Personal)
		case "c":
			return m, openData(records.Colaboraciones)
		case "f":
			return m, openData(records.Facturas)

		case "v":
			m.busy = true
			return m, tea.Batch(m.spin.Tick, func() tea.Msg { return RunValidateMsg{} })

		case "g":
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.generateCmd(""))
		case "1":
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.generateCmd("2.1"))
		case "2":
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.generateCmd("2.2"))

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.files)-1 {
				m.cursor++
			}

		case "d":
			m.busy = true
			m.percent = 0
			return m, tea.Batch(m.spin.Tick, func() tea.Msg { return RunDownloadMsg{} })

		case "enter":
			if len(m.files) > 0 && m.cursor < len(m.files) {
				name := m.files[m.cursor]
				m.busy = true
				m.percent = 0
				return m, tea.Batch(m.spin.Tick, func() tea.Msg {
					return RunDownloadMsg{Name: name}
				})
			}
		}
	}

	return m, nil
}

// updateOverrides handles keys while the override form is open
func (m ActionsModel) updateOverrides(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "esc":
		m.editingOverrides = false
		m.overrideErr = ""
		m.overrideInputs[m.overrideFocus].Blur()

	case "tab", "shift+tab", "up", "down":
		if msg.String() == "up" || msg.String() == "shift+tab" {
			m.overrideFocus--
		} else {
			m.overrideFocus++
		}
		if m.overrideFocus >= len(m.overrideInputs) {
			m.overrideFocus = 0
		} else if m.overrideFocus < 0 {
			m.overrideFocus = len(m.overrideInputs) - 1
		}
		m.updateOverrideFocus()
		return m, textinput.Blink

	case "enter":
		nif := strings.TrimSpace(m.overrideInputs[overrideNIFInput].Value())
		if nif != "" && !generator.ValidTaxID(nif) {
			m.overrideErr = "Not a valid DNI, NIE or CIF"
			return m, nil
		}
		m.editingOverrides = false
		m.overrideErr = ""
		m.overrideInputs[m.overrideFocus].Blur()

	default:
		m.overrideInputs[m.overrideFocus], cmd = m.overrideInputs[m.overrideFocus].Update(msg)
	}

	return m, cmd
}

// updateOverrideFocus updates the focus state of the override inputs
func (m *ActionsModel) updateOverrideFocus() {
	for i := range m.overrideInputs {
		if i == m.overrideFocus {
			m.overrideInputs[i].Focus()
		} else {
			m.overrideInputs[i].Blur()
		}
	}
}

func openData(typ records.Type) tea.Cmd {
	return func() tea.Msg { return OpenDataMsg{Type: typ} }
}

func (m ActionsModel) generateCmd(tipo string) tea.Cmd {
	overrides := m.overrides()
	return func() tea.Msg { return RunGenerateMsg{Tipo: tipo, Overrides: overrides} }
}

// View renders the ficha workflow view
func (m ActionsModel) View() string {
	var b strings.Builder

	b.WriteString("\nAvailability:\n")
	b.WriteString(fmt.Sprintf("  Ficha 2.1 (personal):              %s\n", flag(m.availability.PuedeGenerar21)))
	b.WriteString(fmt.Sprintf("  Ficha 2.2 (colaboraciones/facturas): %s\n", flag(m.availability.PuedeGenerar22)))
	b.WriteString(fmt.Sprintf(
		"  Records: %d personal, %d colaboraciones, %d facturas\n",
		m.availability.Datos.Personal,
		m.availability.Datos.Colaboraciones,
		m.availability.Datos.Facturas,
	))

	if m.validation != nil {
		b.WriteString("\nValidation:\n")
		if m.validation.Exitosa {
			b.WriteString(alertSuccessStyle.Render("  ✓ " + m.validation.Resumen.MensajeGeneral))
		} else {
			b.WriteString(alertWarningStyle.Render("  ⚠ " + m.validation.Resumen.MensajeGeneral))
		}
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(
			"  Personal: %d errors, %d warnings • Colaboraciones: %d errors, %d warnings\n",
			m.validation.Resumen.Personal.Errores,
			m.validation.Resumen.Personal.Avisos,
			m.validation.Resumen.Colaboraciones.Errores,
			m.validation.Resumen.Colaboraciones.Avisos,
		))
	}

	if len(m.files) > 0 {
		b.WriteString("\nGenerated fichas:\n")
		for i, file := range m.files {
			cursor := " "
			if m.cursor == i {
				cursor = ">"
			}
			line := fmt.Sprintf("  %s %s", cursor, file)
			if m.cursor == i {
				b.WriteString(selectedItemStyle.Render(line))
			} else {
				b.WriteString(normalItemStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString(helpTextStyle.Render("  enter: download selected • d: download all as zip"))
		b.WriteString("\n")
	}

	if m.editingOverrides {
		b.WriteString("\n")
		b.WriteString(formTitleStyle.Render("Generation overrides"))
		b.WriteString("\n")
		for i := range m.overrideInputs {
			b.WriteString(m.overrideInputs[i].View())
			b.WriteString("\n")
		}
		if m.overrideErr != "" {
			b.WriteString(formErrorStyle.Render(m.overrideErr))
			b.WriteString("\n")
		}
		b.WriteString(helpTextStyle.Render("tab: next field • enter: accept • esc: close"))
		b.WriteString("\n")
	} else if ov := m.overrides(); ov != (api.GenerateOverrides{}) {
		b.WriteString("\n")
		b.WriteString(helpTextStyle.Render(fmt.Sprintf(
			"Overrides: entidad=%q nif=%q año=%q (press 'o' to edit)",
			ov.EntidadSolicitante, ov.NIFCliente, ov.AnioFiscal)))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n" + m.spin.View() + " working...")
		if m.percent > 0 {
			b.WriteString("\n" + m.bar.ViewAs(float64(m.percent)/100))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func flag(ok bool) string {
	if ok {
		return alertSuccessStyle.Render("available")
	}
	return noItemsStyle.Render("not yet")
}
