// Package tui provides the record grid editor
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aherranz/fichas-cli/internal/editor"
	"github.com/aherranz/fichas-cli/internal/records"
)

// visibleCols caps the number of columns rendered at once; the personal
// collection alone has over twenty.
const visibleCols = 6

// DataModel represents the grid editor view state. Cell selection and
// the working/snapshot copies live in the editor; this model only maps
// keys to editor operations and renders the grid.
type DataModel struct {
	editor *editor.Editor

	// Cell editing
	editing   bool
	cellInput textinput.Model

	// Horizontal scroll, in columns
	colOffset int
}

// NewDataModel creates a new grid editor model
func NewDataModel() *DataModel {
	cellInput := textinput.New()
	cellInput.CharLimit = 500
	cellInput.Width = 40
	cellInput.Prompt = "> "

	return &DataModel{
		editor:    editor.New(records.Personal),
		cellInput: cellInput,
	}
}

// Open loads a collection into a fresh editor
func (m *DataModel) Open(typ records.Type, data records.Collection) {
	m.editor = editor.New(typ)
	m.editor.Load(data)
	m.editing = false
	m.colOffset = 0
}

// CommitSaved marks the current working copy as the saved baseline
func (m *DataModel) CommitSaved() {
	m.editor.CommitSaved()
}

// Help returns the footer help line for the current mode
func (m DataModel) Help() string {
	if m.editing {
		return "enter: apply to selection • esc: keep previous value"
	}
	return "arrows: move • shift+arrows: span • t: toggle • enter: edit • a: add row • D: delete row • s: save • esc: discard & back"
}

// Init returns the initial command for the grid editor
func (m DataModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the grid editor
func (m DataModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(keyMsg)
	}

	switch keyMsg.String() {
	case "up":
		m.move(-1, 0, editor.ModNone)
	case "down":
		m.move(1, 0, editor.ModNone)
	case "left":
		m.move(0, -1, editor.ModNone)
	case "right":
		m.move(0, 1, editor.ModNone)

	case "shift+up":
		m.move(-1, 0, editor.ModRange)
	case "shift+down":
		m.move(1, 0, editor.ModRange)
	case "shift+left":
		m.move(0, -1, editor.ModRange)
	case "shift+right":
		m.move(0, 1, editor.ModRange)

	case "t":
		active := m.editor.Active()
		m.editor.Select(active.Row, active.Col, editor.ModToggle)

	case "tab":
		m.editor.NextCell()
		m.scrollToActive()
	case "shift+tab":
		m.editor.PrevCell()
		m.scrollToActive()

	case "enter":
		if m.editor.RowCount() == 0 {
			return m, nil
		}
		m.editing = true
		m.cellInput.SetValue(m.editor.Value(m.editor.Active()))
		m.cellInput.CursorEnd()
		m.cellInput.Focus()
		return m, textinput.Blink

	case "a":
		m.editor.AddRow()
		m.editor.Select(m.editor.RowCount()-1, 0, editor.ModNone)
		m.scrollToActive()

	case "D":
		m.editor.DeleteRow(m.editor.Active().Row)

	case "s":
		typ := m.editor.Type()
		data := records.Clone(m.editor.Rows())
		return m, func() tea.Msg {
			return SaveDataMsg{Type: typ, Data: data}
		}

	case "esc":
		m.editor.Cancel()
		return m, func() tea.Msg { return NavigateMsg(ActionsView) }
	}

	return m, nil
}

// updateEditing handles keys while a cell value is being typed
func (m DataModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "enter":
		m.editor.Apply(m.cellInput.Value())
		m.editing = false
		m.cellInput.Blur()
	case "tab", "shift+tab":
		// Commit, then keep editing the next cell in row-major order
		m.editor.Apply(m.cellInput.Value())
		if msg.String() == "tab" {
			m.editor.NextCell()
		} else {
			m.editor.PrevCell()
		}
		m.scrollToActive()
		m.cellInput.SetValue(m.editor.Value(m.editor.Active()))
		m.cellInput.CursorEnd()
	case "esc":
		m.editing = false
		m.cellInput.Blur()
	default:
		m.cellInput, cmd = m.cellInput.Update(msg)
	}

	return m, cmd
}

// move shifts the active cell and reapplies selection with the modifier
func (m *DataModel) move(dRow, dCol int, mod editor.Modifier) {
	active := m.editor.Active()
	m.editor.Select(active.Row+dRow, active.Col+dCol, mod)
	m.scrollToActive()
}

// scrollToActive keeps the active column within the rendered window
func (m *DataModel) scrollToActive() {
	col := m.editor.Active().Col
	if col < m.colOffset {
		m.colOffset = col
	}
	if col >= m.colOffset+visibleCols {
		m.colOffset = col - visibleCols + 1
	}
}

// View renders the grid
func (m DataModel) View() string {
	var b strings.Builder

	title := m.editor.Type().Label()
	if m.editor.Dirty() {
		title += " *"
	}
	b.WriteString(gridTitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.editor.RowCount() == 0 {
		b.WriteString(noItemsStyle.Render("No records. Press 'a' to add the first row."))
		b.WriteString("\n")
		return b.String()
	}

	columns := m.editor.Columns()
	end := m.colOffset + visibleCols
	if end > len(columns) {
		end = len(columns)
	}

	// Header row
	b.WriteString("      ")
	for c := m.colOffset; c < end; c++ {
		b.WriteString(gridHeaderStyle.Render(pad(columns[c], 14)))
		b.WriteString(" ")
	}
	if end < len(columns) {
		b.WriteString(gridHeaderStyle.Render("…"))
	}
	b.WriteString("\n")

	for r := 0; r < m.editor.RowCount(); r++ {
		b.WriteString(fmt.Sprintf("%4d  ", r+1))
		for c := m.colOffset; c < end; c++ {
			cell := editor.Cell{Row: r, Col: c}
			text := pad(m.editor.Value(cell), 14)

			switch {
			case cell == m.editor.Active():
				b.WriteString(gridActiveStyle.Render(text))
			case m.editor.Selected(cell):
				b.WriteString(gridSelectedStyle.Render(text))
			default:
				b.WriteString(gridCellStyle.Render(text))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if m.editor.SelectionSize() > 1 {
		b.WriteString("\n")
		b.WriteString(helpTextStyle.Render(
			fmt.Sprintf("%d cells selected — editing applies to all of them", m.editor.SelectionSize())))
	}

	if m.editing {
		b.WriteString("\n\n")
		active := m.editor.Active()
		b.WriteString(fmt.Sprintf("%s, row %d:\n", columns[active.Col], active.Row+1))
		b.WriteString(m.cellInput.View())
	}

	b.WriteString("\n")
	return b.String()
}

// pad truncates or right-pads a value to a fixed cell width
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// Styles for the grid
var (
	gridTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	gridHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	gridCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	gridSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("24"))

	gridActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("205")).
			Bold(true)
)
