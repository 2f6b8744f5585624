// Package editor implements the grid-editing state machine over one record
// collection: snapshot/revert, dirty tracking, multi-cell selection and
// row-major keyboard traversal. It holds no I/O; loading and saving are the
// caller's job.
package editor

import (
	"github.com/aherranz/fichas-cli/internal/records"
)

// Modifier selects the click semantics when targeting a cell.
type Modifier int

const (
	// ModNone selects exactly the targeted cell and moves the anchor.
	ModNone Modifier = iota
	// ModToggle flips the targeted cell's selection membership.
	ModToggle
	// ModRange selects the rectangular span between the anchor and the
	// targeted cell, replacing the previous selection.
	ModRange
)

// Cell addresses one grid position.
type Cell struct {
	Row int
	Col int
}

// Editor is the in-memory editing surface for one collection.
type Editor struct {
	typ     records.Type
	columns []string

	rows     records.Collection
	snapshot records.Collection
	dirty    bool

	active   Cell
	anchor   Cell
	selected map[Cell]struct{}
}

// New creates an editor for the given collection type with no data loaded.
func New(typ records.Type) *Editor {
	return &Editor{
		typ:      typ,
		columns:  records.Columns(typ),
		selected: make(map[Cell]struct{}),
	}
}

// Load installs a freshly fetched collection as both working copy and
// snapshot. Missing columns are filled so every row is complete.
func (e *Editor) Load(data records.Collection) {
	norm := records.Normalize(data, e.typ)
	e.rows = norm
	e.snapshot = records.Clone(norm)
	e.dirty = false
	e.active = Cell{}
	e.anchor = Cell{}
	e.clearSelection()
}

// Type returns the collection type being edited.
func (e *Editor) Type() records.Type { return e.typ }

// Columns returns the column schema in display order.
func (e *Editor) Columns() []string { return e.columns }

// Rows returns the working copy. Callers must not mutate it directly.
func (e *Editor) Rows() records.Collection { return e.rows }

// RowCount returns the number of rows in the working copy.
func (e *Editor) RowCount() int { return len(e.rows) }

// Dirty reports whether unsaved edits exist.
func (e *Editor) Dirty() bool { return e.dirty }

// Active returns the cell that currently has focus.
func (e *Editor) Active() Cell { return e.active }

// Value returns the working value at a cell.
func (e *Editor) Value(c Cell) string {
	if !e.inBounds(c) {
		return ""
	}
	return e.rows[c.Row][e.columns[c.Col]]
}

// Selected reports whether a cell is part of the current selection.
func (e *Editor) Selected(c Cell) bool {
	_, ok := e.selected[c]
	return ok
}

// SelectionSize returns the number of selected cells.
func (e *Editor) SelectionSize() int { return len(e.selected) }

// Select targets a cell with the given modifier semantics. Out-of-bounds
// targets are ignored.
func (e *Editor) Select(row, col int, mod Modifier) {
	c := Cell{Row: row, Col: col}
	if !e.inBounds(c) {
		return
	}

	switch mod {
	case ModNone:
		e.clearSelection()
		e.selected[c] = struct{}{}
		e.anchor = c
	case ModToggle:
		if _, ok := e.selected[c]; ok {
			delete(e.selected, c)
		} else {
			e.selected[c] = struct{}{}
		}
		e.anchor = c
	case ModRange:
		e.clearSelection()
		r1, r2 := ordered(e.anchor.Row, c.Row)
		c1, c2 := ordered(e.anchor.Col, c.Col)
		for r := r1; r <= r2; r++ {
			for col := c1; col <= c2; col++ {
				e.selected[Cell{Row: r, Col: col}] = struct{}{}
			}
		}
	}
	e.active = c
}

// Apply writes value into every selected cell, or just the active cell when
// nothing is explicitly selected, and marks the collection dirty.
func (e *Editor) Apply(value string) {
	targets := e.selectionOrActive()
	if len(targets) == 0 {
		return
	}
	for _, c := range targets {
		e.rows[c.Row][e.columns[c.Col]] = value
	}
	e.dirty = true
}

// SetCell writes one cell directly, bypassing the selection.
func (e *Editor) SetCell(row, col int, value string) {
	c := Cell{Row: row, Col: col}
	if !e.inBounds(c) {
		return
	}
	e.rows[c.Row][e.columns[c.Col]] = value
	e.dirty = true
}

// AddRow appends a record with every schema column set to "".
func (e *Editor) AddRow() {
	e.rows = append(e.rows, records.EmptyRow(e.typ))
	e.dirty = true
}

// DeleteRow removes a row by position. There is no undo short of Cancel.
func (e *Editor) DeleteRow(row int) {
	if row < 0 || row >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:row], e.rows[row+1:]...)
	e.dirty = true
	e.clearSelection()
	if e.active.Row >= len(e.rows) && e.active.Row > 0 {
		e.active.Row--
	}
	e.anchor = e.active
}

// NextCell moves the active cell forward in row-major order, wrapping
// across row boundaries and from the last cell back to the first.
func (e *Editor) NextCell() {
	e.advance(1)
}

// PrevCell moves the active cell backward in row-major order.
func (e *Editor) PrevCell() {
	e.advance(-1)
}

func (e *Editor) advance(delta int) {
	total := len(e.rows) * len(e.columns)
	if total == 0 {
		return
	}
	idx := e.active.Row*len(e.columns) + e.active.Col
	idx = ((idx+delta)%total + total) % total
	e.active = Cell{Row: idx / len(e.columns), Col: idx % len(e.columns)}
	e.clearSelection()
	e.selected[e.active] = struct{}{}
	e.anchor = e.active
}

// Cancel discards all pending edits, reverting to the last-loaded (or
// last-saved) snapshot.
func (e *Editor) Cancel() {
	e.rows = records.Clone(e.snapshot)
	e.dirty = false
	e.clearSelection()
	e.active = Cell{}
	e.anchor = Cell{}
}

// CommitSaved promotes the working copy to the new snapshot after a
// successful save. On save failure the caller simply skips this, keeping
// both the dirty flag and the edits.
func (e *Editor) CommitSaved() {
	e.snapshot = records.Clone(e.rows)
	e.dirty = false
}

func (e *Editor) selectionOrActive() []Cell {
	if len(e.selected) > 0 {
		out := make([]Cell, 0, len(e.selected))
		for c := range e.selected {
			out = append(out, c)
		}
		return out
	}
	if e.inBounds(e.active) {
		return []Cell{e.active}
	}
	return nil
}

func (e *Editor) clearSelection() {
	e.selected = make(map[Cell]struct{})
}

func (e *Editor) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < len(e.rows) && c.Col >= 0 && c.Col < len(e.columns)
}

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
