package editor

import (
	"testing"

	"github.com/aherranz/fichas-cli/internal/records"
)

func loadFacturas(rows ...records.Record) *Editor {
	e := New(records.Facturas)
	e.Load(records.Collection(rows))
	return e
}

func TestLoadNormalizesAndSnapshots(t *testing.T) {
	e := loadFacturas(records.Record{"Entidad": "ACME"})

	if e.Dirty() {
		t.Error("freshly loaded editor must not be dirty")
	}
	if got := e.Value(Cell{0, 1}); got != "" {
		t.Errorf("missing column not normalized to empty, got %q", got)
	}
}

func TestApplyToMultiSelection(t *testing.T) {
	e := New(records.Personal)
	e.Load(records.Collection{
		{"Nombre": "Ana"},
		{"Nombre": "Luis"},
		{"Nombre": "Eva"},
	})

	// Toggle-select (0,"Nombre") and (2,"Nombre"), then apply.
	e.Select(0, 0, ModNone)
	e.Select(2, 0, ModToggle)
	e.Apply("X")

	if got := e.Value(Cell{0, 0}); got != "X" {
		t.Errorf("row 0 Nombre = %q, want X", got)
	}
	if got := e.Value(Cell{2, 0}); got != "X" {
		t.Errorf("row 2 Nombre = %q, want X", got)
	}
	if got := e.Value(Cell{1, 0}); got != "Luis" {
		t.Errorf("unselected row 1 changed to %q", got)
	}
	// No other column touched.
	if got := e.Value(Cell{0, 1}); got != "" {
		t.Errorf("adjacent column changed to %q", got)
	}
	if !e.Dirty() {
		t.Error("apply must mark the editor dirty")
	}
}

func TestToggleDeselects(t *testing.T) {
	e := loadFacturas(records.Record{"Entidad": "A"}, records.Record{"Entidad": "B"})

	e.Select(0, 0, ModNone)
	e.Select(1, 0, ModToggle)
	e.Select(0, 0, ModToggle) // deselect first again
	e.Apply("Z")

	if got := e.Value(Cell{0, 0}); got != "A" {
		t.Errorf("deselected cell changed to %q", got)
	}
	if got := e.Value(Cell{1, 0}); got != "Z" {
		t.Errorf("selected cell = %q, want Z", got)
	}
}

func TestRangeSelectionIsRectangular(t *testing.T) {
	e := loadFacturas(
		records.Record{}, records.Record{}, records.Record{},
	)

	e.Select(0, 0, ModNone)  // anchor
	e.Select(2, 1, ModRange) // span rows 0-2, cols 0-1
	if e.SelectionSize() != 6 {
		t.Fatalf("selection size = %d, want 6", e.SelectionSize())
	}
	e.Apply("v")
	for r := 0; r <= 2; r++ {
		for c := 0; c <= 1; c++ {
			if got := e.Value(Cell{r, c}); got != "v" {
				t.Errorf("cell (%d,%d) = %q, want v", r, c, got)
			}
		}
		if got := e.Value(Cell{r, 2}); got != "" {
			t.Errorf("cell (%d,2) outside range changed to %q", r, got)
		}
	}
}

func TestCancelRevertsAllEdits(t *testing.T) {
	e := loadFacturas(records.Record{"Entidad": "ACME", "Nombre factura": "F-01", "Importe (€)": "10"})

	e.Select(0, 0, ModNone)
	e.Apply("cambiado")
	e.AddRow()
	e.Cancel()

	if e.Dirty() {
		t.Error("cancel must clear the dirty flag")
	}
	if e.RowCount() != 1 {
		t.Errorf("cancel left %d rows, want 1", e.RowCount())
	}
	if got := e.Value(Cell{0, 0}); got != "ACME" {
		t.Errorf("cancel did not revert edit, got %q", got)
	}
}

func TestCommitSavedPromotesSnapshot(t *testing.T) {
	e := loadFacturas(records.Record{"Entidad": "ACME"})

	e.Select(0, 0, ModNone)
	e.Apply("NUEVA")
	e.CommitSaved()
	if e.Dirty() {
		t.Error("commit must clear dirty")
	}

	e.Select(0, 0, ModNone)
	e.Apply("otra")
	e.Cancel()
	if got := e.Value(Cell{0, 0}); got != "NUEVA" {
		t.Errorf("cancel reverted past the saved snapshot, got %q", got)
	}
}

func TestAddAndDeleteRow(t *testing.T) {
	e := loadFacturas()

	e.AddRow()
	if e.RowCount() != 1 {
		t.Fatalf("row count %d after add, want 1", e.RowCount())
	}
	for _, col := range e.Columns() {
		if e.Rows()[0][col] != "" {
			t.Errorf("new row column %q not empty", col)
		}
	}

	e.AddRow()
	e.SetCell(1, 0, "segunda")
	e.DeleteRow(0)
	if e.RowCount() != 1 {
		t.Fatalf("row count %d after delete, want 1", e.RowCount())
	}
	if got := e.Value(Cell{0, 0}); got != "segunda" {
		t.Errorf("wrong row deleted, remaining has %q", got)
	}

	e.DeleteRow(5) // out of bounds, ignored
	if e.RowCount() != 1 {
		t.Error("out-of-bounds delete changed the collection")
	}
}

func TestNextPrevCellRowMajorWrap(t *testing.T) {
	e := loadFacturas(records.Record{}, records.Record{})
	cols := len(e.Columns()) // 3

	e.Select(0, cols-1, ModNone)
	e.NextCell()
	if e.Active() != (Cell{1, 0}) {
		t.Errorf("NextCell did not wrap to next row, active = %v", e.Active())
	}

	e.Select(1, cols-1, ModNone)
	e.NextCell()
	if e.Active() != (Cell{0, 0}) {
		t.Errorf("NextCell did not wrap around the grid, active = %v", e.Active())
	}

	e.PrevCell()
	if e.Active() != (Cell{1, cols - 1}) {
		t.Errorf("PrevCell did not wrap backward, active = %v", e.Active())
	}
}

func TestApplyWithoutSelectionTargetsActive(t *testing.T) {
	e := loadFacturas(records.Record{})
	e.Select(0, 1, ModNone)
	e.Select(0, 1, ModToggle) // selection now empty, active still (0,1)
	e.Apply("valor")
	if got := e.Value(Cell{0, 1}); got != "valor" {
		t.Errorf("active-cell apply failed, got %q", got)
	}
}

func TestSelectOutOfBoundsIgnored(t *testing.T) {
	e := loadFacturas(records.Record{})
	e.Select(3, 0, ModNone)
	if e.SelectionSize() != 0 {
		t.Error("out-of-bounds select created a selection")
	}
}
