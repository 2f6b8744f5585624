package records

import (
	"testing"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		typ   Type
		count int
		first string
	}{
		{Personal, 22, "Nombre"},
		{Colaboraciones, 8, "Razón social"},
		{Facturas, 3, "Entidad"},
	}

	for _, tt := range tests {
		cols := Columns(tt.typ)
		if len(cols) != tt.count {
			t.Errorf("Columns(%s): got %d columns, want %d", tt.typ, len(cols), tt.count)
		}
		if cols[0] != tt.first {
			t.Errorf("Columns(%s): first column %q, want %q", tt.typ, cols[0], tt.first)
		}
	}

	// Mutating the returned slice must not affect the schema.
	cols := Columns(Facturas)
	cols[0] = "changed"
	if Columns(Facturas)[0] != "Entidad" {
		t.Error("Columns returned the internal slice, not a copy")
	}
}

func TestEmptyRow(t *testing.T) {
	for _, typ := range All {
		row := EmptyRow(typ)
		if len(row) != len(Columns(typ)) {
			t.Errorf("EmptyRow(%s): got %d fields, want %d", typ, len(row), len(Columns(typ)))
		}
		for col, v := range row {
			if v != "" {
				t.Errorf("EmptyRow(%s): column %q initialized to %q, want empty", typ, col, v)
			}
		}
	}
}

func TestNormalizeFillsMissingColumns(t *testing.T) {
	c := Collection{
		{"Entidad": "ACME"},
		{},
	}

	norm := Normalize(c, Facturas)
	if len(norm) != 2 {
		t.Fatalf("got %d records, want 2", len(norm))
	}
	if norm[0]["Entidad"] != "ACME" {
		t.Errorf("existing value lost: %q", norm[0]["Entidad"])
	}
	for _, col := range Columns(Facturas) {
		if _, ok := norm[1][col]; !ok {
			t.Errorf("missing column %q not filled", col)
		}
	}

	// Original collection untouched.
	if len(c[1]) != 0 {
		t.Error("Normalize mutated its input")
	}
}

func TestNormalizeKeepsUnknownFields(t *testing.T) {
	c := Collection{{"Entidad": "ACME", "extra": "kept"}}
	norm := Normalize(c, Facturas)
	if norm[0]["extra"] != "kept" {
		t.Errorf("unknown field dropped: %v", norm[0])
	}
}

func TestClone(t *testing.T) {
	c := Collection{{"Entidad": "ACME"}}
	cp := Clone(c)
	cp[0]["Entidad"] = "OTRA"
	if c[0]["Entidad"] != "ACME" {
		t.Error("Clone shares record maps with the original")
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range All {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if Type("nómina").Valid() {
		t.Error("unknown type reported valid")
	}
}
