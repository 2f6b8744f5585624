// Package records defines the tabular record collections managed by the
// fichas backend: personal, colaboraciones and facturas. Each collection is
// an ordered list of flat string records with a fixed column schema.
package records

// Type identifies one of the three record collections.
type Type string

const (
	Personal       Type = "personal"
	Colaboraciones Type = "colaboraciones"
	Facturas       Type = "facturas"
)

// All lists every collection type in workflow order.
var All = []Type{Personal, Colaboraciones, Facturas}

// Record is a single row. Values are always strings; missing columns are
// treated as the empty string.
type Record map[string]string

// Collection is an ordered list of records. The backend has no per-record
// identity, so position is the only identity a record has.
type Collection []Record

// Column schemas mirror the spreadsheet layout the backend extracts into.
var columnDefinitions = map[Type][]string{
	Personal: {
		"Nombre",
		"Apellidos",
		"Titulación 1",
		"Titulación 2",
		"Coste horario (€/hora)",
		"Horas totales",
		"Coste total (€)",
		"Coste IT (€)",
		"Horas IT",
		"Departamento",
		"Puesto actual",
		"Coste I+D (€)",
		"Horas I+D",
		"EMPRESA 1",
		"PERIODO 1",
		"PUESTO 1",
		"EMPRESA 2",
		"PERIODO 2",
		"PUESTO 2",
		"EMPRESA 3",
		"PERIODO 3",
		"PUESTO 3",
	},
	Colaboraciones: {
		"Razón social",
		"NIF",
		"NIF 2",
		"Entidad contratante",
		"País de la entidad",
		"Localidad",
		"Provincia",
		"País de realización",
	},
	Facturas: {
		"Entidad",
		"Nombre factura",
		"Importe (€)",
	},
}

var labels = map[Type]string{
	Personal:       "Personal (Ficha 2.1)",
	Colaboraciones: "Colaboraciones (Ficha 2.2)",
	Facturas:       "Facturas (Ficha 2.2)",
}

// Valid reports whether t names a known collection type.
func (t Type) Valid() bool {
	_, ok := columnDefinitions[t]
	return ok
}

// Label returns the human-readable name of the collection.
func (t Type) Label() string {
	return labels[t]
}

// Columns returns the column schema for t. The returned slice is a copy.
func Columns(t Type) []string {
	cols := columnDefinitions[t]
	out := make([]string, len(cols))
	copy(out, cols)
	return out
}

// EmptyRow returns a record with every schema column set to "".
func EmptyRow(t Type) Record {
	row := make(Record, len(columnDefinitions[t]))
	for _, col := range columnDefinitions[t] {
		row[col] = ""
	}
	return row
}

// Normalize fills missing schema columns of every record with "" so the
// editor always sees a full row. Extra fields the backend may send are kept.
func Normalize(c Collection, t Type) Collection {
	out := make(Collection, len(c))
	for i, rec := range c {
		row := make(Record, len(columnDefinitions[t]))
		for k, v := range rec {
			row[k] = v
		}
		for _, col := range columnDefinitions[t] {
			if _, ok := row[col]; !ok {
				row[col] = ""
			}
		}
		out[i] = row
	}
	return out
}

// Clone deep-copies a collection.
func Clone(c Collection) Collection {
	out := make(Collection, len(c))
	for i, rec := range c {
		row := make(Record, len(rec))
		for k, v := range rec {
			row[k] = v
		}
		out[i] = row
	}
	return out
}
