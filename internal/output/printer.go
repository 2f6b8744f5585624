// Package output provides formatted terminal output for the scriptable
// fichas commands. This centralizes printing away from command modules.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/records"
)

// Format represents different output formats.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Printer handles formatted output to the terminal.
type Printer struct {
	writer io.Writer
	format Format
	quiet  bool
}

// NewPrinter creates a new printer with the specified format.
func NewPrinter(format Format, quiet bool) *Printer {
	return &Printer{writer: os.Stdout, format: format, quiet: quiet}
}

// NewPrinterWithWriter creates a new printer with a custom writer.
func NewPrinterWithWriter(writer io.Writer, format Format, quiet bool) *Printer {
	return &Printer{writer: writer, format: format, quiet: quiet}
}

// Success prints a success message.
func (p *Printer) Success(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "✓ %s\n", message)
	}
}

// Error prints an error message.
func (p *Printer) Error(message string) {
	fmt.Fprintf(p.writer, "✗ %s\n", message)
}

// Warning prints a warning message.
func (p *Printer) Warning(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "⚠ %s\n", message)
	}
}

// Info prints an informational message.
func (p *Printer) Info(message string) {
	if !p.quiet {
		fmt.Fprintf(p.writer, "• %s\n", message)
	}
}

// Printf prints a formatted message.
func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format, args...)
}

// PrintJSON prints any value as indented JSON.
func (p *Printer) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintRecords prints a record collection, honouring the format.
func (p *Printer) PrintRecords(typ records.Type, data records.Collection) error {
	if p.format == FormatJSON {
		return p.PrintJSON(data)
	}

	cols := records.Columns(typ)
	w := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "#")
	for _, col := range cols {
		fmt.Fprintf(w, "\t%s", col)
	}
	fmt.Fprintln(w)

	for i, rec := range data {
		fmt.Fprintf(w, "%d", i+1)
		for _, col := range cols {
			fmt.Fprintf(w, "\t%s", rec[col])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// PrintClientes prints the client list.
func (p *Printer) PrintClientes(clientes []api.Cliente) error {
	if p.format == FormatJSON {
		return p.PrintJSON(clientes)
	}

	w := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NIF\tNOMBRE")
	for _, c := range clientes {
		fmt.Fprintf(w, "%s\t%s\n", c.NIF, c.Nombre)
	}
	return w.Flush()
}

// PrintProyectos prints the project list of one client.
func (p *Printer) PrintProyectos(proyectos []api.Proyecto) error {
	if p.format == FormatJSON {
		return p.PrintJSON(proyectos)
	}

	w := tabwriter.NewWriter(p.writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ACRONIMO")
	for _, pr := range proyectos {
		fmt.Fprintf(w, "%s\n", pr.Acronimo)
	}
	return w.Flush()
}

// PrintAvailability prints the generation availability summary.
func (p *Printer) PrintAvailability(av *api.Availability) error {
	if p.format == FormatJSON {
		return p.PrintJSON(av)
	}

	mark := func(b bool) string {
		if b {
			return "sí"
		}
		return "no"
	}
	p.Printf("Ficha 2.1 (personal):        %s (%d registros)\n",
		mark(av.PuedeGenerar21), av.Datos.Personal)
	p.Printf("Ficha 2.2 (colaboraciones):  %s (%d colaboraciones, %d facturas)\n",
		mark(av.PuedeGenerar22), av.Datos.Colaboraciones, av.Datos.Facturas)
	return nil
}

// PrintValidation prints the validation summary panel.
func (p *Printer) PrintValidation(res *api.ValidationResult) error {
	if p.format == FormatJSON {
		return p.PrintJSON(res)
	}

	if res.Exitosa {
		p.Success("Validación superada")
	} else {
		p.Error("Validación con errores")
	}
	if res.Resumen.MensajeGeneral != "" {
		p.Printf("  %s\n", res.Resumen.MensajeGeneral)
	}

	p.printCollectionSummary("Personal", res.Resumen.Personal)
	p.printCollectionSummary("Colaboraciones", res.Resumen.Colaboraciones)
	return nil
}

func (p *Printer) printCollectionSummary(label string, s api.CollectionSummary) {
	p.Printf("  %s: %d errores, %d avisos\n", label, s.Errores, s.Avisos)
	for _, msg := range s.Muestra {
		p.Printf("    - %s\n", msg)
	}
}
