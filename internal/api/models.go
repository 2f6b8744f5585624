// Package api contains models for backend communication.
package api

import "net/url"

// TenancyKey scopes every data operation to a client and, optionally, one
// of its projects. An empty Proyecto addresses the client-level bucket.
type TenancyKey struct {
	ClienteNIF string
	Proyecto   string
}

// query translates the key into the backend's query parameters.
func (k TenancyKey) query() url.Values {
	q := url.Values{}
	if k.ClienteNIF != "" {
		q.Set("cliente_nif", k.ClienteNIF)
	}
	if k.Proyecto != "" {
		q.Set("proyecto", k.Proyecto)
	}
	return q
}

// Cliente is a backend client, identified by its NIF.
type Cliente struct {
	NIF    string `json:"nif"`
	Nombre string `json:"nombre"`
	Folder string `json:"folder,omitempty"`
}

// Proyecto is a project under a client, identified by its acronym.
type Proyecto struct {
	Acronimo string `json:"acronimo"`
	Path     string `json:"path,omitempty"`
}

// AnexoMetadata is derived server-side from an uploaded Anexo spreadsheet
// and pre-fills the generation form.
type AnexoMetadata struct {
	AnioFiscal         string `json:"anio_fiscal"`
	NIFCliente         string `json:"nif_cliente"`
	EntidadSolicitante string `json:"entidad_solicitante"`
}

// MessageResponse is the generic acknowledgement shape.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadAnexoResponse carries the metadata extracted from the spreadsheet.
type UploadAnexoResponse struct {
	Message  string         `json:"message"`
	Metadata *AnexoMetadata `json:"metadata,omitempty"`
}

// Availability reports whether enough data exists to generate each ficha
// type. Derived from the record collections and eventually consistent, so
// callers re-poll rather than trusting a single read.
type Availability struct {
	Status         string             `json:"status"`
	PuedeGenerar21 bool               `json:"puede_generar_2_1"`
	PuedeGenerar22 bool               `json:"puede_generar_2_2"`
	Datos          AvailabilityCounts `json:"datos"`
}

// AvailabilityCounts holds the record counts behind the flags.
type AvailabilityCounts struct {
	Personal       int `json:"personal"`
	Colaboraciones int `json:"colaboraciones"`
	Facturas       int `json:"facturas"`
}

// CollectionSummary is the per-collection validation outcome.
type CollectionSummary struct {
	Errores int      `json:"errores"`
	Avisos  int      `json:"avisos"`
	Muestra []string `json:"muestra,omitempty"`
}

// ValidationSummary groups per-collection validation results.
type ValidationSummary struct {
	MensajeGeneral string            `json:"mensaje_general"`
	Personal       CollectionSummary `json:"personal"`
	Colaboraciones CollectionSummary `json:"colaboraciones"`
}

// ValidationResult is the backend's verdict on the current collections.
type ValidationResult struct {
	Exitosa bool              `json:"exitosa"`
	Resumen ValidationSummary `json:"resumen"`
}

// GenerateOverrides are the optional user-supplied fields sent with a
// generation request. Empty fields keep the backend defaults.
type GenerateOverrides struct {
	EntidadSolicitante string `json:"entidad_solicitante,omitempty"`
	NIFCliente         string `json:"nif_cliente,omitempty"`
	AnioFiscal         string `json:"anio_fiscal,omitempty"`
}

// GenerateResponse lists the artifacts produced by a whole-batch run.
type GenerateResponse struct {
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

// GenerateOneResponse is the outcome of a single-type generation.
type GenerateOneResponse struct {
	Success bool   `json:"success"`
	File    string `json:"file,omitempty"`
	Aviso   string `json:"aviso,omitempty"`
}
