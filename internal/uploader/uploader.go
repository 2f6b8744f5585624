// Package uploader orchestrates the file upload flow: local extension
// checks, the Anexo upload with its metadata callback, and the CV upload
// that auto-chains into server-side processing.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
)

var (
	// ErrInvalidExtension is returned when the Anexo file is not .xlsx.
	// The check is local; no request is issued.
	ErrInvalidExtension = errors.New("invalid file extension")

	// ErrNoValidFiles is returned when every CV in a batch was dropped by
	// the extension filter.
	ErrNoValidFiles = errors.New("no valid files in batch")
)

// Events are the callbacks the orchestrator raises towards its owner.
// All of them are optional.
type Events struct {
	// OnAnexoMetadata fires with the metadata the backend derived from a
	// successfully uploaded Anexo.
	OnAnexoMetadata func(api.AnexoMetadata)
	// OnUploadComplete fires after any successful upload.
	OnUploadComplete func(message string)
	// OnCVsProcessed fires once CV processing has been triggered and
	// acknowledged.
	OnCVsProcessed func(message string)
}

// Orchestrator drives uploads for one tenancy key at a time.
type Orchestrator struct {
	client *api.Client
	alerts *alerts.Store
	events Events
	logger *slog.Logger
}

// New creates an orchestrator. alerts may not be nil.
func New(client *api.Client, alertStore *alerts.Store, events Events, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		client: client,
		alerts: alertStore,
		events: events,
		logger: logger,
	}
}

// UploadAnexo validates and uploads the Anexo spreadsheet. A wrong
// extension raises exactly one error alert and never touches the network.
func (o *Orchestrator) UploadAnexo(
	ctx context.Context,
	key api.TenancyKey,
	path string,
	progress api.ProgressFunc,
) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		o.alerts.Pushf(alerts.Error, "El anexo debe ser un archivo .xlsx: %s", filepath.Base(path))
		return ErrInvalidExtension
	}

	file, size, err := openUpload(path)
	if err != nil {
		o.alerts.Pushf(alerts.Error, "No se pudo leer el archivo: %v", err)
		return err
	}
	defer file.Close()

	resp, err := o.client.UploadAnexo(ctx, key, api.UploadFile{
		Name:   filepath.Base(path),
		Reader: file,
		Size:   size,
	}, progress)
	if err != nil {
		o.alerts.Pushf(alerts.Error, "Error al subir el anexo: %s", api.ErrorDetail(err))
		return err
	}

	o.alerts.Push(alerts.Success, resp.Message)
	if resp.Metadata != nil && o.events.OnAnexoMetadata != nil {
		o.events.OnAnexoMetadata(*resp.Metadata)
	}
	if o.events.OnUploadComplete != nil {
		o.events.OnUploadComplete(resp.Message)
	}
	return nil
}

// UploadCVs filters the batch to .pdf files, uploads the remainder and,
// once the upload has resolved, triggers server-side processing exactly
// once. Dropped files are reported in a single warning alert.
func (o *Orchestrator) UploadCVs(
	ctx context.Context,
	key api.TenancyKey,
	paths []string,
	progress api.ProgressFunc,
) error {
	var valid, dropped []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".pdf") {
			valid = append(valid, p)
		} else {
			dropped = append(dropped, filepath.Base(p))
		}
	}

	if len(dropped) > 0 {
		o.alerts.Pushf(alerts.Warning,
			"Archivos descartados (solo se aceptan PDF): %s", strings.Join(dropped, ", "))
	}
	if len(valid) == 0 {
		o.alerts.Push(alerts.Error, "Ningún archivo válido para subir")
		return ErrNoValidFiles
	}

	files := make([]api.UploadFile, 0, len(valid))
	closers := make([]*os.File, 0, len(valid))
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()
	for _, p := range valid {
		file, size, err := openUpload(p)
		if err != nil {
			o.alerts.Pushf(alerts.Error, "No se pudo leer el archivo: %v", err)
			return err
		}
		closers = append(closers, file)
		files = append(files, api.UploadFile{
			Name:   filepath.Base(p),
			Reader: file,
			Size:   size,
		})
	}

	resp, err := o.client.UploadCVs(ctx, key, files, progress)
	if err != nil {
		o.alerts.Pushf(alerts.Error, "Error al subir los CVs: %s", api.ErrorDetail(err))
		return err
	}

	o.alerts.Push(alerts.Success, resp.Message)
	if o.events.OnUploadComplete != nil {
		o.events.OnUploadComplete(resp.Message)
	}

	// The upload has resolved; processing is chained here so the user
	// perceives upload and processing as one step.
	procResp, err := o.client.ProcessCVs(ctx, key)
	if err != nil {
		o.alerts.Pushf(alerts.Error, "Error al procesar los CVs: %s", api.ErrorDetail(err))
		return err
	}

	o.alerts.Push(alerts.Success, procResp.Message)
	if o.events.OnCVsProcessed != nil {
		o.events.OnCVsProcessed(procResp.Message)
	}
	return nil
}

func openUpload(path string) (*os.File, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return file, info.Size(), nil
}
