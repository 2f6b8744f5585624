// Package generator drives validation, ficha generation and artifact
// download. Generation preconditions (tax id shape, availability flags)
// are enforced locally so a request that cannot succeed is never sent.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
)

var (
	// ErrInvalidTaxID blocks generation before any network call.
	ErrInvalidTaxID = errors.New("invalid tax identifier")

	// ErrPersonalMissing means ficha 2.1 has no personnel data behind it.
	ErrPersonalMissing = errors.New("no personnel data for ficha 2.1")

	// ErrColaboracionesMissing means ficha 2.2 has neither collaborations
	// nor invoices behind it.
	ErrColaboracionesMissing = errors.New("no collaboration or invoice data for ficha 2.2")
)

// Controller coordinates generation and download for one tenancy key.
type Controller struct {
	client *api.Client
	alerts *alerts.Store
}

// New creates a generation controller.
func New(client *api.Client, alertStore *alerts.Store) *Controller {
	return &Controller{client: client, alerts: alertStore}
}

// Validate asks the backend to validate the current collections and
// surfaces the outcome as an alert. The structured result is returned for
// inline rendering.
func (c *Controller) Validate(ctx context.Context, key api.TenancyKey) (*api.ValidationResult, error) {
	res, err := c.client.Validate(ctx, key)
	if err != nil {
		c.alerts.Pushf(alerts.Error, "Error en la validación: %s", api.ErrorDetail(err))
		return nil, err
	}

	if res.Exitosa {
		c.alerts.Push(alerts.Success, "Validación superada")
	} else {
		c.alerts.Pushf(alerts.Warning, "Validación con errores: %s", res.Resumen.MensajeGeneral)
	}
	return res, nil
}

// GenerateAll generates the whole batch of fichas. A malformed override
// tax id blocks the call locally.
func (c *Controller) GenerateAll(
	ctx context.Context,
	key api.TenancyKey,
	overrides api.GenerateOverrides,
) ([]string, error) {
	if err := c.checkOverrides(overrides); err != nil {
		return nil, err
	}

	res, err := c.client.GenerateFichas(ctx, key, overrides)
	if err != nil {
		c.alerts.Pushf(alerts.Error, "Error al generar las fichas: %s", api.ErrorDetail(err))
		return nil, err
	}

	c.alerts.Pushf(alerts.Success, "%s (%d archivos)", res.Message, len(res.Files))
	return res.Files, nil
}

// Generate21 generates only the personnel ficha. Blocked locally, with an
// advisory naming the missing prerequisite, when the availability flag is
// false.
func (c *Controller) Generate21(
	ctx context.Context,
	key api.TenancyKey,
	overrides api.GenerateOverrides,
	av api.Availability,
) (string, error) {
	if !av.PuedeGenerar21 {
		c.alerts.Push(alerts.Warning,
			"No se puede generar la ficha 2.1: no hay datos de personal")
		return "", ErrPersonalMissing
	}
	return c.generateOne(ctx, key, overrides, c.client.GenerateFicha21, "2.1")
}

// Generate22 generates only the collaborations/invoices ficha, gated on
// its availability flag.
func (c *Controller) Generate22(
	ctx context.Context,
	key api.TenancyKey,
	overrides api.GenerateOverrides,
	av api.Availability,
) (string, error) {
	if !av.PuedeGenerar22 {
		c.alerts.Push(alerts.Warning,
			"No se puede generar la ficha 2.2: no hay datos de colaboraciones ni facturas")
		return "", ErrColaboracionesMissing
	}
	return c.generateOne(ctx, key, overrides, c.client.GenerateFicha22, "2.2")
}

func (c *Controller) generateOne(
	ctx context.Context,
	key api.TenancyKey,
	overrides api.GenerateOverrides,
	call func(context.Context, api.TenancyKey, api.GenerateOverrides) (*api.GenerateOneResponse, error),
	label string,
) (string, error) {
	if err := c.checkOverrides(overrides); err != nil {
		return "", err
	}

	res, err := call(ctx, key, overrides)
	if err != nil {
		c.alerts.Pushf(alerts.Error, "Error al generar la ficha %s: %s", label, api.ErrorDetail(err))
		return "", err
	}
	if !res.Success {
		aviso := res.Aviso
		if aviso == "" {
			aviso = "el servidor no generó la ficha"
		}
		c.alerts.Pushf(alerts.Warning, "Ficha %s: %s", label, aviso)
		return "", fmt.Errorf("ficha %s not generated: %s", label, aviso)
	}

	c.alerts.Pushf(alerts.Success, "Ficha %s generada: %s", label, res.File)
	return res.File, nil
}

// checkOverrides rejects a malformed tax id before any network call.
func (c *Controller) checkOverrides(overrides api.GenerateOverrides) error {
	if overrides.NIFCliente != "" && !ValidTaxID(overrides.NIFCliente) {
		c.alerts.Pushf(alerts.Error,
			"NIF no válido: %q (se espera DNI, NIE o CIF)", overrides.NIFCliente)
		return ErrInvalidTaxID
	}
	return nil
}

// DownloadAll streams the batch zip into dir under a sanitized name and
// returns the written path.
func (c *Controller) DownloadAll(
	ctx context.Context,
	key api.TenancyKey,
	dir string,
	progress api.ProgressFunc,
) (string, error) {
	return c.downloadTo(ctx, dir, ZipFileName(key), func(w *os.File) (int64, error) {
		return c.client.DownloadFichas(ctx, key, w, progress)
	})
}

// DownloadOne streams a single generated ficha into dir.
func (c *Controller) DownloadOne(
	ctx context.Context,
	key api.TenancyKey,
	name, dir string,
	progress api.ProgressFunc,
) (string, error) {
	return c.downloadTo(ctx, dir, filepath.Base(name), func(w *os.File) (int64, error) {
		return c.client.DownloadFicha(ctx, key, name, w, progress)
	})
}

// Preview fetches one ficha into memory for an external viewer.
func (c *Controller) Preview(ctx context.Context, key api.TenancyKey, name string) ([]byte, error) {
	data, err := c.client.PreviewFicha(ctx, key, name)
	if err != nil {
		c.alerts.Pushf(alerts.Error, "Error al previsualizar %s: %s", name, api.ErrorDetail(err))
		return nil, err
	}
	return data, nil
}

func (c *Controller) downloadTo(
	ctx context.Context,
	dir, name string,
	stream func(*os.File) (int64, error),
) (string, error) {
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		c.alerts.Pushf(alerts.Error, "No se pudo crear %s: %v", path, err)
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := stream(file); err != nil {
		file.Close()
		os.Remove(path)
		c.alerts.Pushf(alerts.Error, "Error en la descarga: %s", api.ErrorDetail(err))
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	c.alerts.Pushf(alerts.Success, "Descargado %s", path)
	return path, nil
}
