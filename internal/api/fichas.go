// Package api provides availability, validation, generation and download
// methods for fichas.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// CheckAvailableFichas asks the backend whether each ficha type has enough
// underlying data to be generated.
func (c *Client) CheckAvailableFichas(ctx context.Context, key TenancyKey) (*Availability, error) {
	var av Availability
	if err := c.call(ctx, http.MethodGet, "/check-available-fichas", key.query(), nil, &av); err != nil {
		return nil, err
	}
	return &av, nil
}

// Validate runs server-side validation of the current record collections.
func (c *Client) Validate(ctx context.Context, key TenancyKey) (*ValidationResult, error) {
	var res ValidationResult
	if err := c.call(ctx, http.MethodPost, "/validate", key.query(), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GenerateFichas generates the whole batch of fichas.
func (c *Client) GenerateFichas(
	ctx context.Context,
	key TenancyKey,
	overrides GenerateOverrides,
) (*GenerateResponse, error) {
	var res GenerateResponse
	if err := c.call(ctx, http.MethodPost, "/generate-fichas", key.query(), overrides, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GenerateFicha21 generates only the personnel-based ficha 2.1.
func (c *Client) GenerateFicha21(
	ctx context.Context,
	key TenancyKey,
	overrides GenerateOverrides,
) (*GenerateOneResponse, error) {
	return c.generateOne(ctx, "/generate-ficha-2-1", key, overrides)
}

// GenerateFicha22 generates only the collaborations/invoices ficha 2.2.
func (c *Client) GenerateFicha22(
	ctx context.Context,
	key TenancyKey,
	overrides GenerateOverrides,
) (*GenerateOneResponse, error) {
	return c.generateOne(ctx, "/generate-ficha-2-2", key, overrides)
}

func (c *Client) generateOne(
	ctx context.Context,
	path string,
	key TenancyKey,
	overrides GenerateOverrides,
) (*GenerateOneResponse, error) {
	var res GenerateOneResponse
	if err := c.call(ctx, http.MethodPost, path, key.query(), overrides, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DownloadFichas streams the zip of every generated ficha into w and
// returns the number of bytes written.
func (c *Client) DownloadFichas(
	ctx context.Context,
	key TenancyKey,
	w io.Writer,
	progress ProgressFunc,
) (int64, error) {
	return c.downloadTo(ctx, "/download-fichas", key.query(), w, progress)
}

// DownloadFicha streams one generated ficha into w.
func (c *Client) DownloadFicha(
	ctx context.Context,
	key TenancyKey,
	name string,
	w io.Writer,
	progress ProgressFunc,
) (int64, error) {
	q := key.query()
	q.Set("name", name)
	return c.downloadTo(ctx, "/download-ficha", q, w, progress)
}

// PreviewFicha fetches one generated ficha fully into memory, for
// rendering by an external viewer.
func (c *Client) PreviewFicha(ctx context.Context, key TenancyKey, name string) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.DownloadFicha(ctx, key, name, &buf, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// downloadTo performs a binary GET, reporting progress from Content-Length
// when the server provides it.
func (c *Client) downloadTo(
	ctx context.Context,
	path string,
	query url.Values,
	w io.Writer,
	progress ProgressFunc,
) (int64, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		var apiError APIError
		if json.Unmarshal(body, &apiError) == nil && apiError.Detail != "" {
			return 0, &apiError
		}
		return 0, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	total := resp.ContentLength
	var written int64
	src := &progressReader{r: resp.Body, report: func(n int) {
		written += int64(n)
		if progress == nil || total <= 0 {
			return
		}
		pct := int(written * 100 / total)
		if pct > 100 {
			pct = 100
		}
		progress(pct)
	}}

	n, err := io.Copy(w, src)
	if err != nil {
		return n, fmt.Errorf("failed to stream download: %w", err)
	}
	if progress != nil && total > 0 {
		progress(100)
	}
	return n, nil
}
