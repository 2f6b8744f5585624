// Package api provides record-collection and metadata methods.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aherranz/fichas-cli/internal/records"
)

var recordPaths = map[records.Type]struct {
	get    string
	update string
}{
	records.Personal:       {"/personal", "/update-personal"},
	records.Colaboraciones: {"/colaboraciones", "/update-colaboraciones"},
	records.Facturas:       {"/facturas", "/update-facturas"},
}

// GetRecords fetches one record collection for the tenancy key.
func (c *Client) GetRecords(
	ctx context.Context,
	typ records.Type,
	key TenancyKey,
) (records.Collection, error) {
	paths, ok := recordPaths[typ]
	if !ok {
		return nil, fmt.Errorf("unknown record type: %s", typ)
	}

	var data records.Collection
	if err := c.call(ctx, http.MethodGet, paths.get, key.query(), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// UpdateRecords replaces one record collection for the tenancy key. The
// backend contract is whole-collection replacement, never a delta: whatever
// is sent here becomes the collection. Concurrent editors on the same key
// are last-write-wins.
func (c *Client) UpdateRecords(
	ctx context.Context,
	typ records.Type,
	key TenancyKey,
	data records.Collection,
) error {
	paths, ok := recordPaths[typ]
	if !ok {
		return fmt.Errorf("unknown record type: %s", typ)
	}

	if data == nil {
		data = records.Collection{}
	}
	body := struct {
		Data records.Collection `json:"data"`
	}{Data: data}

	return c.call(ctx, http.MethodPost, paths.update, key.query(), body, nil)
}

// GetMetadata fetches the cached Anexo metadata for a client.
func (c *Client) GetMetadata(ctx context.Context, clienteNIF string) (*AnexoMetadata, error) {
	q := url.Values{}
	q.Set("cliente_nif", clienteNIF)

	var md AnexoMetadata
	if err := c.call(ctx, http.MethodGet, "/metadata", q, nil, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// SaveMetadata overwrites the cached Anexo metadata for a client.
func (c *Client) SaveMetadata(ctx context.Context, clienteNIF string, md AnexoMetadata) error {
	q := url.Values{}
	q.Set("cliente_nif", clienteNIF)
	return c.call(ctx, http.MethodPost, "/metadata", q, md, nil)
}
