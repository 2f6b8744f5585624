// Package api provides client (cliente) management methods.
package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListClientes retrieves all registered clients.
func (c *Client) ListClientes(ctx context.Context) ([]Cliente, error) {
	var resp struct {
		Clientes []Cliente `json:"clientes"`
	}
	if err := c.call(ctx, http.MethodGet, "/clientes", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clientes, nil
}

// CreateCliente registers a new client under the given NIF.
func (c *Client) CreateCliente(ctx context.Context, nif, nombre string) error {
	q := url.Values{}
	q.Set("nif", nif)
	q.Set("nombre", nombre)
	return c.call(ctx, http.MethodPost, "/clientes", q, nil, nil)
}

// DeleteCliente removes a client and all of its server-side state,
// projects included. The backend offers no undo.
func (c *Client) DeleteCliente(ctx context.Context, nif string) error {
	path := fmt.Sprintf("/clientes/%s", url.PathEscape(nif))
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListProyectos retrieves the projects of one client.
func (c *Client) ListProyectos(ctx context.Context, nif string) ([]Proyecto, error) {
	path := fmt.Sprintf("/clientes/%s/proyectos", url.PathEscape(nif))
	var resp struct {
		Proyectos []Proyecto `json:"proyectos"`
	}
	if err := c.call(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Proyectos, nil
}

// CreateProyecto creates a project under a client. Acronym uniqueness is
// enforced case-insensitively by the backend; callers usually pre-check
// against ListProyectos for a friendlier error.
func (c *Client) CreateProyecto(ctx context.Context, nif, acronimo string) error {
	path := fmt.Sprintf("/clientes/%s/proyectos", url.PathEscape(nif))
	q := url.Values{}
	q.Set("acronimo", acronimo)
	return c.call(ctx, http.MethodPost, path, q, nil, nil)
}
