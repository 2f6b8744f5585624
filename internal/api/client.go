// Package api provides the HTTP client for the fichas backend service.
// Every backend interaction in the application goes through this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client represents the API client for the fichas backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. The base URL must not end in a slash.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs an HTTP request with a JSON body.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body interface{},
) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// requestURL joins path and query onto the base URL.
func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// parseResponse decodes an HTTP response into target, converting non-2xx
// responses into *APIError when the backend sent a structured detail.
func (c *Client) parseResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiError APIError
		if json.Unmarshal(body, &apiError) == nil && apiError.Detail != "" {
			return &apiError
		}
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.Unmarshal(body, target); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// call is the common GET/POST/DELETE round trip.
func (c *Client) call(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, target interface{},
) error {
	resp, err := c.doRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	return c.parseResponse(resp, target)
}

// APIError represents a structured backend error response.
type APIError struct {
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Detail)
}

// ErrorDetail extracts the user-facing message from an error: the backend
// detail string when present, otherwise the plain error text.
func ErrorDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return err.Error()
}

// Health checks backend reachability.
func (c *Client) Health(ctx context.Context) error {
	var healthResp struct {
		Message string `json:"message"`
	}
	return c.call(ctx, http.MethodGet, "/", nil, nil, &healthResp)
}
