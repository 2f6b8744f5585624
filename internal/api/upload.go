// Package api provides multipart upload methods with transfer progress.
package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

// ProgressFunc receives a 0-100 percentage derived from transferred bytes.
type ProgressFunc func(pct int)

// UploadFile is one file in a multipart upload.
type UploadFile struct {
	Name   string
	Reader io.Reader
	Size   int64
}

// UploadAnexo uploads the Anexo spreadsheet for the tenancy key. The
// response carries the metadata the backend extracted from it.
func (c *Client) UploadAnexo(
	ctx context.Context,
	key TenancyKey,
	file UploadFile,
	progress ProgressFunc,
) (*UploadAnexoResponse, error) {
	var resp UploadAnexoResponse
	err := c.uploadMultipart(ctx, "/upload-anexo", key, "file", []UploadFile{file}, progress, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadCVs uploads a batch of CV PDFs for the tenancy key. Processing is
// a separate step; see ProcessCVs.
func (c *Client) UploadCVs(
	ctx context.Context,
	key TenancyKey,
	files []UploadFile,
	progress ProgressFunc,
) (*MessageResponse, error) {
	var resp MessageResponse
	err := c.uploadMultipart(ctx, "/upload-cvs", key, "files", files, progress, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessCVs triggers server-side text extraction of the uploaded CVs.
func (c *Client) ProcessCVs(ctx context.Context, key TenancyKey) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.call(ctx, http.MethodPost, "/process-cvs", key.query(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// uploadMultipart streams files as a multipart body through an io.Pipe so
// large uploads never buffer fully in memory. Progress is derived from the
// bytes drained out of the source readers.
func (c *Client) uploadMultipart(
	ctx context.Context,
	path string,
	key TenancyKey,
	field string,
	files []UploadFile,
	progress ProgressFunc,
	target interface{},
) error {
	var total int64
	for _, f := range files {
		total += f.Size
	}

	var sent int64
	report := func(n int) {
		if progress == nil || total <= 0 {
			return
		}
		sent += int64(n)
		pct := int(sent * 100 / total)
		if pct > 100 {
			pct = 100
		}
		progress(pct)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		for _, f := range files {
			part, err := mw.CreateFormFile(field, f.Name)
			if err != nil {
				pw.CloseWithError(err)
				return
			}
			if _, err := io.Copy(part, &progressReader{r: f.Reader, report: report}); err != nil {
				pw.CloseWithError(fmt.Errorf("failed to read %s: %w", f.Name, err))
				return
			}
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.requestURL(path, key.query()), pr)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}

	return c.parseResponse(resp, target)
}

// progressReader counts bytes as they are drained from the wrapped reader.
type progressReader struct {
	r      io.Reader
	report func(n int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.report != nil {
		p.report(n)
	}
	return n, err
}
