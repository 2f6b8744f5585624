package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUploadAnexoMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload-anexo", r.URL.Path)
		require.Equal(t, "B12345678", r.URL.Query().Get("cliente_nif"))
		require.Equal(t, "ACR1", r.URL.Query().Get("proyecto"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "anexo.xlsx", header.Filename)

		_, _ = w.Write([]byte(`{
			"message": "ok",
			"metadata": {"anio_fiscal": "2024", "nif_cliente": "B12345678", "entidad_solicitante": "ACME SL"}
		}`))
	}))
	defer srv.Close()

	content := strings.Repeat("x", 1000)
	var lastPct int
	c := NewClient(srv.URL)
	key := TenancyKey{ClienteNIF: "B12345678", Proyecto: "ACR1"}
	resp, err := c.UploadAnexo(context.Background(), key, UploadFile{
		Name:   "anexo.xlsx",
		Reader: strings.NewReader(content),
		Size:   int64(len(content)),
	}, func(pct int) { lastPct = pct })

	require.NoError(t, err)
	require.NotNil(t, resp.Metadata)
	require.Equal(t, "2024", resp.Metadata.AnioFiscal)
	require.Equal(t, 100, lastPct)
}

func TestUploadCVsMultipleParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload-cvs", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Len(t, r.MultipartForm.File["files"], 2)
		_, _ = w.Write([]byte(`{"message": "2 archivos subidos"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	key := TenancyKey{ClienteNIF: "B12345678"}
	resp, err := c.UploadCVs(context.Background(), key, []UploadFile{
		{Name: "cv1.pdf", Reader: strings.NewReader("uno"), Size: 3},
		{Name: "cv2.pdf", Reader: strings.NewReader("dos"), Size: 3},
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "2 archivos subidos", resp.Message)
}

func TestUploadProgressIsMonotonic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	var pcts []int
	c := NewClient(srv.URL)
	content := strings.Repeat("y", 64*1024)
	_, err := c.UploadCVs(context.Background(), TenancyKey{ClienteNIF: "B1"}, []UploadFile{
		{Name: "cv.pdf", Reader: strings.NewReader(content), Size: int64(len(content))},
	}, func(pct int) { pcts = append(pcts, pct) })

	require.NoError(t, err)
	require.NotEmpty(t, pcts)
	for i := 1; i < len(pcts); i++ {
		require.GreaterOrEqual(t, pcts[i], pcts[i-1])
	}
	require.Equal(t, 100, pcts[len(pcts)-1])
}
