package uploader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
)

type requestLog struct {
	mu    sync.Mutex
	paths []string
}

func (l *requestLog) add(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...)
}

func newStubServer(t *testing.T, log *requestLog) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r.URL.Path)
		switch r.URL.Path {
		case "/upload-anexo":
			_, _ = w.Write([]byte(`{"message":"anexo subido","metadata":{"anio_fiscal":"2024","nif_cliente":"B12345678","entidad_solicitante":"ACME SL"}}`))
		case "/upload-cvs":
			_, _ = w.Write([]byte(`{"message":"cvs subidos"}`))
		case "/process-cvs":
			_, _ = w.Write([]byte(`{"message":"cvs procesados"}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUploadAnexoRejectsNonXLSXWithoutNetwork(t *testing.T) {
	log := &requestLog{}
	srv := newStubServer(t, log)
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	o := New(api.NewClient(srv.URL), store, Events{}, nil)
	path := writeTempFile(t, "anexo.csv", "a;b;c")

	err := o.UploadAnexo(context.Background(), api.TenancyKey{ClienteNIF: "B1"}, path, nil)
	require.ErrorIs(t, err, ErrInvalidExtension)
	require.Empty(t, log.all(), "a rejected file must not issue any request")

	got := store.Alerts()
	require.Len(t, got, 1, "exactly one alert for a rejected extension")
	require.Equal(t, alerts.Error, got[0].Severity)
}

func TestUploadAnexoRaisesMetadata(t *testing.T) {
	log := &requestLog{}
	srv := newStubServer(t, log)
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	var md api.AnexoMetadata
	var completed bool
	o := New(api.NewClient(srv.URL), store, Events{
		OnAnexoMetadata:  func(m api.AnexoMetadata) { md = m },
		OnUploadComplete: func(string) { completed = true },
	}, nil)

	path := writeTempFile(t, "anexo.xlsx", "contenido")
	err := o.UploadAnexo(context.Background(), api.TenancyKey{ClienteNIF: "B12345678"}, path, nil)
	require.NoError(t, err)
	require.True(t, completed)
	require.Equal(t, "2024", md.AnioFiscal)
	require.Equal(t, "ACME SL", md.EntidadSolicitante)
	require.Equal(t, []string{"/upload-anexo"}, log.all())
}

func TestUploadCVsChainsProcessingAfterUpload(t *testing.T) {
	log := &requestLog{}
	srv := newStubServer(t, log)
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	var processed bool
	o := New(api.NewClient(srv.URL), store, Events{
		OnCVsProcessed: func(string) { processed = true },
	}, nil)

	cv1 := writeTempFile(t, "cv1.pdf", "pdf uno")
	cv2 := writeTempFile(t, "cv2.pdf", "pdf dos")

	err := o.UploadCVs(context.Background(), api.TenancyKey{ClienteNIF: "B1"}, []string{cv1, cv2}, nil)
	require.NoError(t, err)
	require.True(t, processed)

	// Processing is triggered exactly once, strictly after the upload.
	require.Equal(t, []string{"/upload-cvs", "/process-cvs"}, log.all())
}

func TestUploadCVsDropsNonPDFsWithWarning(t *testing.T) {
	log := &requestLog{}
	srv := newStubServer(t, log)
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	o := New(api.NewClient(srv.URL), store, Events{}, nil)
	cv := writeTempFile(t, "cv.pdf", "pdf")
	doc := writeTempFile(t, "notas.docx", "docx")

	err := o.UploadCVs(context.Background(), api.TenancyKey{ClienteNIF: "B1"}, []string{cv, doc}, nil)
	require.NoError(t, err)

	var warnings int
	for _, a := range store.Alerts() {
		if a.Severity == alerts.Warning {
			warnings++
			require.Contains(t, a.Message, "notas.docx")
		}
	}
	require.Equal(t, 1, warnings)
	require.Equal(t, []string{"/upload-cvs", "/process-cvs"}, log.all())
}

func TestUploadCVsAllDroppedAbortsLocally(t *testing.T) {
	log := &requestLog{}
	srv := newStubServer(t, log)
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	o := New(api.NewClient(srv.URL), store, Events{}, nil)
	doc := writeTempFile(t, "notas.txt", "texto")

	err := o.UploadCVs(context.Background(), api.TenancyKey{ClienteNIF: "B1"}, []string{doc}, nil)
	require.ErrorIs(t, err, ErrNoValidFiles)
	require.Empty(t, log.all())
}

func TestUploadSurfacesBackendDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":"anexo corrupto"}`))
	}))
	defer srv.Close()

	store := alerts.NewStore()
	defer store.Close()

	o := New(api.NewClient(srv.URL), store, Events{}, nil)
	path := writeTempFile(t, "anexo.xlsx", "zzz")

	err := o.UploadAnexo(context.Background(), api.TenancyKey{ClienteNIF: "B1"}, path, nil)
	require.Error(t, err)

	got := store.Alerts()
	require.Len(t, got, 1)
	require.Contains(t, got[0].Message, "anexo corrupto")
}
