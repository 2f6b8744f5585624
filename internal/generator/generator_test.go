package generator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
)

func newGenServer(t *testing.T, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/generate-fichas":
			_, _ = w.Write([]byte(`{"message":"fichas generadas","files":["Ficha_2_1.docx","Ficha_2_2.docx"]}`))
		case "/generate-ficha-2-1":
			_, _ = w.Write([]byte(`{"success":true,"file":"Ficha_2_1.docx"}`))
		case "/generate-ficha-2-2":
			_, _ = w.Write([]byte(`{"success":true,"file":"Ficha_2_2.docx"}`))
		case "/validate":
			_, _ = w.Write([]byte(`{"exitosa":true,"resumen":{"mensaje_general":"sin errores","personal":{"errores":0,"avisos":0},"colaboraciones":{"errores":0,"avisos":0}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func newController(t *testing.T, url string) (*Controller, *alerts.Store) {
	t.Helper()
	store := alerts.NewStore()
	t.Cleanup(store.Close)
	return New(api.NewClient(url), store), store
}

func TestGenerateAllBlocksInvalidTaxIDLocally(t *testing.T) {
	var requests atomic.Int64
	srv := newGenServer(t, &requests)
	defer srv.Close()

	c, store := newController(t, srv.URL)
	key := api.TenancyKey{ClienteNIF: "B12345678"}

	_, err := c.GenerateAll(context.Background(), key, api.GenerateOverrides{NIFCliente: "not-a-nif"})
	require.ErrorIs(t, err, ErrInvalidTaxID)
	require.Zero(t, requests.Load(), "invalid tax id must not reach the network")
	require.Len(t, store.Alerts(), 1)
	require.Equal(t, alerts.Error, store.Alerts()[0].Severity)
}

func TestGenerateAllValidTaxID(t *testing.T) {
	var requests atomic.Int64
	srv := newGenServer(t, &requests)
	defer srv.Close()

	c, _ := newController(t, srv.URL)
	key := api.TenancyKey{ClienteNIF: "B12345678"}

	files, err := c.GenerateAll(context.Background(), key, api.GenerateOverrides{
		NIFCliente:         "B12345678",
		EntidadSolicitante: "ACME SL",
		AnioFiscal:         "2024",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Ficha_2_1.docx", "Ficha_2_2.docx"}, files)
	require.Equal(t, int64(1), requests.Load())
}

func TestGenerate21GatedByAvailability(t *testing.T) {
	var requests atomic.Int64
	srv := newGenServer(t, &requests)
	defer srv.Close()

	c, store := newController(t, srv.URL)
	key := api.TenancyKey{ClienteNIF: "B12345678"}

	_, err := c.Generate21(context.Background(), key, api.GenerateOverrides{}, api.Availability{})
	require.ErrorIs(t, err, ErrPersonalMissing)
	require.Zero(t, requests.Load())
	require.Equal(t, alerts.Warning, store.Alerts()[0].Severity)

	file, err := c.Generate21(context.Background(), key, api.GenerateOverrides{},
		api.Availability{PuedeGenerar21: true})
	require.NoError(t, err)
	require.Equal(t, "Ficha_2_1.docx", file)
	require.Equal(t, int64(1), requests.Load())
}

func TestGenerate22GatedByAvailability(t *testing.T) {
	var requests atomic.Int64
	srv := newGenServer(t, &requests)
	defer srv.Close()

	c, _ := newController(t, srv.URL)
	key := api.TenancyKey{ClienteNIF: "B12345678"}

	_, err := c.Generate22(context.Background(), key, api.GenerateOverrides{}, api.Availability{})
	require.ErrorIs(t, err, ErrColaboracionesMissing)
	require.Zero(t, requests.Load())

	file, err := c.Generate22(context.Background(), key, api.GenerateOverrides{},
		api.Availability{PuedeGenerar22: true})
	require.NoError(t, err)
	require.Equal(t, "Ficha_2_2.docx", file)
	require.Equal(t, int64(1), requests.Load())
}

func TestGenerateOneServerAviso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"aviso":"faltan datos de personal"}`))
	}))
	defer srv.Close()

	c, store := newController(t, srv.URL)
	_, err := c.Generate21(context.Background(), api.TenancyKey{ClienteNIF: "B1"},
		api.GenerateOverrides{}, api.Availability{PuedeGenerar21: true})
	require.Error(t, err)
	require.Contains(t, store.Alerts()[0].Message, "faltan datos de personal")
}

func TestValidateSurfacesOutcome(t *testing.T) {
	var requests atomic.Int64
	srv := newGenServer(t, &requests)
	defer srv.Close()

	c, store := newController(t, srv.URL)
	res, err := c.Validate(context.Background(), api.TenancyKey{ClienteNIF: "B1"})
	require.NoError(t, err)
	require.True(t, res.Exitosa)
	require.Equal(t, alerts.Success, store.Alerts()[0].Severity)
}

func TestDownloadAllWritesSanitizedName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/download-fichas", r.URL.Path)
		_, _ = w.Write([]byte("zip-bytes"))
	}))
	defer srv.Close()

	c, _ := newController(t, srv.URL)
	dir := t.TempDir()
	key := api.TenancyKey{ClienteNIF: "B12345678", Proyecto: "acr-1"}

	path, err := c.DownloadAll(context.Background(), key, dir, nil)
	require.NoError(t, err)
	require.Contains(t, path, "Fichas_B12345678_ACR1.zip")
}
