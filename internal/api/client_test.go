package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aherranz/fichas-cli/internal/records"
)

func TestListClientes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clientes", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"clientes":[{"nif":"B12345678","nombre":"ACME","folder":"acme"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	clientes, err := c.ListClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	require.Equal(t, "B12345678", clientes[0].NIF)
	require.Equal(t, "ACME", clientes[0].Nombre)
}

func TestAPIErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"anexo no encontrado"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListClientes(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "anexo no encontrado", apiErr.Detail)
	require.Equal(t, "anexo no encontrado", ErrorDetail(err))
}

func TestUnstructuredErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ListClientes(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
	require.Contains(t, err.Error(), "boom")
}

func TestTenancyKeyQuery(t *testing.T) {
	var gotNIF, gotProyecto string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotNIF = r.URL.Query().Get("cliente_nif")
		gotProyecto = r.URL.Query().Get("proyecto")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	key := TenancyKey{ClienteNIF: "B12345678", Proyecto: "ACR1"}
	_, err := c.GetRecords(context.Background(), records.Personal, key)
	require.NoError(t, err)
	require.Equal(t, "B12345678", gotNIF)
	require.Equal(t, "ACR1", gotProyecto)
}

func TestUpdateRecordsSendsReplacementBody(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/update-facturas", r.URL.Path)
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	key := TenancyKey{ClienteNIF: "B12345678"}
	data := records.Collection{{"Entidad": "ACME", "Nombre factura": "F-01", "Importe (€)": "100"}}
	err := c.UpdateRecords(context.Background(), records.Facturas, key, data)
	require.NoError(t, err)
	require.Contains(t, gotBody, `"data"`)
	require.Contains(t, gotBody, `"ACME"`)
}

func TestUpdateRecordsEmptyCollectionRoundTrip(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			buf, _ := io.ReadAll(r.Body)
			gotBody = string(buf)
			_, _ = w.Write([]byte(`[]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	key := TenancyKey{ClienteNIF: "B12345678"}

	err := c.UpdateRecords(context.Background(), records.Personal, key, records.Collection{})
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[]}`, gotBody)

	got, err := c.GetRecords(context.Background(), records.Personal, key)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestCheckAvailableFichas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/check-available-fichas", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"puede_generar_2_1": true,
			"puede_generar_2_2": false,
			"datos": {"personal": 3, "colaboraciones": 0, "facturas": 0}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	av, err := c.CheckAvailableFichas(context.Background(), TenancyKey{ClienteNIF: "B12345678"})
	require.NoError(t, err)
	require.True(t, av.PuedeGenerar21)
	require.False(t, av.PuedeGenerar22)
	require.Equal(t, 3, av.Datos.Personal)
}

func TestBaseURLTrailingSlashStripped(t *testing.T) {
	c := NewClient("http://localhost:8000/")
	require.Equal(t, "http://localhost:8000", c.BaseURL())
}
