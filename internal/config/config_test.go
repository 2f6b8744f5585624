package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FICHAS_HOME", t.TempDir())
	t.Setenv("FICHAS_API_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Errorf("default APIURL = %q", cfg.APIURL)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FICHAS_HOME", home)
	t.Setenv("FICHAS_API_URL", "")

	content := "api_url: https://fichas.example.com/\ndefault_cliente: B12345678\n"
	if err := os.WriteFile(filepath.Join(home, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "https://fichas.example.com" {
		t.Errorf("APIURL = %q, want trailing slash stripped", cfg.APIURL)
	}
	if cfg.DefaultCliente != "B12345678" {
		t.Errorf("DefaultCliente = %q", cfg.DefaultCliente)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FICHAS_HOME", home)
	t.Setenv("FICHAS_API_URL", "http://other:9000")

	content := "api_url: http://file:8000\n"
	if err := os.WriteFile(filepath.Join(home, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.APIURL != "http://other:9000" {
		t.Errorf("APIURL = %q, want env override", cfg.APIURL)
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	cfg := &Config{APIURL: "localhost:8000"}
	if err := cfg.Validate(); err == nil {
		t.Error("scheme-less URL accepted")
	}

	cfg = &Config{APIURL: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("empty URL accepted")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("FICHAS_HOME", t.TempDir())
	t.Setenv("FICHAS_API_URL", "")

	cfg := DefaultConfig()
	cfg.DefaultCliente = "B87654321"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.DefaultCliente != "B87654321" {
		t.Errorf("DefaultCliente = %q after round trip", loaded.DefaultCliente)
	}
}
