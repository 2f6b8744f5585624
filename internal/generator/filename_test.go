package generator

import (
	"strings"
	"testing"

	"github.com/aherranz/fichas-cli/internal/api"
)

func TestSanitizeSegment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"B12345678", "B12345678"},
		{"acr-1", "ACR1"},
		{"Fichas & Cía. 2024", "FICHASCA2024"},
		{"a b c", "ABC"},
		{"", ""},
		{strings.Repeat("A", 40), strings.Repeat("A", 30)},
	}

	for _, tt := range tests {
		if got := SanitizeSegment(tt.in); got != tt.want {
			t.Errorf("SanitizeSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestZipFileName(t *testing.T) {
	key := api.TenancyKey{ClienteNIF: "B12345678", Proyecto: "acr-1"}
	if got := ZipFileName(key); got != "Fichas_B12345678_ACR1.zip" {
		t.Errorf("ZipFileName = %q", got)
	}

	key.Proyecto = ""
	if got := ZipFileName(key); got != "Fichas_B12345678.zip" {
		t.Errorf("ZipFileName without project = %q", got)
	}
}
