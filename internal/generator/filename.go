package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aherranz/fichas-cli/internal/api"
)

const maxSegmentLen = 30

// SanitizeSegment normalizes an identifier for use in a download filename:
// uppercased, non-alphanumerics stripped, truncated to 30 characters.
func SanitizeSegment(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxSegmentLen {
		out = out[:maxSegmentLen]
	}
	return out
}

// ZipFileName computes the local name for the whole-batch download.
// Filenames are derived client-side from the tenancy key, never taken
// verbatim from the server.
func ZipFileName(key api.TenancyKey) string {
	cliente := SanitizeSegment(key.ClienteNIF)
	if key.Proyecto == "" {
		return fmt.Sprintf("Fichas_%s.zip", cliente)
	}
	return fmt.Sprintf("Fichas_%s_%s.zip", cliente, SanitizeSegment(key.Proyecto))
}
