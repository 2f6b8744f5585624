package generator

import "testing"

func TestValidTaxID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		// DNI
		{"12345678Z", true},
		{"00000000A", true},
		{"1234567Z", false},
		{"123456789Z", false},
		{"12345678z", true}, // uppercased before matching
		// NIE
		{"X1234567L", true},
		{"Y7654321A", true},
		{"Z0000000B", true},
		{"W1234567L", false},
		{"X123456L", false},
		// CIF
		{"B12345678", true},
		{"A1234567J", true},
		{"W1234567B", true},
		{"I1234567B", false}, // I not in CIF letter set
		{"O1234567B", false},
		// junk
		{"", false},
		{"   ", false},
		{"B1234567", false},
		{"not-a-nif", false},
		{" B12345678 ", true}, // trimmed
	}

	for _, tt := range tests {
		if got := ValidTaxID(tt.id); got != tt.valid {
			t.Errorf("ValidTaxID(%q) = %v, want %v", tt.id, got, tt.valid)
		}
	}
}
