package generator

import (
	"regexp"
	"strings"
)

// Spanish tax identifier shapes accepted by the generation form.
var (
	dniPattern = regexp.MustCompile(`^\d{8}[A-Z]$`)
	niePattern = regexp.MustCompile(`^[XYZ]\d{7}[A-Z]$`)
	cifPattern = regexp.MustCompile(`^[A-HJ-NP-SUVW]\d{7}[0-9A-Z]$`)
)

// ValidTaxID reports whether s matches a DNI, NIE or CIF shape. Input is
// trimmed and uppercased before matching; checksum letters are not
// verified, that is the backend's job.
func ValidTaxID(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	return dniPattern.MatchString(s) || niePattern.MatchString(s) || cifPattern.MatchString(s)
}
