package validators

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-bank-validator/models"
)

const (
	bankCodeLength      = 3
	branchDigitsLength  = 3
	accountNumberLength = 10
)

// isDigits reports whether s is exactly n ASCII decimal digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isBranchCode reports whether s is a region letter from regions followed
// by exactly three ASCII digits.
func isBranchCode(s string, regions models.RegionSet) bool {
	region, size := utf8.DecodeRuneInString(s)
	if region == utf8.RuneError {
		return false
	}
	return regions.Contains(region) && isDigits(s[size:], branchDigitsLength)
}
