package validators

import "strings"

const (
	personalKeyLength = 6

	ascendingDigits  = "0123456789"
	descendingDigits = "9876543210"
)

// IsWeakPIN reports whether a 6-digit PIN is trivially guessable: one digit
// repeated ("111111") or a run of consecutive digits ("123456", "987654").
// Runs do not wrap around ("890123" is not weak).
//
// Input of any other length yields false. Format checking is the caller's
// job; this function never fails.
func IsWeakPIN(pin string) bool {
	if len(pin) != personalKeyLength {
		return false
	}
	return isRepeated(pin) || isSequence(pin)
}

func isRepeated(pin string) bool {
	for i := 1; i < len(pin); i++ {
		if pin[i] != pin[0] {
			return false
		}
	}
	return true
}

func isSequence(pin string) bool {
	return strings.Contains(ascendingDigits, pin) || strings.Contains(descendingDigits, pin)
}
