package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxQuantityDigits keeps every quantity below 1e9. A sum over all quantity
// fields can pass 2^31, so totals are only exact with a 64-bit int;
// AcceptedCount works in int64 either way.
const MaxQuantityDigits = 9

// SanitizeDigits drops every rune that is not an ASCII digit and truncates
// the result to MaxQuantityDigits.
func SanitizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			continue
		}
		if b.Len() == MaxQuantityDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsDigits reports whether s is non-empty and made of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseQuantity parses s as a non-negative quantity. Blank, non-numeric or
// out-of-range input counts as zero.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if !IsDigits(s) {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// AcceptedCount returns submitted minus the sum of quantities, clamped at zero.
func AcceptedCount(submitted int, quantities ...int) int {
	rest := int64(submitted)
	for _, q := range quantities {
		rest -= int64(q)
	}
	if rest < 0 {
		return 0
	}
	return int(rest)
}
