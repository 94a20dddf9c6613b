package kernel

import (
	"sort"
	"strings"

	"freightmatch/internal/pkg/errs"
)

// CountrySet is an unordered set of ISO 3166-1 alpha-2 country codes.
// It models a carrier's geographic coverage; the engine only needs
// set-membership semantics. The zero value is an empty set.
type CountrySet struct {
	codes map[string]struct{}
}

// NewCountrySet creates a CountrySet from the given codes. Codes are trimmed
// and upper-cased; duplicates collapse. A code that is not exactly two letters
// is rejected as malformed.
func NewCountrySet(codes ...string) (CountrySet, error) {
	set := CountrySet{codes: make(map[string]struct{}, len(codes))}

	for _, code := range codes {
		normalized := strings.ToUpper(strings.TrimSpace(code))
		if !isValidCountryCode(normalized) {
			return CountrySet{}, errs.NewValueIsInvalidError("countryCode: " + code)
		}
		set.codes[normalized] = struct{}{}
	}

	return set, nil
}

// Contains reports whether the set includes the given code.
// The comparison is case-insensitive; an unknown or empty code is never contained.
func (s CountrySet) Contains(code string) bool {
	_, ok := s.codes[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// IsEmpty reports whether the set covers no countries at all.
// An empty coverage set means the carrier covers nothing, not everything.
func (s CountrySet) IsEmpty() bool {
	return len(s.codes) == 0
}

// Len returns the number of codes in the set.
func (s CountrySet) Len() int {
	return len(s.codes)
}

// Values returns the codes in sorted order for persistence and display.
func (s CountrySet) Values() []string {
	values := make([]string, 0, len(s.codes))
	for code := range s.codes {
		values = append(values, code)
	}
	sort.Strings(values)
	return values
}

func isValidCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
