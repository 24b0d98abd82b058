package match

import (
	"strings"
)

// DefaultMaxDistance is the edit budget NearMiss callers use unless they have
// a reason to be stricter.
const DefaultMaxDistance = 2

// Normalize case-folds s and strips '_', '-' and spaces, so "bind_view",
// "bindView" and "BindView" all normalize to "bindview".
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// NearMiss reports whether key is a likely misspelling of name: not equal to
// it, but within maxDistance edits once both are normalized. Keys much
// shorter than the budget never match.
func NearMiss(key, name string, maxDistance int) bool {
	if key == name || key == "" {
		return false
	}

	nk, nn := Normalize(key), Normalize(name)
	if nk == nn {
		return true
	}

	if len(nk) <= maxDistance {
		return false
	}

	return Distance(nk, nn) <= maxDistance
}
