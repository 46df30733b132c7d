package domain

import "strings"

// OwnerID identifies the member who owns a list entry. It is supplied by the
// host platform (e.g. a Discord user snowflake) and treated as opaque.
type OwnerID string

// String returns the raw identifier.
func (o OwnerID) String() string { return string(o) }

// CompareOwnerIDs orders owner identifiers naturally: two purely numeric ids
// compare by numeric value, anything else compares lexicographically.
func CompareOwnerIDs(a, b OwnerID) int {
	if isDigits(string(a)) && isDigits(string(b)) {
		x := strings.TrimLeft(string(a), "0")
		y := strings.TrimLeft(string(b), "0")
		if len(x) != len(y) {
			if len(x) < len(y) {
				return -1
			}

			return 1
		}

		return strings.Compare(x, y)
	}

	return strings.Compare(string(a), string(b))
}

func isDigits(s string) bool {
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
