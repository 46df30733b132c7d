package trading

import "strings"

// Normalize returns the comparison key of a free-text title: surrounding
// whitespace is dropped, every inner run of whitespace becomes one space and
// the result is lower-cased.
//
// The key is the only notion of title equality in the system. Storage
// uniqueness, removal and cross-owner matching all compare keys, never display
// titles. Normalize is total; a blank title yields the empty key.
func Normalize(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), " "))
}
