package domain

import (
	"fmt"
	"strings"
)

// ListKind selects one of the two personal lists a member maintains.
type ListKind uint8

const (
	// Wishlist holds titles the owner wants to get.
	Wishlist ListKind = iota + 1
	// Tradelist holds titles the owner offers to others.
	Tradelist
)

// ListKinds enumerates every valid list kind.
var ListKinds = []ListKind{Wishlist, Tradelist} //nolint: gochecknoglobals

// String returns the lower-case name of the list kind as used in commands and URLs.
func (k ListKind) String() string {
	switch k {
	case Wishlist:
		return "wishlist"
	case Tradelist:
		return "tradelist"
	default:
		return fmt.Sprintf("ListKind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the known list kinds.
func (k ListKind) Valid() bool {
	return k == Wishlist || k == Tradelist
}

// Complement returns the list kind that is matched against k across owners:
// wishes are satisfied by other members' trades and vice versa.
func (k ListKind) Complement() ListKind {
	if k == Wishlist {
		return Tradelist
	}

	return Wishlist
}

// ParseListKind converts a case-insensitive list name into a ListKind.
func ParseListKind(s string) (ListKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wishlist":
		return Wishlist, nil
	case "tradelist":
		return Tradelist, nil
	default:
		return 0, fmt.Errorf("unknown list kind %q", s)
	}
}

// Entry is one title held by one owner in one list.
type Entry struct {
	// OwnerID is the member holding the title.
	OwnerID OwnerID `json:"ownerId"`
	// Kind is the list the title belongs to.
	Kind ListKind `json:"kind"`
	// Title is the text exactly as the owner submitted it.
	Title string `json:"title"`
	// Key is the normalized form of Title used for every equality check.
	Key string `json:"key"`
}
