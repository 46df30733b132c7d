package trading

import (
	"context"
	"mangatrade/pkg/domain"
)

// Service is the list and matching engine used by every outer surface.
//
//go:generate mockgen -package mocktrading -source=interface.go -destination=mock/mocktrading.go *
type Service interface {
	// Add stores title in the owner's list unless its key is already there.
	Add(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind, title string) error
	// Remove deletes the entry whose key equals the key of title and returns
	// the number of removed entries.
	Remove(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind, title string) (int64, error)
	// Clear empties the owner's list and returns the number of removed entries.
	Clear(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) (int64, error)
	// List returns all display titles of the owner's list.
	List(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error)
	// Search returns the owner's titles containing needle, either verbatim or
	// after normalization of both sides.
	Search(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind, needle string) ([]string, error)
	// FindMatches finds other owners trading what the owner wishes for and
	// wishing for what the owner trades.
	FindMatches(ctx context.Context, ownerID domain.OwnerID) (domain.Matches, error)
	// FindDuplicates reports repeated keys inside each list and keys the owner
	// holds in both lists.
	FindDuplicates(ctx context.Context, ownerID domain.OwnerID) (domain.Duplicates, error)
}
