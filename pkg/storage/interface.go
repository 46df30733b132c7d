// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (PostgreSQL, SQLite) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"mangatrade/pkg/domain"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	ListStorage
}

// ListStorage persists per-owner wishlist and tradelist entries. Every method
// receives already normalized keys; normalization is the caller's concern.
type ListStorage interface {
	// AddEntry inserts the entry unless the owner already holds its key in the
	// same list. The check is atomic and enforced by a uniqueness constraint.
	// It reports whether a row was inserted.
	AddEntry(ctx context.Context, entry domain.Entry) (bool, error)
	// DeleteEntry removes the owner's entry with the given key and returns the
	// number of deleted rows (0 or 1).
	DeleteEntry(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind, key string) (int64, error)
	// DeleteEntries removes every entry of the owner's list and returns the count.
	DeleteEntries(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) (int64, error)
	// Titles returns the owner's display titles ordered case-insensitively.
	Titles(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error)
	// SearchTitles returns the owner's display titles that contain needle
	// (case-sensitive) or whose key contains keyNeedle, ordered like Titles.
	SearchTitles(ctx context.Context,
		ownerID domain.OwnerID,
		kind domain.ListKind,
		needle string,
		keyNeedle string) ([]string, error)
	// OwnerKeys returns every normalized key the owner holds in the list.
	OwnerKeys(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error)
	// EntriesByKeys returns entries of the given list kind whose key is one of
	// keys, excluding the entries owned by exclude. Results are ordered
	// case-insensitively by title, then by title and owner.
	EntriesByKeys(ctx context.Context,
		kind domain.ListKind,
		keys []string,
		exclude domain.OwnerID) ([]domain.Entry, error)
	// DuplicateKeys returns key groups of size > 1 in the owner's list.
	DuplicateKeys(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]domain.DuplicateGroup, error)
	// Conflicts returns keys present in both of the owner's lists.
	Conflicts(ctx context.Context, ownerID domain.OwnerID) ([]domain.Conflict, error)
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
