package sqlstore

import (
	"fmt"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/storage"
)

const (
	wishlistTable  = "wishlist"
	tradelistTable = "tradelist"
)

// tableFor maps a list kind onto its relation. Table names never come from
// user input.
func tableFor(kind domain.ListKind) (string, error) {
	switch kind {
	case domain.Wishlist:
		return wishlistTable, nil
	case domain.Tradelist:
		return tradelistTable, nil
	default:
		return "", fmt.Errorf("%w: %s", storage.ErrUnknownListKind, kind)
	}
}

type listRow struct {
	OwnerID   string `db:"owner_id"`
	Title     string `db:"title"`
	NormTitle string `db:"norm_title"`
}

func (r listRow) toDomain(kind domain.ListKind) domain.Entry {
	return domain.Entry{
		OwnerID: domain.OwnerID(r.OwnerID),
		Kind:    kind,
		Title:   r.Title,
		Key:     r.NormTitle,
	}
}

func listRowFromDomain(e domain.Entry) listRow {
	return listRow{
		OwnerID:   string(e.OwnerID),
		Title:     e.Title,
		NormTitle: e.Key,
	}
}

type duplicateRow struct {
	Title       string `db:"title"`
	NormTitle   string `db:"norm_title"`
	Occurrences int64  `db:"occurrences"`
}

type conflictRow struct {
	WishTitle  string `db:"wish_title"`
	TradeTitle string `db:"trade_title"`
	NormTitle  string `db:"norm_title"`
}
