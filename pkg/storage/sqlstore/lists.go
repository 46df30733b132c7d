package sqlstore

import (
	"context"
	"fmt"
	"mangatrade/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// byTitle orders rows case-insensitively by the given title column and breaks
// ties with the raw title.
func byTitle(col exp.IdentifierExpression) []exp.OrderedExpression {
	return []exp.OrderedExpression{
		goqu.Func("LOWER", col).Asc(),
		col.Asc(),
	}
}

// AddEntry inserts the entry unless its key is already present for the owner.
// Uniqueness is enforced by UNIQUE(owner_id, norm_title); the conflicting
// insert is ignored by the database instead of raising an error.
func (s *Store) AddEntry(ctx context.Context, entry domain.Entry) (bool, error) {
	table, err := tableFor(entry.Kind)
	if err != nil {
		return false, err
	}

	res, err := s.Builder.Insert(table).
		Rows(listRowFromDomain(entry)).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not insert %s entry: %w", entry.Kind, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get inserted rows: %w", err)
	}

	return n > 0, nil
}

// DeleteEntry removes the owner's entry with the given normalized key.
func (s *Store) DeleteEntry(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind,
	key string) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	res, err := s.Builder.Delete(table).
		Where(
			goqu.C("owner_id").Eq(string(ownerID)),
			goqu.C("norm_title").Eq(key),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete %s entry: %w", kind, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get deleted rows: %w", err)
	}

	return n, nil
}

// DeleteEntries removes all of the owner's entries in the list.
func (s *Store) DeleteEntries(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}

	res, err := s.Builder.Delete(table).
		Where(goqu.C("owner_id").Eq(string(ownerID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear %s: %w", kind, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get deleted rows: %w", err)
	}

	return n, nil
}

// Titles returns the owner's display titles ordered case-insensitively.
func (s *Store) Titles(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var titles []string
	if err := s.Builder.From(table).
		Select(goqu.C("title")).
		Where(goqu.C("owner_id").Eq(string(ownerID))).
		Order(byTitle(goqu.C("title"))...).
		ScanValsContext(ctx, &titles); err != nil {
		return nil, fmt.Errorf("could not fetch %s titles: %w", kind, err)
	}

	return titles, nil
}

// SearchTitles returns titles containing needle verbatim or whose normalized
// key contains keyNeedle. Both branches are plain substring checks.
func (s *Store) SearchTitles(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind,
	needle string,
	keyNeedle string) ([]string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var titles []string
	if err := s.Builder.From(table).
		Select(goqu.C("title")).
		Where(
			goqu.C("owner_id").Eq(string(ownerID)),
			goqu.Or(
				goqu.Func(s.Dialect.PositionFunc, goqu.C("title"), needle).Gt(0),
				goqu.Func(s.Dialect.PositionFunc, goqu.C("norm_title"), keyNeedle).Gt(0),
			),
		).
		Order(byTitle(goqu.C("title"))...).
		ScanValsContext(ctx, &titles); err != nil {
		return nil, fmt.Errorf("could not search %s titles: %w", kind, err)
	}

	return titles, nil
}

// OwnerKeys returns every normalized key the owner holds in the list.
func (s *Store) OwnerKeys(ctx context.Context, ownerID domain.OwnerID, kind domain.ListKind) ([]string, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var keys []string
	if err := s.Builder.From(table).
		Select(goqu.C("norm_title")).
		Where(goqu.C("owner_id").Eq(string(ownerID))).
		ScanValsContext(ctx, &keys); err != nil {
		return nil, fmt.Errorf("could not fetch %s keys: %w", kind, err)
	}

	return keys, nil
}

// EntriesByKeys returns other owners' entries whose key is one of keys. It is
// served by the norm_title index of the list's relation.
func (s *Store) EntriesByKeys(ctx context.Context,
	kind domain.ListKind,
	keys []string,
	exclude domain.OwnerID) ([]domain.Entry, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []listRow
	if err := s.Builder.From(table).
		Where(
			goqu.C("owner_id").Neq(string(exclude)),
			goqu.C("norm_title").In(keys),
		).
		Order(append(byTitle(goqu.C("title")), goqu.C("owner_id").Asc())...).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s entries by keys: %w", kind, err)
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(kind))
	}

	return out, nil
}

// DuplicateKeys groups the owner's list by normalized key and returns groups
// with more than one row. MIN(title) is used as the representative title.
func (s *Store) DuplicateKeys(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind) ([]domain.DuplicateGroup, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var rows []duplicateRow
	if err := s.Builder.From(table).
		Select(
			goqu.MIN("title").As("title"),
			goqu.C("norm_title"),
			goqu.COUNT(goqu.Star()).As("occurrences"),
		).
		Where(goqu.C("owner_id").Eq(string(ownerID))).
		GroupBy(goqu.C("norm_title")).
		Having(goqu.COUNT(goqu.Star()).Gt(1)).
		Order(goqu.Func("LOWER", goqu.MIN("title")).Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch %s duplicates: %w", kind, err)
	}

	out := make([]domain.DuplicateGroup, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.DuplicateGroup{
			Title: row.Title,
			Key:   row.NormTitle,
			Count: row.Occurrences,
		})
	}

	return out, nil
}

// Conflicts joins the owner's wishlist and tradelist on the normalized key.
func (s *Store) Conflicts(ctx context.Context, ownerID domain.OwnerID) ([]domain.Conflict, error) {
	var rows []conflictRow
	if err := s.Builder.From(goqu.T(wishlistTable).As("w")).
		Join(goqu.T(tradelistTable).As("t"), goqu.On(
			goqu.I("t.owner_id").Eq(goqu.I("w.owner_id")),
			goqu.I("t.norm_title").Eq(goqu.I("w.norm_title")),
		)).
		Select(
			goqu.I("w.title").As("wish_title"),
			goqu.I("t.title").As("trade_title"),
			goqu.I("w.norm_title").As("norm_title"),
		).
		Where(goqu.I("w.owner_id").Eq(string(ownerID))).
		Order(byTitle(goqu.I("w.title"))...).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch list conflicts: %w", err)
	}

	out := make([]domain.Conflict, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Conflict{
			WishlistTitle:  row.WishTitle,
			TradelistTitle: row.TradeTitle,
			Key:            row.NormTitle,
		})
	}

	return out, nil
}
