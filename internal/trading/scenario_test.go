package trading_test

import (
	"context"
	"mangatrade/internal/trading"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/storage/sqlite"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// newSQLiteService returns a service backed by a migrated on-disk SQLite database.
func newSQLiteService(t *testing.T) trading.Service {
	t.Helper()

	ctx := context.Background()
	store, err := sqlite.New(ctx, sqlite.Options{
		Path:               filepath.Join(t.TempDir(), "manga.db"),
		BusyTimeout:        5 * time.Second,
		MaxOpenConnections: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))

	s, err := trading.New(store, trading.Options{})
	require.NoError(t, err)

	return s
}

func TestScenario_AddKeepsFirstSpelling(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "One Piece"))
	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "one  piece"))

	titles, err := s.List(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"One Piece"}, titles)
}

func TestScenario_RemoveByAnyVariant(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Tradelist, "NARUTO"))

	n, err := s.Remove(ctx, "1", domain.Tradelist, "Naru")
	require.NoError(t, err)
	require.Zero(t, n, "partial text must not match")

	n, err = s.Remove(ctx, "1", domain.Tradelist, "  naruto ")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Remove(ctx, "1", domain.Tradelist, "Bleach")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestScenario_ClearLeavesOthersIntact(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	for _, title := range []string{"Akira", "Bleach", "Claymore"} {
		require.NoError(t, s.Add(ctx, "1", domain.Wishlist, title))
	}
	require.NoError(t, s.Add(ctx, "2", domain.Wishlist, "Akira"))
	require.NoError(t, s.Add(ctx, "1", domain.Tradelist, "Dorohedoro"))

	n, err := s.Clear(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)

	titles, err := s.List(ctx, "2", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"Akira"}, titles)

	titles, err = s.List(ctx, "1", domain.Tradelist)
	require.NoError(t, err)
	require.Equal(t, []string{"Dorohedoro"}, titles)
}

func TestScenario_SearchUnionOfBothBranches(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	for _, title := range []string{"One Piece", "ONE  PUNCH MAN", "Berserk", "Vinland Saga"} {
		require.NoError(t, s.Add(ctx, "1", domain.Tradelist, title))
	}

	// key branch: case and whitespace are ignored
	titles, err := s.Search(ctx, "1", domain.Tradelist, "one  p")
	require.NoError(t, err)
	// "one  punch man" sorts before "one piece" once lower-cased
	require.Equal(t, []string{"ONE  PUNCH MAN", "One Piece"}, titles)

	titles, err = s.Search(ctx, "1", domain.Tradelist, "Saga")
	require.NoError(t, err)
	require.Equal(t, []string{"Vinland Saga"}, titles)

	titles, err = s.Search(ctx, "1", domain.Tradelist, "naruto")
	require.NoError(t, err)
	require.Empty(t, titles)
}

func TestScenario_Matches(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "Innocent 7"))
	require.NoError(t, s.Add(ctx, "2", domain.Tradelist, "innocent   7"))

	res, err := s.FindMatches(ctx, "1")
	require.NoError(t, err)
	want := domain.Matches{
		Outcome: domain.MatchOutcomeFound,
		Offers:  []domain.MatchGroup{{Title: "innocent   7", Owners: []domain.OwnerID{"2"}}},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}

	// matching is directional: owner 2 trades, owner 1 seeks
	res, err = s.FindMatches(ctx, "2")
	require.NoError(t, err)
	want = domain.Matches{
		Outcome: domain.MatchOutcomeFound,
		Seekers: []domain.MatchGroup{{Title: "Innocent 7", Owners: []domain.OwnerID{"1"}}},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}
}

func TestScenario_MatchesExcludeSelf(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "Bleach"))
	require.NoError(t, s.Add(ctx, "1", domain.Tradelist, "Bleach"))

	res, err := s.FindMatches(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, domain.MatchOutcomeNone, res.Outcome)
	require.Empty(t, res.Offers)
	require.Empty(t, res.Seekers)
}

func TestScenario_NoListsVersusNoMatches(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	res, err := s.FindMatches(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, domain.MatchOutcomeNoLists, res.Outcome)

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "Akira"))
	require.NoError(t, s.Add(ctx, "2", domain.Tradelist, "Berserk"))

	res, err = s.FindMatches(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, domain.MatchOutcomeNone, res.Outcome)
}

func TestScenario_MatchOwnersSortedNaturally(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "Akira"))
	for _, id := range []domain.OwnerID{"100", "20", "3"} {
		require.NoError(t, s.Add(ctx, id, domain.Tradelist, "Akira"))
	}

	res, err := s.FindMatches(ctx, "1")
	require.NoError(t, err)
	require.Len(t, res.Offers, 1)
	require.Equal(t, []domain.OwnerID{"3", "20", "100"}, res.Offers[0].Owners)
}

func TestScenario_Conflict(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "Bleach"))
	require.NoError(t, s.Add(ctx, "1", domain.Tradelist, "BLEACH"))
	require.NoError(t, s.Add(ctx, "1", domain.Tradelist, "Akira"))

	res, err := s.FindDuplicates(ctx, "1")
	require.NoError(t, err)
	require.Empty(t, res.Wishlist)
	require.Empty(t, res.Tradelist)
	require.Equal(t, []domain.Conflict{
		{WishlistTitle: "Bleach", TradelistTitle: "BLEACH", Key: "bleach"},
	}, res.Conflicts)

	res, err = s.FindDuplicates(ctx, "2")
	require.NoError(t, err)
	require.True(t, res.Empty())
}

func TestScenario_EmptyTitleAccepted(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "   "))
	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, ""))

	titles, err := s.List(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"   "}, titles)
}

func TestScenario_TitlesWithNulAndQuotes(t *testing.T) {
	s := newSQLiteService(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "nul\x00byte"))
	require.NoError(t, s.Add(ctx, "1", domain.Wishlist, "O'Reilly"))

	titles, err := s.List(ctx, "1", domain.Wishlist)
	require.NoError(t, err)
	require.Equal(t, []string{"nul\x00byte", "O'Reilly"}, titles)

	n, err := s.Remove(ctx, "1", domain.Wishlist, "NUL\x00BYTE")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	n, err = s.Remove(ctx, "1", domain.Wishlist, "o'reilly")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}
