package domain_test

import (
	"mangatrade/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseListKind(t *testing.T) {
	k, err := domain.ParseListKind("Wishlist")
	require.NoError(t, err)
	require.Equal(t, domain.Wishlist, k)

	k, err = domain.ParseListKind(" tradelist ")
	require.NoError(t, err)
	require.Equal(t, domain.Tradelist, k)

	_, err = domain.ParseListKind("blacklist")
	require.Error(t, err)
}

func TestListKind_Complement(t *testing.T) {
	require.Equal(t, domain.Tradelist, domain.Wishlist.Complement())
	require.Equal(t, domain.Wishlist, domain.Tradelist.Complement())
}

func TestListKind_String(t *testing.T) {
	require.Equal(t, "wishlist", domain.Wishlist.String())
	require.Equal(t, "tradelist", domain.Tradelist.String())
	require.False(t, domain.ListKind(0).Valid())
	require.Equal(t, "ListKind(7)", domain.ListKind(7).String())
}

func TestDuplicates_Empty(t *testing.T) {
	require.True(t, domain.Duplicates{}.Empty())
	require.False(t, domain.Duplicates{Conflicts: []domain.Conflict{{Key: "bleach"}}}.Empty())
}
