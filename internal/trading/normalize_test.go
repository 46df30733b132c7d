package trading_test

import (
	"mangatrade/internal/trading"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "lowercase", in: "One Piece", out: "one piece"},
		{name: "collapse inner runs", in: "Naruto   1", out: "naruto 1"},
		{name: "trim both ends", in: "  Bleach \t", out: "bleach"},
		{name: "tabs and newlines", in: "Innocent\t\n7", out: "innocent 7"},
		{name: "empty", in: "", out: ""},
		{name: "whitespace only", in: " \t \n", out: ""},
		{name: "punctuation kept", in: "Dr. STONE!", out: "dr. stone!"},
		{name: "non ascii letters", in: "ÄRA  der Götter", out: "ära der götter"},
		{name: "already normalized", in: "akira", out: "akira"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, trading.Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", "One  Piece", "  ONE piece  ", "Dr.\tStone", "ÄRA  der Götter", "a b",
	}
	for _, in := range inputs {
		once := trading.Normalize(in)
		require.Equal(t, once, trading.Normalize(once), "input %q", in)
	}
}

func TestNormalize_CaseAndWhitespaceInsensitive(t *testing.T) {
	require.Equal(t, trading.Normalize("naruto 1"), trading.Normalize("Naruto   1"))
	require.Equal(t, trading.Normalize("one piece"), trading.Normalize("ONE\tPIECE "))
	require.NotEqual(t, trading.Normalize("onepiece"), trading.Normalize("one piece"))
}
