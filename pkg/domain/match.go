package domain

// MatchOutcome tells the matches caller which of the three result states applies.
type MatchOutcome uint8

const (
	// MatchOutcomeNoLists means the owner maintains neither a wishlist nor a
	// tradelist, so there is nothing to match on.
	MatchOutcomeNoLists MatchOutcome = iota + 1
	// MatchOutcomeNone means the owner has lists but nobody else overlaps.
	MatchOutcomeNone
	// MatchOutcomeFound means at least one offer or seeker group exists.
	MatchOutcomeFound
)

// String returns a stable identifier used by the HTTP API.
func (o MatchOutcome) String() string {
	switch o {
	case MatchOutcomeNoLists:
		return "no_lists"
	case MatchOutcomeNone:
		return "no_matches"
	case MatchOutcomeFound:
		return "found"
	default:
		return "unknown"
	}
}

// MatchGroup is one result line: a display title as spelled by the other
// owners and the sorted, de-duplicated set of owners using that spelling.
type MatchGroup struct {
	Title  string    `json:"title"`
	Owners []OwnerID `json:"owners"`
}

// Matches is the result of matching one owner's lists against everyone else.
type Matches struct {
	Outcome MatchOutcome `json:"outcome"`
	// Offers lists other owners' tradelist titles the owner wishes for.
	Offers []MatchGroup `json:"offers"`
	// Seekers lists other owners' wishlist titles the owner trades.
	Seekers []MatchGroup `json:"seekers"`
}

// DuplicateGroup reports a normalized key occurring more than once in one list.
type DuplicateGroup struct {
	Title string `json:"title"`
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Conflict reports a key the owner holds in both their wishlist and tradelist.
type Conflict struct {
	WishlistTitle  string `json:"wishlistTitle"`
	TradelistTitle string `json:"tradelistTitle"`
	Key            string `json:"key"`
}

// Duplicates is the intra-owner anomaly report.
type Duplicates struct {
	Wishlist  []DuplicateGroup `json:"wishlist"`
	Tradelist []DuplicateGroup `json:"tradelist"`
	Conflicts []Conflict       `json:"conflicts"`
}

// Empty reports whether the report contains nothing to show.
func (d Duplicates) Empty() bool {
	return len(d.Wishlist) == 0 && len(d.Tradelist) == 0 && len(d.Conflicts) == 0
}
