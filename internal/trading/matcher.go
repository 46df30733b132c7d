package trading

import (
	"context"
	"fmt"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/logger"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// FindMatches loads the owner's wishlist and tradelist keys and looks them up
// in the complementary lists of every other owner. The two lookups are
// independent reads; they are not required to observe the same snapshot.
func (s service) FindMatches(ctx context.Context, ownerID domain.OwnerID) (domain.Matches, error) {
	wishKeys, err := s.storage.OwnerKeys(ctx, ownerID, domain.Wishlist)
	if err != nil {
		return domain.Matches{}, fmt.Errorf("could not load wishlist keys: %w", err)
	}
	tradeKeys, err := s.storage.OwnerKeys(ctx, ownerID, domain.Tradelist)
	if err != nil {
		return domain.Matches{}, fmt.Errorf("could not load tradelist keys: %w", err)
	}

	var res domain.Matches
	if len(wishKeys) == 0 && len(tradeKeys) == 0 {
		res.Outcome = domain.MatchOutcomeNoLists
		s.recordMatch(ctx, res)

		return res, nil
	}

	// other owners trading what I wish for
	offers, err := s.counterparts(ctx, ownerID, domain.Wishlist, wishKeys)
	if err != nil {
		return domain.Matches{}, err
	}
	// other owners wishing for what I trade
	seekers, err := s.counterparts(ctx, ownerID, domain.Tradelist, tradeKeys)
	if err != nil {
		return domain.Matches{}, err
	}

	res.Offers = groupByTitle(offers)
	res.Seekers = groupByTitle(seekers)
	res.Outcome = domain.MatchOutcomeNone
	if len(res.Offers) > 0 || len(res.Seekers) > 0 {
		res.Outcome = domain.MatchOutcomeFound
	}
	s.recordMatch(ctx, res)
	logger.Debug(ctx, "matches computed",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("offers", len(res.Offers)),
		zap.Int("seekers", len(res.Seekers)))

	return res, nil
}

// counterparts returns other owners' entries in the list complementing kind
// whose key is one of keys.
func (s service) counterparts(ctx context.Context,
	ownerID domain.OwnerID,
	kind domain.ListKind,
	keys []string) ([]domain.Entry, error) {
	entries, err := s.storage.EntriesByKeys(ctx, kind.Complement(), keys, ownerID)
	if err != nil {
		return nil, fmt.Errorf("could not load %s counterparts: %w", kind, err)
	}

	return entries, nil
}

func (s service) recordMatch(ctx context.Context, res domain.Matches) {
	s.metrics.matches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", res.Outcome.String())))
}

// groupByTitle groups entries by their exact display title. Different
// spellings of one key stay separate groups. Groups keep the order in which
// their title first appears in entries; owners are de-duplicated and sorted.
func groupByTitle(entries []domain.Entry) []domain.MatchGroup {
	if len(entries) == 0 {
		return nil
	}

	index := make(map[string]int, len(entries))
	groups := make([]domain.MatchGroup, 0, len(entries))
	for _, e := range entries {
		i, ok := index[e.Title]
		if !ok {
			i = len(groups)
			index[e.Title] = i
			groups = append(groups, domain.MatchGroup{Title: e.Title})
		}
		groups[i].Owners = append(groups[i].Owners, e.OwnerID)
	}

	for i := range groups {
		slices.SortFunc(groups[i].Owners, domain.CompareOwnerIDs)
		groups[i].Owners = slices.Compact(groups[i].Owners)
	}

	return groups
}
