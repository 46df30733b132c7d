package trading

import (
	"context"
	"fmt"
	"mangatrade/pkg/domain"
	"mangatrade/pkg/storage"
)

// FindDuplicates builds the owner's anomaly report. The three queries share
// one transaction so the report reflects a single state of both lists.
func (s service) FindDuplicates(ctx context.Context, ownerID domain.OwnerID) (domain.Duplicates, error) {
	var res domain.Duplicates
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		res.Wishlist, err = tx.DuplicateKeys(ctx, ownerID, domain.Wishlist)
		if err != nil {
			return fmt.Errorf("could not find wishlist duplicates: %w", err)
		}
		res.Tradelist, err = tx.DuplicateKeys(ctx, ownerID, domain.Tradelist)
		if err != nil {
			return fmt.Errorf("could not find tradelist duplicates: %w", err)
		}
		res.Conflicts, err = tx.Conflicts(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("could not find conflicts: %w", err)
		}

		return nil
	}); err != nil {
		return domain.Duplicates{}, fmt.Errorf("could not find duplicates: %w", err)
	}

	return res, nil
}
