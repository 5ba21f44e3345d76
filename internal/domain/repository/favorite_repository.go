package repository

import (
	"context"
)

// FavoriteRepository is the authoritative per-user favorite set. Add and
// Remove are idempotent: re-adding a present product or removing an absent
// one succeeds without changing the set. Concurrent operations on the same
// (user, product) pair converge to the last committed write.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
	Contains(ctx context.Context, userID, productID string) (bool, error)

	// GetSet returns a snapshot copy of the user's favorite product IDs.
	GetSet(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context, userID string) (int64, error)
}
