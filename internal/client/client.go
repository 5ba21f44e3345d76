// Package client implements the browsing session protocol: optimistic
// favorite toggling with rollback, and debounced, staleness-guarded
// catalog fetching. It talks to the server through small service
// interfaces so the UI layer and tests can plug in their own transports.
package client

import (
	"context"

	"gomarket/internal/domain/entity"
)

// ListingService fetches one catalog page.
type ListingService interface {
	List(ctx context.Context, query entity.ListingQuery) (*entity.ListingPage, error)
}

// FavoriteService mutates the caller's server-side favorite set. Both
// operations are idempotent on the server.
type FavoriteService interface {
	AddFavorite(ctx context.Context, productID string) error
	RemoveFavorite(ctx context.Context, productID string) error
}

// ProfileService returns the favorite set that seeds a new session.
type ProfileService interface {
	FetchFavorites(ctx context.Context) ([]string, error)
}

// Session bundles the two controllers of one client session.
type Session struct {
	Favorites *FavoriteController
	Search    *SearchController
}

// NewSession seeds the favorite view from the profile and wires both
// controllers. A profile fetch failure degrades to an empty local set;
// listing stays available without identity.
func NewSession(ctx context.Context, listings ListingService, favorites FavoriteService, profile ProfileService, opts SearchOptions) *Session {
	var seed []string
	if profile != nil {
		if fetched, err := profile.FetchFavorites(ctx); err == nil {
			seed = fetched
		}
	}

	return &Session{
		Favorites: NewFavoriteController(ctx, favorites, seed),
		Search:    NewSearchController(ctx, listings, opts),
	}
}

// Close releases timers and stops accepting work.
func (s *Session) Close() {
	s.Search.Close()
}
