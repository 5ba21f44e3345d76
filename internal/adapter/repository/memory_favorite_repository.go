package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"gomarket/internal/domain/repository"
)

type favoriteEntry struct {
	addedAt time.Time
}

// MemoryFavoriteRepository is the in-process favorite set. All mutation
// goes through idempotent add/remove under one lock, so concurrent
// sessions converge on whichever operation commits last.
type MemoryFavoriteRepository struct {
	mu   sync.RWMutex
	sets map[string]map[string]favoriteEntry

	// Unavailable simulates a transient store outage when set.
	Unavailable error
}

func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{
		sets: make(map[string]map[string]favoriteEntry),
	}
}

var _ repository.FavoriteRepository = (*MemoryFavoriteRepository)(nil)

func (r *MemoryFavoriteRepository) Add(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Unavailable != nil {
		return r.Unavailable
	}

	set, ok := r.sets[userID]
	if !ok {
		set = make(map[string]favoriteEntry)
		r.sets[userID] = set
	}
	if _, present := set[productID]; !present {
		set[productID] = favoriteEntry{addedAt: time.Now()}
	}
	return nil
}

func (r *MemoryFavoriteRepository) Remove(ctx context.Context, userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Unavailable != nil {
		return r.Unavailable
	}

	if set, ok := r.sets[userID]; ok {
		delete(set, productID)
	}
	return nil
}

func (r *MemoryFavoriteRepository) Contains(ctx context.Context, userID, productID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Unavailable != nil {
		return false, r.Unavailable
	}

	set, ok := r.sets[userID]
	if !ok {
		return false, nil
	}
	_, present := set[productID]
	return present, nil
}

// GetSet returns a copy; callers cannot corrupt the stored set through it.
func (r *MemoryFavoriteRepository) GetSet(ctx context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Unavailable != nil {
		return nil, r.Unavailable
	}

	set := r.sets[userID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if set[ids[i]].addedAt.Equal(set[ids[j]].addedAt) {
			return ids[i] < ids[j]
		}
		return set[ids[i]].addedAt.Before(set[ids[j]].addedAt)
	})
	return ids, nil
}

func (r *MemoryFavoriteRepository) Count(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.Unavailable != nil {
		return 0, r.Unavailable
	}

	return int64(len(r.sets[userID])), nil
}
