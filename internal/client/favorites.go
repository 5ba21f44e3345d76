package client

import (
	"context"
	"sync"
	"sync/atomic"
)

// pendingMutation is at most one in-flight toggle per product.
type pendingMutation struct {
	target    bool
	requestID uint64
}

// FavoriteController keeps the locally displayed favorite state for one
// session. The displayed state for a product is the confirmed server
// state overridden by an active pending mutation, never an independently
// mutated copy. A toggle while one is already pending for the same
// product is rejected, so two mutations for one product are never in
// flight together.
type FavoriteController struct {
	svc FavoriteService
	ctx context.Context

	mu        sync.Mutex
	confirmed map[string]bool
	pending   map[string]pendingMutation
	requestID uint64

	// OnChange observes every visible state flip, including the revert
	// after a failed mutation.
	OnChange func(productID string, favorited bool)
	// OnError surfaces a failed mutation after local state has been
	// reverted. No automatic retry happens; the user must toggle again.
	OnError func(productID string, err error)
	// onSettled fires after a toggle fully resolves. Tests use it to
	// wait deterministically.
	onSettled func(productID string, err error)
}

func NewFavoriteController(ctx context.Context, svc FavoriteService, seed []string) *FavoriteController {
	confirmed := make(map[string]bool, len(seed))
	for _, id := range seed {
		confirmed[id] = true
	}
	return &FavoriteController{
		svc:       svc,
		ctx:       ctx,
		confirmed: confirmed,
		pending:   make(map[string]pendingMutation),
	}
}

// IsFavorited returns the displayed state: confirmed state overridden by
// any pending mutation.
func (f *FavoriteController) IsFavorited(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.displayedLocked(productID)
}

func (f *FavoriteController) displayedLocked(productID string) bool {
	if p, ok := f.pending[productID]; ok {
		return p.target
	}
	return f.confirmed[productID]
}

// IsPending reports whether a mutation for the product is in flight.
func (f *FavoriteController) IsPending(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.pending[productID]
	return ok
}

// Favorites returns the displayed favorite set as a snapshot.
func (f *FavoriteController) Favorites() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.confirmed)+len(f.pending))
	for id, favorited := range f.confirmed {
		if !favorited {
			continue
		}
		if p, ok := f.pending[id]; ok && !p.target {
			continue
		}
		ids = append(ids, id)
	}
	for id, p := range f.pending {
		if p.target && !f.confirmed[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Toggle flips the favorite state for the product. The local view changes
// synchronously; the server mutation resolves in the background. Returns
// false when a mutation for the product is already pending; the click is
// dropped rather than queued, so rapid double-clicks issue one request.
func (f *FavoriteController) Toggle(productID string) bool {
	if productID == "" {
		return false
	}

	f.mu.Lock()
	if _, busy := f.pending[productID]; busy {
		f.mu.Unlock()
		return false
	}

	was := f.displayedLocked(productID)
	target := !was
	id := atomic.AddUint64(&f.requestID, 1)
	f.pending[productID] = pendingMutation{target: target, requestID: id}
	f.mu.Unlock()

	if f.OnChange != nil {
		f.OnChange(productID, target)
	}

	go f.resolve(productID, was, target)
	return true
}

func (f *FavoriteController) resolve(productID string, was, target bool) {
	var err error
	if target {
		err = f.svc.AddFavorite(f.ctx, productID)
	} else {
		err = f.svc.RemoveFavorite(f.ctx, productID)
	}

	f.mu.Lock()
	delete(f.pending, productID)
	if err == nil {
		if target {
			f.confirmed[productID] = true
		} else {
			delete(f.confirmed, productID)
		}
	}
	f.mu.Unlock()

	if err != nil {
		// Treat the operation as not having happened.
		if f.OnChange != nil {
			f.OnChange(productID, was)
		}
		if f.OnError != nil {
			f.OnError(productID, err)
		}
	}

	if f.onSettled != nil {
		f.onSettled(productID, err)
	}
}

// ApplyRemote replaces the confirmed set with one pushed by the server
// (another session of the same user mutated it). Pending mutations keep
// overriding the display until they resolve.
func (f *FavoriteController) ApplyRemote(favorites []string) {
	next := make(map[string]bool, len(favorites))
	for _, id := range favorites {
		next[id] = true
	}

	f.mu.Lock()
	f.confirmed = next
	f.mu.Unlock()
}
