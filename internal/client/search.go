package client

import (
	"context"
	"sync"
	"time"

	"gomarket/internal/domain/entity"
)

const defaultDebounce = 500 * time.Millisecond

type SearchOptions struct {
	// Debounce is the quiet interval after the last keystroke before a
	// search fetch is issued. Zero means the default.
	Debounce time.Duration
	PageSize int
}

// SearchController turns raw typing and page clicks into an ordered
// sequence of listing fetches. Every fetch carries a sequence number
// taken at issue time; a response that is no longer the newest issued
// fetch is discarded on arrival, so a slow stale response can never
// overwrite a newer one. The previous page stays displayed while a fetch
// is outstanding.
type SearchController struct {
	svc ListingService
	ctx context.Context

	debounce time.Duration
	pageSize int

	mu      sync.Mutex
	typed   string // raw input, not yet effective
	term    string // effective (debounced) search term
	page    int
	timer   *time.Timer
	seq     uint64 // latest issued fetch
	current *entity.ListingPage
	loading bool
	closed  bool

	// OnResult fires for every accepted (non-stale) successful response.
	OnResult func(page *entity.ListingPage)
	// OnError fires for accepted failed responses. The previous listing
	// remains current.
	OnError func(err error)
}

func NewSearchController(ctx context.Context, svc ListingService, opts SearchOptions) *SearchController {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	return &SearchController{
		svc:      svc,
		ctx:      ctx,
		debounce: opts.Debounce,
		pageSize: opts.PageSize,
		page:     1,
	}
}

// SetSearchTerm records a keystroke. The fetch fires only after the
// debounce interval passes without another edit; the page resets to 1
// when the effective term actually changes.
func (s *SearchController) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.typed = term
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.debounceFired)
}

func (s *SearchController) debounceFired() {
	s.mu.Lock()
	if s.closed || s.typed == s.term {
		s.mu.Unlock()
		return
	}
	s.term = s.typed
	s.page = 1
	s.fetchLocked()
}

// SetPage navigates to an explicit page with the current effective term.
// No debounce; page clicks are deliberate.
func (s *SearchController) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.page = page
	s.fetchLocked()
}

// Refresh re-issues the current query, e.g. on session start or retry.
func (s *SearchController) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.fetchLocked()
}

// fetchLocked issues the next fetch. Called with s.mu held; releases it.
func (s *SearchController) fetchLocked() {
	s.seq++
	seq := s.seq
	query := entity.ListingQuery{
		Search: s.term,
		Page:   s.page,
		Limit:  s.pageSize,
	}
	s.loading = true
	s.mu.Unlock()

	go s.run(seq, query)
}

func (s *SearchController) run(seq uint64, query entity.ListingQuery) {
	page, err := s.svc.List(s.ctx, query)

	s.mu.Lock()
	if seq != s.seq {
		// Superseded by a newer fetch; the most-recent rule governs what
		// is shown, not arrival order.
		s.mu.Unlock()
		return
	}
	s.loading = false
	if err == nil {
		s.current = page
	}
	s.mu.Unlock()

	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
		}
		return
	}
	if s.OnResult != nil {
		s.OnResult(page)
	}
}

// Current returns the listing to display and whether a newer fetch is
// still outstanding. The listing is the last accepted result; it is never
// blanked while loading.
func (s *SearchController) Current() (*entity.ListingPage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.loading
}

// Term returns the effective (debounced) search term.
func (s *SearchController) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

// Page returns the current page number.
func (s *SearchController) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Close stops the debounce timer and marks any in-flight response stale.
func (s *SearchController) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.seq++
}
