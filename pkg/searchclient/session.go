package searchclient

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	searchDebounce     = 300 * time.Millisecond
	suggestionDebounce = 200 * time.Millisecond
	resultTTL          = 5 * time.Minute
	sweepInterval      = 1 * time.Minute
	requestTimeout     = 10 * time.Second

	minSearchChars     = 2
	minSuggestionChars = 1
)

// Searcher is the transport the session drives. *Client implements it.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, f Filters) ([]Result, error)
	Suggest(ctx context.Context, query string, limit int) ([]Suggestion, error)
}

// State is a snapshot of the session, safe to render from directly
type State struct {
	Query        string
	Filters      Filters
	Results      []Result
	Suggestions  []Suggestion
	Searching    bool
	ErrorMessage string
}

type cachedPage struct {
	results []Result
	expiry  time.Time
}

// Session drives interactive search. Query edits are debounced
// independently for results and suggestions, responses are cached
// per query-and-filters for a short TTL, and responses that arrive
// for an outdated query or filter set are discarded.
type Session struct {
	mu       sync.Mutex
	searcher Searcher

	limit           int
	suggestionLimit int
	searchDelay     time.Duration
	suggestDelay    time.Duration
	ttl             time.Duration

	state State
	cache map[string]cachedPage

	searchTimer  *time.Timer
	suggestTimer *time.Timer

	updates chan State
	stopCh  chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithLimits sets the result and suggestion limits
func WithLimits(limit, suggestionLimit int) SessionOption {
	return func(s *Session) {
		s.limit = limit
		s.suggestionLimit = suggestionLimit
	}
}

// WithDebounce overrides the search and suggestion debounce windows
func WithDebounce(search, suggest time.Duration) SessionOption {
	return func(s *Session) {
		s.searchDelay = search
		s.suggestDelay = suggest
	}
}

// WithResultTTL overrides how long cached pages stay fresh
func WithResultTTL(ttl time.Duration) SessionOption {
	return func(s *Session) {
		s.ttl = ttl
	}
}

// NewSession creates a session over the given transport
func NewSession(searcher Searcher, opts ...SessionOption) *Session {
	s := &Session{
		searcher:        searcher,
		limit:           20,
		suggestionLimit: 10,
		searchDelay:     searchDebounce,
		suggestDelay:    suggestionDebounce,
		ttl:             resultTTL,
		cache:           make(map[string]cachedPage),
		updates:         make(chan State, 16),
		stopCh:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.sweepLoop()

	return s
}

// Updates delivers state snapshots as they change. Slow consumers
// miss intermediate snapshots rather than blocking the session.
func (s *Session) Updates() <-chan State {
	return s.updates
}

// State returns the current snapshot
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetQuery records a new query text and (re)starts both debounce
// windows. Queries below the minimum length clear their portion of
// the state without a fetch.
func (s *Session) SetQuery(text string) {
	text = strings.TrimSpace(text)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.state.Query = text
	s.stopTimersLocked()

	if len([]rune(text)) < minSearchChars {
		s.state.Results = nil
		s.state.Searching = false
		s.state.ErrorMessage = ""
	} else {
		s.searchTimer = time.AfterFunc(s.searchDelay, func() {
			s.runSearch(text)
		})
	}

	if len([]rune(text)) < minSuggestionChars {
		s.state.Suggestions = nil
	} else {
		s.suggestTimer = time.AfterFunc(s.suggestDelay, func() {
			s.runSuggest(text)
		})
	}

	snapshot := s.state
	s.mu.Unlock()

	s.publish(snapshot)
}

// SetFilters replaces the active filters and re-runs the current
// query through the debounce window
func (s *Session) SetFilters(f Filters) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.state.Filters = f
	text := s.state.Query

	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	if len([]rune(text)) >= minSearchChars {
		s.searchTimer = time.AfterFunc(s.searchDelay, func() {
			s.runSearch(text)
		})
	}

	snapshot := s.state
	s.mu.Unlock()

	s.publish(snapshot)
}

// Clear resets the session state immediately, cancelling any pending
// fetches. The response cache is kept.
func (s *Session) Clear() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.stopTimersLocked()
	s.state = State{Filters: s.state.Filters}
	snapshot := s.state
	s.mu.Unlock()

	s.publish(snapshot)
}

// Close stops the session's timers and background sweeper
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimersLocked()
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
}

func (s *Session) stopTimersLocked() {
	if s.searchTimer != nil {
		s.searchTimer.Stop()
		s.searchTimer = nil
	}
	if s.suggestTimer != nil {
		s.suggestTimer.Stop()
		s.suggestTimer = nil
	}
}

func (s *Session) runSearch(text string) {
	s.mu.Lock()
	if s.closed || s.state.Query != text {
		s.mu.Unlock()
		return
	}

	filters := s.state.Filters
	key := pageKey(text, s.limit, filters)

	if entry, ok := s.cache[key]; ok {
		if time.Now().Before(entry.expiry) {
			s.state.Results = entry.results
			s.state.Searching = false
			s.state.ErrorMessage = ""
			snapshot := s.state
			s.mu.Unlock()
			s.publish(snapshot)
			return
		}
		delete(s.cache, key)
	}

	s.state.Searching = true
	snapshot := s.state
	s.mu.Unlock()
	s.publish(snapshot)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	results, err := s.searcher.Search(ctx, text, s.limit, filters)

	s.mu.Lock()
	// Discard responses when the query or the filters have moved on
	// while the request was in flight
	if s.closed || s.state.Query != text || pageKey(text, s.limit, s.state.Filters) != key {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.state.Results = nil
		s.state.Searching = false
		s.state.ErrorMessage = err.Error()
	} else {
		s.cache[key] = cachedPage{results: results, expiry: time.Now().Add(s.ttl)}
		s.state.Results = results
		s.state.Searching = false
		s.state.ErrorMessage = ""
	}
	snapshot = s.state
	s.mu.Unlock()

	s.publish(snapshot)
}

func (s *Session) runSuggest(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	suggestions, err := s.searcher.Suggest(ctx, text, s.suggestionLimit)
	if err != nil {
		// Suggestions are best effort; a failed lookup leaves the
		// previous ones in place
		return
	}

	s.mu.Lock()
	if s.closed || s.state.Query != text {
		s.mu.Unlock()
		return
	}
	s.state.Suggestions = suggestions
	snapshot := s.state
	s.mu.Unlock()

	s.publish(snapshot)
}

func (s *Session) publish(snapshot State) {
	select {
	case s.updates <- snapshot:
	default:
	}
}

func (s *Session) sweepLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for key, entry := range s.cache {
				if now.After(entry.expiry) {
					delete(s.cache, key)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// pageKey derives the cache key from the query text and every filter;
// filter order does not matter
func pageKey(text string, limit int, f Filters) string {
	parts := []string{
		strings.ToLower(text),
		"limit=" + strconv.Itoa(limit),
		joinSorted("types", f.Types),
		joinSorted("categories", f.Categories),
		joinSorted("locations", f.Locations),
		"from=" + f.From,
		"to=" + f.To,
	}
	return strings.Join(parts, "|")
}

func joinSorted(name string, values []string) string {
	if len(values) == 0 {
		return name + "="
	}
	sorted := make([]string, len(values))
	for i, v := range values {
		sorted[i] = strings.ToLower(v)
	}
	sort.Strings(sorted)
	return name + "=" + strings.Join(sorted, ",")
}
