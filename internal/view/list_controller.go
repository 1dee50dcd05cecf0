// Package view implements the page-level state owners of the application:
// the list controller that holds a fetched collection plus its local filter
// and loading/error status, and the mutation form that collects and submits
// create/update input.
package view

import (
	"context"
	"sync"
)

// State describes the lifecycle of a list controller.
type State int

const (
	// StateLoading means a fetch is in flight and no collection is shown.
	StateLoading State = iota
	// StateReady means the collection is loaded and filterable.
	StateReady
	// StateErrored means the last fetch failed; a manual retry re-runs it.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Fetch loads the authoritative collection from the resource client.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Match reports whether a record is visible under a free-text query.
type Match[T any] func(record T, query string) bool

// ListController owns the canonical in-memory copy of one resource
// collection for one page instance. It never patches its cached slice from a
// mutation result; any mutation success triggers a full re-fetch so local
// and server state cannot diverge.
//
// Results may arrive on goroutines, so state is guarded by a mutex. Each
// load carries a generation number: when loads overlap (e.g. a retry fired
// while the previous fetch was still pending) only the latest generation is
// applied and superseded responses are silently dropped. Superseded requests
// are not cancelled.
type ListController[T any] struct {
	mu      sync.Mutex
	fetch   Fetch[T]
	match   Match[T]
	state   State
	items   []T
	query   string
	loadErr error
	gen     uint64
	closed  bool
}

// NewListController creates a controller in the loading state. match may be
// nil, in which case every record is visible regardless of query.
func NewListController[T any](fetch Fetch[T], match Match[T]) *ListController[T] {
	return &ListController[T]{fetch: fetch, match: match, state: StateLoading}
}

// Load fetches the collection and transitions to Ready or Errored. It is
// also the re-fetch path after every mutation success and the manual retry
// action; all three run the exact same fetch.
func (c *ListController[T]) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.gen++
	gen := c.gen
	c.state = StateLoading
	fetch := c.fetch
	c.mu.Unlock()

	items, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	// A closed controller or a superseded load discards its result instead
	// of mutating state.
	if c.closed || gen != c.gen {
		return
	}
	if err != nil {
		c.state = StateErrored
		c.loadErr = err
		return
	}
	c.state = StateReady
	c.items = items
	c.loadErr = nil
}

// Retry re-runs the failed fetch. It is manual only; the controller never
// auto-retries.
func (c *ListController[T]) Retry(ctx context.Context) {
	c.Load(ctx)
}

// SetQuery updates the local free-text filter. Filtering is purely local;
// no request is issued.
func (c *ListController[T]) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

// Query returns the current filter text.
func (c *ListController[T]) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// State returns the current lifecycle state.
func (c *ListController[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error retained from the last failed fetch, if any.
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadErr
}

// Items returns the full unfiltered collection in server order.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Visible returns the records matching the current query, preserving server
// order. An empty query yields the full collection.
func (c *ListController[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query == "" || c.match == nil {
		return c.items
	}
	visible := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.match(item, c.query) {
			visible = append(visible, item)
		}
	}
	return visible
}

// Close marks the controller unmounted. Results of in-flight loads are
// discarded from then on; no further state transitions happen.
func (c *ListController[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
