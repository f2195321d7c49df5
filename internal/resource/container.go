package resource

import (
	"sync"
	"time"
)

// State is an immutable view of a container at a point in time.
//
// Invariants, maintained by the container:
//   - Loading=true implies Failure=nil (Begin clears the previous failure)
//   - Data and HasData change only on Resolve (wholesale replacement)
//   - a failed fetch keeps the prior Data; stale data and a failure can be
//     visible at the same time, and views render both
type State[T any] struct {
	Data        T
	HasData     bool
	Loading     bool
	Failure     *Failure
	Version     uint64
	LastUpdated time.Time
}

// Container tracks the async lifecycle of one server resource:
// idle → loading → (succeeded | failed), with Reset returning to idle.
//
// Begin hands out a monotonically increasing sequence token; Resolve and
// Fail ignore tokens older than the newest issued one, so an out-of-order
// network response can never overwrite newer state. The zero value is not
// usable directly; construct with NewContainer or NewContainerWithClone.
type Container[T any] struct {
	mu      sync.RWMutex
	cloneFn func(T) T
	state   State[T]
	seq     uint64
}

// NewContainer builds a container whose data is safe to copy by value.
func NewContainer[T any]() *Container[T] {
	return &Container[T]{}
}

// NewContainerWithClone builds a container that passes data through clone
// on the way in and out, for payloads carrying slices or maps.
func NewContainerWithClone[T any](clone func(T) T) *Container[T] {
	return &Container[T]{cloneFn: clone}
}

// Begin marks a dispatch in flight: loading set, previous failure cleared,
// prior data untouched. The returned token must be passed to the matching
// Resolve or Fail call.
func (c *Container[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.state.Loading = true
	c.state.Failure = nil
	c.state.Version++
	return c.seq
}

// Resolve completes the dispatch identified by seq, replacing data
// wholesale. Returns false when a newer dispatch has superseded seq, in
// which case nothing changes.
func (c *Container[T]) Resolve(seq uint64, data T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}
	c.state.Data = c.clone(data)
	c.state.HasData = true
	c.state.Loading = false
	c.state.Failure = nil
	c.state.Version++
	c.state.LastUpdated = time.Now()
	return true
}

// Fail records the dispatch's failure. Prior data is kept so views can show
// the last good payload alongside the error. Returns false for stale seq.
func (c *Container[T]) Fail(seq uint64, failure Failure) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return false
	}
	c.state.Loading = false
	c.state.Failure = &failure
	c.state.Version++
	c.state.LastUpdated = time.Now()
	return true
}

// Reset restores the initial value. The sequence counter is not reset, so
// responses still in flight from before the reset arrive stale and are
// dropped; the version keeps increasing so memoized selectors recompute.
func (c *Container[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	version := c.state.Version + 1
	c.state = State[T]{Version: version}
}

// Snapshot returns a copy of the current state.
func (c *Container[T]) Snapshot() State[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := c.state
	snap.Data = c.clone(c.state.Data)
	if c.state.Failure != nil {
		failure := *c.state.Failure
		snap.Failure = &failure
	}
	return snap
}

func (c *Container[T]) clone(data T) T {
	if c.cloneFn == nil {
		return data
	}
	return c.cloneFn(data)
}

// PageInfo is the server-authoritative pagination block attached to list
// containers. TotalPages comes from the server; the derived fallback exists
// only for responses that omit it.
type PageInfo struct {
	Page         int
	Limit        int
	TotalRecords int
	TotalPages   int
}

// HasMore reports whether pages remain after the current one.
func (p PageInfo) HasMore() bool {
	return p.Page < p.totalPages()
}

func (p PageInfo) totalPages() int {
	if p.TotalPages > 0 {
		return p.TotalPages
	}
	if p.Limit <= 0 || p.TotalRecords <= 0 {
		return 0
	}
	pages := p.TotalRecords / p.Limit
	if p.TotalRecords%p.Limit != 0 {
		pages++
	}
	return pages
}

// PagedList is the payload shape of a paginated list container: one page of
// items plus the server's pagination block, always replaced together.
type PagedList[T any] struct {
	Items []T
	Page  PageInfo
}

// Paginated is a Container over one page of list items. Items are cloned on
// the way in and out so snapshots are independent of stored state.
type Paginated[T any] struct {
	Container[PagedList[T]]
}

// NewPaginated builds a paginated list container.
func NewPaginated[T any]() *Paginated[T] {
	p := &Paginated[T]{}
	p.cloneFn = func(list PagedList[T]) PagedList[T] {
		list.Items = cloneSlice(list.Items)
		return list
	}
	return p
}

// ResolvePage completes a list dispatch with one page of items and the
// pagination block from the same response.
func (p *Paginated[T]) ResolvePage(seq uint64, items []T, page PageInfo) bool {
	return p.Resolve(seq, PagedList[T]{Items: items, Page: page})
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
