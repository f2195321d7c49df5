package resource

import "sync"

// Memo1 memoizes a projection over one container state, keyed by the
// container version. Repeated calls with an unchanged version return the
// cached result without recomputing, so render loops get referentially
// stable output.
type Memo1[S, R any] struct {
	mu     sync.Mutex
	fn     func(S) R
	key    uint64
	cached bool
	result R
}

// NewMemo1 builds a memoized single-input selector.
func NewMemo1[S, R any](fn func(S) R) *Memo1[S, R] {
	return &Memo1[S, R]{fn: fn}
}

// Get returns fn(input), recomputing only when version differs from the
// previous call.
func (m *Memo1[S, R]) Get(version uint64, input S) R {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached && m.key == version {
		return m.result
	}
	m.result = m.fn(input)
	m.key = version
	m.cached = true
	return m.result
}

// Memo2 memoizes a projection over two container states. The cache key is
// the pair of versions; either container changing triggers a recompute.
type Memo2[A, B, R any] struct {
	mu     sync.Mutex
	fn     func(A, B) R
	keyA   uint64
	keyB   uint64
	cached bool
	result R
}

// NewMemo2 builds a memoized two-input selector.
func NewMemo2[A, B, R any](fn func(A, B) R) *Memo2[A, B, R] {
	return &Memo2[A, B, R]{fn: fn}
}

// Get returns fn(a, b), recomputing only when either version changed.
func (m *Memo2[A, B, R]) Get(versionA uint64, a A, versionB uint64, b B) R {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached && m.keyA == versionA && m.keyB == versionB {
		return m.result
	}
	m.result = m.fn(a, b)
	m.keyA = versionA
	m.keyB = versionB
	m.cached = true
	return m.result
}
