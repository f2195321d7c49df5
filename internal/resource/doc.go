// Package resource implements the generic async resource state container
// used by every Forgeline resource (BOMs, allocations, orders, pricing,
// products, compliance records).
//
// # Lifecycle
//
// A container tracks one server resource through three signals:
//
//	seq := c.Begin()          // loading=true, failure cleared
//	c.Resolve(seq, payload)   // data replaced wholesale
//	c.Fail(seq, failure)      // failure recorded, prior data kept
//
// Begin returns a monotonically increasing sequence token. Resolve and Fail
// drop tokens older than the newest issued one, so when two dispatches
// overlap, whichever response belongs to the newest dispatch wins — a stale
// response can never overwrite newer state, regardless of network arrival
// order.
//
// # Concurrency
//
// Containers are RWMutex-guarded with a single logical writer (the resource's
// own fetch operation); readers get defensive-copy snapshots. The lock is
// held only for copy operations, never across network calls or rendering.
//
// # Selectors
//
// Every State carries a Version that increases on each mutation. Memo1 and
// Memo2 key their caches on these versions, giving pure derived projections
// that recompute only when their direct inputs change and otherwise return
// the same value — the memoized-selector contract, without equality checks
// over payload slices.
package resource
