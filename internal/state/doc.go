// Package state composes the per-resource async containers, the fetch
// operations that drive them, and the derived view selectors.
//
// Data flow is strictly linear per resource:
//
//	UI event → Dispatcher method → one Forgeline API call
//	        → container Resolve/Fail → selectors recompute → UI re-renders
//
// There is no cross-resource orchestration beyond a successful mutation
// reloading its own list, no optimistic updates, and no automatic retry.
//
// Derived convenience fields that belong to a payload (readiness flag,
// bottleneck count) are computed once at fulfillment and cached alongside
// the data; render-time projections (cost overview, shortage filtering) go
// through version-memoized selectors instead.
package state
