// Package ui implements the forgetop terminal interface with Bubble Tea.
//
// The interface follows the Elm architecture: a single Model holds all UI
// state, Update folds messages into the next model, and View renders a
// string. Data never lives in the model itself; the model holds snapshots
// taken from the state store, refreshed on a fixed tick and after every
// dispatched fetch. Rendering is therefore a pure function of the last
// snapshot set plus presentation state (active view, selection, filter
// draft, theme).
//
// Fetches run as tea.Cmd functions off the UI goroutine. Each command calls
// one dispatcher operation and reports completion with storeChangedMsg; the
// store's own sequence tokens drop stale responses, so the UI never needs
// to reason about overlapping requests.
//
// Every list view is one instantiation of the same page model (listPage)
// rendered by renderList: column layout, selection, windowing, the
// "page x/y (n records)" footer, the loading spinner, and the error banner
// are shared. A failed reload keeps the previous rows on screen under the
// banner rather than blanking the table.
package ui
