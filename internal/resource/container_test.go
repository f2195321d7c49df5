package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_Lifecycle(t *testing.T) {
	c := NewContainer[int]()

	snap := c.Snapshot()
	assert.False(t, snap.HasData)
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Failure)

	seq := c.Begin()
	snap = c.Snapshot()
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Failure)

	require.True(t, c.Resolve(seq, 42))
	snap = c.Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, snap.HasData)
	assert.Equal(t, 42, snap.Data)
	assert.False(t, snap.LastUpdated.IsZero())
}

func TestContainer_BeginClearsFailureKeepsData(t *testing.T) {
	c := NewContainer[string]()

	seq := c.Begin()
	require.True(t, c.Resolve(seq, "good"))

	seq = c.Begin()
	require.True(t, c.Fail(seq, Failure{Message: "boom"}))

	snap := c.Snapshot()
	assert.True(t, snap.HasData, "failed fetch must keep prior data")
	assert.Equal(t, "good", snap.Data)
	require.NotNil(t, snap.Failure)
	assert.Equal(t, "boom", snap.Failure.Message)

	// The next dispatch clears the failure while loading.
	c.Begin()
	snap = c.Snapshot()
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Failure)
	assert.Equal(t, "good", snap.Data)
}

func TestContainer_StaleResponsesDropped(t *testing.T) {
	c := NewContainer[string]()

	first := c.Begin()
	second := c.Begin()

	// The slow first response lands after the second dispatch began.
	assert.False(t, c.Resolve(first, "stale"))
	assert.False(t, c.Snapshot().HasData)

	require.True(t, c.Resolve(second, "fresh"))
	assert.Equal(t, "fresh", c.Snapshot().Data)

	// A stale failure cannot override fresh data either.
	assert.False(t, c.Fail(first, Failure{Message: "late error"}))
	assert.Nil(t, c.Snapshot().Failure)
}

func TestContainer_ResetDropsInFlight(t *testing.T) {
	c := NewContainer[int]()

	seq := c.Begin()
	require.True(t, c.Resolve(seq, 1))

	inflight := c.Begin()
	c.Reset()

	snap := c.Snapshot()
	assert.False(t, snap.HasData)
	assert.False(t, snap.Loading)

	// The pre-reset dispatch must not resurrect old state.
	assert.False(t, c.Resolve(inflight, 99))
	assert.False(t, c.Snapshot().HasData)
}

func TestContainer_VersionAdvancesEveryTransition(t *testing.T) {
	c := NewContainer[int]()
	v0 := c.Snapshot().Version

	seq := c.Begin()
	v1 := c.Snapshot().Version
	assert.Greater(t, v1, v0)

	c.Resolve(seq, 5)
	v2 := c.Snapshot().Version
	assert.Greater(t, v2, v1)

	c.Reset()
	v3 := c.Snapshot().Version
	assert.Greater(t, v3, v2, "reset must not reuse an earlier version")
}

func TestContainerWithClone_SnapshotsAreIndependent(t *testing.T) {
	type payload struct{ Tags []string }
	c := NewContainerWithClone(func(p payload) payload {
		p.Tags = append([]string(nil), p.Tags...)
		return p
	})

	seq := c.Begin()
	require.True(t, c.Resolve(seq, payload{Tags: []string{"a", "b"}}))

	snap := c.Snapshot()
	snap.Data.Tags[0] = "mutated"

	assert.Equal(t, "a", c.Snapshot().Data.Tags[0], "snapshot mutation leaked into the container")
}

func TestPaginated_ResolvePage(t *testing.T) {
	p := NewPaginated[string]()

	seq := p.Begin()
	require.True(t, p.ResolvePage(seq, []string{"x", "y"}, PageInfo{Page: 1, Limit: 2, TotalRecords: 5, TotalPages: 3}))

	snap := p.Snapshot()
	assert.Equal(t, []string{"x", "y"}, snap.Data.Items)
	assert.True(t, snap.Data.Page.HasMore())

	// Page replacement is wholesale: no append, no merge.
	seq = p.Begin()
	require.True(t, p.ResolvePage(seq, []string{"z"}, PageInfo{Page: 3, Limit: 2, TotalRecords: 5, TotalPages: 3}))
	snap = p.Snapshot()
	assert.Equal(t, []string{"z"}, snap.Data.Items)
	assert.False(t, snap.Data.Page.HasMore())
}

func TestPageInfo_DerivedTotalPages(t *testing.T) {
	page := PageInfo{Page: 1, Limit: 10, TotalRecords: 25}
	assert.True(t, page.HasMore())

	page.Page = 3
	assert.False(t, page.HasMore())

	assert.False(t, PageInfo{}.HasMore())
}

func TestNewFailure_FallbackSubstitution(t *testing.T) {
	f := NewFailure("Insufficient stock", "trc-1", "Allocation request failed")
	assert.Equal(t, "Insufficient stock", f.Message)
	assert.Equal(t, "trc-1", f.TraceID)

	f = NewFailure("   ", "", "Allocation request failed")
	assert.Equal(t, "Allocation request failed", f.Message)
}
