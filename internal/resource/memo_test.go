package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemo1_RecomputesOnlyOnVersionChange(t *testing.T) {
	calls := 0
	memo := NewMemo1(func(in []int) []int {
		calls++
		out := make([]int, 0, len(in))
		for _, v := range in {
			if v > 0 {
				out = append(out, v)
			}
		}
		return out
	})

	first := memo.Get(1, []int{-1, 2, 3})
	again := memo.Get(1, []int{-1, 2, 3})
	assert.Equal(t, 1, calls)
	// Same version returns the identical cached slice.
	assert.Same(t, &first[0], &again[0])

	next := memo.Get(2, []int{5})
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{5}, next)

	// Going back to an old version key recomputes; the cache is size one.
	memo.Get(1, []int{-1, 2, 3})
	assert.Equal(t, 3, calls)
}

func TestMemo2_EitherVersionInvalidates(t *testing.T) {
	calls := 0
	memo := NewMemo2(func(a, b int) int {
		calls++
		return a + b
	})

	assert.Equal(t, 3, memo.Get(1, 1, 1, 2))
	assert.Equal(t, 3, memo.Get(1, 1, 1, 2))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 12, memo.Get(2, 10, 1, 2))
	assert.Equal(t, 2, calls)

	assert.Equal(t, 30, memo.Get(2, 10, 2, 20))
	assert.Equal(t, 3, calls)
}
