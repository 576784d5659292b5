package forkjoin_test

import (
	"testing"

	"github.com/katalvlaran/pbfsbag/internal/forkjoin"
	"github.com/stretchr/testify/require"
)

func intIdentity() func() int {
	return func() int { return 0 }
}

func intSum(dst *int, src int) {
	*dst += src
}

func TestScope_SpawnThenSync_CombinesAllResults(t *testing.T) {
	s := forkjoin.NewScope[int](intIdentity(), intSum)
	for i := 1; i <= 100; i++ {
		i := i
		s.Spawn(func() int { return i })
	}
	require.Equal(t, 5050, s.Sync())
}

func TestScope_DoRunsSynchronouslyAndCombines(t *testing.T) {
	s := forkjoin.NewScope[int](intIdentity(), intSum)
	s.Do(func() int { return 7 })
	s.Spawn(func() int { return 3 })
	require.Equal(t, 10, s.Sync())
}

func TestParallelFor_CoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 997
	seen := make([]int, n)
	result := forkjoin.ParallelFor[int](n, 64,
		func() int { return 0 },
		intSum,
		func(lo, hi int) int {
			count := 0
			for i := lo; i < hi; i++ {
				seen[i]++
				count++
			}
			return count
		},
	)
	require.Equal(t, n, result)
	for i, c := range seen {
		require.Equal(t, 1, c, "index %d visited %d times", i, c)
	}
}

func TestParallelFor_NonPositiveGrainRunsAsSingleSlice(t *testing.T) {
	calls := forkjoin.ParallelFor[int](50, 0,
		func() int { return 0 },
		intSum,
		func(lo, hi int) int { return 1 },
	)
	require.Equal(t, 1, calls)
}

func TestParallelForEach_CoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 513
	seen := make([]int, n)
	forkjoin.ParallelForEach(n, 32, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	})
	for i, c := range seen {
		require.Equal(t, 1, c, "index %d visited %d times", i, c)
	}
}
