package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pbfsbag/bfs"
	"github.com/katalvlaran/pbfsbag/graph"
	"github.com/stretchr/testify/require"
)

func buildUndirected(t *testing.T, nNodes int, edges [][2]int) *graph.Graph {
	t.Helper()

	byCol := make([][]int, nNodes)
	for _, e := range edges {
		byCol[e[1]] = append(byCol[e[1]], e[0])
		byCol[e[0]] = append(byCol[e[0]], e[1])
	}

	jc := make([]int, nNodes+1)
	var ir []int
	for i := 0; i < nNodes; i++ {
		jc[i] = len(ir)
		ir = append(ir, byCol[i]...)
	}
	jc[nNodes] = len(ir)

	g, err := graph.New(ir, jc, nNodes, nNodes, len(ir))
	require.NoError(t, err)

	return g
}

func TestRun_PathGraph(t *testing.T) {
	g := buildUndirected(t, 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	})

	distances := make([]uint32, 10)
	require.NoError(t, bfs.Run(g, 0, distances))

	want := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, want, distances)
}

func TestRun_DisconnectedComponents(t *testing.T) {
	g := buildUndirected(t, 5, [][2]int{
		{0, 1}, {0, 2}, {3, 4},
	})

	distances := make([]uint32, 5)
	require.NoError(t, bfs.Run(g, 0, distances))

	want := []uint32{0, 1, 1, bfs.Infinity, bfs.Infinity}
	require.Equal(t, want, distances)
}

func TestRun_SourceOutOfRangeLeavesDistancesUntouched(t *testing.T) {
	g := buildUndirected(t, 3, [][2]int{{0, 1}})
	distances := []uint32{7, 8, 9}

	err := bfs.Run(g, 3, distances)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	require.Equal(t, []uint32{7, 8, 9}, distances)

	err = bfs.Run(g, -1, distances)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
}

func TestRun_StarGraph(t *testing.T) {
	const leaves = 10000
	edges := make([][2]int, leaves)
	for i := 0; i < leaves; i++ {
		edges[i] = [2]int{0, i + 1}
	}
	g := buildUndirected(t, leaves+1, edges)

	distances := make([]uint32, leaves+1)
	require.NoError(t, bfs.Run(g, 0, distances))

	require.Equal(t, uint32(0), distances[0])
	for i := 1; i <= leaves; i++ {
		require.Equal(t, uint32(1), distances[i])
	}
}

func TestRun_IsotropicToReruns(t *testing.T) {
	g := buildUndirected(t, 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	})

	d1 := make([]uint32, 10)
	d2 := make([]uint32, 10)
	require.NoError(t, bfs.Run(g, 0, d1))
	require.NoError(t, bfs.Run(g, 0, d2))
	require.Equal(t, d1, d2)
}
