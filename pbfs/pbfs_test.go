package pbfs_test

import (
	"testing"

	"github.com/katalvlaran/pbfsbag/bfs"
	"github.com/katalvlaran/pbfsbag/graph"
	"github.com/katalvlaran/pbfsbag/pbfs"
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

func pathGraph(t *testing.T) *graph.Graph {
	return buildUndirected(t, 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9},
	})
}

func TestNew_RejectsThresholdNotDividingBlockSize(t *testing.T) {
	g := pathGraph(t)
	_, err := pbfs.New(g, pbfs.WithBlockSize(100), pbfs.WithThreshold(7))
	require.ErrorIs(t, err, pbfs.ErrThresholdMismatch)
}

// Small tunables here give every frontier node its own task. Each level of
// a path holds a single node, so the frontier never leaves the filling
// block; the star case of TestRun_MatchesSerialBFS is the one that builds
// pennants.
func TestRun_PathGraph(t *testing.T) {
	g := pathGraph(t)
	e, err := pbfs.New(g, pbfs.WithBlockSize(2), pbfs.WithBagSize(8), pbfs.WithThreshold(1))
	require.NoError(t, err)

	distances := make([]uint32, 10)
	require.NoError(t, e.Run(0, distances))

	want := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, want, distances)
}

func TestRun_DisconnectedComponents(t *testing.T) {
	g := buildUndirected(t, 5, [][2]int{{0, 1}, {0, 2}, {3, 4}})
	e, err := pbfs.New(g, pbfs.WithBlockSize(2), pbfs.WithBagSize(8), pbfs.WithThreshold(1))
	require.NoError(t, err)

	distances := make([]uint32, 5)
	require.NoError(t, e.Run(0, distances))

	want := []uint32{0, 1, 1, bfs.Infinity, bfs.Infinity}
	require.Equal(t, want, distances)
}

// A wide, shallow fan-out of 10000 leaves off a single center stresses
// the concurrent-insert path across many goroutines.
func TestRun_StarGraph(t *testing.T) {
	const leaves = 10000
	edges := make([][2]int, leaves)
	for i := 0; i < leaves; i++ {
		edges[i] = [2]int{0, i + 1}
	}
	g := buildUndirected(t, leaves+1, edges)

	e, err := pbfs.New(g)
	require.NoError(t, err)

	distances := make([]uint32, leaves+1)
	require.NoError(t, e.Run(0, distances))

	require.Equal(t, uint32(0), distances[0])
	for i := 1; i <= leaves; i++ {
		require.Equal(t, uint32(1), distances[i])
	}
}

func TestRun_SourceOutOfRange(t *testing.T) {
	g := pathGraph(t)
	e, err := pbfs.New(g)
	require.NoError(t, err)

	distances := []uint32{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}
	require.ErrorIs(t, e.Run(-1, distances), pbfs.ErrSourceOutOfRange)
	require.ErrorIs(t, e.Run(10, distances), pbfs.ErrSourceOutOfRange)
	require.Equal(t, []uint32{7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, distances)
}

// Parallel traversal must agree with the serial oracle on every graph
// shape, element-wise.
func TestRun_MatchesSerialBFS(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"path":         pathGraph(t),
		"disconnected": buildUndirected(t, 5, [][2]int{{0, 1}, {1, 2}, {3, 4}}),
		"star": func() *graph.Graph {
			const leaves = 300
			edges := make([][2]int, leaves)
			for i := 0; i < leaves; i++ {
				edges[i] = [2]int{0, i + 1}
			}

			return buildUndirected(t, leaves+1, edges)
		}(),
	}

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			e, err := pbfs.New(g, pbfs.WithBlockSize(2), pbfs.WithBagSize(16), pbfs.WithThreshold(1))
			require.NoError(t, err)

			pDist := make([]uint32, g.NNodes())
			bDist := make([]uint32, g.NNodes())
			require.NoError(t, e.Run(0, pDist))
			require.NoError(t, bfs.Run(g, 0, bDist))

			require.Equal(t, bDist, pDist, "%s: pbfs and bfs distances diverge", name)
		})
	}
}

// Running the same traversal twice on the same graph and source must
// produce identical distances.
func TestRun_IdempotentAcrossReruns(t *testing.T) {
	g := pathGraph(t)
	e, err := pbfs.New(g, pbfs.WithBlockSize(2), pbfs.WithBagSize(8), pbfs.WithThreshold(1))
	require.NoError(t, err)

	d1 := make([]uint32, 10)
	d2 := make([]uint32, 10)
	require.NoError(t, e.Run(0, d1))
	require.NoError(t, e.Run(0, d2))
	require.Equal(t, d1, d2)
}
