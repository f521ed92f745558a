// Package dijkstra_test contains unit tests for the Dijkstra implementation.
package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heapforest/core"
	"github.com/katalvlaran/heapforest/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := core.NewAdjacencyList()
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestDijkstra_NilGraph(t *testing.T) {
	// Empty source takes priority over a nil graph.
	_, _, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewAdjacencyList()
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Any"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", 1)
	g.AddArc("C", "D", -5) // unreachable from A, still rejected
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "C→D")
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		_, _, _ = dijkstra.Dijkstra(core.NewAdjacencyList(), dijkstra.WithMaxDistance(-1))
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		_, _, _ = dijkstra.Dijkstra(core.NewAdjacencyList(), dijkstra.WithInfEdgeThreshold(0))
	})
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
	assert.Nil(t, prev)

	dist, prev, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["C"])
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, prev)
}

func TestDijkstra_DirectedDecrease(t *testing.T) {
	// A→B(2), A→C(1), C→B(1), B→D(3), C→D(5).
	// D is first reached at 6 via C and lowered to 5 via B.
	g := core.NewAdjacencyList()
	g.AddArc("A", "B", 2)
	g.AddArc("A", "C", 1)
	g.AddArc("C", "B", 1)
	g.AddArc("B", "D", 3)
	g.AddArc("C", "D", 5)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 1, "D": 5}, dist)
	assert.Equal(t, "B", prev["D"])

	// Arcs are one-way: nothing leads back to A.
	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), dist["A"])
}

func TestDijkstra_MixedArcs(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddArc("A", "B", 2)
	g.AddEdge("B", "C", 3)
	g.AddArc("C", "D", 1)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 5, "D": 6}, dist)
	assert.Equal(t, []string{"A", "B", "C"}, []string{prev["B"], prev["C"], prev["D"]})
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)

	cases := []struct {
		limit int64
		want  map[string]int64
	}{
		{0, map[string]int64{"A": 0, "B": math.MaxInt64, "C": math.MaxInt64, "D": math.MaxInt64}},
		{1, map[string]int64{"A": 0, "B": 1, "C": math.MaxInt64, "D": math.MaxInt64}},
		{3, map[string]int64{"A": 0, "B": 1, "C": 2, "D": 3}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("limit=%d", tc.limit), func(t *testing.T) {
			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(tc.limit))
			require.NoError(t, err)
			assert.Equal(t, tc.want, dist)
		})
	}
}

func TestDijkstra_InfThreshold(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 10)
	g.AddEdge("C", "W", 5) // wall

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), dist["C"])
	assert.Equal(t, int64(math.MaxInt64), dist["W"])
}

// ------------------------------------------------------------------------
// 4. Edge cases
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := core.NewAdjacencyList()
	g.AddVertex("Solo")
	g.AddEdge("X", "X", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("X"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["X"])
	assert.Equal(t, "", prev["X"])
	assert.Equal(t, int64(math.MaxInt64), dist["Solo"])
}

func TestDijkstra_ZeroWeightTies(t *testing.T) {
	// Many equal-distance entries exercise the heap's id tie-break.
	g := core.NewAdjacencyList()
	for i := 0; i < 50; i++ {
		g.AddArc("S", fmt.Sprintf("v%02d", i), 0)
		g.AddArc(fmt.Sprintf("v%02d", i), "T", 1)
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("S"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["T"])
	assert.Equal(t, int64(0), dist["v49"])
}

// ------------------------------------------------------------------------
// 5. Randomized comparison against Bellman-Ford
// ------------------------------------------------------------------------

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 30; round++ {
		n := 5 + rng.Intn(40)
		g := core.NewAdjacencyList()
		var arcs []arc
		for i := 0; i < n; i++ {
			g.AddVertex(fmt.Sprint(i))
		}
		for k := 0; k < n*4; k++ {
			a := arc{fmt.Sprint(rng.Intn(n)), fmt.Sprint(rng.Intn(n)), int64(rng.Intn(20))}
			g.AddArc(a.from, a.to, a.w)
			arcs = append(arcs, a)
		}

		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("0"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		want := bellmanFord(g.Vertices(), arcs, "0")
		require.Equal(t, want, dist, "round %d", round)

		// Every predecessor link is tight.
		for v, p := range prev {
			if p == "" {
				continue
			}
			assert.LessOrEqual(t, dist[p], dist[v])
		}
	}
}

type arc struct {
	from, to string
	w        int64
}

func bellmanFord(vs []string, arcs []arc, src string) map[string]int64 {
	d := make(map[string]int64, len(vs))
	for _, v := range vs {
		d[v] = math.MaxInt64
	}
	d[src] = 0
	for i := 0; i < len(vs); i++ {
		for _, a := range arcs {
			if d[a.from] != math.MaxInt64 && d[a.from]+a.w < d[a.to] {
				d[a.to] = d[a.from] + a.w
			}
		}
	}

	return d
}
