package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
)

func buildGraph(edges [][2]int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, e := range edges {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}
	return g
}

func TestCollectThreeNodePath(t *testing.T) {
	// Path 0-1-2: degrees {0:1, 1:2, 2:1}.
	g := buildGraph([][2]int64{{0, 1}, {1, 2}})

	stats, err := Collect(g)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 2, stats.Edges)
	assert.ElementsMatch(t, []int{1, 2, 1}, stats.Degrees)
	assert.InDelta(t, 4.0/3.0, stats.Mean, 1e-9)
	assert.Equal(t, 1.0, stats.Median)
	assert.Equal(t, 2, stats.Max)
}

func TestCollectFourNodeChain(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {1, 2}, {2, 3}})

	stats, err := Collect(g)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Nodes)
	assert.Equal(t, 3, stats.Edges)
	assert.InDelta(t, 1.5, stats.Mean, 1e-9)
	assert.Equal(t, 1.5, stats.Median) // even count, midpoint of 1 and 2
	assert.Equal(t, 2, stats.Max)
}

func TestCollectDensity(t *testing.T) {
	tests := []struct {
		name    string
		edges   [][2]int64
		extra   []int64 // isolated nodes
		density float64
	}{
		{"single node", nil, []int64{0}, 0},
		{"two isolated nodes", nil, []int64{0, 1}, 0},
		{"single edge", [][2]int64{{0, 1}}, nil, 1},
		{"triangle", [][2]int64{{0, 1}, {1, 2}, {0, 2}}, nil, 1},
		{"chain of four", [][2]int64{{0, 1}, {1, 2}, {2, 3}}, nil, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(tt.edges)
			for _, id := range tt.extra {
				g.AddNode(simple.Node(id))
			}

			stats, err := Collect(g)
			require.NoError(t, err)

			assert.InDelta(t, tt.density, stats.Density, 1e-9)
			assert.GreaterOrEqual(t, stats.Density, 0.0)
			assert.LessOrEqual(t, stats.Density, 1.0)
		})
	}
}

func TestCollectDegreeSumInvariant(t *testing.T) {
	g := buildGraph([][2]int64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {3, 4}})

	stats, err := Collect(g)
	require.NoError(t, err)

	sum := 0
	for _, d := range stats.Degrees {
		sum += d
	}
	assert.Equal(t, 2*stats.Edges, sum)
}

func TestCollectEmptyGraph(t *testing.T) {
	_, err := Collect(simple.NewUndirectedGraph())
	require.ErrorIs(t, err, ErrEmptyGraph)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"single", []float64{3}, 3},
		{"odd", []float64{2, 1, 1}, 1},
		{"even", []float64{2, 1, 2, 1}, 1.5},
		{"even unsorted", []float64{9, 1, 3, 7}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, median(tt.values))
		})
	}
}

func TestSummaryFormatting(t *testing.T) {
	stats := &DegreeStats{
		Nodes:   4039,
		Edges:   88234,
		Density: 0.010819963503439287,
		Mean:    43.69101262688784,
		Median:  25,
		Max:     1045,
	}

	out := stats.Summary()
	assert.Contains(t, out, "Nodes:         4039")
	assert.Contains(t, out, "Edges:         88234")
	assert.Contains(t, out, "Density:       0.0108")
	assert.Contains(t, out, "Mean degree:   43.69")
	assert.Contains(t, out, "Median degree: 25")
	assert.Contains(t, out, "Max degree:    1045")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
