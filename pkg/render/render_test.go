package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jswiatek/socialgraph/pkg/analysis"
)

func TestBinDegrees(t *testing.T) {
	// 4 bins over [0, 40]: widths of 10.
	counts := binDegrees([]int{0, 5, 9, 10, 15, 39, 40, 41, 300}, 4, 40)

	require.Len(t, counts, 4)
	assert.Equal(t, 3.0, counts[0]) // 0, 5, 9
	assert.Equal(t, 2.0, counts[1]) // 10, 15
	assert.Equal(t, 0.0, counts[2])
	assert.Equal(t, 2.0, counts[3]) // 39, and 40 lands in the last bin
	// 41 and 300 exceed the display range and are excluded.
}

func TestHistogramWritesFile(t *testing.T) {
	stats := &analysis.DegreeStats{
		Nodes:   4,
		Edges:   3,
		Density: 0.5,
		Degrees: []int{1, 2, 2, 1},
		Mean:    1.5,
		Median:  1.5,
		Max:     2,
	}

	out := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Histogram(stats, HistogramOptions{Bins: 40, RangeMax: 200}, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestHistogramDisclosesTruncation(t *testing.T) {
	stats := &analysis.DegreeStats{
		Nodes:   3,
		Edges:   2,
		Degrees: []int{1, 2, 250},
		Mean:    84.33,
		Median:  2,
		Max:     250,
	}

	out := filepath.Join(t.TempDir(), "hist.png")
	require.NoError(t, Histogram(stats, HistogramOptions{Bins: 40, RangeMax: 200}, out))

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestHistogramRejectsBadOptions(t *testing.T) {
	stats := &analysis.DegreeStats{Degrees: []int{1}}
	out := filepath.Join(t.TempDir(), "hist.png")

	assert.Error(t, Histogram(stats, HistogramOptions{Bins: 0, RangeMax: 200}, out))
	assert.Error(t, Histogram(stats, HistogramOptions{Bins: 40, RangeMax: 0}, out))
}

func TestNetworkWritesFile(t *testing.T) {
	g := simple.NewUndirectedGraph()
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {1, 5}, {2, 6}} {
		g.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	out := filepath.Join(t.TempDir(), "path.png")
	opts := NetworkOptions{LayoutSeed: 42, Title: "Shortest path: 0 -> 2"}
	require.NoError(t, Network(g, []int64{0, 1, 2}, opts, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestNetworkEmptySubgraph(t *testing.T) {
	g := simple.NewUndirectedGraph()
	out := filepath.Join(t.TempDir(), "path.png")

	err := Network(g, nil, NetworkOptions{LayoutSeed: 42}, out)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}
