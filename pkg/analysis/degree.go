// Package analysis computes degree-distribution statistics over an undirected
// simple graph.
package analysis

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyGraph is returned when statistics are requested for a graph with no
// nodes; mean, median and max are undefined over an empty degree sequence.
var ErrEmptyGraph = errors.New("analysis: graph has no nodes")

// DegreeStats holds the degree-distribution statistics of a graph.
type DegreeStats struct {
	Nodes   int
	Edges   int
	Density float64
	Degrees []int // one entry per node, no particular order
	Mean    float64
	Median  float64
	Max     int
}

// Collect computes counts, density and the degree statistics of g. Density is
// 2E/(N(N-1)) for N > 1 and 0 otherwise. The median is the ordinary
// statistical median: the midpoint of the two middle values for even-sized
// sequences.
func Collect(g graph.Undirected) (*DegreeStats, error) {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	degrees := make([]int, 0, len(nodes))
	values := make([]float64, 0, len(nodes))
	degreeSum := 0
	maxDegree := 0
	for _, n := range nodes {
		d := g.From(n.ID()).Len()
		degrees = append(degrees, d)
		values = append(values, float64(d))
		degreeSum += d
		if d > maxDegree {
			maxDegree = d
		}
	}

	// Each undirected edge contributes to two degrees.
	numNodes := len(nodes)
	numEdges := degreeSum / 2

	density := 0.0
	if numNodes > 1 {
		density = float64(2*numEdges) / float64(numNodes*(numNodes-1))
	}

	return &DegreeStats{
		Nodes:   numNodes,
		Edges:   numEdges,
		Density: density,
		Degrees: degrees,
		Mean:    stat.Mean(values, nil),
		Median:  median(values),
		Max:     maxDegree,
	}, nil
}

// median returns the statistical median of values. values must be non-empty.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Summary formats the statistics as a human-readable block, one labeled line
// per value.
func (s *DegreeStats) Summary() string {
	var b strings.Builder
	b.WriteString("--- Graph statistics ---\n")
	fmt.Fprintf(&b, "Nodes:         %d\n", s.Nodes)
	fmt.Fprintf(&b, "Edges:         %d\n", s.Edges)
	fmt.Fprintf(&b, "Density:       %.4f\n", s.Density)
	fmt.Fprintf(&b, "Mean degree:   %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Median degree: %g\n", s.Median)
	fmt.Fprintf(&b, "Max degree:    %d\n", s.Max)
	b.WriteString("------------------------\n")
	return b.String()
}
