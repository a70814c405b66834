// Package pathfind answers shortest-path queries on unweighted undirected
// graphs. The search itself is delegated to gonum; this package adds endpoint
// validation and a stable error taxonomy.
package pathfind

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
)

var (
	// ErrNodeNotFound reports a queried node that is absent from the graph.
	ErrNodeNotFound = errors.New("node not found in graph")
	// ErrNoPath reports endpoints that lie in disconnected components.
	ErrNoPath = errors.New("no path between nodes")
)

// Finder computes a minimum-edge-count path between two nodes of g.
type Finder interface {
	FindPath(g graph.Undirected, from, to int64) ([]int64, error)
}

// BFSFinder finds shortest paths with a uniform-cost search, which on an
// unweighted graph is a breadth-first shortest path.
type BFSFinder struct{}

var _ Finder = BFSFinder{}

// FindPath returns the ordered node identifiers of a shortest path from
// `from` to `to`, both endpoints included. The path has len(result)-1 edges;
// from == to yields a single-node path. Errors wrap ErrNodeNotFound or
// ErrNoPath.
func (BFSFinder) FindPath(g graph.Undirected, from, to int64) ([]int64, error) {
	source := g.Node(from)
	if source == nil {
		return nil, fmt.Errorf("source %d: %w", from, ErrNodeNotFound)
	}
	if g.Node(to) == nil {
		return nil, fmt.Errorf("target %d: %w", to, ErrNodeNotFound)
	}

	shortest := path.DijkstraFrom(source, g)
	nodes, weight := shortest.To(to)
	if len(nodes) == 0 || math.IsInf(weight, 1) {
		return nil, fmt.Errorf("%d -> %d: %w", from, to, ErrNoPath)
	}

	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids, nil
}
