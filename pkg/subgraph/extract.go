// Package subgraph reduces a graph to a shortest path plus a capped local
// neighborhood, keeping the visualization readable.
package subgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jswiatek/socialgraph/pkg/pathfind"
)

// Options controls how much context is pulled in around the path.
type Options struct {
	// IncludeNeighbors adds direct neighbors of every path node.
	IncludeNeighbors bool
	// MaxNeighbors caps the neighbors contributed per path node. Neighbor
	// identifiers are sorted ascending before the cap is applied, so the
	// selection is deterministic.
	MaxNeighbors int
}

// Extract returns the subgraph of g induced on the path nodes plus, when
// opts.IncludeNeighbors is set, up to opts.MaxNeighbors neighbors of each
// path node. The path nodes are always part of the result, whatever the cap.
// A path node absent from g yields an error wrapping pathfind.ErrNodeNotFound.
func Extract(g graph.Undirected, pathNodes []int64, opts Options) (*simple.UndirectedGraph, error) {
	keep := make(map[int64]bool, len(pathNodes))
	for _, id := range pathNodes {
		if g.Node(id) == nil {
			return nil, fmt.Errorf("path node %d: %w", id, pathfind.ErrNodeNotFound)
		}
		keep[id] = true
	}

	if opts.IncludeNeighbors && opts.MaxNeighbors > 0 {
		for _, id := range pathNodes {
			neighbors := neighborIDs(g, id)
			if len(neighbors) > opts.MaxNeighbors {
				neighbors = neighbors[:opts.MaxNeighbors]
			}
			for _, nid := range neighbors {
				keep[nid] = true
			}
		}
	}

	return induce(g, keep), nil
}

// neighborIDs returns the neighbors of id sorted ascending. The underlying
// adjacency enumeration order is unspecified, so sorting keeps runs
// reproducible.
func neighborIDs(g graph.Undirected, id int64) []int64 {
	var ids []int64
	nodes := g.From(id)
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// induce builds the subgraph of g on the kept node set: every kept node and
// every edge of g with both endpoints kept.
func induce(g graph.Undirected, keep map[int64]bool) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for id := range keep {
		out.AddNode(simple.Node(id))
	}
	for u := range keep {
		to := g.From(u)
		for to.Next() {
			v := to.Node().ID()
			if keep[v] && u < v {
				out.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}
	return out
}
