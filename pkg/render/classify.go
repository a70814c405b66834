package render

// Class tells path elements apart from surrounding context when drawing.
type Class int

const (
	// ClassContext marks nodes and edges that are only neighborhood context.
	ClassContext Class = iota
	// ClassPath marks nodes and edges that belong to the highlighted path.
	ClassPath
)

// PathClassifier classifies the nodes and edges of a subgraph against a path.
// An edge is on the path only if its endpoints are a consecutive pair of the
// path, in either orientation.
type PathClassifier struct {
	onPath    map[int64]bool
	pathEdges map[[2]int64]bool
}

// NewPathClassifier builds a classifier for the given ordered path.
func NewPathClassifier(path []int64) *PathClassifier {
	c := &PathClassifier{
		onPath:    make(map[int64]bool, len(path)),
		pathEdges: make(map[[2]int64]bool, len(path)),
	}
	for _, id := range path {
		c.onPath[id] = true
	}
	for i := 0; i+1 < len(path); i++ {
		c.pathEdges[edgeKey(path[i], path[i+1])] = true
	}
	return c
}

// Node reports whether id lies on the path.
func (c *PathClassifier) Node(id int64) Class {
	if c.onPath[id] {
		return ClassPath
	}
	return ClassContext
}

// Edge reports whether the edge between u and v is a path edge. Orientation
// does not matter.
func (c *PathClassifier) Edge(u, v int64) Class {
	if c.pathEdges[edgeKey(u, v)] {
		return ClassPath
	}
	return ClassContext
}

func edgeKey(u, v int64) [2]int64 {
	if u > v {
		u, v = v, u
	}
	return [2]int64{u, v}
}
