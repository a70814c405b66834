package render

import (
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	pathNodeColor    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	contextNodeColor = color.RGBA{R: 211, G: 211, B: 211, A: 255} // light gray
	pathEdgeColor    = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	contextEdgeColor = color.RGBA{R: 224, G: 224, B: 224, A: 255} // #e0e0e0
)

// NetworkOptions controls the path visualization.
type NetworkOptions struct {
	// LayoutSeed seeds the force-directed layout so repeated runs place
	// nodes identically.
	LayoutSeed uint64
	// Title is drawn above the diagram.
	Title string
}

// Network renders sub as a 2D node-link diagram into a PNG at outPath. Nodes
// and edges on pathNodes are drawn large and red, the rest small and gray;
// only path nodes are labeled. Positions come from a seeded force-directed
// layout, so the picture is reproducible.
func Network(sub graph.Undirected, pathNodes []int64, opts NetworkOptions, outPath string) error {
	positions, err := layoutPositions(sub, opts.LayoutSeed)
	if err != nil {
		return err
	}

	classifier := NewPathClassifier(pathNodes)

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()

	if err := addEdges(p, sub, classifier, positions); err != nil {
		return err
	}
	if err := addNodes(p, sub, classifier, positions); err != nil {
		return err
	}
	if err := addPathLabels(p, pathNodes, positions); err != nil {
		return err
	}

	if err := p.Save(12*vg.Inch, 8*vg.Inch, outPath); err != nil {
		return fmt.Errorf("render: save network: %w", err)
	}
	return nil
}

type position struct{ x, y float64 }

// sortedIDs returns the node identifiers of positions in ascending order so
// plotters are added in a stable order.
func sortedIDs(positions map[int64]position) []int64 {
	ids := make([]int64, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// layoutPositions runs the seeded Eades force-directed layout over g and
// returns the resulting coordinates per node.
func layoutPositions(g graph.Undirected, seed uint64) (map[int64]position, error) {
	if g.Nodes().Len() == 0 {
		return nil, fmt.Errorf("render: empty subgraph")
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   100,
		Theta:     0.2,
		Src:       rand.NewSource(seed),
	}
	optimizer := layout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	positions := make(map[int64]position)
	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		coord := optimizer.Coord2(id)
		positions[id] = position{x: coord.X, y: coord.Y}
	}
	return positions, nil
}

func addEdges(p *plot.Plot, g graph.Undirected, classifier *PathClassifier, positions map[int64]position) error {
	for _, u := range sortedIDs(positions) {
		var toIDs []int64
		to := g.From(u)
		for to.Next() {
			toIDs = append(toIDs, to.Node().ID())
		}
		sort.Slice(toIDs, func(i, j int) bool { return toIDs[i] < toIDs[j] })
		for _, v := range toIDs {
			if u >= v {
				continue
			}
			pu, pv := positions[u], positions[v]
			line, err := plotter.NewLine(plotter.XYs{{X: pu.x, Y: pu.y}, {X: pv.x, Y: pv.y}})
			if err != nil {
				return fmt.Errorf("render: edge %d-%d: %w", u, v, err)
			}
			if classifier.Edge(u, v) == ClassPath {
				line.LineStyle = draw.LineStyle{Color: pathEdgeColor, Width: vg.Points(2)}
			} else {
				line.LineStyle = draw.LineStyle{Color: contextEdgeColor, Width: vg.Points(0.5)}
			}
			p.Add(line)
		}
	}
	return nil
}

func addNodes(p *plot.Plot, g graph.Undirected, classifier *PathClassifier, positions map[int64]position) error {
	var pathXYs, contextXYs plotter.XYs
	for _, id := range sortedIDs(positions) {
		pos := positions[id]
		xy := plotter.XY{X: pos.x, Y: pos.y}
		if classifier.Node(id) == ClassPath {
			pathXYs = append(pathXYs, xy)
		} else {
			contextXYs = append(contextXYs, xy)
		}
	}

	// Context first so path nodes draw on top.
	if len(contextXYs) > 0 {
		scatter, err := plotter.NewScatter(contextXYs)
		if err != nil {
			return fmt.Errorf("render: context nodes: %w", err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{Color: contextNodeColor, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
		p.Add(scatter)
	}
	if len(pathXYs) > 0 {
		scatter, err := plotter.NewScatter(pathXYs)
		if err != nil {
			return fmt.Errorf("render: path nodes: %w", err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{Color: pathNodeColor, Radius: vg.Points(7), Shape: draw.CircleGlyph{}}
		p.Add(scatter)
	}
	return nil
}

// addPathLabels labels path nodes with their identifiers; context nodes stay
// unlabeled to keep the diagram readable.
func addPathLabels(p *plot.Plot, pathNodes []int64, positions map[int64]position) error {
	ids := make([]int64, len(pathNodes))
	copy(ids, pathNodes)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var xys plotter.XYs
	var texts []string
	for _, id := range ids {
		pos, ok := positions[id]
		if !ok {
			continue
		}
		xys = append(xys, plotter.XY{X: pos.x, Y: pos.y})
		texts = append(texts, fmt.Sprintf("%d", id))
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("render: path labels: %w", err)
	}
	p.Add(labels)
	return nil
}
