// Package graphio reads plain-text edge lists into gonum graphs.
//
// The expected format is the SNAP edge-list format: one edge per line, two
// whitespace-separated non-negative integer node identifiers. Blank lines and
// lines starting with '#' are skipped.
package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/graph/simple"
)

// LoadReport summarizes what the loader saw while parsing a file. Rows the
// loader skipped are counted here rather than silently dropped.
type LoadReport struct {
	Lines      int // non-comment, non-blank lines read
	Edges      int // distinct undirected edges added
	Duplicates int // repeated edges collapsed into an existing one
	SelfLoops  int // lines connecting a node to itself, skipped
	Malformed  int // lines that did not parse into two integers, skipped
}

// Loader parses edge-list files into undirected simple graphs.
type Loader struct {
	log *logrus.Logger
}

// NewLoader returns a Loader that reports skipped lines through log.
func NewLoader(log *logrus.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the edge list at path and builds an undirected, unweighted,
// simple graph. Duplicate edges collapse, self-loops are skipped, and a line
// that cannot be parsed into two non-negative integers is skipped with a
// warning. The returned error wraps fs.ErrNotExist when path does not
// resolve.
func (l *Loader) Load(path string) (*simple.UndirectedGraph, *LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open edge list: %w", err)
	}
	defer file.Close()

	g := simple.NewUndirectedGraph()
	report := &LoadReport{}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		report.Lines++

		u, v, ok := parseEdge(line)
		if !ok {
			report.Malformed++
			l.log.Warnf("skipping malformed line %d: %q", lineNo, line)
			continue
		}
		if u == v {
			report.SelfLoops++
			continue
		}

		ensureNode(g, u)
		ensureNode(g, v)
		if g.HasEdgeBetween(u, v) {
			report.Duplicates++
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		report.Edges++
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read edge list: %w", err)
	}

	return g, report, nil
}

// parseEdge extracts the two endpoint identifiers from a line. The format
// carries non-negative identifiers only, so a negative integer counts as
// malformed.
func parseEdge(line string) (u, v int64, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	u, errU := strconv.ParseInt(fields[0], 10, 64)
	v, errV := strconv.ParseInt(fields[1], 10, 64)
	if errU != nil || errV != nil || u < 0 || v < 0 {
		return 0, 0, false
	}
	return u, v, true
}

func ensureNode(g *simple.UndirectedGraph, id int64) {
	if g.Node(id) == nil {
		g.AddNode(simple.Node(id))
	}
}
