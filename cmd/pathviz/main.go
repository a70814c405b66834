// Command pathviz finds the shortest path between two nodes of a
// social-network edge list and renders the path together with a capped
// neighborhood around it.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jswiatek/socialgraph/internal/logging"
	"github.com/jswiatek/socialgraph/pkg/config"
	"github.com/jswiatek/socialgraph/pkg/graphio"
	"github.com/jswiatek/socialgraph/pkg/pathfind"
	"github.com/jswiatek/socialgraph/pkg/render"
	"github.com/jswiatek/socialgraph/pkg/subgraph"
)

func main() {
	cfg, err := config.Load(os.Getenv("SOCIALGRAPH_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Logging.Level)

	fmt.Printf("Loading edge list from %s...\n", cfg.Input.File)
	g, report, err := graphio.NewLoader(log).Load(cfg.Input.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: file %s not found\n", cfg.Input.File)
			os.Exit(1)
		}
		log.WithError(err).Fatal("loading edge list failed")
	}
	log.Infof("loaded %d edges (%d duplicate, %d self-loop, %d malformed lines skipped)",
		report.Edges, report.Duplicates, report.SelfLoops, report.Malformed)

	source, target := cfg.Path.Source, cfg.Path.Target
	fmt.Printf("Searching for the shortest path between %d and %d...\n", source, target)

	path, err := pathfind.BFSFinder{}.FindPath(g, source, target)
	switch {
	case errors.Is(err, pathfind.ErrNodeNotFound):
		fmt.Fprintln(os.Stderr, "One of the chosen nodes does not exist in the graph.")
		os.Exit(1)
	case errors.Is(err, pathfind.ErrNoPath):
		fmt.Fprintln(os.Stderr, "No path exists between the chosen nodes.")
		os.Exit(1)
	case err != nil:
		log.WithError(err).Fatal("path search failed")
	}
	fmt.Printf("Path found! Length (edge count): %d\n", len(path)-1)

	sub, err := subgraph.Extract(g, path, subgraph.Options{
		IncludeNeighbors: cfg.Path.IncludeNeighbors,
		MaxNeighbors:     cfg.Path.MaxNeighbors,
	})
	if err != nil {
		log.WithError(err).Fatal("extracting path neighborhood failed")
	}

	netOpts := render.NetworkOptions{
		LayoutSeed: cfg.Render.LayoutSeed,
		Title:      fmt.Sprintf("Shortest path: %d -> %d", source, target),
	}
	if err := render.Network(sub, path, netOpts, cfg.Render.Output); err != nil {
		log.WithError(err).Fatal("rendering path visualization failed")
	}
	fmt.Printf("Path visualization written to %s\n", cfg.Render.Output)
}
