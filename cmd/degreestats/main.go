// Command degreestats loads a social-network edge list, prints its
// degree-distribution statistics, and renders the degree histogram.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jswiatek/socialgraph/internal/logging"
	"github.com/jswiatek/socialgraph/pkg/analysis"
	"github.com/jswiatek/socialgraph/pkg/config"
	"github.com/jswiatek/socialgraph/pkg/graphio"
	"github.com/jswiatek/socialgraph/pkg/render"
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

	stats, err := analysis.Collect(g)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyGraph) {
			fmt.Fprintf(os.Stderr, "Error: %s contains no usable edges\n", cfg.Input.File)
			os.Exit(1)
		}
		log.WithError(err).Fatal("computing statistics failed")
	}

	fmt.Print(stats.Summary())

	histOpts := render.HistogramOptions{
		Bins:     cfg.Histogram.Bins,
		RangeMax: cfg.Histogram.RangeMax,
	}
	if err := render.Histogram(stats, histOpts, cfg.Histogram.Output); err != nil {
		log.WithError(err).Fatal("rendering histogram failed")
	}
	fmt.Printf("Degree distribution written to %s\n", cfg.Histogram.Output)
}
