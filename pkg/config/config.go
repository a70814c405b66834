package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config aggregates every knob of a single analysis run. A Config is built
// once at startup and treated as immutable afterwards.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Path      PathConfig      `yaml:"path"`
	Histogram HistogramConfig `yaml:"histogram"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// InputConfig locates the edge-list dataset.
type InputConfig struct {
	File string `yaml:"file"`
}

// PathConfig selects the endpoints of the shortest-path query and how much
// neighborhood context to pull into the visualization.
type PathConfig struct {
	Source           int64 `yaml:"source"`
	Target           int64 `yaml:"target"`
	IncludeNeighbors bool  `yaml:"include_neighbors"`
	MaxNeighbors     int   `yaml:"max_neighbors"`
}

// HistogramConfig controls the degree-distribution plot.
type HistogramConfig struct {
	Bins     int    `yaml:"bins"`
	RangeMax int    `yaml:"range_max"`
	Output   string `yaml:"output"`
}

// RenderConfig controls the path visualization.
type RenderConfig struct {
	LayoutSeed uint64 `yaml:"layout_seed"`
	Output     string `yaml:"output"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// Default returns the configuration used when nothing is overridden. The
// values mirror the reference analysis of the SNAP ego-Facebook dataset.
func Default() Config {
	return Config{
		Input: InputConfig{
			File: "facebook_combined.txt",
		},
		Path: PathConfig{
			Source:           0,
			Target:           4038,
			IncludeNeighbors: true,
			MaxNeighbors:     20,
		},
		Histogram: HistogramConfig{
			Bins:     40,
			RangeMax: 200,
			Output:   "degree_distribution.png",
		},
		Render: RenderConfig{
			LayoutSeed: 42,
			Output:     "shortest_path.png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from the defaults, an optional YAML file, and finally
// SOCIALGRAPH_* environment overrides. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Input.File = getEnv("SOCIALGRAPH_INPUT", c.Input.File)
	c.Path.Source = getInt64("SOCIALGRAPH_SOURCE", c.Path.Source)
	c.Path.Target = getInt64("SOCIALGRAPH_TARGET", c.Path.Target)
	c.Path.IncludeNeighbors = getBool("SOCIALGRAPH_INCLUDE_NEIGHBORS", c.Path.IncludeNeighbors)
	c.Path.MaxNeighbors = getInt("SOCIALGRAPH_MAX_NEIGHBORS", c.Path.MaxNeighbors)
	c.Histogram.Bins = getInt("SOCIALGRAPH_HIST_BINS", c.Histogram.Bins)
	c.Histogram.RangeMax = getInt("SOCIALGRAPH_HIST_RANGE", c.Histogram.RangeMax)
	c.Histogram.Output = getEnv("SOCIALGRAPH_HIST_OUTPUT", c.Histogram.Output)
	c.Render.LayoutSeed = getUint64("SOCIALGRAPH_LAYOUT_SEED", c.Render.LayoutSeed)
	c.Render.Output = getEnv("SOCIALGRAPH_PATH_OUTPUT", c.Render.Output)
	c.Logging.Level = getEnv("SOCIALGRAPH_LOG_LEVEL", c.Logging.Level)
}

// Validate rejects configurations that cannot produce a meaningful run.
func (c Config) Validate() error {
	if c.Input.File == "" {
		return fmt.Errorf("config: input file must not be empty")
	}
	if c.Path.Source < 0 || c.Path.Target < 0 {
		return fmt.Errorf("config: node identifiers must be non-negative")
	}
	if c.Path.MaxNeighbors < 0 {
		return fmt.Errorf("config: max_neighbors must be >= 0, got %d", c.Path.MaxNeighbors)
	}
	if c.Histogram.Bins <= 0 {
		return fmt.Errorf("config: histogram bins must be > 0, got %d", c.Histogram.Bins)
	}
	if c.Histogram.RangeMax <= 0 {
		return fmt.Errorf("config: histogram range_max must be > 0, got %d", c.Histogram.RangeMax)
	}
	if c.Histogram.Output == "" || c.Render.Output == "" {
		return fmt.Errorf("config: output paths must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseUint(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
