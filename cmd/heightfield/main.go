// Height field exporter - samples the water surface on the CPU and writes it as CSV.
// Needs no window or GPU.
//
// Usage: go run ./cmd/heightfield -time 1.5 -out heights.csv
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/water"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	presetPath := flag.String("preset", "", "Water preset to sample (empty = config params)")
	outPath := flag.String("out", "heights.csv", "Output CSV path")
	t := flag.Float64("time", 0, "Time in seconds")
	segments := flag.Int("segments", 0, "Grid subdivisions per axis (0 = geometry.segments from config)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	params, err := water.FromConfigClamped(cfg.Water)
	if err != nil {
		slog.Warn("config water params out of range, clamped", "error", err)
	}
	if *presetPath != "" {
		p, err := water.LoadPreset(*presetPath, params)
		if err != nil {
			slog.Error("failed to load preset", "error", err)
			os.Exit(1)
		}
		params = p
	}

	n := cfg.Geometry.Segments
	if *segments > 0 {
		n = *segments
	}

	verts := params.Sample(float32(cfg.Geometry.Width), float32(cfg.Geometry.Depth), n, float32(*t))
	rows := water.Rows(verts)

	f, err := os.Create(*outPath)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	if err := water.WriteHeightCSV(f, rows); err != nil {
		f.Close()
		slog.Error("failed to write height field", "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
		os.Exit(1)
	}

	s := water.Summarize(rows)
	slog.Info("height field written",
		"out", *outPath,
		"time", *t,
		"segments", n,
		"samples", s.Samples,
		"min", s.Min,
		"max", s.Max,
		"mean", s.Mean,
		"stddev", s.StdDev,
	)
}
