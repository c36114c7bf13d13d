// Headless scenario runner: loads a YAML scenario of zones and queries,
// executes them against the safety engine, and writes telemetry.
//
// Usage: go run ./cmd/scenario -scenario fight.yaml -seed 1 -output-dir out/
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ShoOtaku/HaiyaBox/config"
	"github.com/ShoOtaku/HaiyaBox/safety"
	"github.com/ShoOtaku/HaiyaBox/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	scenarioPath := flag.String("scenario", "", "Path to the scenario YAML (required)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	repeat := flag.Int("repeat", 1, "Times to run each query (for timing windows)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *scenarioPath == "" {
		slog.Error("missing -scenario")
		os.Exit(2)
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	sc, err := LoadScenario(*scenarioPath)
	if err != nil {
		slog.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	calc := safety.NewCalculator(safety.Options{
		Seed: rngSeed,
		Params: safety.Params{
			DirectionSamples: cfg.Engine.DirectionSamples,
			DirectionProbe:   cfg.Engine.DirectionProbe,
			GridResolution:   cfg.Engine.GridResolution,
			PoissonAttempts:  cfg.Sampling.Attempts,
			MinSpacingFloor:  cfg.Sampling.MinSpacingFloor,
			DangerWeight:     cfg.Scoring.DangerWeight,
			TargetWeight:     cfg.Scoring.TargetWeight,
		},
	})

	bounds, err := sc.BuildArena()
	if err != nil {
		slog.Error("invalid arena", "error", err)
		os.Exit(1)
	}
	calc.SetArena(bounds)

	zones, err := sc.BuildZones()
	if err != nil {
		slog.Error("invalid zones", "error", err)
		os.Exit(1)
	}
	calc.AddZones(zones)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to open output", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("could not snapshot config", "error", err)
	}

	recorder := telemetry.NewRecorder(cfg.Telemetry.WindowSize)
	perf := telemetry.NewPerfCollector(cfg.Telemetry.WindowSize)

	slog.Info("scenario loaded",
		"zones", calc.ZoneCount(),
		"queries", len(sc.Queries),
		"seed", rngSeed,
		"repeat", *repeat,
	)

	for qi, spec := range sc.Queries {
		for rep := 0; rep < *repeat; rep++ {
			perf.StartStep()
			perf.StartPhase(telemetry.PhaseQuery)

			start := time.Now()
			points, stats := spec.Build(calc).ExecuteWithStats()
			elapsed := time.Since(start)

			perf.StartPhase(telemetry.PhaseOutput)

			rec := telemetry.QueryRecord{
				Time:       spec.Time,
				Generation: calc.Generation(),
				Requested:  spec.Count,
				Candidates: stats.Candidates,
				Safe:       stats.Safe,
				Selected:   stats.Selected,
				DurationUS: elapsed.Microseconds(),
			}
			if err := output.WriteQuery(rec); err != nil {
				slog.Error("failed to write query record", "error", err)
			}
			if window, done := recorder.Record(rec); done {
				window.LogStats()
				if err := output.WriteWindow(window); err != nil {
					slog.Error("failed to write window stats", "error", err)
				}
			}
			perf.EndStep()

			if rep == 0 {
				slog.Info("query executed",
					"query", qi,
					"t", spec.Time,
					"requested", spec.Count,
					"selected", len(points),
					"active_zones", calc.ActiveZoneCount(spec.Time),
					"duration_us", elapsed.Microseconds(),
				)
				for _, p := range points {
					slog.Debug("position", "query", qi, "x", p.X, "z", p.Z)
				}
			}
		}
	}

	if window, done := recorder.Flush(); done {
		window.LogStats()
		if err := output.WriteWindow(window); err != nil {
			slog.Error("failed to write window stats", "error", err)
		}
	}
	perf.Stats().LogStats()

	if dir := output.Dir(); dir != "" {
		slog.Info("run complete", "queries", recorder.Total(), "output", dir)
	} else {
		slog.Info("run complete", "queries", recorder.Total())
	}
}
