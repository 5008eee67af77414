// Package main fits water parameters to a target height field with CMA-ES.
//
// Usage: go run ./cmd/optimize -target heights.csv -time 1.5 -output fit
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/water"
)

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	presetPath := flag.String("preset", "", "Starting preset (empty = config params)")
	targetPath := flag.String("target", "", "Height field CSV to fit, as written by cmd/heightfield")
	t := flag.Float64("time", 0, "Time the target was sampled at, in seconds")
	maxEvals := flag.Int("max-evals", 500, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" || *targetPath == "" {
		log.Fatal("--output and --target are required")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	base, err := water.FromConfigClamped(config.Cfg().Water)
	if err != nil {
		log.Printf("config water params out of range, clamped: %v", err)
	}
	if *presetPath != "" {
		p, err := water.LoadPreset(*presetPath, base)
		if err != nil {
			log.Fatalf("failed to load preset: %v", err)
		}
		base = p
	}

	f, err := os.Open(*targetPath)
	if err != nil {
		log.Fatalf("failed to open target: %v", err)
	}
	target, err := water.ReadHeightCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("failed to read target: %v", err)
	}

	params, err := NewParamVector(fittedLabels)
	if err != nil {
		log.Fatal(err)
	}
	evaluator := NewFitnessEvaluator(params, base, target, float32(*t))

	dim := params.Dim()
	initX := params.Normalize(params.Extract(base))

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return evaluator.Evaluate(params.Denormalize(x))
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Sequential evaluation
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}

	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}

	// Open log file
	logFile, err := os.Create(filepath.Join(*outputDir, "optimize_log.csv"))
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	logWriter := csv.NewWriter(logFile)
	defer logWriter.Flush()

	header := []string{"eval", "mse"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	logWriter.Write(header)

	evalCount := 0
	bestFitness := evaluator.Evaluate(params.Extract(base))
	bestParams := base
	startTime := time.Now()

	// Wrap the function to log evaluations
	originalFunc := problem.Func
	problem.Func = func(x []float64) float64 {
		fitness := originalFunc(x)
		evalCount++

		// The values actually scored are the quantized ones
		applied := params.Apply(base, params.Denormalize(x))
		if fitness < bestFitness {
			bestFitness = fitness
			bestParams = applied
		}

		row := []string{strconv.Itoa(evalCount), fmt.Sprintf("%.8f", fitness)}
		for _, v := range params.Extract(applied) {
			row = append(row, fmt.Sprintf("%.6f", v))
		}
		logWriter.Write(row)

		if evalCount%25 == 0 {
			logWriter.Flush()
			elapsed := time.Since(startTime)
			fmt.Printf("Eval %d/%d: best mse=%.8f | elapsed: %s\n",
				evalCount, *maxEvals, bestFitness, formatDuration(elapsed))
		}
		return fitness
	}

	fmt.Printf("Fitting %d parameters to %d samples, population=%d, max_evals=%d\n",
		dim, len(target), popSize, *maxEvals)

	if _, err := optimize.Minimize(problem, initX, settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Printf("Best mse: %.8f\n", bestFitness)

	fmt.Println("\nBest parameters:")
	for i, v := range params.Extract(bestParams) {
		fmt.Printf("  %s: %.6f\n", params.Specs[i].Name, v)
	}

	presetOut := filepath.Join(*outputDir, "best_preset.yaml")
	if err := bestParams.SavePreset(presetOut); err != nil {
		log.Printf("failed to write best preset: %v", err)
	} else {
		fmt.Printf("\nBest preset saved to: %s\n", presetOut)
	}
}
