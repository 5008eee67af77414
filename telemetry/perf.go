// Package telemetry tracks frame timing and writes it out for later inspection.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one rendered frame.
const (
	PhaseInput    = "input"
	PhaseUniforms = "uniforms"
	PhaseScene    = "scene"
	PhaseUI       = "ui"
	PhasePresent  = "present" // Buffer swap and frame pacing
)

// Phases lists the frame phases in execution order.
var Phases = []string{PhaseInput, PhaseUniforms, PhaseScene, PhaseUI, PhasePresent}

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	Duration time.Duration
	Phases   map[string]time.Duration
}

// FrameCollector tracks frame timing over a rolling window.
type FrameCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	totalFrames   int64
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	now func() time.Time
}

// NewFrameCollector creates a new frame collector.
// windowSize: number of frames to aggregate over (e.g., 120 for 2 seconds at 60fps).
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (f *FrameCollector) StartFrame() {
	f.frameStart = f.now()
	f.currentPhases = make(map[string]time.Duration)
	f.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (f *FrameCollector) StartPhase(phase string) {
	now := f.now()
	if f.lastPhase != "" {
		f.currentPhases[f.lastPhase] += now.Sub(f.phaseStart)
	}
	f.phaseStart = now
	f.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (f *FrameCollector) EndFrame() {
	now := f.now()
	if f.lastPhase != "" {
		f.currentPhases[f.lastPhase] += now.Sub(f.phaseStart)
	}
	f.Record(FrameSample{
		Duration: now.Sub(f.frameStart),
		Phases:   f.currentPhases,
	})
	f.lastPhase = ""
}

// Record adds a finished frame sample to the window.
func (f *FrameCollector) Record(s FrameSample) {
	f.samples[f.writeIndex] = s
	f.writeIndex = (f.writeIndex + 1) % f.windowSize
	if f.sampleCount < f.windowSize {
		f.sampleCount++
	}
	f.totalFrames++
}

// TotalFrames returns the number of frames recorded since creation.
func (f *FrameCollector) TotalFrames() int64 {
	return f.totalFrames
}

// FrameStats holds aggregated frame statistics over the window.
type FrameStats struct {
	Frames int

	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
	P95    time.Duration

	// Phase breakdown (average durations and share of the mean frame)
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (f *FrameCollector) Stats() FrameStats {
	stats := FrameStats{
		Frames:   f.sampleCount,
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if f.sampleCount == 0 {
		return stats
	}

	durations := make([]float64, f.sampleCount)
	phaseSum := make(map[string]float64)
	for i := 0; i < f.sampleCount; i++ {
		s := f.samples[i]
		durations[i] = float64(s.Duration)
		for phase, d := range s.Phases {
			phaseSum[phase] += float64(d)
		}
	}

	mean, std := stat.MeanStdDev(durations, nil)
	if f.sampleCount < 2 {
		std = 0
	}
	stats.Mean = time.Duration(mean)
	stats.StdDev = time.Duration(std)
	stats.Min = time.Duration(floats.Min(durations))
	stats.Max = time.Duration(floats.Max(durations))

	sort.Float64s(durations)
	stats.P95 = time.Duration(stat.Quantile(0.95, stat.Empirical, durations, nil))

	for phase, sum := range phaseSum {
		avg := sum / float64(f.sampleCount)
		stats.PhaseAvg[phase] = time.Duration(avg)
		if mean > 0 {
			stats.PhasePct[phase] = avg / mean * 100
		}
	}

	if mean > 0 {
		stats.FPS = float64(time.Second) / mean
	}
	return stats
}

// LogStats logs frame statistics.
func (s FrameStats) LogStats() {
	attrs := []any{
		"frames", s.Frames,
		"mean_frame_us", s.Mean.Microseconds(),
		"stddev_frame_us", s.StdDev.Microseconds(),
		"max_frame_us", s.Max.Microseconds(),
		"p95_frame_us", s.P95.Microseconds(),
		"fps", int(s.FPS),
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}

	slog.Info("frame stats", attrs...)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Frame       int64   `csv:"frame"`
	ElapsedSec  float64 `csv:"elapsed_sec"`
	MeanUS      int64   `csv:"mean_frame_us"`
	StdDevUS    int64   `csv:"stddev_frame_us"`
	MinUS       int64   `csv:"min_frame_us"`
	MaxUS       int64   `csv:"max_frame_us"`
	P95US       int64   `csv:"p95_frame_us"`
	FPS         float64 `csv:"fps"`
	InputPct    float64 `csv:"input_pct"`
	UniformsPct float64 `csv:"uniforms_pct"`
	ScenePct    float64 `csv:"scene_pct"`
	UIPct       float64 `csv:"ui_pct"`
	PresentPct  float64 `csv:"present_pct"`
}

// ToCSV converts FrameStats to a flat CSV-friendly struct.
func (s FrameStats) ToCSV(frame int64, elapsed float64) FrameStatsCSV {
	return FrameStatsCSV{
		Frame:       frame,
		ElapsedSec:  elapsed,
		MeanUS:      s.Mean.Microseconds(),
		StdDevUS:    s.StdDev.Microseconds(),
		MinUS:       s.Min.Microseconds(),
		MaxUS:       s.Max.Microseconds(),
		P95US:       s.P95.Microseconds(),
		FPS:         s.FPS,
		InputPct:    s.PhasePct[PhaseInput],
		UniformsPct: s.PhasePct[PhaseUniforms],
		ScenePct:    s.PhasePct[PhaseScene],
		UIPct:       s.PhasePct[PhaseUI],
		PresentPct:  s.PhasePct[PhasePresent],
	}
}
