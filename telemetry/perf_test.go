package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/water"
)

// fakeClock advances by a fixed step every time it is read.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestFrameCollector_BasicTiming(t *testing.T) {
	fc := NewFrameCollector(10)
	clock := &fakeClock{t: time.Unix(0, 0), step: time.Millisecond}
	fc.now = clock.now

	for i := 0; i < 5; i++ {
		fc.StartFrame()
		fc.StartPhase(PhaseInput)
		fc.StartPhase(PhaseScene)
		fc.EndFrame()
	}

	stats := fc.Stats()
	if stats.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", stats.Frames)
	}
	// StartPhase, StartPhase, EndFrame each read the clock once after StartFrame
	if stats.Mean != 3*time.Millisecond {
		t.Errorf("expected 3ms mean, got %v", stats.Mean)
	}
	if stats.StdDev != 0 {
		t.Errorf("expected zero stddev for constant frames, got %v", stats.StdDev)
	}
	if stats.PhaseAvg[PhaseInput] != time.Millisecond || stats.PhaseAvg[PhaseScene] != time.Millisecond {
		t.Errorf("unexpected phase averages: %v", stats.PhaseAvg)
	}
	if fps := stats.FPS; fps < 333 || fps > 334 {
		t.Errorf("expected ~333 fps, got %f", fps)
	}
}

func TestFrameCollector_RollingWindow(t *testing.T) {
	fc := NewFrameCollector(5)

	for i := 1; i <= 10; i++ {
		fc.Record(FrameSample{Duration: time.Duration(i) * time.Millisecond})
	}

	stats := fc.Stats()
	if stats.Frames != 5 {
		t.Errorf("window should hold 5 frames, got %d", stats.Frames)
	}
	if fc.TotalFrames() != 10 {
		t.Errorf("expected 10 total frames, got %d", fc.TotalFrames())
	}
	// Only frames 6..10 remain
	if stats.Min != 6*time.Millisecond || stats.Max != 10*time.Millisecond {
		t.Errorf("unexpected min/max: %v %v", stats.Min, stats.Max)
	}
	if stats.Mean != 8*time.Millisecond {
		t.Errorf("expected 8ms mean, got %v", stats.Mean)
	}
	if stats.P95 != 10*time.Millisecond {
		t.Errorf("expected 10ms p95, got %v", stats.P95)
	}
}

func TestFrameCollector_PhasePercentages(t *testing.T) {
	fc := NewFrameCollector(10)

	for i := 0; i < 4; i++ {
		fc.Record(FrameSample{
			Duration: 10 * time.Millisecond,
			Phases: map[string]time.Duration{
				PhaseUniforms: time.Millisecond,
				PhaseScene:    9 * time.Millisecond,
			},
		})
	}

	stats := fc.Stats()
	if pct := stats.PhasePct[PhaseScene]; pct < 89.9 || pct > 90.1 {
		t.Errorf("expected scene ~90%%, got %f", pct)
	}
	if pct := stats.PhasePct[PhaseUniforms]; pct < 9.9 || pct > 10.1 {
		t.Errorf("expected uniforms ~10%%, got %f", pct)
	}
}

func TestFrameCollector_Empty(t *testing.T) {
	stats := NewFrameCollector(0).Stats()
	if stats.Frames != 0 || stats.Mean != 0 || stats.FPS != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestFrameStats_ToCSV(t *testing.T) {
	s := FrameStats{
		Mean:     16 * time.Millisecond,
		Max:      20 * time.Millisecond,
		FPS:      62.5,
		PhasePct: map[string]float64{PhaseScene: 80},
	}
	row := s.ToCSV(600, 10)
	if row.Frame != 600 || row.ElapsedSec != 10 {
		t.Errorf("unexpected position fields: %+v", row)
	}
	if row.MeanUS != 16000 || row.MaxUS != 20000 {
		t.Errorf("unexpected timing fields: %+v", row)
	}
	if row.ScenePct != 80 || row.UIPct != 0 {
		t.Errorf("unexpected phase fields: %+v", row)
	}
}

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v %v", om, err)
	}
	// Nil receivers are no-ops
	if err := om.WriteFrames(FrameStats{}, 0, 0); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManager_WritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	stats := FrameStats{Frames: 2, Mean: time.Millisecond}
	for i := 0; i < 3; i++ {
		if err := om.WriteFrames(stats, int64(i), float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteParams(NewParamsRecord(1.5, "save", water.DefaultParams())); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,elapsed_sec,") {
		t.Errorf("unexpected header %q", lines[0])
	}

	data, err = os.ReadFile(filepath.Join(dir, "params.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#186691") {
		t.Errorf("params.csv missing depth color: %s", data)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot should reload: %v", err)
	}
}
