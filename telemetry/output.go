package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/ragingsea/config"
	"github.com/pthm-cable/ragingsea/water"
)

// OutputManager handles run output: frame stats and parameter snapshots as CSV.
type OutputManager struct {
	dir        string
	framesFile *os.File
	paramsFile *os.File

	// Track if headers have been written
	framesHeaderWritten bool
	paramsHeaderWritten bool
}

// ParamsRecord is one row of params.csv, written whenever the parameters are
// reset or saved.
type ParamsRecord struct {
	ElapsedSec          float64 `csv:"elapsed_sec"`
	Event               string  `csv:"event"`
	BigWavesElevation   float32 `csv:"big_waves_elevation"`
	BigWavesFrequencyX  float32 `csv:"big_waves_frequency_x"`
	BigWavesFrequencyY  float32 `csv:"big_waves_frequency_y"`
	BigWaveSpeed        float32 `csv:"big_wave_speed"`
	SmallWavesElevation float32 `csv:"small_waves_elevation"`
	SmallWavesFrequency float32 `csv:"small_waves_frequency"`
	SmallWavesSpeed     float32 `csv:"small_waves_speed"`
	SmallIterations     float32 `csv:"small_iterations"`
	DepthColor          string  `csv:"depth_color"`
	SurfaceColor        string  `csv:"surface_color"`
	ColorOffset         float32 `csv:"color_offset"`
	ColorMultiplier     float32 `csv:"color_multiplier"`
}

// NewParamsRecord flattens params into a CSV row.
func NewParamsRecord(elapsed float64, event string, p water.Params) ParamsRecord {
	return ParamsRecord{
		ElapsedSec:          elapsed,
		Event:               event,
		BigWavesElevation:   p.BigWavesElevation,
		BigWavesFrequencyX:  p.BigWavesFrequency.X,
		BigWavesFrequencyY:  p.BigWavesFrequency.Y,
		BigWaveSpeed:        p.BigWaveSpeed,
		SmallWavesElevation: p.SmallWavesElevation,
		SmallWavesFrequency: p.SmallWavesFrequency,
		SmallWavesSpeed:     p.SmallWavesSpeed,
		SmallIterations:     p.SmallIterations,
		DepthColor:          p.DepthColor,
		SurfaceColor:        p.SurfaceColor,
		ColorOffset:         p.ColorOffset,
		ColorMultiplier:     p.ColorMultiplier,
	}
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	f, err = os.Create(filepath.Join(dir, "params.csv"))
	if err != nil {
		om.framesFile.Close()
		return nil, fmt.Errorf("creating params.csv: %w", err)
	}
	om.paramsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrames writes a frame stats record to frames.csv.
func (om *OutputManager) WriteFrames(stats FrameStats, frame int64, elapsed float64) error {
	if om == nil {
		return nil
	}
	records := []FrameStatsCSV{stats.ToCSV(frame, elapsed)}
	if err := writeRecords(records, om.framesFile, &om.framesHeaderWritten); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// WriteParams writes a parameter snapshot to params.csv.
func (om *OutputManager) WriteParams(r ParamsRecord) error {
	if om == nil {
		return nil
	}
	if err := writeRecords([]ParamsRecord{r}, om.paramsFile, &om.paramsHeaderWritten); err != nil {
		return fmt.Errorf("writing params: %w", err)
	}
	return nil
}

// writeRecords appends records, including the header only on the first write.
func writeRecords(records any, w io.Writer, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, w); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, w)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.framesFile, om.paramsFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
