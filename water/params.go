// Package water holds the tunable water surface parameters and a CPU
// reference of the displacement and colour maths run by the water shaders.
package water

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pthm-cable/ragingsea/config"
)

// Vec2 is a two-component uniform value.
type Vec2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Params is the mutable settings object mirrored into the shader uniforms.
// Colors are kept as #rrggbb strings, the form the panel edits them in.
type Params struct {
	BigWavesElevation float32 `yaml:"big_waves_elevation"`
	BigWavesFrequency Vec2    `yaml:"big_waves_frequency"`
	BigWaveSpeed      float32 `yaml:"big_wave_speed"`

	SmallWavesElevation float32 `yaml:"small_waves_elevation"`
	SmallWavesFrequency float32 `yaml:"small_waves_frequency"`
	SmallWavesSpeed     float32 `yaml:"small_waves_speed"`
	SmallIterations     float32 `yaml:"small_iterations"` // Integral; the shader loop bound is a float

	DepthColor      string  `yaml:"depth_color"`
	SurfaceColor    string  `yaml:"surface_color"`
	ColorOffset     float32 `yaml:"color_offset"`
	ColorMultiplier float32 `yaml:"color_multiplier"`
}

// DefaultParams returns the parameters from the embedded default config.
func DefaultParams() Params {
	return FromConfig(config.Defaults().Water)
}

// FromConfig builds parameters from the water section of the config.
func FromConfig(wc config.WaterConfig) Params {
	return Params{
		BigWavesElevation:   float32(wc.BigWavesElevation),
		BigWavesFrequency:   Vec2{X: float32(wc.BigWavesFrequency[0]), Y: float32(wc.BigWavesFrequency[1])},
		BigWaveSpeed:        float32(wc.BigWaveSpeed),
		SmallWavesElevation: float32(wc.SmallWavesElevation),
		SmallWavesFrequency: float32(wc.SmallWavesFrequency),
		SmallWavesSpeed:     float32(wc.SmallWavesSpeed),
		SmallIterations:     float32(wc.SmallIterations),
		DepthColor:          wc.DepthColor,
		SurfaceColor:        wc.SurfaceColor,
		ColorOffset:         float32(wc.ColorOffset),
		ColorMultiplier:     float32(wc.ColorMultiplier),
	}
}

// Range is the slider range for a numeric parameter.
type Range struct {
	Min  float32
	Max  float32
	Step float32
}

// Quantize rounds v to the nearest step and clamps it into the range.
func (r Range) Quantize(v float32) float32 {
	if r.Step > 0 {
		step := decimalStep(r.Step)
		v = float32(math.Round(float64(v)/step) * step)
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// decimalStep widens a float32 step to the float64 nearest its shortest
// decimal form, so 0.00001 multiplies back to 0.2 rather than 0.19999999.
func decimalStep(step float32) float64 {
	d, err := strconv.ParseFloat(strconv.FormatFloat(float64(step), 'f', -1, 32), 64)
	if err != nil {
		return float64(step)
	}
	return d
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// Field describes one numeric parameter: its panel label, uniform slot and range.
type Field struct {
	Label   string
	Uniform string
	Range   Range
	Value   func(*Params) *float32
}

// Fields lists the numeric parameters in panel order: big waves, color mix, then small waves.
func Fields() []Field {
	return fields
}

var fields = []Field{
	{"uBigWavesElevation", UniformBigWavesElevation, Range{0, 1, 0.00001},
		func(p *Params) *float32 { return &p.BigWavesElevation }},
	{"uBigWavesFrequencyX", UniformBigWavesFrequency, Range{0, 20, 0.01},
		func(p *Params) *float32 { return &p.BigWavesFrequency.X }},
	{"uBigWavesFrequencyY", UniformBigWavesFrequency, Range{0, 20, 0.01},
		func(p *Params) *float32 { return &p.BigWavesFrequency.Y }},
	{"uBigWaveSpeed", UniformBigWaveSpeed, Range{0, 10, 0.01},
		func(p *Params) *float32 { return &p.BigWaveSpeed }},
	{"uColorMultiplyier", UniformColorMultiplier, Range{0, 10, 0.0001},
		func(p *Params) *float32 { return &p.ColorMultiplier }},
	{"uColorOffSet", UniformColorOffset, Range{0, 10, 0.0001},
		func(p *Params) *float32 { return &p.ColorOffset }},
	{"uSmallWavesElevation", UniformSmallWavesElevation, Range{0, 1, 0.001},
		func(p *Params) *float32 { return &p.SmallWavesElevation }},
	{"uSmallWavesFrequency", UniformSmallWavesFrequency, Range{0, 30, 0.001},
		func(p *Params) *float32 { return &p.SmallWavesFrequency }},
	{"uSmallWavesSpeed", UniformSmallWavesSpeed, Range{0, 4, 0.001},
		func(p *Params) *float32 { return &p.SmallWavesSpeed }},
	{"uSmallIterations", UniformSmallIterations, Range{0, 5, 1},
		func(p *Params) *float32 { return &p.SmallIterations }},
}

// Validate reports the first parameter outside its range or a malformed color.
func (p *Params) Validate() error {
	for _, f := range fields {
		v := *f.Value(p)
		if math.IsNaN(float64(v)) || !f.Range.Contains(v) {
			return fmt.Errorf("%s = %g outside [%g, %g]", f.Label, v, f.Range.Min, f.Range.Max)
		}
	}
	if p.SmallIterations != float32(math.Trunc(float64(p.SmallIterations))) {
		return fmt.Errorf("uSmallIterations = %g is not a whole number", p.SmallIterations)
	}
	if _, err := ParseHex(p.DepthColor); err != nil {
		return fmt.Errorf("depth color: %w", err)
	}
	if _, err := ParseHex(p.SurfaceColor); err != nil {
		return fmt.Errorf("surface color: %w", err)
	}
	return nil
}

// Clamp forces every numeric parameter into its range and rounds the iteration count.
func (p *Params) Clamp() {
	for _, f := range fields {
		v := f.Value(p)
		if math.IsNaN(float64(*v)) {
			*v = f.Range.Min
			continue
		}
		if *v < f.Range.Min {
			*v = f.Range.Min
		} else if *v > f.Range.Max {
			*v = f.Range.Max
		}
	}
	p.SmallIterations = float32(math.Round(float64(p.SmallIterations)))
}

// FromConfigClamped is FromConfig with every numeric parameter forced into
// its range. The returned error describes what was out of range, if anything;
// the params are usable either way.
func FromConfigClamped(wc config.WaterConfig) (Params, error) {
	p := FromConfig(wc)
	err := p.Validate()
	if err != nil {
		p.Clamp()
	}
	return p, err
}
