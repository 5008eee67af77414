package water

import "fmt"

// Uniform names. These are the slots the shader programs declare and must not change.
const (
	UniformTime                = "uTime"
	UniformBigWavesElevation   = "uBigWavesElevation"
	UniformBigWavesFrequency   = "uBigWavesFrequency"
	UniformBigWaveSpeed        = "uBigWaveSpeed"
	UniformSmallWavesElevation = "uSmallWavesElevation"
	UniformSmallWavesFrequency = "uSmallWavesFrequency"
	UniformSmallWavesSpeed     = "uSmallWavesSpeed"
	UniformSmallIterations     = "uSmallIterations"
	UniformDepthColor          = "uDeepthColor"
	UniformSurfaceColor        = "uSurfaceColor"
	UniformColorOffset         = "uColorOffSet"
	UniformColorMultiplier     = "uColorMultiplier"
)

// UniformKind is the GLSL type of a uniform slot.
type UniformKind int

const (
	KindFloat UniformKind = iota
	KindVec2
	KindVec3
)

// Uniform is a value ready to upload into a named slot.
type Uniform struct {
	Name  string
	Kind  UniformKind
	Value []float32
}

// Uniforms returns every parameter uniform (all but uTime) in upload form.
func (p *Params) Uniforms() ([]Uniform, error) {
	depth, err := ParseHex(p.DepthColor)
	if err != nil {
		return nil, fmt.Errorf("depth color: %w", err)
	}
	surface, err := ParseHex(p.SurfaceColor)
	if err != nil {
		return nil, fmt.Errorf("surface color: %w", err)
	}

	return []Uniform{
		{UniformBigWavesElevation, KindFloat, []float32{p.BigWavesElevation}},
		{UniformBigWavesFrequency, KindVec2, []float32{p.BigWavesFrequency.X, p.BigWavesFrequency.Y}},
		{UniformBigWaveSpeed, KindFloat, []float32{p.BigWaveSpeed}},
		{UniformSmallWavesElevation, KindFloat, []float32{p.SmallWavesElevation}},
		{UniformSmallWavesFrequency, KindFloat, []float32{p.SmallWavesFrequency}},
		{UniformSmallWavesSpeed, KindFloat, []float32{p.SmallWavesSpeed}},
		{UniformSmallIterations, KindFloat, []float32{p.SmallIterations}},
		{UniformDepthColor, KindVec3, depth.Slice()},
		{UniformSurfaceColor, KindVec3, surface.Slice()},
		{UniformColorOffset, KindFloat, []float32{p.ColorOffset}},
		{UniformColorMultiplier, KindFloat, []float32{p.ColorMultiplier}},
	}, nil
}

// UniformNames lists every slot the water shaders declare, uTime included.
func UniformNames() []string {
	return []string{
		UniformTime,
		UniformBigWavesElevation,
		UniformBigWavesFrequency,
		UniformBigWaveSpeed,
		UniformSmallWavesElevation,
		UniformSmallWavesFrequency,
		UniformSmallWavesSpeed,
		UniformSmallIterations,
		UniformDepthColor,
		UniformSurfaceColor,
		UniformColorOffset,
		UniformColorMultiplier,
	}
}
