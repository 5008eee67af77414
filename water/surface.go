package water

import "math"

// BigWaves returns the large swell height at world position (x, z) and time t.
func (p *Params) BigWaves(x, z, t float32) float32 {
	phase := t * p.BigWaveSpeed
	return sin(x*p.BigWavesFrequency.X+phase) *
		sin(z*p.BigWavesFrequency.Y+phase) *
		p.BigWavesElevation
}

// SmallWaves returns the (non-positive) choppy noise contribution.
// Iteration i samples the noise at i times the base frequency with 1/i weight.
func (p *Params) SmallWaves(x, z, t float32) float32 {
	var h float32
	for i := float32(1); i <= p.SmallIterations; i++ {
		n := Noise3(x*p.SmallWavesFrequency*i, z*p.SmallWavesFrequency*i, t*p.SmallWavesSpeed)
		h -= abs(n * p.SmallWavesElevation / i)
	}
	return h
}

// Elevation returns the vertical displacement the vertex shader applies.
func (p *Params) Elevation(x, z, t float32) float32 {
	return p.BigWaves(x, z, t) + p.SmallWaves(x, z, t)
}

// MixStrength maps an elevation to the depth→surface blend factor.
// Not clamped: values outside [0, 1] extrapolate like GLSL mix.
func (p *Params) MixStrength(elevation float32) float32 {
	return (elevation + p.ColorOffset) * p.ColorMultiplier
}

// Color returns the displayed fragment color for an elevation.
// Invalid hex colors resolve to black.
func (p *Params) Color(elevation float32) RGB {
	depth, _ := ParseHex(p.DepthColor)
	surface, _ := ParseHex(p.SurfaceColor)
	return Mix(depth, surface, p.MixStrength(elevation)).Clamped()
}

// Vertex is one sampled point of the displaced plane.
type Vertex struct {
	X         float32
	Z         float32
	Elevation float32
	Color     RGB
}

// Sample evaluates the surface on the plane grid the renderer draws:
// (segments+1)^2 vertices spanning width x depth centered on the origin, row-major in z.
func (p *Params) Sample(width, depth float32, segments int, t float32) []Vertex {
	if segments < 1 {
		return nil
	}
	n := segments + 1
	out := make([]Vertex, 0, n*n)
	for iz := 0; iz < n; iz++ {
		z := -depth/2 + depth*float32(iz)/float32(segments)
		for ix := 0; ix < n; ix++ {
			x := -width/2 + width*float32(ix)/float32(segments)
			e := p.Elevation(x, z, t)
			out = append(out, Vertex{X: x, Z: z, Elevation: e, Color: p.Color(e)})
		}
	}
	return out
}

func sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
