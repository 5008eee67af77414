package water

import "math"

// Noise3 is classic 3D Perlin noise as evaluated by the vertex shader's
// cnoise (Gustavson's GLSL formulation), computed in float32.
// Returns 0 on every integer lattice point.
func Noise3(x, y, z float32) float32 {
	// Integer and fractional parts
	x0, y0, z0 := floor(x), floor(y), floor(z)
	fx0, fy0, fz0 := x-x0, y-y0, z-z0
	fx1, fy1, fz1 := fx0-1, fy0-1, fz0-1

	x1, y1, z1 := mod289(x0+1), mod289(y0+1), mod289(z0+1)
	x0, y0, z0 = mod289(x0), mod289(y0), mod289(z0)

	// Lattice hashes in the shader's ix/iy ordering
	h00 := permute(permute(x0) + y0)
	h10 := permute(permute(x1) + y0)
	h01 := permute(permute(x0) + y1)
	h11 := permute(permute(x1) + y1)

	n000 := corner(permute(h00+z0), fx0, fy0, fz0)
	n100 := corner(permute(h10+z0), fx1, fy0, fz0)
	n010 := corner(permute(h01+z0), fx0, fy1, fz0)
	n110 := corner(permute(h11+z0), fx1, fy1, fz0)
	n001 := corner(permute(h00+z1), fx0, fy0, fz1)
	n101 := corner(permute(h10+z1), fx1, fy0, fz1)
	n011 := corner(permute(h01+z1), fx0, fy1, fz1)
	n111 := corner(permute(h11+z1), fx1, fy1, fz1)

	u, v, w := fade(fx0), fade(fy0), fade(fz0)

	nz00 := lerp(n000, n001, w)
	nz10 := lerp(n100, n101, w)
	nz01 := lerp(n010, n011, w)
	nz11 := lerp(n110, n111, w)

	ny0 := lerp(nz00, nz01, v)
	ny1 := lerp(nz10, nz11, v)

	return 2.2 * lerp(ny0, ny1, u)
}

// corner derives the gradient for hash h and dots it with the offset (dx, dy, dz).
func corner(h, dx, dy, dz float32) float32 {
	gx := h / 7
	gy := fract(floor(gx)/7) - 0.5
	gx = fract(gx)
	gz := 0.5 - abs(gx) - abs(gy)
	sz := step(gz, 0)
	gx -= sz * (step(0, gx) - 0.5)
	gy -= sz * (step(0, gy) - 0.5)

	norm := taylorInvSqrt(gx*gx + gy*gy + gz*gz)
	return (gx*dx + gy*dy + gz*dz) * norm
}

func permute(x float32) float32 {
	return mod289((x*34 + 1) * x)
}

func taylorInvSqrt(r float32) float32 {
	return 1.79284291400159 - 0.85373472095314*r
}

func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func mod289(x float32) float32 {
	return x - 289*floor(x/289)
}

func floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

func fract(x float32) float32 {
	return x - floor(x)
}

// step mirrors GLSL step: 0 when x < edge, else 1.
func step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
