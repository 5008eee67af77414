package water

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a color with components in [0, 1], the form the shader receives.
type RGB struct {
	R, G, B float32
}

// ParseHex parses a #rrggbb (or rrggbb) color.
// Bytes map to byte/255 as-is; the values are not converted from sRGB to linear.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}, nil
}

// FormatHex formats a color as #rrggbb, clamping out-of-range components.
func FormatHex(c RGB) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Bytes returns the color as 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// FromBytes builds a color from 8-bit channels.
func FromBytes(r, g, b uint8) RGB {
	return RGB{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}
}

// Slice returns the color as a vec3 uniform value.
func (c RGB) Slice() []float32 {
	return []float32{c.R, c.G, c.B}
}

// Mix linearly interpolates from a to b by t without clamping t, matching GLSL mix.
func Mix(a, b RGB, t float32) RGB {
	return RGB{
		R: a.R*(1-t) + b.R*t,
		G: a.G*(1-t) + b.G*t,
		B: a.B*(1-t) + b.B*t,
	}
}

// Clamped returns the color with every component clamped to [0, 1].
func (c RGB) Clamped() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(clamp01(v)) * 255))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
