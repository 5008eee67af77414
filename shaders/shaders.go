// Package shaders embeds the GLSL programs drawn by the renderer.
package shaders

import _ "embed"

// WaterVertex displaces the plane by the big swell and the noise chop.
//
//go:embed water.vs
var WaterVertex string

// WaterFragment blends the depth and surface colors by elevation.
//
//go:embed water.fs
var WaterFragment string
