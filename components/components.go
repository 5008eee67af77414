// Package components defines ECS components for the scene.
package components

import "github.com/pthm-cable/ragingsea/renderer"

// Vec3 is a world-space position or Euler rotation.
type Vec3 struct {
	X, Y, Z float32
}

// Transform places a drawable in the world.
type Transform struct {
	Position Vec3
	Rotation Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    float32
}

// Surface marks an entity drawn by a water surface renderer.
type Surface struct {
	Name     string
	Renderer *renderer.WaterSurface
	Visible  bool
}
