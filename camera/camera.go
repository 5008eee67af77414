// Package camera provides a perspective camera with damped orbit controls.
package camera

import "math"

// polarEpsilon keeps the polar angle off the poles where the view basis degenerates.
const polarEpsilon = 1e-6

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Len returns the Euclidean length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns the unit vector, or zero for a zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Cross returns v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Options configures orbit behavior.
type Options struct {
	EnableDamping bool
	DampingFactor float32 // Fraction of pending motion applied per update
	RotateSpeed   float32
	ZoomSpeed     float32
	PanSpeed      float32
	MinDistance   float32
	MaxDistance   float32 // 0 = unbounded
}

// Orbit is a perspective camera orbiting a target point.
// Input methods queue motion; Update applies it.
type Orbit struct {
	// Target is the point the camera looks at
	Target Vec3

	// Spherical position around Target: Theta is the azimuth from +Z
	// around +Y, Phi the polar angle from +Y.
	Radius, Theta, Phi float32

	// Projection
	FOV       float32 // Vertical field of view in degrees
	Aspect    float32
	Near, Far float32

	Options Options

	// Pending motion
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  Vec3

	// Initial state for Reset
	home struct {
		target             Vec3
		radius, theta, phi float32
	}
}

// New creates an orbit camera at position looking at target.
func New(position, target Vec3, fov, aspect, near, far float32, opts Options) *Orbit {
	o := &Orbit{
		Target:  target,
		FOV:     fov,
		Aspect:  aspect,
		Near:    near,
		Far:     far,
		Options: opts,
		scale:   1,
	}
	o.Radius, o.Theta, o.Phi = toSpherical(position.Sub(target))
	o.home.target = o.Target
	o.home.radius, o.home.theta, o.home.phi = o.Radius, o.Theta, o.Phi
	return o
}

// Position returns the camera position in world coordinates.
func (o *Orbit) Position() Vec3 {
	return o.Target.Add(fromSpherical(o.Radius, o.Theta, o.Phi))
}

// Up returns the camera's up direction.
func (o *Orbit) Up() Vec3 {
	forward := o.Target.Sub(o.Position()).Normalize()
	return o.right(forward).Cross(forward)
}

func (o *Orbit) right(forward Vec3) Vec3 {
	return forward.Cross(Vec3{0, 1, 0}).Normalize()
}

// Rotate queues an orbit by a pointer drag of (dx, dy) pixels.
// A drag across the full viewport height turns a full revolution.
func (o *Orbit) Rotate(dx, dy, viewportH float32) {
	if viewportH <= 0 {
		return
	}
	o.deltaTheta -= 2 * math.Pi * dx / viewportH * o.Options.RotateSpeed
	o.deltaPhi -= 2 * math.Pi * dy / viewportH * o.Options.RotateSpeed
}

// Dolly queues a zoom by wheel notches; positive moves toward the target.
func (o *Orbit) Dolly(wheel float32) {
	if wheel == 0 {
		return
	}
	step := float32(math.Pow(0.95, float64(o.Options.ZoomSpeed)))
	o.scale *= float32(math.Pow(float64(step), float64(wheel)))
}

// Pan queues a screen-space pan by a pointer drag of (dx, dy) pixels.
// The target moves so that the point under the pointer follows it.
func (o *Orbit) Pan(dx, dy, viewportH float32) {
	if viewportH <= 0 {
		return
	}
	position := o.Position()
	offset := position.Sub(o.Target)
	// Half the visible height at the target distance
	halfFov := float64(o.FOV) * math.Pi / 360
	targetDistance := offset.Len() * float32(math.Tan(halfFov))

	forward := offset.Scale(-1).Normalize()
	right := o.right(forward)
	up := right.Cross(forward)

	dx *= o.Options.PanSpeed
	dy *= o.Options.PanSpeed
	o.panOffset = o.panOffset.
		Add(right.Scale(-2 * dx * targetDistance / viewportH)).
		Add(up.Scale(2 * dy * targetDistance / viewportH))
}

// Update applies queued motion. With damping only a fraction of pending
// rotation and pan is applied, and the remainder decays, producing inertia.
// Returns true while motion is still pending.
func (o *Orbit) Update() bool {
	factor := float32(1)
	if o.Options.EnableDamping {
		factor = o.Options.DampingFactor
	}

	o.Theta += o.deltaTheta * factor
	o.Phi += o.deltaPhi * factor
	o.Phi = clamp(o.Phi, polarEpsilon, math.Pi-polarEpsilon)

	o.Radius *= o.scale
	o.Radius = clamp(o.Radius, o.Options.MinDistance, o.maxDistance())

	o.Target = o.Target.Add(o.panOffset.Scale(factor))

	if o.Options.EnableDamping {
		o.deltaTheta *= 1 - factor
		o.deltaPhi *= 1 - factor
		o.panOffset = o.panOffset.Scale(1 - factor)
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
		o.panOffset = Vec3{}
	}
	o.scale = 1

	const settled = 1e-6
	return absf(o.deltaTheta) > settled || absf(o.deltaPhi) > settled || o.panOffset.Len() > settled
}

func (o *Orbit) maxDistance() float32 {
	if o.Options.MaxDistance <= 0 {
		return math.MaxFloat32
	}
	return o.Options.MaxDistance
}

// Resize updates the aspect ratio for a new viewport size.
func (o *Orbit) Resize(viewportW, viewportH float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	o.Aspect = viewportW / viewportH
}

// Reset returns the camera to its initial position and drops pending motion.
func (o *Orbit) Reset() {
	o.Target = o.home.target
	o.Radius, o.Theta, o.Phi = o.home.radius, o.home.theta, o.home.phi
	o.deltaTheta, o.deltaPhi = 0, 0
	o.panOffset = Vec3{}
	o.scale = 1
}

// toSpherical converts an offset to (radius, azimuth, polar).
func toSpherical(v Vec3) (radius, theta, phi float32) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = float32(math.Atan2(float64(v.X), float64(v.Z)))
	phi = float32(math.Acos(float64(clamp(v.Y/radius, -1, 1))))
	return radius, theta, phi
}

// fromSpherical converts (radius, azimuth, polar) to an offset.
func fromSpherical(radius, theta, phi float32) Vec3 {
	sinPhi := float32(math.Sin(float64(phi)))
	return Vec3{
		X: radius * sinPhi * float32(math.Sin(float64(theta))),
		Y: radius * float32(math.Cos(float64(phi))),
		Z: radius * sinPhi * float32(math.Cos(float64(theta))),
	}
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
