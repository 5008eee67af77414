package camera

import (
	"math"
	"testing"
)

func newTestOrbit(damping bool) *Orbit {
	return New(Vec3{1, 1, 1}, Vec3{}, 75, 16.0/9.0, 0.1, 100, Options{
		EnableDamping: damping,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MinDistance:   0.2,
		MaxDistance:   20,
	})
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestNew(t *testing.T) {
	o := newTestOrbit(true)

	if !near(o.Radius, float32(math.Sqrt(3)), 1e-5) {
		t.Errorf("expected radius sqrt(3), got %f", o.Radius)
	}
	if !near(o.Theta, math.Pi/4, 1e-5) {
		t.Errorf("expected azimuth pi/4, got %f", o.Theta)
	}

	// Position should round-trip through spherical coordinates
	p := o.Position()
	if !near(p.X, 1, 1e-5) || !near(p.Y, 1, 1e-5) || !near(p.Z, 1, 1e-5) {
		t.Errorf("expected position (1,1,1), got %+v", p)
	}
}

func TestRotateWithoutDamping(t *testing.T) {
	o := newTestOrbit(false)
	theta := o.Theta

	// Dragging a quarter of the viewport height turns a quarter revolution
	o.Rotate(180, 0, 720)
	o.Update()

	if !near(o.Theta, theta-math.Pi/2, 1e-5) {
		t.Errorf("expected theta %f, got %f", theta-math.Pi/2, o.Theta)
	}
	if o.Update() {
		t.Error("no motion should remain without damping")
	}
}

func TestDampingConverges(t *testing.T) {
	o := newTestOrbit(true)
	theta := o.Theta

	o.Rotate(180, 0, 720)

	// First update applies only the damping fraction
	o.Update()
	firstStep := theta - o.Theta
	if !near(firstStep, math.Pi/2*0.05, 1e-5) {
		t.Errorf("expected first step %f, got %f", math.Pi/2*0.05, firstStep)
	}

	// Inertia keeps turning and converges on the full rotation
	for i := 0; i < 1000; i++ {
		o.Update()
	}
	if !near(o.Theta, theta-math.Pi/2, 1e-3) {
		t.Errorf("expected damped rotation to converge to %f, got %f", theta-math.Pi/2, o.Theta)
	}
	if o.Update() {
		t.Error("motion should have settled")
	}
}

func TestPolarClamp(t *testing.T) {
	o := newTestOrbit(false)

	o.Rotate(0, 10000, 720)
	o.Update()
	if o.Phi <= 0 || o.Phi >= math.Pi {
		t.Errorf("polar angle escaped (0, pi): %f", o.Phi)
	}

	o.Rotate(0, -10000, 720)
	o.Update()
	if o.Phi <= 0 || o.Phi >= math.Pi {
		t.Errorf("polar angle escaped (0, pi): %f", o.Phi)
	}
}

func TestDolly(t *testing.T) {
	o := newTestOrbit(true)
	r := o.Radius

	o.Dolly(1)
	o.Update()
	if !near(o.Radius, r*0.95, 1e-5) {
		t.Errorf("expected radius %f after one notch in, got %f", r*0.95, o.Radius)
	}

	o.Dolly(-2)
	o.Update()
	if !near(o.Radius, r*0.95/(0.95*0.95), 1e-4) {
		t.Errorf("expected radius %f after two notches out, got %f", r/0.95, o.Radius)
	}
}

func TestDollyClamp(t *testing.T) {
	o := newTestOrbit(false)

	o.Dolly(500)
	o.Update()
	if o.Radius != 0.2 {
		t.Errorf("expected radius clamped to 0.2, got %f", o.Radius)
	}

	o.Dolly(-500)
	o.Update()
	if o.Radius != 20 {
		t.Errorf("expected radius clamped to 20, got %f", o.Radius)
	}
}

func TestPanMovesTarget(t *testing.T) {
	o := newTestOrbit(false)
	before := o.Position().Sub(o.Target)

	o.Pan(100, 0, 720)
	o.Update()

	if o.Target.Len() == 0 {
		t.Fatal("expected target to move")
	}
	// Panning translates, it does not rotate
	after := o.Position().Sub(o.Target)
	if !near(before.X, after.X, 1e-5) || !near(before.Y, after.Y, 1e-5) || !near(before.Z, after.Z, 1e-5) {
		t.Errorf("pan changed view offset: %+v -> %+v", before, after)
	}
	if math.Abs(float64(o.Target.Y)) > 1e-5 {
		t.Errorf("horizontal pan should not move target vertically, got %+v", o.Target)
	}
}

func TestResize(t *testing.T) {
	o := newTestOrbit(true)

	o.Resize(800, 400)
	if o.Aspect != 2 {
		t.Errorf("expected aspect 2, got %f", o.Aspect)
	}

	// Degenerate sizes are ignored
	o.Resize(0, 400)
	if o.Aspect != 2 {
		t.Errorf("expected aspect unchanged, got %f", o.Aspect)
	}
}

func TestReset(t *testing.T) {
	o := newTestOrbit(true)
	o.Rotate(300, 120, 720)
	o.Dolly(3)
	o.Pan(50, 50, 720)
	for i := 0; i < 10; i++ {
		o.Update()
	}

	o.Reset()

	p := o.Position()
	if !near(p.X, 1, 1e-5) || !near(p.Y, 1, 1e-5) || !near(p.Z, 1, 1e-5) {
		t.Errorf("expected position (1,1,1) after reset, got %+v", p)
	}
	if o.Update() {
		t.Error("reset should drop pending motion")
	}
}

func TestUpIsOrthogonal(t *testing.T) {
	o := newTestOrbit(false)
	up := o.Up()
	forward := o.Target.Sub(o.Position()).Normalize()

	dot := up.X*forward.X + up.Y*forward.Y + up.Z*forward.Z
	if !near(dot, 0, 1e-5) {
		t.Errorf("up not orthogonal to forward: dot=%f", dot)
	}
	if up.Y <= 0 {
		t.Errorf("up should point upward, got %+v", up)
	}
}
