package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/camera"
	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/ui"
)

// Draw renders the scene, then the panel and HUD on top.
func (g *Game) Draw() {
	g.frames.StartPhase(telemetry.PhaseScene)

	rl.BeginDrawing()
	rl.ClearBackground(g.clearColor)

	rl.BeginMode3D(toCamera3D(g.orbit))
	// BeginMode3D uses fixed clip planes; replace them with the configured ones
	rl.SetMatrixProjection(projection(g.orbit))
	g.drawSurfaces()
	rl.EndMode3D()

	g.frames.StartPhase(telemetry.PhaseUI)
	actions := g.panel.Draw(&g.params)
	g.hud.Draw(g.hudData())
	g.handlePanelActions(actions)

	g.frames.StartPhase(telemetry.PhasePresent)
	rl.EndDrawing()

	g.frames.EndFrame()
	g.frame++
	g.flushTelemetry()
}

// hudData gathers the HUD readout for this frame.
func (g *Game) hudData() ui.HUDData {
	if g.status != "" && g.elapsed > g.statusUntil {
		g.status = ""
	}
	return ui.HUDData{
		Title:        g.config().Screen.Title,
		FPS:          rl.GetFPS(),
		Elapsed:      float32(g.elapsed),
		FrameMs:      float64(g.hudStats.Mean.Microseconds()) / 1000,
		Probe:        g.params.Elevation(0, 0, float32(g.elapsed)),
		CameraDist:   g.orbit.Radius,
		PanelVisible: g.panel.IsVisible(),
		Status:       g.status,
	}
}

// toCamera3D converts the orbit state to a raylib camera.
func toCamera3D(o *camera.Orbit) rl.Camera3D {
	pos := o.Position()
	up := o.Up()
	return rl.Camera3D{
		Position:   rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z},
		Target:     rl.Vector3{X: o.Target.X, Y: o.Target.Y, Z: o.Target.Z},
		Up:         rl.Vector3{X: up.X, Y: up.Y, Z: up.Z},
		Fovy:       o.FOV,
		Projection: rl.CameraPerspective,
	}
}

// projection builds the perspective matrix for the orbit's lens.
func projection(o *camera.Orbit) rl.Matrix {
	return rl.MatrixPerspective(o.FOV*math.Pi/180, o.Aspect, o.Near, o.Far)
}
