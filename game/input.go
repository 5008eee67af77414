package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/telemetry"
	"github.com/pthm-cable/ragingsea/ui"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyH) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.resetParams()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.savePreset()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.orbit.Reset()
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		g.screenshot()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.orbit.Resize(w, h)
	g.panel.Resize(int32(w))
}

// handleCameraInput drives the orbit camera: left drag rotates, right drag pans, wheel dollies.
// Drags that start on the panel belong to the panel.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	overPanel := g.panel.Contains(mouse.X, mouse.Y)

	if !g.isDragging && !overPanel {
		for _, b := range []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonRight} {
			if rl.IsMouseButtonPressed(b) {
				g.dragging = b
				g.isDragging = true
				break
			}
		}
	}

	if g.isDragging {
		if !rl.IsMouseButtonDown(g.dragging) {
			g.isDragging = false
		} else {
			delta := rl.GetMouseDelta()
			if g.dragging == rl.MouseButtonLeft {
				g.orbit.Rotate(delta.X, delta.Y, g.screenHeight)
			} else {
				g.orbit.Pan(delta.X, delta.Y, g.screenHeight)
			}
		}
	}

	if !overPanel {
		g.orbit.Dolly(rl.GetMouseWheelMove())
	}
}

// handlePanelActions applies what the user did in the panel this frame.
func (g *Game) handlePanelActions(a ui.PanelActions) {
	if a.Changed {
		g.dirty = true
	}
	if a.Reset {
		g.resetParams()
	}
	if a.Save {
		g.savePreset()
	}
}

// resetParams restores the configured water parameters.
func (g *Game) resetParams() {
	g.params = configParams(g.config())
	g.dirty = true
	g.recordParams("reset")
	g.setStatus("parameters reset")
	slog.Info("water params reset")
}

// savePreset writes the current parameters to the preset path.
func (g *Game) savePreset() {
	if err := g.params.SavePreset(g.presetPath); err != nil {
		slog.Error("failed to save preset", "preset", g.presetPath, "error", err)
		g.setStatus("save failed: " + err.Error())
		return
	}
	g.recordParams("save")
	g.setStatus("preset saved to " + g.presetPath)
	slog.Info("preset saved", "preset", g.presetPath)
}

// recordParams appends a parameter snapshot to params.csv.
func (g *Game) recordParams(event string) {
	if g.outputManager == nil {
		return
	}
	if err := g.outputManager.WriteParams(telemetry.NewParamsRecord(g.elapsed, event, g.params)); err != nil {
		slog.Error("failed to write params", "error", err)
	}
}

// screenshot saves the current frame to the working directory.
func (g *Game) screenshot() {
	name := fmt.Sprintf("ragingsea_%06d.png", g.frame)
	rl.TakeScreenshot(name)
	g.setStatus("screenshot " + name)
	slog.Info("screenshot saved", "file", name)
}
