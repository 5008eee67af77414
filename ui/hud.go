package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title        string
	FPS          int32
	Elapsed      float32
	FrameMs      float64 // Mean frame time over the telemetry window
	Probe        float32 // Surface elevation at the origin
	CameraDist   float32
	PanelVisible bool
	Status       string // Transient message such as "preset saved"
}

// HUD renders the top-left heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// labelValue is one HUD readout line.
type labelValue struct {
	Label string
	Value string
}

// hudRows formats the readouts shown under the title.
func hudRows(data HUDData) []labelValue {
	return []labelValue{
		{"FPS", fmt.Sprintf("%d", data.FPS)},
		{"Frame", fmt.Sprintf("%.2f ms", data.FrameMs)},
		{"Time", fmt.Sprintf("%.1f s", data.Elapsed)},
		{"Elevation @ origin", fmt.Sprintf("%+.4f", data.Probe)},
		{"Camera distance", fmt.Sprintf("%.2f", data.CameraDist)},
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	y := int32(36)
	for _, row := range hudRows(data) {
		y = h.renderer.DrawLabelValue(10, y, row.Label, row.Value)
	}

	if data.Status != "" {
		rl.DrawText(data.Status, 10, y+4, 16, rl.Yellow)
	}

	h.drawHints(data.PanelVisible)
}

// drawHints renders the key bindings along the bottom edge.
func (h *HUD) drawHints(panelVisible bool) {
	panel := "show"
	if panelVisible {
		panel = "hide"
	}
	hints := fmt.Sprintf("[H] %s panel  [R] reset  [S] save preset  [C] reset camera  [F12] screenshot", panel)
	rl.DrawText(hints, 10, int32(rl.GetScreenHeight())-24, h.renderer.Theme.FontSize, rl.Gray)
}
