package ui

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/water"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawColorSwatch draws a labeled color preview with its hex value.
func (r *Renderer) DrawColorSwatch(x, y int32, label string, color rl.Color) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	swatchX := x + r.Theme.LabelWidth
	rl.DrawRectangle(swatchX, y, 12, 12, color)
	rl.DrawRectangleLines(swatchX, y, 12, 12, r.Theme.PanelBorder)
	rl.DrawText(HexFromColor(color), swatchX+18, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// formatForStep returns a printf format showing as many decimals as the step has.
func formatForStep(step float32) string {
	if step <= 0 || step >= 1 {
		return "%.0f"
	}
	s := strconv.FormatFloat(float64(step), 'f', -1, 32)
	decimals := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decimals = len(s) - i - 1
	}
	return fmt.Sprintf("%%.%df", decimals)
}

// ColorFromHex converts a #rrggbb string to an opaque raylib color.
// Malformed input yields black.
func ColorFromHex(hex string) rl.Color {
	c, err := water.ParseHex(hex)
	if err != nil {
		return rl.Black
	}
	r, g, b := c.Bytes()
	return rl.Color{R: r, G: g, B: b, A: 255}
}

// HexFromColor formats a raylib color as #rrggbb, dropping alpha.
func HexFromColor(c rl.Color) string {
	return water.FormatHex(water.FromBytes(c.R, c.G, c.B))
}
