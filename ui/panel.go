package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/water"
)

// Space reserved to the right of a color picker for raygui's hue bar.
const hueBarReserve = 30

// PanelActions reports what the user did in the panel this frame.
type PanelActions struct {
	Changed bool // A parameter was edited
	Reset   bool // Reset button pressed
	Save    bool // Save preset button pressed
}

// TuningPanel renders the top-right parameter panel.
type TuningPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	rows []Row
}

// NewTuningPanel creates a panel anchored to the top-right of a screen screenW wide.
func NewTuningPanel(screenW, width int32, rows []Row) *TuningPanel {
	p := &TuningPanel{
		renderer: NewRenderer(),
		width:    width,
		visible:  true,
		rows:     rows,
	}
	p.Resize(screenW)
	return p
}

// Resize re-anchors the panel for a new screen width.
func (p *TuningPanel) Resize(screenW int32) {
	p.x = screenW - p.width
	if p.x < 0 {
		p.x = 0
	}
	p.y = 0
}

// SetVisible shows or hides the panel.
func (p *TuningPanel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is shown.
func (p *TuningPanel) IsVisible() bool {
	return p.visible
}

// Toggle switches panel visibility.
func (p *TuningPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// sliderRowHeight is the vertical space one slider row takes.
func (p *TuningPanel) sliderRowHeight() int32 {
	return p.renderer.Theme.LineHeight + p.renderer.Theme.SliderHeight + 6
}

// colorRowHeight is the vertical space one color picker row takes.
func (p *TuningPanel) colorRowHeight() int32 {
	return p.renderer.Theme.LineHeight + p.renderer.Theme.PickerHeight + 8
}

// rowHeight is the vertical space a row takes.
func (p *TuningPanel) rowHeight(r Row) int32 {
	if r.Color != nil {
		return p.colorRowHeight()
	}
	return p.sliderRowHeight()
}

// Height returns the panel height for its current content.
func (p *TuningPanel) Height() int32 {
	t := p.renderer.Theme
	h := t.Padding*2 +
		t.LineHeight + 4 + // title
		t.ButtonHeight
	for _, r := range p.rows {
		h += p.rowHeight(r)
	}
	return h
}

// Contains reports whether a screen point falls on the visible panel.
func (p *TuningPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= float32(p.x) && x < float32(p.x+p.width) &&
		y >= float32(p.y) && y < float32(p.y+p.Height())
}

// Draw renders the panel and applies edits to params.
func (p *TuningPanel) Draw(params *water.Params) PanelActions {
	var actions PanelActions
	if !p.visible {
		return actions
	}

	r := p.renderer
	t := r.Theme
	r.DrawPanel(p.x, p.y, p.width, p.Height())

	x := p.x + t.Padding
	inner := p.width - t.Padding*2
	y := p.y + t.Padding

	y = r.DrawSectionHeader(x, y, "Water") + 4

	for _, row := range p.rows {
		var changed bool
		switch {
		case row.Slider != nil:
			changed = p.drawSlider(x, y, inner, *row.Slider, params)
		case row.Color != nil:
			changed = p.drawColor(x, y, inner, *row.Color, params)
		}
		if changed {
			actions.Changed = true
		}
		y += p.rowHeight(row)
	}

	buttonW := (inner - t.Padding) / 2
	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(buttonW), Height: float32(t.ButtonHeight)}, "Reset") {
		actions.Reset = true
	}
	if gui.Button(rl.Rectangle{X: float32(x + buttonW + t.Padding), Y: float32(y), Width: float32(buttonW), Height: float32(t.ButtonHeight)}, "Save preset") {
		actions.Save = true
	}

	return actions
}

// drawSlider draws one slider row and reports whether the value changed.
func (p *TuningPanel) drawSlider(x, y, width int32, s SliderDescriptor, params *water.Params) bool {
	t := p.renderer.Theme
	v := s.Value(params)

	p.renderer.DrawLabel(x, y, s.Label)
	value := fmt.Sprintf(s.Format, *v)
	valueW := rl.MeasureText(value, t.FontSize)
	rl.DrawText(value, x+width-valueW, y, t.FontSize, t.ValueColor)
	y += t.LineHeight

	next := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(t.SliderHeight)},
		"", "",
		*v, s.Range.Min, s.Range.Max,
	)
	next = s.Range.Quantize(next)
	if next == *v {
		return false
	}
	*v = next
	return true
}

// drawColor draws one color picker row and reports whether the color changed.
func (p *TuningPanel) drawColor(x, y, width int32, c ColorDescriptor, params *water.Params) bool {
	t := p.renderer.Theme
	hex := c.Value(params)

	current := ColorFromHex(*hex)
	y = p.renderer.DrawColorSwatch(x, y, c.Label, current)

	picked := gui.ColorPicker(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width - hueBarReserve), Height: float32(t.PickerHeight)},
		"",
		current,
	)
	next := HexFromColor(picked)
	if next == HexFromColor(current) {
		return false
	}
	*hex = next
	return true
}
