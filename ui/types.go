// Package ui provides a descriptor-driven tuning panel and HUD.
// Sliders are built from the parameter descriptors so the panel follows
// the parameter set without hard-coded field names.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/water"
)

// SliderDescriptor defines one slider row.
type SliderDescriptor struct {
	Label  string
	Range  water.Range
	Format string                       // Printf format for the value readout
	Value  func(*water.Params) *float32 // Pointer into the settings object
}

// ColorDescriptor defines one color picker row.
type ColorDescriptor struct {
	Label string
	Value func(*water.Params) *string // Pointer to a #rrggbb field
}

// SlidersFromFields builds slider descriptors for the numeric parameters.
func SlidersFromFields(fields []water.Field) []SliderDescriptor {
	out := make([]SliderDescriptor, 0, len(fields))
	for _, f := range fields {
		out = append(out, SliderDescriptor{
			Label:  f.Label,
			Range:  f.Range,
			Format: formatForStep(f.Range.Step),
			Value:  f.Value,
		})
	}
	return out
}

// DefaultColors returns the color pickers for the water colors.
func DefaultColors() []ColorDescriptor {
	return []ColorDescriptor{
		{Label: "surfaceColor", Value: func(p *water.Params) *string { return &p.SurfaceColor }},
		{Label: "deepthColor", Value: func(p *water.Params) *string { return &p.DepthColor }},
	}
}

// colorsAfter is the slider the color pickers follow, matching the
// elevation, frequency, speed, colors, color mix panel order.
const colorsAfter = "uBigWaveSpeed"

// Row is one panel row: exactly one of Slider or Color is set.
type Row struct {
	Slider *SliderDescriptor
	Color  *ColorDescriptor
}

// Rows interleaves sliders and colors, placing the colors right after the
// slider labelled after (or at the end when no slider has that label).
func Rows(sliders []SliderDescriptor, colors []ColorDescriptor, after string) []Row {
	rows := make([]Row, 0, len(sliders)+len(colors))
	placed := false
	addColors := func() {
		for i := range colors {
			rows = append(rows, Row{Color: &colors[i]})
		}
		placed = true
	}
	for i := range sliders {
		rows = append(rows, Row{Slider: &sliders[i]})
		if !placed && sliders[i].Label == after {
			addColors()
		}
	}
	if !placed {
		addColors()
	}
	return rows
}

// DefaultRows returns the panel rows for every water parameter.
func DefaultRows() []Row {
	return Rows(SlidersFromFields(water.Fields()), DefaultColors(), colorsAfter)
}

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderHeight   int32
	PickerHeight   int32
	ButtonHeight   int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     150,
		SliderHeight:   14,
		PickerHeight:   80,
		ButtonHeight:   24,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
