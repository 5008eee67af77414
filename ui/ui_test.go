package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ragingsea/water"
)

func TestFormatForStep(t *testing.T) {
	tests := []struct {
		step float32
		want string
	}{
		{1, "%.0f"},
		{0.01, "%.2f"},
		{0.0001, "%.4f"},
		{0.00001, "%.5f"},
		{0.25, "%.2f"},
		{0, "%.0f"},
	}
	for _, tc := range tests {
		if got := formatForStep(tc.step); got != tc.want {
			t.Errorf("formatForStep(%g) = %q, want %q", tc.step, got, tc.want)
		}
	}
}

func TestHexColorConversion(t *testing.T) {
	c := ColorFromHex("#8bd8ff")
	if c != (rl.Color{R: 0x8b, G: 0xd8, B: 0xff, A: 255}) {
		t.Errorf("unexpected color %+v", c)
	}
	if got := HexFromColor(c); got != "#8bd8ff" {
		t.Errorf("expected #8bd8ff, got %s", got)
	}
	if ColorFromHex("garbage") != rl.Black {
		t.Error("malformed hex should map to black")
	}
}

func TestSlidersFromFields(t *testing.T) {
	sliders := SlidersFromFields(water.Fields())
	if len(sliders) != len(water.Fields()) {
		t.Fatalf("expected %d sliders, got %d", len(water.Fields()), len(sliders))
	}

	// Sliders write through to the settings object
	p := water.DefaultParams()
	for _, s := range sliders {
		if s.Label == "uBigWaveSpeed" {
			*s.Value(&p) = 2
		}
	}
	if p.BigWaveSpeed != 2 {
		t.Errorf("slider did not write through, speed=%f", p.BigWaveSpeed)
	}
}

func TestPanelLayout(t *testing.T) {
	panel := NewTuningPanel(1280, 340, DefaultRows())

	if panel.x != 940 {
		t.Errorf("expected panel anchored at x=940, got %d", panel.x)
	}
	if !panel.Contains(1000, 10) {
		t.Error("point inside panel should be contained")
	}
	if panel.Contains(100, 10) {
		t.Error("point left of panel should not be contained")
	}
	if panel.Contains(1000, float32(panel.Height()+1)) {
		t.Error("point below panel should not be contained")
	}

	panel.Toggle()
	if panel.Contains(1000, 10) {
		t.Error("hidden panel should contain nothing")
	}

	panel.Resize(200)
	if panel.x != 0 {
		t.Errorf("panel wider than screen should pin to 0, got %d", panel.x)
	}
}

func TestPanelHeightGrowsWithRows(t *testing.T) {
	small := NewTuningPanel(1280, 340, nil)
	full := NewTuningPanel(1280, 340, DefaultRows())
	if full.Height() <= small.Height() {
		t.Errorf("expected full panel taller: %d <= %d", full.Height(), small.Height())
	}
}

func TestDefaultRowsOrder(t *testing.T) {
	var labels []string
	for _, r := range DefaultRows() {
		switch {
		case r.Slider != nil && r.Color != nil:
			t.Fatal("row has both a slider and a color")
		case r.Slider != nil:
			labels = append(labels, r.Slider.Label)
		case r.Color != nil:
			labels = append(labels, r.Color.Label)
		default:
			t.Fatal("empty row")
		}
	}

	want := []string{
		"uBigWavesElevation", "uBigWavesFrequencyX", "uBigWavesFrequencyY", "uBigWaveSpeed",
		"surfaceColor", "deepthColor",
		"uColorMultiplyier", "uColorOffSet",
		"uSmallWavesElevation", "uSmallWavesFrequency", "uSmallWavesSpeed", "uSmallIterations",
	}
	if len(labels) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(labels), labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("row %d: got %s, want %s", i, labels[i], want[i])
		}
	}
}

func TestRowsColorsAtEndWithoutAnchor(t *testing.T) {
	rows := Rows(SlidersFromFields(water.Fields()[:2]), DefaultColors(), "missing")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[1].Slider == nil || rows[2].Color == nil || rows[3].Color == nil {
		t.Error("colors should follow all sliders when the anchor is missing")
	}
}

func TestHUDRows(t *testing.T) {
	rows := hudRows(HUDData{FPS: 60, FrameMs: 16.67, Elapsed: 3.5, Probe: -0.0123, CameraDist: 1.73})
	want := []labelValue{
		{"FPS", "60"},
		{"Frame", "16.67 ms"},
		{"Time", "3.5 s"},
		{"Elevation @ origin", "-0.0123"},
		{"Camera distance", "1.73"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}
