package water

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// HeightRow is one height-field sample as written to CSV.
type HeightRow struct {
	X         float32 `csv:"x"`
	Z         float32 `csv:"z"`
	Elevation float32 `csv:"elevation"`
	R         uint8   `csv:"r"`
	G         uint8   `csv:"g"`
	B         uint8   `csv:"b"`
}

// Rows flattens sampled vertices into CSV rows.
func Rows(verts []Vertex) []HeightRow {
	rows := make([]HeightRow, len(verts))
	for i, v := range verts {
		r, g, b := v.Color.Bytes()
		rows[i] = HeightRow{X: v.X, Z: v.Z, Elevation: v.Elevation, R: r, G: g, B: b}
	}
	return rows
}

// WriteHeightCSV writes rows with a header line.
func WriteHeightCSV(w io.Writer, rows []HeightRow) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing height field: %w", err)
	}
	return nil
}

// ReadHeightCSV reads rows written by WriteHeightCSV.
func ReadHeightCSV(r io.Reader) ([]HeightRow, error) {
	var rows []HeightRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading height field: %w", err)
	}
	return rows, nil
}

// HeightSummary describes the elevation distribution of a height field.
type HeightSummary struct {
	Samples int
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
}

// Summarize computes elevation statistics over rows.
func Summarize(rows []HeightRow) HeightSummary {
	s := HeightSummary{Samples: len(rows)}
	if len(rows) == 0 {
		return s
	}
	e := make([]float64, len(rows))
	for i, r := range rows {
		e[i] = float64(r.Elevation)
	}
	s.Min = floats.Min(e)
	s.Max = floats.Max(e)
	s.Mean, s.StdDev = stat.MeanStdDev(e, nil)
	if len(rows) < 2 {
		s.StdDev = 0
	}
	return s
}
