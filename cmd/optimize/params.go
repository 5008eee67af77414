// Package main fits water parameters to a target height field.
package main

import (
	"fmt"

	"github.com/pthm-cable/ragingsea/water"
)

// fittedLabels names the panel fields the optimizer adjusts.
// Colors and iteration count are not continuous and stay at their base values.
var fittedLabels = []string{
	"uBigWavesElevation",
	"uBigWavesFrequencyX",
	"uBigWavesFrequencyY",
	"uBigWaveSpeed",
	"uSmallWavesElevation",
	"uSmallWavesFrequency",
	"uSmallWavesSpeed",
}

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name  string
	Field water.Field
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the parameter set from the named panel fields.
func NewParamVector(labels []string) (*ParamVector, error) {
	byLabel := make(map[string]water.Field)
	for _, f := range water.Fields() {
		byLabel[f.Label] = f
	}
	pv := &ParamVector{}
	for _, l := range labels {
		f, ok := byLabel[l]
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q", l)
		}
		pv.Specs = append(pv.Specs, ParamSpec{Name: l, Field: f})
	}
	return pv, nil
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// Extract reads the parameter values from p.
func (pv *ParamVector) Extract(p water.Params) []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = float64(*spec.Field.Value(&p))
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		r := spec.Field.Range
		normalized[i] = (raw[i] - float64(r.Min)) / float64(r.Max-r.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		r := spec.Field.Range
		raw[i] = float64(r.Min) + normalized[i]*float64(r.Max-r.Min)
	}
	return raw
}

// Apply writes values into a copy of base, quantized to each field's slider step.
// Values the optimizer pushes out of range, NaN included, are clamped.
func (pv *ParamVector) Apply(base water.Params, values []float64) water.Params {
	p := base
	for i, spec := range pv.Specs {
		*spec.Field.Value(&p) = float32(values[i])
	}
	p.Clamp()
	for _, spec := range pv.Specs {
		v := spec.Field.Value(&p)
		*v = spec.Field.Range.Quantize(*v)
	}
	return p
}
