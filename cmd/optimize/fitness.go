package main

import (
	"github.com/pthm-cable/ragingsea/water"
)

// FitnessEvaluator scores parameter vectors against a target height field.
type FitnessEvaluator struct {
	params *ParamVector
	base   water.Params
	target []water.HeightRow
	time   float32
}

// NewFitnessEvaluator creates an evaluator for target sampled at time t.
func NewFitnessEvaluator(params *ParamVector, base water.Params, target []water.HeightRow, t float32) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		base:   base,
		target: target,
		time:   t,
	}
}

// Evaluate returns the mean squared elevation error for raw parameter values.
// Lower is better.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	p := fe.params.Apply(fe.base, raw)
	return meanSquaredError(&p, fe.target, fe.time)
}

func meanSquaredError(p *water.Params, target []water.HeightRow, t float32) float64 {
	if len(target) == 0 {
		return 0
	}
	var sum float64
	for _, r := range target {
		d := float64(p.Elevation(r.X, r.Z, t) - r.Elevation)
		sum += d * d
	}
	return sum / float64(len(target))
}
