package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/ragingsea/water"
)

func TestParamVectorRoundtrip(t *testing.T) {
	pv, err := NewParamVector(fittedLabels)
	if err != nil {
		t.Fatal(err)
	}
	if pv.Dim() != len(fittedLabels) {
		t.Fatalf("expected %d params, got %d", len(fittedLabels), pv.Dim())
	}

	base := water.DefaultParams()
	raw := pv.Extract(base)
	back := pv.Denormalize(pv.Normalize(raw))
	applied := pv.Apply(base, back)
	if applied != base {
		t.Errorf("roundtrip changed params:\n got %+v\nwant %+v", applied, base)
	}
}

func TestNewParamVectorUnknown(t *testing.T) {
	if _, err := NewParamVector([]string{"uNope"}); err == nil {
		t.Error("expected error for unknown label")
	}
}

func TestApplyQuantizesAndClamps(t *testing.T) {
	pv, err := NewParamVector([]string{"uBigWaveSpeed"})
	if err != nil {
		t.Fatal(err)
	}
	p := pv.Apply(water.DefaultParams(), []float64{42})
	if p.BigWaveSpeed != 10 {
		t.Errorf("expected clamp to 10, got %f", p.BigWaveSpeed)
	}

	p = pv.Apply(water.DefaultParams(), []float64{math.NaN()})
	if p.BigWaveSpeed != 0 {
		t.Errorf("expected NaN to clamp to 0, got %f", p.BigWaveSpeed)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("applied params should validate: %v", err)
	}
}

func TestEvaluatorPrefersTruth(t *testing.T) {
	truth := water.DefaultParams()
	target := water.Rows(truth.Sample(2, 2, 16, 1.25))

	pv, err := NewParamVector(fittedLabels)
	if err != nil {
		t.Fatal(err)
	}
	fe := NewFitnessEvaluator(pv, truth, target, 1.25)

	exact := fe.Evaluate(pv.Extract(truth))
	if exact > 1e-10 {
		t.Errorf("generating params should fit exactly, got mse %g", exact)
	}

	off := truth
	off.BigWavesElevation = 0.6
	if worse := fe.Evaluate(pv.Extract(off)); worse <= exact {
		t.Errorf("perturbed params should score worse: %g <= %g", worse, exact)
	}
}
