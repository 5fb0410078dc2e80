package ship

import (
	"errors"
	"math"
	"testing"
)

func TestStepAtTargetIsIdempotent(t *testing.T) {
	for _, p := range []float64{0, 0.5, 1, 1.5, 2.75} {
		for _, rate := range []float64{0.01, 0.5, 0.8, 0.99} {
			if got := Step(p, p, rate); got != p {
				t.Errorf("Step(%v, %v, %v) = %v", p, p, rate, got)
			}
		}
	}
}

func TestStepConverges(t *testing.T) {
	p := 1.0
	for range 40 {
		p = Step(p, 1.5, 0.8)
	}
	if math.Abs(p-1.5) > 1e-9 {
		t.Errorf("pitch after 40 steps = %v, want ~1.5", p)
	}
	if got := Step(1, 2, 0.25); got != 1.25 {
		t.Errorf("Step(1, 2, 0.25) = %v, want 1.25", got)
	}
}

func TestNewPitchInterpolatorRate(t *testing.T) {
	for _, rate := range []float64{0, 1, -0.2, 1.5, math.NaN()} {
		if _, err := NewPitchInterpolator(1, 1.5, 0.5, rate); !errors.Is(err, ErrInvalidTuning) {
			t.Errorf("rate %v: err = %v, want ErrInvalidTuning", rate, err)
		}
	}
	if _, err := NewPitchInterpolator(1, 1.5, 0.5, 0.8); err != nil {
		t.Errorf("rate 0.8: %v", err)
	}
}

func TestPitchTarget(t *testing.T) {
	p, err := NewPitchInterpolator(1, 1.5, 0.5, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		state ActionState
		want  float64
	}{
		{ActionState{}, 1},
		{ActionState{Boosting: true}, 1.5},
		{ActionState{Braking: true}, 0.5},
		{ActionState{Boosting: true, Braking: true}, 1},
		{ActionState{Tilting: true}, 1},
	}
	for _, tt := range tests {
		if got := p.Target(tt.state); got != tt.want {
			t.Errorf("Target(%+v) = %v, want %v", tt.state, got, tt.want)
		}
	}
	if got := p.Next(1, ActionState{Boosting: true}); math.Abs(got-1.4) > 1e-12 {
		t.Errorf("Next = %v, want 1.4", got)
	}
}

func TestEnergyPool(t *testing.T) {
	pool := NewEnergyPool(10, map[EnergyUse]float64{UseBoost: 2, UseBrake: 1.5})

	if !pool.CanAfford(UseBoost) || pool.Current() != 10 {
		t.Fatal("full pool cannot afford boost")
	}
	// queries never spend
	for range 100 {
		pool.CanAfford(UseBoost)
		pool.CanConsume(7)
	}
	if pool.Current() != 10 {
		t.Errorf("queries changed energy to %v", pool.Current())
	}

	pool.Set(1)
	if pool.CanAfford(UseBoost) {
		t.Error("energy 1 affords boost cost 2")
	}
	if pool.CanAfford(UseBrake) {
		t.Error("energy 1 affords brake cost 1.5")
	}
	if !pool.CanConsume(1) {
		t.Error("exact cost refused")
	}

	pool.Set(50)
	if pool.Current() != 10 || pool.Fraction() != 1 {
		t.Errorf("Set above max = %v", pool.Current())
	}
	pool.Set(-3)
	if pool.Current() != 0 || pool.Fraction() != 0 {
		t.Errorf("Set below zero = %v", pool.Current())
	}
	if NewEnergyPool(0, nil).Fraction() != 0 {
		t.Error("zero-capacity fraction not 0")
	}
}
