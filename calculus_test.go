package linebreak

import (
	"math"
	"testing"
)

func TestAdjustmentRatio(t *testing.T) {
	tests := []struct {
		name       string
		L, W, Y, Z float64
		want       float64
	}{
		{"exact fit", 100, 100, 10, 10, 0},
		{"needs stretch", 90, 100, 10, 0, 1},
		{"needs stretch, no glue", 90, 100, 0, 0, math.Inf(1)},
		{"needs shrink", 110, 100, 0, 10, -1},
		{"needs shrink, no glue", 110, 100, 0, 0, math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustmentRatio(tt.L, tt.W, tt.Y, tt.Z)
			if got != tt.want {
				t.Errorf("adjustmentRatio(%g,%g,%g,%g) = %v, want %v", tt.L, tt.W, tt.Y, tt.Z, got, tt.want)
			}
		})
	}
}

func TestBadness(t *testing.T) {
	if got := badness(0); got != 0 {
		t.Errorf("badness(0) = %v, want 0", got)
	}
	if got := badness(-1.5); !math.IsInf(got, 1) {
		t.Errorf("badness(-1.5) = %v, want +Inf", got)
	}
	if got := badness(1); got != 100 {
		t.Errorf("badness(1) = %v, want 100", got)
	}
}

func TestFitnessClass(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{-2, FitnessTight},
		{-0.6, FitnessTight},
		{0, FitnessNormal},
		{0.4, FitnessNormal},
		{0.7, FitnessLoose},
		{1.0, FitnessVeryLoose},
		{5, FitnessVeryLoose},
	}
	for _, tt := range tests {
		if got := fitnessClass(tt.r); got != tt.want {
			t.Errorf("fitnessClass(%g) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestDemerits(t *testing.T) {
	// A zero-badness, zero-penalty, zero-bonus line costs exactly
	// linePenalty^2.
	got := demerits(1, 0, 0, 0, 0)
	if got != 1 {
		t.Errorf("demerits(1,0,0,0,0) = %v, want 1", got)
	}

	// A forced break (p = -Inf) never adds the penalty term.
	got = demerits(1, 0, math.Inf(-1), 0, 0)
	if got != 1 {
		t.Errorf("demerits with forced break = %v, want 1", got)
	}

	// A negative, finite penalty subtracts p^2.
	withBonus := demerits(1, 0, -5, 0, 0)
	without := demerits(1, 0, 0, 0, 0)
	if withBonus >= without {
		t.Errorf("negative penalty should reduce demerits: %v >= %v", withBonus, without)
	}

	// alpha and gamma add flat costs.
	if got := demerits(0, 0, 0, 1000, 0); got != 1000 {
		t.Errorf("alpha not added: got %v", got)
	}
	if got := demerits(0, 0, 0, 0, 1000); got != 1000 {
		t.Errorf("gamma not added: got %v", got)
	}
}
