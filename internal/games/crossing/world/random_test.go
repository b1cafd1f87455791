package world

import (
	"errors"
	"testing"
)

func TestNewScriptedErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   error
	}{
		{"empty", nil, ErrEmptySequence},
		{"one", []float64{1.0}, ErrValueOutOfRange},
		{"negative", []float64{0.5, -0.1}, ErrValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScripted(tt.values...)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewScripted(%v) error = %v, want %v", tt.values, err, tt.want)
			}
		})
	}
}

func TestScriptedSourceCycles(t *testing.T) {
	src, err := NewScripted(0.25, 0.5)
	if err != nil {
		t.Fatalf("NewScripted: %v", err)
	}

	want := []float64{0.25, 0.5, 0.25, 0.5}
	for i, w := range want {
		if got := src.Float64(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestScriptedIntRange(t *testing.T) {
	tests := []struct {
		value  float64
		lo, hi int
		want   int
	}{
		{0, 100, 300, 100},
		{0.75, 100, 300, 250},
		{0.999, 0, 1, 1},
		{0.5, 0, 1, 1},
		{0.49, 0, 1, 0},
		{0.3, 5, 5, 5},
		{0.3, 5, 2, 5},
	}

	for _, tt := range tests {
		src, _ := NewScripted(tt.value)
		if got := src.IntRange(tt.lo, tt.hi); got != tt.want {
			t.Errorf("IntRange(%d, %d) with %v = %d, want %d", tt.lo, tt.hi, tt.value, got, tt.want)
		}
	}
}

func TestWeightedIndex(t *testing.T) {
	weights := []float64{0.7, 0.3}
	tests := []struct {
		u    float64
		want int
	}{
		{0, 0},
		{0.69, 0},
		{0.7, 1},
		{0.99, 1},
	}
	for _, tt := range tests {
		if got := weightedIndex(weights, tt.u); got != tt.want {
			t.Errorf("weightedIndex(%v) = %d, want %d", tt.u, got, tt.want)
		}
	}

	if got := weightedIndex([]float64{0, 1, 0}, 0.99); got != 1 {
		t.Errorf("zero weights should be skipped, got %d", got)
	}
	if got := weightedIndex([]float64{0, 0}, 0.5); got != 0 {
		t.Errorf("all-zero weights should yield 0, got %d", got)
	}
}

func TestSeededSourceDeterminism(t *testing.T) {
	a := NewSeeded(99)
	b := NewSeeded(99)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs between equal seeds", i)
		}
		x, y := a.IntRange(3, 9), b.IntRange(3, 9)
		if x != y {
			t.Fatalf("IntRange draw %d differs: %d vs %d", i, x, y)
		}
		if x < 3 || x > 9 {
			t.Fatalf("IntRange out of range: %d", x)
		}
	}
}
