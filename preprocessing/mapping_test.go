package preprocessing

import (
	"math"
	"testing"
)

func TestFitRankMapping(t *testing.T) {
	tests := []struct {
		name          string
		col           []float64
		wantValues    []float64
		wantPositions []float64
	}{
		{
			name:          "distinct sorted values",
			col:           []float64{10, 20, 30, 40},
			wantValues:    []float64{10, 20, 30, 40},
			wantPositions: []float64{-0.75, -0.25, 0.25, 0.75},
		},
		{
			name:          "unsorted input",
			col:           []float64{30, 10, 40, 20},
			wantValues:    []float64{10, 20, 30, 40},
			wantPositions: []float64{-0.75, -0.25, 0.25, 0.75},
		},
		{
			name:       "duplicates collapse to average rank",
			col:        []float64{10, 10, 20},
			wantValues: []float64{10, 20},
			// 10 occupies ranks 0..1 (midrank 0.5), 20 has rank 2
			wantPositions: []float64{-1.0 / 3.0, 2.0 / 3.0},
		},
		{
			name:          "constant column",
			col:           []float64{5, 5, 5},
			wantValues:    []float64{5},
			wantPositions: []float64{0},
		},
		{
			name:          "single sample",
			col:           []float64{42},
			wantValues:    []float64{42},
			wantPositions: []float64{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fitRankMapping(tt.col)

			if len(m.Values) != len(tt.wantValues) {
				t.Fatalf("len(Values) = %d, want %d", len(m.Values), len(tt.wantValues))
			}
			for i := range tt.wantValues {
				if m.Values[i] != tt.wantValues[i] {
					t.Errorf("Values[%d] = %v, want %v", i, m.Values[i], tt.wantValues[i])
				}
				if math.Abs(m.Positions[i]-tt.wantPositions[i]) > 1e-12 {
					t.Errorf("Positions[%d] = %v, want %v", i, m.Positions[i], tt.wantPositions[i])
				}
			}
		})
	}
}

func TestFitRankMappingInvariants(t *testing.T) {
	col := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	m := fitRankMapping(col)

	for i := 1; i < len(m.Values); i++ {
		if m.Values[i] <= m.Values[i-1] {
			t.Errorf("Values not strictly increasing at %d: %v <= %v", i, m.Values[i], m.Values[i-1])
		}
		if m.Positions[i] <= m.Positions[i-1] {
			t.Errorf("Positions not strictly increasing at %d: %v <= %v", i, m.Positions[i], m.Positions[i-1])
		}
	}
	for i, p := range m.Positions {
		if p <= -1 || p >= 1 {
			t.Errorf("Positions[%d] = %v outside open interval (-1, 1)", i, p)
		}
	}
}

func TestFitRankMappingDoesNotMutateInput(t *testing.T) {
	col := []float64{30, 10, 40, 20}
	fitRankMapping(col)

	want := []float64{30, 10, 40, 20}
	for i := range want {
		if col[i] != want[i] {
			t.Fatalf("input mutated: col = %v", col)
		}
	}
}

func TestInterpolate(t *testing.T) {
	xs := []float64{10, 20, 40}
	ys := []float64{-0.5, 0.0, 0.5}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "exact hit first", x: 10, want: -0.5},
		{name: "exact hit middle", x: 20, want: 0.0},
		{name: "exact hit last", x: 40, want: 0.5},
		{name: "interior midpoint", x: 15, want: -0.25},
		{name: "interior uneven segment", x: 30, want: 0.25},
		{name: "clip below", x: -1000, want: -0.5},
		{name: "clip above", x: 1000, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := interpolate(xs, ys, tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("interpolate(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestInterpolateSinglePoint(t *testing.T) {
	xs := []float64{7}
	ys := []float64{0}

	for _, x := range []float64{-1e9, 0, 7, 1e9} {
		if got := interpolate(xs, ys, x); got != 0 {
			t.Errorf("interpolate(%v) = %v, want 0", x, got)
		}
	}
}

func TestMappingRoundTrip(t *testing.T) {
	m := fitRankMapping([]float64{10, 20, 30, 40})

	for _, v := range []float64{10, 20, 30, 40, 15, 37.5} {
		p := m.position(v)
		back := m.value(p)
		if math.Abs(back-v) > 1e-9 {
			t.Errorf("value(position(%v)) = %v, want %v", v, back, v)
		}
	}
}
