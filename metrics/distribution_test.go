package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gaussrank/pkg/errors"
)

func TestSkewness(t *testing.T) {
	tests := []struct {
		name      string
		data      []float64
		want      float64
		tolerance float64
		wantSign  int // -1, 0, +1; checked when tolerance is 0
	}{
		{
			name:      "symmetric data has zero skewness",
			data:      []float64{-2, -1, 0, 1, 2},
			want:      0,
			tolerance: 1e-10,
		},
		{
			name:     "right tail gives positive skewness",
			data:     []float64{1, 2, 3, 4, 100},
			wantSign: 1,
		},
		{
			name:     "left tail gives negative skewness",
			data:     []float64{-100, 1, 2, 3, 4},
			wantSign: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Skewness(mat.NewVecDense(len(tt.data), tt.data))
			if err != nil {
				t.Fatalf("Skewness() error = %v", err)
			}
			if tt.tolerance > 0 {
				if math.Abs(got-tt.want) > tt.tolerance {
					t.Errorf("Skewness() = %v, want %v", got, tt.want)
				}
			} else if (tt.wantSign > 0 && got <= 0) || (tt.wantSign < 0 && got >= 0) {
				t.Errorf("Skewness() = %v, want sign %d", got, tt.wantSign)
			}
		})
	}
}

func TestExcessKurtosis(t *testing.T) {
	// heavy tails relative to a uniform spread raise the kurtosis
	flat := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	heavy := []float64{-100, 4, 4, 4, 5, 5, 5, 100}

	kFlat, err := ExcessKurtosis(mat.NewVecDense(len(flat), flat))
	if err != nil {
		t.Fatalf("ExcessKurtosis() error = %v", err)
	}
	kHeavy, err := ExcessKurtosis(mat.NewVecDense(len(heavy), heavy))
	if err != nil {
		t.Fatalf("ExcessKurtosis() error = %v", err)
	}

	if kHeavy <= kFlat {
		t.Errorf("heavy-tail kurtosis %v should exceed flat kurtosis %v", kHeavy, kFlat)
	}
}

func TestJarqueBera(t *testing.T) {
	// a skewed sample must score further from normality than a symmetric one
	symmetric := []float64{-3, -2, -1, 0, 1, 2, 3}
	skewed := []float64{1, 1, 1, 2, 2, 4, 1000}

	jbSym, err := JarqueBera(mat.NewVecDense(len(symmetric), symmetric))
	if err != nil {
		t.Fatalf("JarqueBera() error = %v", err)
	}
	jbSkew, err := JarqueBera(mat.NewVecDense(len(skewed), skewed))
	if err != nil {
		t.Fatalf("JarqueBera() error = %v", err)
	}

	if jbSym < 0 || jbSkew < 0 {
		t.Errorf("JB statistics must be non-negative, got %v and %v", jbSym, jbSkew)
	}
	if jbSkew <= jbSym {
		t.Errorf("skewed JB %v should exceed symmetric JB %v", jbSkew, jbSym)
	}
}

func TestDistributionMetricsValidation(t *testing.T) {
	short := mat.NewVecDense(3, []float64{1, 2, 3})
	if _, err := Skewness(short); err == nil {
		t.Error("Skewness on 3 samples should fail")
	}

	withNaN := mat.NewVecDense(4, []float64{1, 2, math.NaN(), 4})
	_, err := JarqueBera(withNaN)
	var nfe *errors.NonFiniteError
	if !errors.As(err, &nfe) {
		t.Errorf("error %v is not a NonFiniteError", err)
	}
}
