// Package gaussrank provides a feature-wise rank-based Gaussian
// normalization transform for Go, designed as a preprocessing step for
// models that are sensitive to the shape of their input distribution,
// such as neural networks.
//
// The transform converts an arbitrary numeric distribution into an
// approximately standard-normal one by ranking the observed values of
// each feature, spreading the ranks uniformly over the open interval
// (-1, 1), and reshaping the uniform spacing with the inverse Gaussian
// error function. The technique is commonly known as "RankGauss".
//
// # Installation
//
// Install gaussrank using go get:
//
//	go get github.com/YuminosukeSato/gaussrank
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gaussrank/preprocessing"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Heavily skewed training data
//	    X := mat.NewDense(5, 1, []float64{1, 2, 4, 8, 1000})
//
//	    scaler := preprocessing.NewGaussRankScaler()
//	    XScaled, err := scaler.FitTransform(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(mat.Formatted(XScaled))
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - preprocessing: the GaussRankScaler transform itself
//   - metrics: distribution diagnostics (skewness, kurtosis)
//   - core/model: estimator base types and transformer interfaces
//   - core/parallel: column-parallel execution helper
//   - pkg/errors: structured error and warning types
//   - pkg/log: structured logging built on zerolog
package gaussrank
