// Package stat provides the small set of statistics needed for
// calibration charts: the arithmetic mean and a straight line fit.
package stat

import (
	"iter"
	"math"

	gstat "gonum.org/v1/gonum/stat"
)

// FitResult is the straight line y = Slope*x + Intercept.
type FitResult struct {
	Slope     float64
	Intercept float64
	Weighted  bool // fitted with inverse-variance weights
}

// At evaluates the line at x.
func (f FitResult) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Sample returns n points of the line uniformly spaced over [from, to],
// both endpoints included. The sequence is computed lazily and may be
// ranged over any number of times.
func (f FitResult) Sample(from, to float64, n int) iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		if n < 1 {
			return
		}
		if n == 1 {
			yield(from, f.At(from))
			return
		}
		step := (to - from) / float64(n-1)
		for i := 0; i < n; i++ {
			x := from + float64(i)*step
			if i == n-1 {
				x = to
			}
			if !yield(x, f.At(x)) {
				return
			}
		}
	}
}

// -------------------------------------------------------------------------
// Mean

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, &InsufficientDataError{N: 0, Min: 1}
	}
	return gstat.Mean(xs, nil), nil
}

// -------------------------------------------------------------------------
// Linear regression

// LinearFit computes the ordinary (unweighted) least squares line of
// ys on xs. Uncertainties of the measurements are not taken into
// account; see WeightedLinearFit for that.
func LinearFit(xs, ys []float64) (FitResult, error) {
	if err := checkPairs(xs, ys); err != nil {
		return FitResult{}, err
	}
	return fit(xs, ys, nil)
}

// WeightedLinearFit computes the least squares line of ys on xs where
// each point is weighted by 1/sigma². All sigmas must be positive.
func WeightedLinearFit(xs, ys, sigmas []float64) (FitResult, error) {
	if err := checkPairs(xs, ys); err != nil {
		return FitResult{}, err
	}
	if len(sigmas) != len(ys) {
		return FitResult{}, &DimensionMismatchError{What: "y/sigma", Len1: len(ys), Len2: len(sigmas)}
	}
	weights := make([]float64, len(sigmas))
	sum := 0.0
	for i, s := range sigmas {
		if !(s > 0) || math.IsInf(s, 0) {
			return FitResult{}, &InvalidWeightError{Index: i, Sigma: s}
		}
		weights[i] = 1 / (s * s)
		sum += weights[i]
	}
	// Scale weights to sum to n; the line is invariant under this and
	// gonum's weighted variance divides by sum(weights)-1.
	for i := range weights {
		weights[i] *= float64(len(weights)) / sum
	}
	result, err := fit(xs, ys, weights)
	if err != nil {
		return FitResult{}, err
	}
	result.Weighted = true
	return result, nil
}

func checkPairs(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return &DimensionMismatchError{What: "x/y", Len1: len(xs), Len2: len(ys)}
	}
	if len(xs) < 2 {
		return &InsufficientDataError{N: len(xs), Min: 2}
	}
	return nil
}

// fit relies on gonum's two-pass formulation: means are subtracted
// before products are summed.
func fit(xs, ys, weights []float64) (FitResult, error) {
	_, variance := gstat.MeanVariance(xs, weights)
	if variance == 0 || math.IsNaN(variance) {
		return FitResult{}, ErrDegenerateFit
	}
	alpha, beta := gstat.LinearRegression(xs, ys, weights, false)
	return FitResult{Slope: beta, Intercept: alpha}, nil
}

// Residuals returns y - fit(x) for each point.
func Residuals(f FitResult, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, &DimensionMismatchError{What: "x/y", Len1: len(xs), Len2: len(ys)}
	}
	res := make([]float64, len(xs))
	for i := range xs {
		res[i] = ys[i] - f.At(xs[i])
	}
	return res, nil
}

// RSquared returns the coefficient of determination of f on the data.
func RSquared(f FitResult, xs, ys []float64) (float64, error) {
	if err := checkPairs(xs, ys); err != nil {
		return 0, err
	}
	return gstat.RSquared(xs, ys, nil, f.Intercept, f.Slope), nil
}
