package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinearFitRecoversExactLine(t *testing.T) {
	tests := []struct {
		a, b float64
		xs   []float64
	}{
		{2, 1, []float64{0, 1, 2, 3}},
		{-0.5, 10, []float64{-3, 0.5, 7, 12, 100}},
		{0, 4, []float64{1, 2}},
		{1e-3, -7, []float64{1e6, 1e6 + 1, 1e6 + 2, 1e6 + 5}},
	}
	for i, tc := range tests {
		ys := make([]float64, len(tc.xs))
		for j, x := range tc.xs {
			ys[j] = tc.a*x + tc.b
		}
		got, err := LinearFit(tc.xs, ys)
		if err != nil {
			t.Fatalf("%d: unexpected error %v", i, err)
		}
		if !near(got.Slope, tc.a, 1e-9) || !near(got.Intercept, tc.b, 1e-6) {
			t.Errorf("%d: got slope=%g intercept=%g, want %g %g", i, got.Slope, got.Intercept, tc.a, tc.b)
		}
		if got.Weighted {
			t.Errorf("%d: unweighted fit flagged as weighted", i)
		}
	}
}

func TestLinearFitHallVoltage(t *testing.T) {
	current := []float64{50, 100, 150, 200, 250}
	voltage := []float64{4.3, 7.8, 13.15, 17.1, 21.35}

	got, err := LinearFit(current, voltage)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !near(got.Slope, 0.0868, 1e-3) {
		t.Errorf("Got slope %g, want 0.0868", got.Slope)
	}
	if !near(got.Intercept, -0.28, 1e-3) {
		t.Errorf("Got intercept %g, want -0.28", got.Intercept)
	}
}

func TestLinearFitErrors(t *testing.T) {
	var insufficient *InsufficientDataError
	if _, err := LinearFit(nil, nil); !errors.As(err, &insufficient) || insufficient.N != 0 {
		t.Errorf("fit([],[]): got %v", err)
	}
	if _, err := LinearFit([]float64{1}, []float64{2}); !errors.As(err, &insufficient) || insufficient.N != 1 {
		t.Errorf("fit([1],[2]): got %v", err)
	}

	var mismatch *DimensionMismatchError
	if _, err := LinearFit([]float64{1, 2, 3}, []float64{1, 2}); !errors.As(err, &mismatch) {
		t.Errorf("mismatch: got %v", err)
	} else {
		diff(t, DimensionMismatchError{What: "x/y", Len1: 3, Len2: 2}, *mismatch)
	}

	if _, err := LinearFit([]float64{3, 3}, []float64{1, 2}); !errors.Is(err, ErrDegenerateFit) {
		t.Errorf("zero variance: got %v, want ErrDegenerateFit", err)
	}
}

func TestWeightedLinearFit(t *testing.T) {
	xs := []float64{50, 100, 150, 200, 250}
	ys := []float64{4.3, 7.8, 13.15, 17.1, 21.35}

	plain, _ := LinearFit(xs, ys)
	uniform, err := WeightedLinearFit(xs, ys, []float64{0.53, 0.53, 0.53, 0.53, 0.53})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !uniform.Weighted {
		t.Errorf("weighted fit not flagged")
	}
	if !near(uniform.Slope, plain.Slope, 1e-12) || !near(uniform.Intercept, plain.Intercept, 1e-9) {
		t.Errorf("uniform weights: got %+v, want %+v", uniform, plain)
	}

	// A point with huge uncertainty must not pull the line.
	xs = []float64{0, 1, 2, 3, 4}
	ys = []float64{1, 3, 5, 7, 100}
	got, err := WeightedLinearFit(xs, ys, []float64{0.1, 0.1, 0.1, 0.1, 1e6})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !near(got.Slope, 2, 1e-6) || !near(got.Intercept, 1, 1e-6) {
		t.Errorf("Got %+v, want slope 2 intercept 1", got)
	}

	var bad *InvalidWeightError
	if _, err := WeightedLinearFit(xs, ys, []float64{1, 1, 0, 1, 1}); !errors.As(err, &bad) || bad.Index != 2 {
		t.Errorf("zero sigma: got %v", err)
	}
	var mismatch *DimensionMismatchError
	if _, err := WeightedLinearFit(xs, ys, []float64{1, 1}); !errors.As(err, &mismatch) {
		t.Errorf("sigma length: got %v", err)
	}
}

func TestMean(t *testing.T) {
	got, err := Mean([]float64{0.43, 0.40, 0.44, 0.43, 0.43})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if !near(got, 0.426, 1e-12) {
		t.Errorf("Got %g, want 0.426", got)
	}

	var insufficient *InsufficientDataError
	if _, err := Mean(nil); !errors.As(err, &insufficient) || insufficient.Min != 1 {
		t.Errorf("Mean(nil): got %v", err)
	}
}

func TestSample(t *testing.T) {
	f := FitResult{Slope: 2, Intercept: 1}

	var xs, ys []float64
	for x, y := range f.Sample(0, 4, 5) {
		xs = append(xs, x)
		ys = append(ys, y)
	}
	diff(t, []float64{0, 1, 2, 3, 4}, xs, cmpopts.EquateApprox(0, 1e-12))
	diff(t, []float64{1, 3, 5, 7, 9}, ys, cmpopts.EquateApprox(0, 1e-12))

	// Restartable and early termination.
	n := 0
	for range f.Sample(30, 270, 200) {
		n++
	}
	if n != 200 {
		t.Errorf("Got %d samples, want 200", n)
	}
	for x := range f.Sample(30, 270, 200) {
		if x != 30 {
			t.Errorf("Restart: first x = %g", x)
		}
		break
	}

	last := math.NaN()
	for x := range f.Sample(40, 260, 250) {
		last = x
	}
	if last != 260 {
		t.Errorf("Last sample %g, want 260", last)
	}
	for range f.Sample(0, 1, 0) {
		t.Errorf("Zero samples yielded a value")
	}
}

func TestResidualsAndRSquared(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}
	f, _ := LinearFit(xs, ys)

	res, err := Residuals(f, xs, ys)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	diff(t, []float64{0, 0, 0, 0}, res, cmpopts.EquateApprox(0, 1e-12))

	r2, err := RSquared(f, xs, ys)
	if err != nil || !near(r2, 1, 1e-12) {
		t.Errorf("Got r2=%g err=%v, want 1", r2, err)
	}
}
