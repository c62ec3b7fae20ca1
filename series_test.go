package hallplot

import (
	"errors"
	"math"
	"testing"

	"github.com/vdobler/hallplot/stat"
)

func TestNewSeries(t *testing.T) {
	s, err := NewSeries("U(I)",
		[]float64{50, 100, 150},
		[]float64{4.3, 7.8, 13.15},
		Scalar(11.3), PerPoint([]float64{0.5, 0.6, 0.7}))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 || s.Name() != "U(I)" {
		t.Fatalf("got %d points named %q", s.Len(), s.Name())
	}
	diff(t, []float64{11.3, 11.3, 11.3}, s.DX())
	diff(t, []float64{0.5, 0.6, 0.7}, s.DY())

	x := s.X()
	x[0] = 999
	if s.X()[0] != 50 {
		t.Errorf("series is not immutable")
	}

	bx, by := s.Bounds()
	if !near(bx.Min, 38.7, 1e-9) || !near(bx.Max, 161.3, 1e-9) {
		t.Errorf("x bounds %v", bx)
	}
	if !near(by.Min, 3.8, 1e-9) || !near(by.Max, 13.85, 1e-9) {
		t.Errorf("y bounds %v", by)
	}
}

func TestNewSeriesErrors(t *testing.T) {
	var dm *stat.DimensionMismatchError
	_, err := NewSeries("", []float64{1, 2}, []float64{1}, Scalar(0), Scalar(0))
	if !errors.As(err, &dm) {
		t.Errorf("x/y mismatch: got %v", err)
	}
	_, err = NewSeries("", []float64{1, 2}, []float64{1, 2}, PerPoint([]float64{1}), Scalar(0))
	if !errors.As(err, &dm) {
		t.Errorf("dx mismatch: got %v", err)
	}

	var id *stat.InsufficientDataError
	if _, err = NewSeries("", nil, nil, Scalar(0), Scalar(0)); !errors.As(err, &id) {
		t.Errorf("empty: got %v", err)
	}

	var iu *InvalidUncertaintyError
	_, err = NewSeries("", []float64{1, 2}, []float64{1, 2}, Scalar(0), PerPoint([]float64{0.1, -1}))
	if !errors.As(err, &iu) || iu.Axis != "y" || iu.Index != 1 {
		t.Errorf("negative dy: got %v", err)
	}
	_, err = NewSeries("", []float64{1}, []float64{1}, Scalar(math.NaN()), Scalar(0))
	if !errors.As(err, &iu) {
		t.Errorf("NaN dx: got %v", err)
	}
}

func TestSeriesRows(t *testing.T) {
	rows := []Row{{1, 2, 0.1, 0.2}, {3, 4, 0.3, 0.4}}
	s, err := SeriesFromRows("r", rows)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, rows, s.Rows())
}
