package hallplot

import (
	"math"

	"github.com/vdobler/hallplot/grid"
)

// Range is the domain of an axis, trained on the data it has to show.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewRange returns an empty range which any training will widen.
func NewRange() Range {
	return Range{Min: math.Inf(+1), Max: math.Inf(-1)}
}

// Valid reports whether r has been trained on at least one value.
func (r Range) Valid() bool {
	return r.Min <= r.Max && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}

// Train widens r to include all finite values.
func (r *Range) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
}

// TrainErr widens r to include v-e and v+e for all values.
func (r *Range) TrainErr(values, errs []float64) {
	for i, v := range values {
		e := 0.0
		if i < len(errs) {
			e = errs[i]
		}
		r.Train(v-e, v+e)
	}
}

// Expand returns r widened by margin on both sides.
func (r Range) Expand(margin float64) Range {
	return Range{Min: r.Min - margin, Max: r.Max + margin}
}

// ExpandFraction returns r widened on both sides by f times its width.
// A degenerate range is widened by f on each side instead.
func (r Range) ExpandFraction(f float64) Range {
	w := r.Max - r.Min
	if w == 0 {
		w = 1
	}
	return r.Expand(w * f)
}

func (r Range) Interval() grid.Interval {
	return grid.Interval{Min: r.Min, Max: r.Max}
}

// Limits are the data ranges of the two axes. A range with Min == Max
// is unset and gets trained on the geoms of the figure.
type Limits struct {
	X, Y Range
}

// TickSteps are the tick spacings of data unit axes. A zero major step
// leaves the axis to the default ticker; a zero minor step means no
// minor ticks.
type TickSteps struct {
	MajorX float64 `json:"major_x"`
	MinorX float64 `json:"minor_x"`
	MajorY float64 `json:"major_y"`
	MinorY float64 `json:"minor_y"`
}

// Grid is the data unit grid aligned with the ticks.
func (t TickSteps) Grid() grid.DataUnitGrid {
	return grid.DataUnitGrid{MajorX: t.MajorX, MinorX: t.MinorX, MajorY: t.MajorY, MinorY: t.MinorY}
}

func (t TickSteps) validate() error {
	for _, s := range []struct {
		name string
		step float64
	}{
		{"major_x", t.MajorX}, {"minor_x", t.MinorX},
		{"major_y", t.MajorY}, {"minor_y", t.MinorY},
	} {
		if s.step < 0 || math.IsNaN(s.step) || math.IsInf(s.step, 0) {
			return &grid.InvalidStepError{Name: s.name, Step: s.step}
		}
	}
	return nil
}
