package grid

import (
	"math"
	"sort"
)

// DataUnitGrid places lines at multiples of fixed data intervals, the
// way a multiple tick locator does. A zero minor step means no minor
// lines on that axis.
type DataUnitGrid struct {
	MajorX, MinorX float64
	MajorY, MinorY float64
}

var _ Strategy = DataUnitGrid{}

func (DataUnitGrid) Name() string { return "data" }

func (g DataUnitGrid) validate() error {
	for _, s := range []struct {
		name   string
		step   float64
		zeroOK bool
	}{
		{"major_x", g.MajorX, false},
		{"minor_x", g.MinorX, true},
		{"major_y", g.MajorY, false},
		{"minor_y", g.MinorY, true},
	} {
		if s.zeroOK && s.step == 0 {
			continue
		}
		if !(s.step > 0) || math.IsInf(s.step, 0) {
			return &InvalidStepError{Name: s.name, Step: s.step}
		}
	}
	return nil
}

// Lines returns the lines inside the data limits of tr, verticals
// first, each group in ascending position. Minor positions which
// coincide with a major position are dropped. The sheet is validated
// but otherwise unused.
func (g DataUnitGrid) Lines(sheet SheetSpec, tr AxisTransform) ([]GridLine, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	if tr == nil || !tr.Committed() {
		return nil, ErrTransformNotReady
	}
	xl, yl := tr.Limits()
	lines := axisLines(Vertical, xl, g.MajorX, g.MinorX)
	return append(lines, axisLines(Horizontal, yl, g.MajorY, g.MinorY)...), nil
}

func axisLines(o Orientation, lim Interval, major, minor float64) []GridLine {
	res := major
	if minor > 0 && minor < major {
		res = minor
	}
	majors := newPositionSet(res / 1000)
	for _, x := range Multiples(lim.Min, lim.Max, major) {
		majors.Add(x)
	}

	var lines []GridLine
	for _, x := range majors.Elements() {
		lines = append(lines, GridLine{Orientation: o, Position: x, Weight: Major})
	}
	if minor > 0 {
		for _, x := range Multiples(lim.Min, lim.Max, minor) {
			if majors.Contains(x) {
				continue
			}
			lines = append(lines, GridLine{Orientation: o, Position: x, Weight: Minor})
		}
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines
}

// Multiples returns all integer multiples of step within [min, max],
// ascending. Values are computed as k*step to avoid accumulating error.
func Multiples(min, max, step float64) []float64 {
	if !(step > 0) || min > max || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	first := roundUp(min, step)
	last := roundDown(max, step)
	var result []float64
	for k := first; k <= last; k++ {
		result = append(result, float64(k)*step)
	}
	return result
}

// roundDown returns the index of the largest multiple of step <= x.
func roundDown(x, step float64) int64 {
	return int64(math.Floor(x/step + eps))
}

// roundUp returns the index of the smallest multiple of step >= x.
func roundUp(x, step float64) int64 {
	return int64(math.Ceil(x/step - eps))
}
