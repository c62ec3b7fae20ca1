package grid

import "math"

// tolerance for float comparisons of step counts and multiples.
const eps = 1e-9

// PhysicalUnitGrid places grid lines at fixed distances on the printed
// sheet. Zero values select 10 mm major and 1 mm minor spacing.
type PhysicalUnitGrid struct {
	MajorEveryMM float64 `json:"major_every_mm,omitempty"`
	MinorEveryMM float64 `json:"minor_every_mm,omitempty"`
}

var _ Strategy = PhysicalUnitGrid{}

func (PhysicalUnitGrid) Name() string { return "physical" }

func (g PhysicalUnitGrid) steps() (major, minor float64, err error) {
	major, minor = g.MajorEveryMM, g.MinorEveryMM
	if major == 0 {
		major = 10
	}
	if minor == 0 {
		minor = 1
	}
	if !(major > 0) || math.IsInf(major, 0) {
		return 0, 0, &InvalidStepError{Name: "major_every_mm", Step: major}
	}
	if !(minor > 0) || math.IsInf(minor, 0) {
		return 0, 0, &InvalidStepError{Name: "minor_every_mm", Step: minor}
	}
	return major, minor, nil
}

// Lines walks the sheet in minor steps starting at the lower left
// corner of the plotting area. Every step is converted to display pixels
// and inverted through tr individually, so non-linear axes are handled.
// Each step yields exactly one line, flagged major if its offset is a
// multiple of the major spacing. Vertical lines come first, each group
// in ascending offset.
func (g PhysicalUnitGrid) Lines(sheet SheetSpec, tr AxisTransform) ([]GridLine, error) {
	major, minor, err := g.steps()
	if err != nil {
		return nil, err
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	if tr == nil || !tr.Committed() {
		return nil, ErrTransformNotReady
	}

	ppmm := sheet.PixelsPerMM()
	box := tr.Bounds()
	xs := offsets(sheet.WidthMM, major, minor)
	ys := offsets(sheet.HeightMM, major, minor)

	lines := make([]GridLine, 0, len(xs)+len(ys))
	for _, o := range xs {
		x, _ := tr.DisplayToData(box.X0+o.mm*ppmm, box.Y0)
		lines = append(lines, GridLine{Orientation: Vertical, Position: x, Weight: o.weight})
	}
	for _, o := range ys {
		_, y := tr.DisplayToData(box.X0, box.Y0+o.mm*ppmm)
		lines = append(lines, GridLine{Orientation: Horizontal, Position: y, Weight: o.weight})
	}
	return lines, nil
}

type offset struct {
	mm     float64
	weight Weight
}

// offsets returns the minor steps from 0 to extent inclusive. The last
// major line may fall short of extent; no extra line is added at the edge.
func offsets(extent, major, minor float64) []offset {
	n := int(math.Floor(extent/minor + eps))
	ratio := major / minor
	k := math.Round(ratio)
	integral := k >= 1 && math.Abs(ratio-k) < eps

	result := make([]offset, n+1)
	for i := 0; i <= n; i++ {
		mm := float64(i) * minor
		w := Minor
		if integral {
			if i%int(k) == 0 {
				w = Major
			}
		} else if isMultiple(mm, major) {
			w = Major
		}
		result[i] = offset{mm: mm, weight: w}
	}
	return result
}

func isMultiple(x, step float64) bool {
	q := x / step
	return math.Abs(q-math.Round(q)) < eps
}
