package grid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// stubTransform maps the box linearly onto the limits unless a custom
// inversion of the normalised position is given.
type stubTransform struct {
	committed  bool
	box        Rect
	x, y       Interval
	invX, invY func(frac float64, lim Interval) float64
}

func linearInv(frac float64, lim Interval) float64 {
	return lim.Min + frac*(lim.Max-lim.Min)
}

func logInv(frac float64, lim Interval) float64 {
	lo, hi := math.Log10(lim.Min), math.Log10(lim.Max)
	return math.Pow(10, lo+frac*(hi-lo))
}

func (s stubTransform) Committed() bool         { return s.committed }
func (s stubTransform) Bounds() Rect            { return s.box }
func (s stubTransform) Limits() (x, y Interval) { return s.x, s.y }

func (s stubTransform) DisplayToData(px, py float64) (float64, float64) {
	ix, iy := s.invX, s.invY
	if ix == nil {
		ix = linearInv
	}
	if iy == nil {
		iy = linearInv
	}
	fx := (px - s.box.X0) / s.box.Width()
	fy := (py - s.box.Y0) / s.box.Height()
	return ix(fx, s.x), iy(fy, s.y)
}

// mmSheet is the sheet of the printed lab report.
var mmSheet = SheetSpec{WidthMM: 164.8, HeightMM: 104.8, DPI: 300}

// hallTransform roughly matches a 164.8x104.8mm figure at 300dpi with
// current 35..265 µA and voltage 2..24 mV.
var hallTransform = stubTransform{
	committed: true,
	box:       Rect{X0: 160, Y0: 120, X1: 1860, Y1: 1180},
	x:         Interval{35, 265},
	y:         Interval{2, 24},
}
