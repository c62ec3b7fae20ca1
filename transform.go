package hallplot

import (
	"math"

	"github.com/vdobler/hallplot/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotTransform is the grid.AxisTransform of a laid out gonum plot.
// It captures the data area and axis scaling at the moment of layout;
// as long as axis limits, ticks and plotters stay as they were, drawing
// the plot reproduces exactly this mapping.
type plotTransform struct {
	committed bool
	dpi       float64
	area      vg.Rectangle
	x, y      plot.Axis
}

var _ grid.AxisTransform = (*plotTransform)(nil)

// newPlotTransform lays out p on c and commits the resulting mapping.
func newPlotTransform(p *plot.Plot, c draw.Canvas, dpi float64) *plotTransform {
	data := p.DataCanvas(c)
	return &plotTransform{
		committed: true,
		dpi:       dpi,
		area:      data.Rectangle,
		x:         p.X,
		y:         p.Y,
	}
}

func (t *plotTransform) Committed() bool { return t != nil && t.committed }

// pixels converts a length on the canvas to display pixels.
func (t *plotTransform) pixels(l vg.Length) float64 {
	return l.Points() * t.dpi / vg.Inch.Points()
}

func (t *plotTransform) Bounds() grid.Rect {
	return grid.Rect{
		X0: t.pixels(t.area.Min.X),
		Y0: t.pixels(t.area.Min.Y),
		X1: t.pixels(t.area.Max.X),
		Y1: t.pixels(t.area.Max.Y),
	}
}

func (t *plotTransform) Limits() (x, y grid.Interval) {
	return grid.Interval{Min: t.x.Min, Max: t.x.Max}, grid.Interval{Min: t.y.Min, Max: t.y.Max}
}

func (t *plotTransform) DisplayToData(px, py float64) (float64, float64) {
	b := t.Bounds()
	nx := (px - b.X0) / b.Width()
	ny := (py - b.Y0) / b.Height()
	return invertNorm(t.x.Scale, t.x.Min, t.x.Max, nx), invertNorm(t.y.Scale, t.y.Min, t.y.Max, ny)
}

// DataToDisplay is the forward mapping, used to check the inverse.
func (t *plotTransform) DataToDisplay(x, y float64) (px, py float64) {
	b := t.Bounds()
	nx := t.x.Scale.Normalize(t.x.Min, t.x.Max, x)
	ny := t.y.Scale.Normalize(t.y.Min, t.y.Max, y)
	return b.X0 + nx*b.Width(), b.Y0 + ny*b.Height()
}

// invertNorm returns the data value which s normalizes to n. Linear,
// logarithmic and inverted scales are inverted exactly, anything else
// by bisection inside [min, max], which gives NaN outside of it.
func invertNorm(s plot.Normalizer, min, max, n float64) float64 {
	switch s := s.(type) {
	case nil, plot.LinearScale, *plot.LinearScale:
		return min + n*(max-min)
	case plot.LogScale, *plot.LogScale:
		lo := math.Log(min)
		return math.Exp(lo + n*(math.Log(max)-lo))
	case plot.InvertedScale:
		return invertNorm(s.Normalizer, max, min, n)
	}

	if n < 0 || n > 1 || math.IsNaN(n) {
		return math.NaN()
	}
	lo, hi := min, max
	increasing := s.Normalize(min, max, min) <= s.Normalize(min, max, max)
	for i := 0; i < 200 && lo != hi; i++ {
		mid := lo + (hi-lo)/2
		below := s.Normalize(min, max, mid) < n
		if below == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}
