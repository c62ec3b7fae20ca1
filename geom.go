package hallplot

import (
	"fmt"

	"github.com/vdobler/hallplot/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Geom is a geometrical object, a type of visual for the figure.
type Geom interface {
	Name() string

	// Aes returns the merged fixed aesthetics under theme th.
	Aes(th Theme) AesMapping

	// Train widens the axis ranges to cover the geom.
	Train(x, y *Range)

	// Construct turns the geom into gonum plotters and the thumbnails
	// shown for it in the legend.
	Construct(th Theme) ([]plot.Plotter, []plot.Thumbnailer, error)

	// Label is the legend entry; empty means none.
	Label() string
}

// -------------------------------------------------------------------------
// Geom Point

// GeomPoint draws the measured points as markers with error bars in
// both directions.
type GeomPoint struct {
	Series     *Series
	Style      AesMapping // markers
	ErrorStyle AesMapping // error bars
	Legend     string
}

var _ Geom = GeomPoint{}

func (p GeomPoint) Name() string  { return "GeomPoint" }
func (p GeomPoint) Label() string { return p.Legend }

func (p GeomPoint) Aes(th Theme) AesMapping {
	return MergeStyles(p.Style, th.PointStyle, DefaultTheme.PointStyle)
}

func (p GeomPoint) errorAes(th Theme) AesMapping {
	return MergeStyles(p.ErrorStyle, th.ErrorStyle, DefaultTheme.ErrorStyle)
}

func (p GeomPoint) Train(x, y *Range) {
	if p.Series == nil {
		return
	}
	x.TrainErr(p.Series.x, p.Series.dx)
	y.TrainErr(p.Series.y, p.Series.dy)
}

// errorPoints satisfies the XYer, XErrorer and YErrorer interfaces
// needed by the gonum error bar plotters.
type errorPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

func newErrorPoints(s *Series) errorPoints {
	n := s.Len()
	ep := errorPoints{
		XYs:     make(plotter.XYs, n),
		XErrors: make(plotter.XErrors, n),
		YErrors: make(plotter.YErrors, n),
	}
	for i := 0; i < n; i++ {
		ep.XYs[i].X, ep.XYs[i].Y = s.x[i], s.y[i]
		ep.XErrors[i].Low, ep.XErrors[i].High = -s.dx[i], s.dx[i]
		ep.YErrors[i].Low, ep.YErrors[i].High = -s.dy[i], s.dy[i]
	}
	return ep
}

func (p GeomPoint) Construct(th Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	if p.Series == nil || p.Series.Len() == 0 {
		return nil, nil, fmt.Errorf("hallplot: %s without data", p.Name())
	}
	ep := newErrorPoints(p.Series)
	eaes := p.errorAes(th)

	xbars, err := plotter.NewXErrorBars(ep)
	if err != nil {
		return nil, nil, fmt.Errorf("hallplot: x error bars: %w", err)
	}
	xbars.LineStyle = eaes.LineStyle()
	xbars.CapWidth = eaes.CapWidth()

	ybars, err := plotter.NewYErrorBars(ep)
	if err != nil {
		return nil, nil, fmt.Errorf("hallplot: y error bars: %w", err)
	}
	ybars.LineStyle = eaes.LineStyle()
	ybars.CapWidth = eaes.CapWidth()

	points, err := plotter.NewScatter(ep.XYs)
	if err != nil {
		return nil, nil, fmt.Errorf("hallplot: points: %w", err)
	}
	points.GlyphStyle = p.Aes(th).GlyphStyle()

	return []plot.Plotter{xbars, ybars, points}, []plot.Thumbnailer{points}, nil
}

// -------------------------------------------------------------------------
// Geom Fit Line

// DefaultFitSamples is the number of points a fit line is drawn with.
const DefaultFitSamples = 200

// GeomFitLine draws a fitted straight line sampled over [From, To].
// It does not widen the axis ranges.
type GeomFitLine struct {
	Fit      stat.FitResult
	From, To float64
	Samples  int
	Style    AesMapping
	Legend   string
}

var _ Geom = GeomFitLine{}

func (l GeomFitLine) Name() string      { return "GeomFitLine" }
func (l GeomFitLine) Label() string     { return l.Legend }
func (l GeomFitLine) Train(x, y *Range) {}

func (l GeomFitLine) Aes(th Theme) AesMapping {
	return MergeStyles(l.Style, th.FitStyle, DefaultTheme.FitStyle)
}

// XYs samples the fit line.
func (l GeomFitLine) XYs() plotter.XYs {
	n := l.Samples
	if n <= 0 {
		n = DefaultFitSamples
	}
	xys := make(plotter.XYs, 0, n)
	for x, y := range l.Fit.Sample(l.From, l.To, n) {
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

func (l GeomFitLine) Construct(th Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	line, err := plotter.NewLine(l.XYs())
	if err != nil {
		return nil, nil, fmt.Errorf("hallplot: fit line: %w", err)
	}
	line.LineStyle = l.Aes(th).LineStyle()
	return []plot.Plotter{line}, []plot.Thumbnailer{line}, nil
}

// -------------------------------------------------------------------------
// Geom HLine

// GeomHLine draws a horizontal reference line, e.g. at the mean, across
// the whole x axis.
type GeomHLine struct {
	Y      float64
	Style  AesMapping
	Legend string
}

var _ Geom = GeomHLine{}

func (h GeomHLine) Name() string      { return "GeomHLine" }
func (h GeomHLine) Label() string     { return h.Legend }
func (h GeomHLine) Train(x, y *Range) { y.Train(h.Y) }

func (h GeomHLine) Aes(th Theme) AesMapping {
	return MergeStyles(h.Style, th.MeanStyle, DefaultTheme.MeanStyle)
}

func (h GeomHLine) Construct(th Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	y := h.Y
	fn := plotter.NewFunction(func(float64) float64 { return y })
	fn.Samples = 2
	fn.LineStyle = h.Aes(th).LineStyle()
	return []plot.Plotter{fn}, []plot.Thumbnailer{fn}, nil
}
