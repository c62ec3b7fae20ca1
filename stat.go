package hallplot

import (
	"github.com/vdobler/hallplot/stat"
)

// Stat is a statistical transform of a measurement series into a geom
// drawn over the points, typically a model of the data.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply computes the statistic on s.
	Apply(s *Series) (Geom, error)
}

// StatLinReq is the least squares line through the points, sampled
// over [From, To]. Weighted fits use the y uncertainties as sigmas.
type StatLinReq struct {
	Weighted bool
	From, To float64
	Samples  int
	Legend   string
}

var _ Stat = StatLinReq{}

func (StatLinReq) Name() string { return "StatLinReq" }

func (s StatLinReq) Apply(series *Series) (Geom, error) {
	fit, err := Fit(series, s.Weighted)
	if err != nil {
		return nil, err
	}
	return GeomFitLine{Fit: fit, From: s.From, To: s.To, Samples: s.Samples, Legend: s.Legend}, nil
}

// Fit fits a line to the points of s.
func Fit(s *Series, weighted bool) (stat.FitResult, error) {
	if weighted {
		return stat.WeightedLinearFit(s.x, s.y, s.dy)
	}
	return stat.LinearFit(s.x, s.y)
}

// StatMean is a horizontal line at the mean of the y values.
type StatMean struct {
	Legend string
}

var _ Stat = StatMean{}

func (StatMean) Name() string { return "StatMean" }

func (s StatMean) Apply(series *Series) (Geom, error) {
	mean, err := stat.Mean(series.y)
	if err != nil {
		return nil, err
	}
	return GeomHLine{Y: mean, Legend: s.Legend}, nil
}
