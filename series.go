package hallplot

import (
	"fmt"
	"math"

	"github.com/vdobler/hallplot/stat"
)

// Uncertainty of one axis of a measurement series: either a single
// value used for every point or one value per point.
type Uncertainty struct {
	scalar   float64
	values   []float64
	perPoint bool
}

// Scalar is the same uncertainty v for all points.
func Scalar(v float64) Uncertainty { return Uncertainty{scalar: v} }

// PerPoint is an individual uncertainty for each point.
func PerPoint(v []float64) Uncertainty { return Uncertainty{values: v, perPoint: true} }

func (u Uncertainty) expand(n int, axis string) ([]float64, error) {
	if u.perPoint && len(u.values) != n {
		return nil, &stat.DimensionMismatchError{What: "value/d" + axis, Len1: n, Len2: len(u.values)}
	}
	out := make([]float64, n)
	for i := range out {
		v := u.scalar
		if u.perPoint {
			v = u.values[i]
		}
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, &InvalidUncertaintyError{Axis: axis, Index: i, Value: v}
		}
		out[i] = v
	}
	return out, nil
}

// InvalidUncertaintyError reports a negative or non-finite uncertainty.
type InvalidUncertaintyError struct {
	Axis  string
	Index int
	Value float64
}

func (e *InvalidUncertaintyError) Error() string {
	return fmt.Sprintf("hallplot: invalid %s uncertainty %g at index %d", e.Axis, e.Value, e.Index)
}

// Row is one measured point with its uncertainties.
type Row struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Series is an immutable sequence of measured (x, y) points with
// uncertainties on both axes.
type Series struct {
	name         string
	x, y, dx, dy []float64
}

// NewSeries validates and copies the measurements. x and y must have
// the same non-zero length; uncertainties must be non-negative.
func NewSeries(name string, x, y []float64, dx, dy Uncertainty) (*Series, error) {
	if len(x) != len(y) {
		return nil, &stat.DimensionMismatchError{What: "x/y", Len1: len(x), Len2: len(y)}
	}
	if len(x) == 0 {
		return nil, &stat.InsufficientDataError{N: 0, Min: 1}
	}
	dxs, err := dx.expand(len(x), "x")
	if err != nil {
		return nil, err
	}
	dys, err := dy.expand(len(y), "y")
	if err != nil {
		return nil, err
	}
	return &Series{
		name: name,
		x:    append([]float64(nil), x...),
		y:    append([]float64(nil), y...),
		dx:   dxs,
		dy:   dys,
	}, nil
}

// SeriesFromRows builds a series from table rows.
func SeriesFromRows(name string, rows []Row) (*Series, error) {
	n := len(rows)
	x, y := make([]float64, n), make([]float64, n)
	dx, dy := make([]float64, n), make([]float64, n)
	for i, r := range rows {
		x[i], y[i], dx[i], dy[i] = r.X, r.Y, r.DX, r.DY
	}
	return NewSeries(name, x, y, PerPoint(dx), PerPoint(dy))
}

func (s *Series) Name() string { return s.name }
func (s *Series) Len() int     { return len(s.x) }

// X, Y, DX and DY return copies of the columns.
func (s *Series) X() []float64  { return append([]float64(nil), s.x...) }
func (s *Series) Y() []float64  { return append([]float64(nil), s.y...) }
func (s *Series) DX() []float64 { return append([]float64(nil), s.dx...) }
func (s *Series) DY() []float64 { return append([]float64(nil), s.dy...) }

// Rows returns the series as table rows.
func (s *Series) Rows() []Row {
	rows := make([]Row, len(s.x))
	for i := range rows {
		rows[i] = Row{X: s.x[i], Y: s.y[i], DX: s.dx[i], DY: s.dy[i]}
	}
	return rows
}

// Bounds returns the range covered by the points including their
// error bars.
func (s *Series) Bounds() (x, y Range) {
	x, y = NewRange(), NewRange()
	x.TrainErr(s.x, s.dx)
	y.TrainErr(s.y, s.dy)
	return x, y
}
