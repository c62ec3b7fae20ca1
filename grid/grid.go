// Package grid computes the lines of a millimetre-paper background grid.
//
// Two strategies exist. PhysicalUnitGrid places lines at fixed printed
// distances (e.g. every millimetre of the output sheet) and maps them
// into data coordinates through the AxisTransform of the plotting
// surface. DataUnitGrid places lines at multiples of fixed data
// intervals, which looks alike but is only physically accurate if the
// axis happens to be scaled 1:1 with print millimetres.
//
// The package knows nothing about the plotting library; the surface is
// seen only through the AxisTransform interface.
package grid

import (
	"fmt"
	"math"
)

// MMPerInch is the number of millimetres in one inch.
const MMPerInch = 25.4

// -------------------------------------------------------------------------
// Sheet

// SheetSpec is the physical extent and resolution of the output.
type SheetSpec struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
	DPI      float64 `json:"dpi"` // pixels per inch
}

// Validate reports the first non-positive (or non-finite) field.
func (s SheetSpec) Validate() error {
	check := func(field string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return &InvalidSheetSpecError{Field: field, Value: v}
		}
		return nil
	}
	if err := check("width_mm", s.WidthMM); err != nil {
		return err
	}
	if err := check("height_mm", s.HeightMM); err != nil {
		return err
	}
	return check("dpi", s.DPI)
}

// PixelsPerMM is the resolution in pixels per millimetre.
func (s SheetSpec) PixelsPerMM() float64 { return s.DPI / MMPerInch }

func (s SheetSpec) WidthInches() float64  { return s.WidthMM / MMPerInch }
func (s SheetSpec) HeightInches() float64 { return s.HeightMM / MMPerInch }

// SheetFromInches is a convenience for sheets specified in inches.
func SheetFromInches(w, h, dpi float64) SheetSpec {
	return SheetSpec{WidthMM: w * MMPerInch, HeightMM: h * MMPerInch, DPI: dpi}
}

func (s SheetSpec) String() string {
	return fmt.Sprintf("%gx%gmm@%gdpi", s.WidthMM, s.HeightMM, s.DPI)
}

// -------------------------------------------------------------------------
// Geometry

// Rect is an axis aligned rectangle in display pixels. Y grows upwards,
// (X0, Y0) is the lower left corner.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Interval is a closed range of data values.
type Interval struct {
	Min, Max float64
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

// AxisTransform is the capability of a plotting surface to map display
// pixels to data coordinates. It is valid only once the surface has
// committed its axis limits and layout; before that Committed reports
// false and the other methods return meaningless values.
type AxisTransform interface {
	// Committed reports whether layout has happened.
	Committed() bool

	// Bounds is the plotting area in display pixels.
	Bounds() Rect

	// Limits are the data ranges of the x and y axis.
	Limits() (x, y Interval)

	// DisplayToData maps a display pixel position to data coordinates.
	DisplayToData(px, py float64) (x, y float64)
}

// -------------------------------------------------------------------------
// Lines

// Orientation of a grid line.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Weight is the visual weight of a grid line.
type Weight int

const (
	Minor Weight = iota
	Major
)

func (w Weight) String() string {
	if w == Major {
		return "major"
	}
	return "minor"
}

// GridLine is one line of the grid. Position is the data coordinate:
// an x value for vertical lines, a y value for horizontal lines.
type GridLine struct {
	Orientation Orientation
	Position    float64
	Weight      Weight
}

func (l GridLine) String() string {
	return fmt.Sprintf("%s %s @ %g", l.Weight, l.Orientation, l.Position)
}

// Strategy produces the grid lines for a sheet and a committed transform.
type Strategy interface {
	Name() string
	Lines(sheet SheetSpec, tr AxisTransform) ([]GridLine, error)
}

// Count returns the number of vertical and horizontal lines.
func Count(lines []GridLine) (vertical, horizontal int) {
	for _, l := range lines {
		if l.Orientation == Vertical {
			vertical++
		} else {
			horizontal++
		}
	}
	return vertical, horizontal
}
