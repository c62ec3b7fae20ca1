package hallplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// String2Float parses s as a float and clamps it to [low, high].
// A trailing % divides by 100. Unparsable input yields the midpoint.
func String2Float(s string, low, high float64) float64 {
	s = strings.TrimSpace(s)
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with alpha set to a in [0,1]. The alpha already
// present in c is multiplied in.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*a + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	CrossPoint
	PlusPoint
)

// String2PointShape understands the shape names below as well as the
// single letter matplotlib markers o, s, D, ^, v, x and +.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "diamond":
		return DiamondPoint
	case "delta":
		return DeltaPoint
	case "nabla":
		return NablaPoint
	case "solid-circle", "o":
		return SolidCirclePoint
	case "solid-square", "s":
		return SolidSquarePoint
	case "solid-diamond", "D":
		return SolidDiamondPoint
	case "solid-delta", "^":
		return SolidDeltaPoint
	case "solid-nabla", "v":
		return SolidNablaPoint
	case "cross", "x":
		return CrossPoint
	case "plus", "+":
		return PlusPoint
	}
	return BlankPoint
}

// Solid reports whether the shape is filled.
func (s PointShape) Solid() bool {
	return s >= SolidCirclePoint && s <= SolidNablaPoint
}

// Glyph returns the drawer for s. Filled shapes get an outline in
// edge if edge is not nil.
func (s PointShape) Glyph(edge color.Color) draw.GlyphDrawer {
	var g draw.GlyphDrawer
	switch s {
	case BlankPoint:
		return blankGlyph{}
	case CirclePoint:
		g = draw.RingGlyph{}
	case SquarePoint:
		g = draw.SquareGlyph{}
	case DiamondPoint:
		g = diamondGlyph{}
	case DeltaPoint:
		g = draw.TriangleGlyph{}
	case NablaPoint:
		g = nablaGlyph{}
	case SolidCirclePoint:
		g = draw.CircleGlyph{}
	case SolidSquarePoint:
		g = draw.BoxGlyph{}
	case SolidDiamondPoint:
		g = diamondGlyph{solid: true}
	case SolidDeltaPoint:
		g = draw.PyramidGlyph{}
	case SolidNablaPoint:
		g = nablaGlyph{solid: true}
	case CrossPoint:
		g = draw.CrossGlyph{}
	case PlusPoint:
		g = draw.PlusGlyph{}
	default:
		g = draw.CircleGlyph{}
	}
	if s.Solid() && edge != nil {
		return edgedGlyph{fill: g, edge: edge, shape: s}
	}
	return g
}

type blankGlyph struct{}

func (blankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

// diamondGlyph is a square rotated by 45°, as gonum has none.
type diamondGlyph struct{ solid bool }

func (d diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y},
		{X: pt.X, Y: pt.Y - r},
		{X: pt.X - r, Y: pt.Y},
	}
	outline(c, sty, pts, d.solid)
}

// nablaGlyph is a downward pointing triangle.
type nablaGlyph struct{ solid bool }

func (n nablaGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	pts := []vg.Point{
		{X: pt.X - r, Y: pt.Y + r/2},
		{X: pt.X + r, Y: pt.Y + r/2},
		{X: pt.X, Y: pt.Y - r},
	}
	outline(c, sty, pts, n.solid)
}

func outline(c *draw.Canvas, sty draw.GlyphStyle, pts []vg.Point, solid bool) {
	if solid {
		c.FillPolygon(sty.Color, pts)
		return
	}
	closed := append(pts, pts[0])
	c.StrokeLines(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)}, closed)
}

// edgedGlyph draws a filled glyph and then its hollow counterpart in
// the edge color, like markerfacecolor/markeredgecolor.
type edgedGlyph struct {
	fill  draw.GlyphDrawer
	edge  color.Color
	shape PointShape
}

func (e edgedGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	e.fill.DrawGlyph(c, sty, pt)
	edge := sty
	edge.Color = e.edge
	var hollow draw.GlyphDrawer
	switch e.shape {
	case SolidCirclePoint:
		hollow = draw.RingGlyph{}
	case SolidSquarePoint:
		hollow = draw.SquareGlyph{}
	case SolidDeltaPoint:
		hollow = draw.TriangleGlyph{}
	case SolidNablaPoint:
		hollow = nablaGlyph{}
	default:
		hollow = diamondGlyph{}
	}
	hollow.DrawGlyph(c, edge, pt)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

// String2LineType understands names as well as matplotlib's
// "-", "--", ":" and "-.".
func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid", "-":
		return SolidLine
	case "dashed", "--":
		return DashedLine
	case "dotted", ":":
		return DottedLine
	case "dotdash", "-.":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern for lines of the given width.
// Patterns scale with the width like matplotlib's do.
func (t LineType) Dashes(width vg.Length) []vg.Length {
	w := width
	if w < vg.Points(1) {
		w = vg.Points(1)
	}
	switch t {
	case DashedLine:
		return []vg.Length{3.7 * w, 1.6 * w}
	case DottedLine:
		return []vg.Length{1 * w, 1.65 * w}
	case DotDashLine:
		return []vg.Length{6.4 * w, 1.6 * w, 1 * w, 1.6 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 2 * w}
	case TwodashLine:
		return []vg.Length{4 * w, 2 * w, 8 * w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// Anything else yields a conspicuous pinkish gray.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
