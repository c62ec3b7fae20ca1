package hallplot

import (
	"image/color"
	"sort"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds the fixed aesthetics of a visual element as strings,
// e.g. {"color": "#d53e4f", "alpha": "0.9", "size": "8"}.
//
// Understood keys:
//
//	color     line or marker color
//	fill      marker face color (defaults to color)
//	edge      marker edge color of solid shapes
//	alpha     opacity in [0,1]
//	size      line width or marker diameter in points
//	linetype  solid, dashed, dotted, dotdash, ... or -, --, :, -.
//	shape     marker shape, see String2PointShape
//	capsize   error bar cap length in points
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, n := range m {
		c[a] = n
	}
	return c
}

// Keys returns the set aesthetics in sorted order.
func (m AesMapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeStyles merges the mappings; earlier ones take precedence.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for i := len(ams) - 1; i >= 0; i-- {
		for k, v := range ams[i] {
			if v == "" {
				continue
			}
			merged[k] = v
		}
	}
	return merged
}

func (m AesMapping) color(key string, fallback color.Color) color.Color {
	s, ok := m[key]
	if !ok || s == "" {
		return fallback
	}
	c := String2Color(s)
	if a, ok := m["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return c
}

func (m AesMapping) length(key string, fallback float64) vg.Length {
	if s, ok := m[key]; ok {
		return vg.Points(String2Float(s, 0, 100))
	}
	return vg.Points(fallback)
}

// LineStyle converts m to a gonum line style.
func (m AesMapping) LineStyle() draw.LineStyle {
	width := m.length("size", 1)
	lt := SolidLine
	if s, ok := m["linetype"]; ok {
		lt = String2LineType(s)
	}
	if lt == BlankLine {
		width = 0
	}
	return draw.LineStyle{
		Color:  m.color("color", color.Black),
		Width:  width,
		Dashes: lt.Dashes(width),
	}
}

// GlyphStyle converts m to a gonum glyph style.
func (m AesMapping) GlyphStyle() draw.GlyphStyle {
	shape := SolidCirclePoint
	if s, ok := m["shape"]; ok {
		shape = String2PointShape(s)
	}
	var edge color.Color
	if _, ok := m["edge"]; ok {
		edge = m.color("edge", nil)
	}
	fill := m.color("color", color.Black)
	fill = m.color("fill", fill)
	return draw.GlyphStyle{
		Color:  fill,
		Radius: m.length("size", 6) / 2,
		Shape:  shape.Glyph(edge),
	}
}

// CapWidth is the full width of an error bar cap.
func (m AesMapping) CapWidth() vg.Length {
	return 2 * m.length("capsize", 3)
}

// -------------------------------------------------------------------------
// Theme

// Theme collects the default styles of the elements of a figure.
type Theme struct {
	PointStyle     AesMapping `json:"points,omitempty"`
	ErrorStyle     AesMapping `json:"errors,omitempty"`
	FitStyle       AesMapping `json:"fit,omitempty"`
	MeanStyle      AesMapping `json:"mean,omitempty"`
	MajorGridStyle AesMapping `json:"major_grid,omitempty"`
	MinorGridStyle AesMapping `json:"minor_grid,omitempty"`

	TitleSize string `json:"title_size,omitempty"`
	LabelSize string `json:"label_size,omitempty"`
}

// DefaultTheme is a thin gray millimetre paper with red points and a
// blue fit line. Minor lines are thin and transparent, major lines
// heavier.
var DefaultTheme = Theme{
	PointStyle: AesMapping{
		"shape": "o",
		"size":  "8",
		"color": "#d53e4f",
		"alpha": "0.9",
	},
	ErrorStyle: AesMapping{
		"size":    "1.4",
		"color":   "#d53e4f",
		"alpha":   "0.9",
		"capsize": "4",
	},
	FitStyle: AesMapping{
		"size":     "2.2",
		"linetype": "solid",
		"color":    "#3288bd",
	},
	MeanStyle: AesMapping{
		"size":     "2.5",
		"linetype": "solid",
		"color":    "blue",
	},
	MajorGridStyle: AesMapping{
		"size":     "0.6",
		"linetype": "solid",
		"color":    "#6b6b6b",
		"alpha":    "0.55",
	},
	MinorGridStyle: AesMapping{
		"size":     "0.35",
		"linetype": "solid",
		"color":    "#b3b3b3",
		"alpha":    "0.35",
	},
	TitleSize: "15",
	LabelSize: "13",
}

// Merge returns t with every style set in o taking precedence.
func (t Theme) Merge(o Theme) Theme {
	r := Theme{
		PointStyle:     MergeStyles(o.PointStyle, t.PointStyle),
		ErrorStyle:     MergeStyles(o.ErrorStyle, t.ErrorStyle),
		FitStyle:       MergeStyles(o.FitStyle, t.FitStyle),
		MeanStyle:      MergeStyles(o.MeanStyle, t.MeanStyle),
		MajorGridStyle: MergeStyles(o.MajorGridStyle, t.MajorGridStyle),
		MinorGridStyle: MergeStyles(o.MinorGridStyle, t.MinorGridStyle),
		TitleSize:      t.TitleSize,
		LabelSize:      t.LabelSize,
	}
	if o.TitleSize != "" {
		r.TitleSize = o.TitleSize
	}
	if o.LabelSize != "" {
		r.LabelSize = o.LabelSize
	}
	return r
}
