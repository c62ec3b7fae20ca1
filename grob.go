package hallplot

import (
	"math"

	"github.com/vdobler/hallplot/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// gridPlotter draws grid lines as a plot.Plotter. It is added to the
// plot before any geom so it ends up beneath all data; the lines are
// filled in later once they are known.
type gridPlotter struct {
	lines []grid.GridLine
	major draw.LineStyle
	minor draw.LineStyle
}

var _ plot.Plotter = (*gridPlotter)(nil)

// slack tolerated when clipping lines at the border of the data area.
const clipSlack = vg.Length(0.01)

// Plot draws minor lines first so majors stay on top. Lines outside the
// data area are skipped.
func (g *gridPlotter) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, w := range []grid.Weight{grid.Minor, grid.Major} {
		sty := g.minor
		if w == grid.Major {
			sty = g.major
		}
		if sty.Width <= 0 {
			continue
		}
		for _, l := range g.lines {
			if l.Weight != w || math.IsNaN(l.Position) || math.IsInf(l.Position, 0) {
				continue
			}
			switch l.Orientation {
			case grid.Vertical:
				x := trX(l.Position)
				if x < c.Min.X-clipSlack || x > c.Max.X+clipSlack {
					continue
				}
				c.StrokeLine2(sty, x, c.Min.Y, x, c.Max.Y)
			case grid.Horizontal:
				y := trY(l.Position)
				if y < c.Min.Y-clipSlack || y > c.Max.Y+clipSlack {
					continue
				}
				c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
			}
		}
	}
}
