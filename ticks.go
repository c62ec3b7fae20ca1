package hallplot

import (
	"math"
	"strconv"

	"github.com/vdobler/hallplot/grid"
	"gonum.org/v1/plot"
)

// multipleTicks places labeled major ticks at multiples of Major and
// unlabeled minor ticks at multiples of Minor.
type multipleTicks struct {
	Major, Minor float64
}

var _ plot.Ticker = multipleTicks{}

func (t multipleTicks) Ticks(min, max float64) []plot.Tick {
	prec := decimals(t.Major)
	var ticks []plot.Tick
	for _, v := range grid.Multiples(min, max, t.Major) {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', prec, 64)})
	}
	if t.Minor <= 0 {
		return ticks
	}
	for _, v := range grid.Multiples(min, max, t.Minor) {
		if isMultiple(v, t.Major) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

// decimals is the number of fractional digits needed to print
// multiples of step.
func decimals(step float64) int {
	for d := 0; d < 10; d++ {
		s := step * math.Pow10(d)
		if math.Abs(s-math.Round(s)) < 1e-9*math.Max(1, s) {
			return d
		}
	}
	return 10
}

func isMultiple(v, step float64) bool {
	q := v / step
	return math.Abs(q-math.Round(q)) < 1e-6
}
