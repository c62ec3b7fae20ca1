package hallplot

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vdobler/hallplot/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func hallSeries(t *testing.T) *Series {
	t.Helper()
	s, err := SeriesFromRows("U(I)", hallVoltageData)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFigurePhases(t *testing.T) {
	fig, err := NewFigure(MMSheet, Theme{})
	if err != nil {
		t.Fatal(err)
	}
	var pe *PhaseError

	if err := fig.FinalizeTransform(); !errors.As(err, &pe) || pe.Have != Drafting || pe.Want != LaidOut {
		t.Errorf("FinalizeTransform while drafting: %v", err)
	}
	if err := fig.OverlayGrid(grid.PhysicalUnitGrid{}); !errors.Is(err, grid.ErrTransformNotReady) {
		t.Errorf("OverlayGrid while drafting: %v", err)
	}
	if fig.Transform().Committed() {
		t.Errorf("transform committed while drafting")
	}
	if _, err := (grid.PhysicalUnitGrid{}).Lines(fig.Sheet(), fig.Transform()); !errors.Is(err, grid.ErrTransformNotReady) {
		t.Errorf("physical lines while drafting: %v", err)
	}
	if _, err := fig.WriteTo(io.Discard, "png"); !errors.As(err, &pe) {
		t.Errorf("WriteTo while drafting: %v", err)
	}

	if err := fig.Add(GeomPoint{Series: hallSeries(t)}); err != nil {
		t.Fatal(err)
	}
	if err := fig.Layout(Limits{X: Range{35, 265}, Y: Range{2, 24}}, TickSteps{}); err != nil {
		t.Fatal(err)
	}
	if err := fig.Add(GeomHLine{Y: 3}); !errors.As(err, &pe) || pe.Op != "Add" {
		t.Errorf("Add after layout: %v", err)
	}
	if err := fig.SetTitle("late"); !errors.As(err, &pe) {
		t.Errorf("SetTitle after layout: %v", err)
	}
	if err := fig.OverlayGrid(grid.PhysicalUnitGrid{}); !errors.Is(err, grid.ErrTransformNotReady) {
		t.Errorf("OverlayGrid before finalize: %v", err)
	}

	if err := fig.FinalizeTransform(); err != nil {
		t.Fatal(err)
	}
	if !fig.Transform().Committed() || fig.Phase() != Committed {
		t.Fatalf("not committed after FinalizeTransform")
	}
	if err := fig.Layout(Limits{}, TickSteps{}); !errors.As(err, &pe) || pe.Have != Committed {
		t.Errorf("Layout after finalize: %v", err)
	}
	if err := fig.OverlayGrid(nil); err != nil {
		t.Errorf("empty grid: %v", err)
	}
	if err := fig.OverlayGrid(nil); !errors.As(err, &pe) || pe.Have != Gridded {
		t.Errorf("second OverlayGrid: %v", err)
	}
	if len(fig.GridLines()) != 0 {
		t.Errorf("nil strategy produced lines")
	}
}

func TestNewFigureSheet(t *testing.T) {
	var iss *grid.InvalidSheetSpecError
	if _, err := NewFigure(grid.SheetSpec{WidthMM: 100, HeightMM: 0, DPI: 300}, Theme{}); !errors.As(err, &iss) || iss.Field != "height_mm" {
		t.Errorf("got %v", err)
	}

	fig, err := NewFigure(grid.SheetSpec{WidthMM: 100, HeightMM: 50, DPI: 299.6}, Theme{})
	if err != nil {
		t.Fatal(err)
	}
	if fig.Sheet().DPI != 300 {
		t.Errorf("dpi not rounded: %v", fig.Sheet())
	}
}

func TestLayoutTrainsLimits(t *testing.T) {
	fig, _ := NewFigure(MMSheet, Theme{})
	fig.Add(GeomPoint{Series: hallSeries(t)}, GeomHLine{Y: 30})
	if err := fig.Layout(Limits{X: Range{0, 300}}, TickSteps{}); err != nil {
		t.Fatal(err)
	}
	p := fig.Plot()
	if p.X.Min != 0 || p.X.Max != 300 {
		t.Errorf("fixed x limits changed: %g %g", p.X.Min, p.X.Max)
	}
	// y covers 4.3-0.53 up to the line at 30, plus 5%.
	lo, hi := 3.77, 30.0
	w := hi - lo
	if !near(p.Y.Min, lo-0.05*w, 1e-9) || !near(p.Y.Max, hi+0.05*w, 1e-9) {
		t.Errorf("trained y limits %g %g", p.Y.Min, p.Y.Max)
	}

	fig, _ = NewFigure(MMSheet, Theme{})
	if err := fig.Layout(Limits{X: Range{2, 1}, Y: Range{0, 1}}, TickSteps{}); err == nil {
		t.Errorf("inverted limits accepted")
	}
}

// committedFigure is the millimetre voltage chart up to the grid.
func committedFigure(t *testing.T, mode GridMode) *Figure {
	t.Helper()
	fig, err := Build(Builtin["hall-voltage-mm"], Options{Grid: mode})
	if err != nil {
		t.Fatal(err)
	}
	return fig
}

func TestPhysicalGridPixels(t *testing.T) {
	fig := committedFigure(t, GridPhysical)
	tr := fig.Transform().(*plotTransform)
	b := tr.Bounds()

	sheetW := MMSheet.WidthMM * MMSheet.PixelsPerMM()
	sheetH := MMSheet.HeightMM * MMSheet.PixelsPerMM()
	if !(b.X0 > 0 && b.X0 < b.X1 && b.X1 <= sheetW && b.Y0 > 0 && b.Y0 < b.Y1 && b.Y1 <= sheetH) {
		t.Fatalf("data area %+v outside of sheet %.0fx%.0f", b, sheetW, sheetH)
	}

	lines := fig.GridLines()
	v, h := grid.Count(lines)
	if v != 165 || h != 105 {
		t.Fatalf("got %d vertical and %d horizontal lines, want 165 and 105", v, h)
	}

	ppmm := MMSheet.PixelsPerMM()
	for k, l := range lines[:v] {
		px, _ := tr.DataToDisplay(l.Position, 2)
		if want := b.X0 + float64(k)*ppmm; !near(px, want, 1e-6) {
			t.Errorf("vertical %d at %.6f px, want %.6f", k, px, want)
		}
		if major := k%10 == 0; major != (l.Weight == grid.Major) {
			t.Errorf("vertical %d has weight %s", k, l.Weight)
		}
	}
	for k, l := range lines[v:] {
		_, py := tr.DataToDisplay(35, l.Position)
		if want := b.Y0 + float64(k)*ppmm; !near(py, want, 1e-6) {
			t.Errorf("horizontal %d at %.6f px, want %.6f", k, py, want)
		}
	}
	if !near(lines[0].Position, 35, 1e-9) || !near(lines[v].Position, 2, 1e-9) {
		t.Errorf("first lines at %g and %g, want the lower left corner", lines[0].Position, lines[v].Position)
	}
}

func TestDrawKeepsTransform(t *testing.T) {
	fig := committedFigure(t, GridPhysical)
	before := fig.Transform().Bounds()
	if _, err := fig.WriteTo(io.Discard, "png"); err != nil {
		t.Fatal(err)
	}
	after := newPlotTransform(fig.p, draw.New(fig.newCanvas()), float64(fig.dpi)).Bounds()
	diff(t, before, after)
	x, y := fig.Transform().Limits()
	diff(t, grid.Interval{Min: 35, Max: 265}, x)
	diff(t, grid.Interval{Min: 2, Max: 24}, y)
}

func TestDataGridFigure(t *testing.T) {
	fig, err := Build(Builtin["hall-voltage"], Options{})
	if err != nil {
		t.Fatal(err)
	}
	v, h := grid.Count(fig.GridLines())
	// x 30..270 every 1, y 2..24 every 0.2
	if v != 241 || h != 111 {
		t.Errorf("got %d vertical and %d horizontal lines, want 241 and 111", v, h)
	}
}

func TestWriteTo(t *testing.T) {
	fig := committedFigure(t, GridPhysical)
	var buf bytes.Buffer
	if _, err := fig.WriteTo(&buf, "png"); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	// 164.8mm x 104.8mm at 300dpi
	if math.Abs(float64(cfg.Width)-1946.46) > 1 || math.Abs(float64(cfg.Height)-1237.80) > 1 {
		t.Errorf("image is %dx%d", cfg.Width, cfg.Height)
	}

	if _, err := fig.WriteTo(io.Discard, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("gif: %v", err)
	}
	if _, err := fig.WriteTo(io.Discard, "JPEG"); err != nil {
		t.Errorf("jpeg: %v", err)
	}
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	fig := committedFigure(t, GridPhysical)
	if err := fig.Save(path); err != nil {
		t.Fatal(err)
	}
	diff(t, []string{"plot.png"}, dirEntries(t, dir))
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("saved file is no png: %v", err)
	}
}

func TestSaveFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	fig := committedFigure(t, GridPhysical)

	if err := fig.Save(filepath.Join(dir, "plot.gif")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("gif: %v", err)
	}
	if err := fig.Save(filepath.Join(dir, "missing", "plot.png")); err == nil {
		t.Errorf("saving into a missing directory succeeded")
	}

	drafting, _ := NewFigure(MMSheet, Theme{})
	var pe *PhaseError
	if err := drafting.Save(filepath.Join(dir, "early.png")); !errors.As(err, &pe) {
		t.Errorf("saving a drafting figure: %v", err)
	}

	if names := dirEntries(t, dir); len(names) != 0 {
		t.Errorf("left behind %v", names)
	}
}

func TestInvertNorm(t *testing.T) {
	tests := []struct {
		name     string
		s        plot.Normalizer
		min, max float64
	}{
		{"linear", plot.LinearScale{}, 30, 270},
		{"log", plot.LogScale{}, 1, 1000},
		{"inverted", plot.InvertedScale{Normalizer: plot.LinearScale{}}, 0, 10},
		{"inverted log", plot.InvertedScale{Normalizer: plot.LogScale{}}, 0.1, 10},
		{"sqrt", sqrtScale{}, 0, 100},
	}
	for _, tc := range tests {
		for _, x := range []float64{tc.min, (tc.min + tc.max) / 3, tc.max} {
			n := tc.s.Normalize(tc.min, tc.max, x)
			if got := invertNorm(tc.s, tc.min, tc.max, n); !near(got, x, 1e-9*math.Max(1, math.Abs(x))) {
				t.Errorf("%s: invert(norm(%g)) = %g", tc.name, x, got)
			}
		}
	}
	if got := invertNorm(sqrtScale{}, 0, 100, 1.5); !math.IsNaN(got) {
		t.Errorf("bisection outside the range gave %g", got)
	}
	if got := invertNorm(plot.LinearScale{}, 0, 100, 1.5); got != 150 {
		t.Errorf("linear extrapolation gave %g", got)
	}
}

type sqrtScale struct{}

func (sqrtScale) Normalize(min, max, x float64) float64 {
	return (math.Sqrt(x) - math.Sqrt(min)) / (math.Sqrt(max) - math.Sqrt(min))
}

// strokeCounter records the paths stroked on it.
type strokeCounter struct {
	recorder.Canvas
	paths []vg.Path
}

func (c *strokeCounter) Stroke(p vg.Path) { c.paths = append(c.paths, p) }

func TestGridPlotterClips(t *testing.T) {
	p := plot.New()
	p.X.Min, p.X.Max = 0, 10
	p.Y.Min, p.Y.Max = 0, 10
	gp := &gridPlotter{
		lines: []grid.GridLine{
			{Orientation: grid.Vertical, Position: 5, Weight: grid.Major},
			{Orientation: grid.Vertical, Position: 12, Weight: grid.Minor},
			{Orientation: grid.Horizontal, Position: 0, Weight: grid.Minor},
			{Orientation: grid.Horizontal, Position: math.NaN(), Weight: grid.Major},
		},
		major: draw.LineStyle{Color: color.Black, Width: 1},
		minor: draw.LineStyle{Color: color.Black, Width: 0.5},
	}
	rec := &strokeCounter{}
	gp.Plot(draw.NewCanvas(rec, 100, 100), p)

	if len(rec.paths) != 2 {
		t.Fatalf("stroked %d lines, want 2", len(rec.paths))
	}
	// minor lines come first
	if start := rec.paths[0][0].Pos; start.Y != 0 || start.X != 0 {
		t.Errorf("horizontal minor starts at %v", start)
	}
	if start := rec.paths[1][0].Pos; start.X != 50 {
		t.Errorf("vertical major at %v, want x=50", start)
	}
}
