package hallplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdobler/hallplot/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Phase is the state of a figure. A figure moves strictly forward
// through the phases.
type Phase int

const (
	Drafting  Phase = iota // geoms and labels may be added
	LaidOut                // limits and ticks are fixed
	Committed              // the axis transform is valid
	Gridded                // grid lines are computed
)

func (p Phase) String() string {
	switch p {
	case Drafting:
		return "drafting"
	case LaidOut:
		return "laid out"
	case Committed:
		return "committed"
	case Gridded:
		return "gridded"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PhaseError reports an operation called in the wrong phase.
type PhaseError struct {
	Op   string
	Have Phase
	Want Phase
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("hallplot: %s needs a %s figure, have %s", e.Op, e.Want, e.Have)
}

// ErrUnknownFormat is returned for output formats other than png,
// jpeg and tiff.
var ErrUnknownFormat = errors.New("hallplot: unknown image format")

// Figure is one chart on a physical sheet. Build it with NewFigure,
// add geoms, then call Layout, FinalizeTransform and OverlayGrid in
// this order before writing it out.
type Figure struct {
	sheet grid.SheetSpec
	dpi   int
	theme Theme
	log   *Logger

	p      *plot.Plot
	geoms  []Geom
	phase  Phase
	limits Limits
	ticks  TickSteps
	grid   *gridPlotter
	tr     *plotTransform
}

// NewFigure starts a figure on sheet. A fractional resolution is
// rounded since raster canvases need whole dots per inch.
func NewFigure(sheet grid.SheetSpec, theme Theme) (*Figure, error) {
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	f := &Figure{
		theme: DefaultTheme.Merge(theme),
		log:   DefaultLogger,
		p:     plot.New(),
	}
	f.dpi = int(math.Round(sheet.DPI))
	if f.dpi < 1 {
		f.dpi = 1
	}
	if float64(f.dpi) != sheet.DPI {
		f.Warnf("resolution %g dpi rounded to %d dpi", sheet.DPI, f.dpi)
		sheet.DPI = float64(f.dpi)
	}
	f.sheet = sheet

	size := vg.Points(String2Float(f.theme.TitleSize, 4, 72))
	f.p.Title.TextStyle.Font.Size = size
	size = vg.Points(String2Float(f.theme.LabelSize, 4, 72))
	f.p.X.Label.TextStyle.Font.Size = size
	f.p.Y.Label.TextStyle.Font.Size = size
	f.p.Legend.Top = true
	f.p.Legend.Left = true
	return f, nil
}

// SetLogger directs warnings and debug output of f to l.
func (f *Figure) SetLogger(l *Logger) { f.log = l }

// Warnf logs a warning about f.
func (f *Figure) Warnf(format string, args ...any) {
	f.log.Warnf(format, args...)
}

func (f *Figure) Sheet() grid.SheetSpec { return f.sheet }
func (f *Figure) Phase() Phase          { return f.phase }

// Plot gives access to the underlying gonum plot.
func (f *Figure) Plot() *plot.Plot { return f.p }

func (f *Figure) need(op string, want Phase) error {
	if f.phase != want {
		return &PhaseError{Op: op, Have: f.phase, Want: want}
	}
	return nil
}

func (f *Figure) SetTitle(title string) error {
	if err := f.need("SetTitle", Drafting); err != nil {
		return err
	}
	f.p.Title.Text = title
	return nil
}

func (f *Figure) SetLabels(x, y string) error {
	if err := f.need("SetLabels", Drafting); err != nil {
		return err
	}
	f.p.X.Label.Text = x
	f.p.Y.Label.Text = y
	return nil
}

// Add appends geoms. They are drawn in the order added, above the grid.
func (f *Figure) Add(geoms ...Geom) error {
	if err := f.need("Add", Drafting); err != nil {
		return err
	}
	f.geoms = append(f.geoms, geoms...)
	return nil
}

// Layout fixes the axis limits and ticks. Unset limits are trained on
// the geoms and widened by 5%.
func (f *Figure) Layout(lim Limits, ticks TickSteps) error {
	if err := f.need("Layout", Drafting); err != nil {
		return err
	}
	if err := ticks.validate(); err != nil {
		return err
	}
	if lim.X.Min == lim.X.Max || lim.Y.Min == lim.Y.Max {
		x, y := NewRange(), NewRange()
		for _, g := range f.geoms {
			g.Train(&x, &y)
		}
		if lim.X.Min == lim.X.Max {
			lim.X = trained(x)
		}
		if lim.Y.Min == lim.Y.Max {
			lim.Y = trained(y)
		}
	}
	if lim.X.Min > lim.X.Max || lim.Y.Min > lim.Y.Max {
		return fmt.Errorf("hallplot: inverted axis limits %v", lim)
	}
	f.limits = lim
	f.ticks = ticks
	f.applyLimits()
	if ticks.MajorX > 0 {
		f.p.X.Tick.Marker = multipleTicks{Major: ticks.MajorX, Minor: ticks.MinorX}
	}
	if ticks.MajorY > 0 {
		f.p.Y.Tick.Marker = multipleTicks{Major: ticks.MajorY, Minor: ticks.MinorY}
	}
	f.log.Debugf("layout x=[%g,%g] y=[%g,%g]", lim.X.Min, lim.X.Max, lim.Y.Min, lim.Y.Max)
	f.phase = LaidOut
	return nil
}

func trained(r Range) Range {
	if !r.Valid() {
		return Range{Min: 0, Max: 1}
	}
	return r.ExpandFraction(0.05)
}

// applyLimits sets the axis limits; adding plotters may have widened
// them.
func (f *Figure) applyLimits() {
	f.p.X.Min, f.p.X.Max = f.limits.X.Min, f.limits.X.Max
	f.p.Y.Min, f.p.Y.Max = f.limits.Y.Min, f.limits.Y.Max
}

func (f *Figure) newCanvas() *vgimg.Canvas {
	w := vg.Length(f.sheet.WidthInches()) * vg.Inch
	h := vg.Length(f.sheet.HeightInches()) * vg.Inch
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(f.dpi))
}

// FinalizeTransform constructs all plotters and lays out the figure on
// a canvas of the sheet's size and resolution. Afterwards Transform is
// valid.
func (f *Figure) FinalizeTransform() error {
	if err := f.need("FinalizeTransform", LaidOut); err != nil {
		return err
	}
	f.grid = &gridPlotter{
		major: MergeStyles(f.theme.MajorGridStyle, DefaultTheme.MajorGridStyle).LineStyle(),
		minor: MergeStyles(f.theme.MinorGridStyle, DefaultTheme.MinorGridStyle).LineStyle(),
	}
	f.p.Add(f.grid)
	for _, g := range f.geoms {
		plotters, thumbs, err := g.Construct(f.theme)
		if err != nil {
			return err
		}
		f.p.Add(plotters...)
		if label := g.Label(); label != "" {
			f.p.Legend.Add(label, thumbs...)
		}
	}
	f.applyLimits()

	f.tr = newPlotTransform(f.p, draw.New(f.newCanvas()), float64(f.dpi))
	b := f.tr.Bounds()
	f.log.Debugf("data area (%.1f,%.1f)-(%.1f,%.1f) px", b.X0, b.Y0, b.X1, b.Y1)
	f.phase = Committed
	return nil
}

// Transform is the committed axis transform. Before FinalizeTransform
// it reports not committed.
func (f *Figure) Transform() grid.AxisTransform { return f.tr }

// OverlayGrid computes the grid lines of s and places them beneath the
// geoms. A nil strategy draws no grid.
func (f *Figure) OverlayGrid(s grid.Strategy) error {
	if f.phase == LaidOut || f.phase == Drafting {
		return grid.ErrTransformNotReady
	}
	if err := f.need("OverlayGrid", Committed); err != nil {
		return err
	}
	if s != nil {
		lines, err := s.Lines(f.sheet, f.tr)
		if err != nil {
			return err
		}
		v, h := grid.Count(lines)
		f.log.Debugf("%s grid: %d vertical, %d horizontal lines", s.Name(), v, h)
		f.grid.lines = lines
	}
	f.phase = Gridded
	return nil
}

// GridLines returns the lines set by OverlayGrid.
func (f *Figure) GridLines() []grid.GridLine {
	if f.grid == nil {
		return nil
	}
	return append([]grid.GridLine(nil), f.grid.lines...)
}

// WriteTo draws the figure and encodes it as png, jpeg or tiff.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	if f.phase < Committed {
		return 0, &PhaseError{Op: "WriteTo", Have: f.phase, Want: Gridded}
	}
	var wt io.WriterTo
	c := f.newCanvas()
	switch strings.ToLower(format) {
	case "png":
		wt = vgimg.PngCanvas{Canvas: c}
	case "jpg", "jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	case "tif", "tiff":
		wt = vgimg.TiffCanvas{Canvas: c}
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	f.applyLimits()
	f.p.Draw(draw.New(c))
	return wt.WriteTo(w)
}

// Save writes the figure to path, the format taken from the extension.
// The image goes to a temporary file first which is renamed on success,
// so an existing file is never left half written.
func (f *Figure) Save(path string) (err error) {
	if f.phase < Committed {
		return &PhaseError{Op: "Save", Have: f.phase, Want: Gridded}
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "tif", "tiff":
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if _, err = f.WriteTo(tmp, format); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	f.log.Infof("wrote %s (%s)", path, f.sheet)
	return nil
}
