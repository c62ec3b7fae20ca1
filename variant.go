package hallplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vdobler/hallplot/grid"
)

// GridMode selects how the background grid is laid out.
type GridMode string

const (
	GridPhysical GridMode = "physical" // printed millimetres
	GridData     GridMode = "data"     // multiples of the tick steps
	GridNone     GridMode = "none"
)

// ParseGridMode accepts physical, data and none; "mm" is an alias for
// physical.
func ParseGridMode(s string) (GridMode, error) {
	switch m := GridMode(strings.ToLower(strings.TrimSpace(s))); m {
	case GridPhysical, GridData, GridNone:
		return m, nil
	case "mm":
		return GridPhysical, nil
	}
	return "", fmt.Errorf("hallplot: unknown grid mode %q", s)
}

// Trend is the reference drawn over the points.
type Trend string

const (
	TrendFit  Trend = "fit"  // least squares line
	TrendMean Trend = "mean" // horizontal line at the mean of y
	TrendNone Trend = "none"
)

// Variant describes one chart completely: sheet, grid, trend, styles,
// labels and the measurements.
type Variant struct {
	Name   string         `json:"name"`
	Output string         `json:"output"`
	Sheet  grid.SheetSpec `json:"sheet"`

	Grid         GridMode              `json:"grid"`
	PhysicalGrid grid.PhysicalUnitGrid `json:"physical_grid,omitempty"`
	Ticks        TickSteps             `json:"ticks"`

	Trend      Trend   `json:"trend"`
	FitFrom    float64 `json:"fit_from,omitempty"`
	FitTo      float64 `json:"fit_to,omitempty"`
	FitSamples int     `json:"fit_samples,omitempty"`

	// XLim and YLim fix the axis limits. Without them the limits are
	// the data including uncertainties widened by XMargin and YMargin.
	XLim    *Range  `json:"xlim,omitempty"`
	YLim    *Range  `json:"ylim,omitempty"`
	XMargin float64 `json:"x_margin,omitempty"`
	YMargin float64 `json:"y_margin,omitempty"`

	Theme  Theme             `json:"theme"`
	Labels map[string]Labels `json:"labels"`
	Data   []Row             `json:"data"`
}

// UnknownVariantError is returned when looking up a variant which does
// not exist.
type UnknownVariantError struct {
	Name  string
	Known []string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("hallplot: unknown variant %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Options tune how a variant is built.
type Options struct {
	Lang     string   // label language, default ru
	Grid     GridMode // overrides the variant's grid mode if set
	Weighted bool     // weight the fit by 1/dy²
	Data     []Row    // replaces the variant's measurements if set
	OutDir   string   // directory for Render
	Logger   *Logger
}

// DefaultLang is the language of the lab reports.
const DefaultLang = "ru"

// Registry is a set of variants by name.
type Registry map[string]Variant

// Names returns the variant names sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (r Registry) Lookup(name string) (Variant, error) {
	v, ok := r[name]
	if !ok {
		return Variant{}, &UnknownVariantError{Name: name, Known: r.Names()}
	}
	return v, nil
}

// Merge adds the variants of o, replacing those of the same name.
func (r Registry) Merge(o Registry) Registry {
	m := make(Registry, len(r)+len(o))
	for n, v := range r {
		m[n] = v
	}
	for n, v := range o {
		m[n] = v
	}
	return m
}

// ReadVariants decodes a JSON list of variants. Fields not given in
// the JSON keep the values of the builtin variant of the same name, so
// a config may override e.g. only the data.
func ReadVariants(r io.Reader) (Registry, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("hallplot: decoding variants: %w", err)
	}
	reg := make(Registry, len(raw))
	for i, msg := range raw {
		var head struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return nil, fmt.Errorf("hallplot: variant %d: %w", i, err)
		}
		if head.Name == "" {
			return nil, fmt.Errorf("hallplot: variant %d has no name", i)
		}
		v := Variant{}
		if b, ok := Builtin[head.Name]; ok {
			v = b.clone()
		}
		if err := json.Unmarshal(msg, &v); err != nil {
			return nil, fmt.Errorf("hallplot: variant %q: %w", head.Name, err)
		}
		reg[v.Name] = v
	}
	return reg, nil
}

// LoadVariants reads variants from a JSON file.
func LoadVariants(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVariants(f)
}

func (v Variant) clone() Variant {
	c := v
	if v.XLim != nil {
		x := *v.XLim
		c.XLim = &x
	}
	if v.YLim != nil {
		y := *v.YLim
		c.YLim = &y
	}
	c.Labels = make(map[string]Labels, len(v.Labels))
	for k, l := range v.Labels {
		c.Labels[k] = l
	}
	c.Data = append([]Row(nil), v.Data...)
	c.Theme = Theme{}.Merge(v.Theme)
	return c
}

// labels picks the labels for lang, falling back to the default
// language and then to any.
func (v Variant) labels(lang string) Labels {
	if l, ok := v.Labels[lang]; ok {
		return l
	}
	if l, ok := v.Labels[DefaultLang]; ok {
		return l
	}
	keys := make([]string, 0, len(v.Labels))
	for k := range v.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		return v.Labels[keys[0]]
	}
	return Labels{}
}

// Strategy returns the grid strategy for mode.
func (v Variant) Strategy(mode GridMode) (grid.Strategy, error) {
	switch mode {
	case GridPhysical:
		return v.PhysicalGrid, nil
	case GridData:
		return v.Ticks.Grid(), nil
	case GridNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("hallplot: unknown grid mode %q", mode)
}

// Build runs the whole pipeline for v up to a figure with its grid in
// place.
func Build(v Variant, opts Options) (*Figure, error) {
	log := opts.Logger
	if log == nil {
		log = DefaultLogger
	}
	lang := opts.Lang
	if lang == "" {
		lang = DefaultLang
	}
	printer, err := NewPrinter(lang)
	if err != nil {
		return nil, err
	}
	labels := printer.Complete(v.labels(lang))

	rows := v.Data
	if opts.Data != nil {
		rows = opts.Data
	}
	series, err := SeriesFromRows(v.Name, rows)
	if err != nil {
		return nil, fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}

	fig, err := NewFigure(v.Sheet, v.Theme)
	if err != nil {
		return nil, fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}
	fig.SetLogger(log)
	fig.SetTitle(labels.Title)
	fig.SetLabels(labels.X, labels.Y)
	fig.Add(GeomPoint{Series: series, Legend: labels.Points})

	lim := v.limits(series)
	var st Stat
	switch v.Trend {
	case TrendFit:
		from, to := v.FitFrom, v.FitTo
		if from == to {
			from, to = lim.X.Min, lim.X.Max
		}
		st = StatLinReq{Weighted: opts.Weighted, From: from, To: to, Samples: v.FitSamples, Legend: labels.Fit}
	case TrendMean:
		st = StatMean{Legend: labels.Mean}
	case TrendNone, "":
	default:
		return nil, fmt.Errorf("hallplot: variant %s: unknown trend %q", v.Name, v.Trend)
	}
	if st != nil {
		g, err := st.Apply(series)
		if err != nil {
			return nil, fmt.Errorf("hallplot: variant %s: %s: %w", v.Name, st.Name(), err)
		}
		switch g := g.(type) {
		case GeomFitLine:
			log.Infof("%s: %s", v.Name, printer.FormatFit(g.Fit))
		case GeomHLine:
			log.Infof("%s: %s", v.Name, printer.FormatMean(g.Y))
		}
		fig.Add(g)
	}

	mode := v.Grid
	if opts.Grid != "" {
		mode = opts.Grid
	}
	strategy, err := v.Strategy(mode)
	if err != nil {
		return nil, err
	}

	if err := fig.Layout(lim, v.Ticks); err != nil {
		return nil, fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}
	if err := fig.FinalizeTransform(); err != nil {
		return nil, fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}
	if err := fig.OverlayGrid(strategy); err != nil {
		return nil, fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}
	return fig, nil
}

func (v Variant) limits(s *Series) Limits {
	bx, by := s.Bounds()
	lim := Limits{X: bx.Expand(v.XMargin), Y: by.Expand(v.YMargin)}
	if v.XLim != nil {
		lim.X = *v.XLim
	}
	if v.YLim != nil {
		lim.Y = *v.YLim
	}
	return lim
}

// Render builds v and saves it as opts.OutDir/v.Output.
func Render(v Variant, opts Options) (string, error) {
	if v.Output == "" {
		return "", errors.New("hallplot: variant " + v.Name + " has no output file")
	}
	fig, err := Build(v, opts)
	if err != nil {
		return "", err
	}
	path := filepath.Join(opts.OutDir, v.Output)
	if err := fig.Save(path); err != nil {
		return "", fmt.Errorf("hallplot: variant %s: %w", v.Name, err)
	}
	return path, nil
}
