package hallplot

import (
	"fmt"

	"github.com/vdobler/hallplot/stat"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Legend entries and report lines, registered in the message catalog
// for every supported language.
const (
	msgPoints = "Experiment"
	msgFit    = "Linear fit"
	msgMean   = "Mean value"
	msgFitEq  = "y = %.4f·x %+.4f"
	msgMeanEq = "mean = %.4f"
	msgR2     = "R² = %.5f"
)

func init() {
	for key, ru := range map[string]string{
		msgPoints: "Эксперимент",
		msgFit:    "Линейная аппроксимация",
		msgMean:   "Среднее значение",
		msgFitEq:  "y = %.4f·x %+.4f",
		msgMeanEq: "среднее = %.4f",
		msgR2:     "R² = %.5f",
	} {
		message.SetString(language.Russian, key, ru)
	}
	for _, key := range []string{msgPoints, msgFit, msgMean, msgFitEq, msgMeanEq, msgR2} {
		message.SetString(language.English, key, key)
	}
}

// Labels are the texts of one figure in one language. Empty legend
// texts are taken from the message catalog.
type Labels struct {
	Title  string `json:"title"`
	X      string `json:"x"`
	Y      string `json:"y"`
	Points string `json:"points,omitempty"`
	Fit    string `json:"fit,omitempty"`
	Mean   string `json:"mean,omitempty"`
}

// Printer formats text and numbers for one language, e.g. with a
// decimal comma in Russian.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// NewPrinter parses lang as a BCP 47 tag.
func NewPrinter(lang string) (*Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("hallplot: bad language %q: %w", lang, err)
	}
	return &Printer{tag: tag, p: message.NewPrinter(tag)}, nil
}

func (p *Printer) Language() language.Tag { return p.tag }

// Complete fills the empty legend texts of l.
func (p *Printer) Complete(l Labels) Labels {
	if l.Points == "" {
		l.Points = p.p.Sprintf(msgPoints)
	}
	if l.Fit == "" {
		l.Fit = p.p.Sprintf(msgFit)
	}
	if l.Mean == "" {
		l.Mean = p.p.Sprintf(msgMean)
	}
	return l
}

// FormatFit renders the fit line equation.
func (p *Printer) FormatFit(fit stat.FitResult) string {
	return p.p.Sprintf(msgFitEq, fit.Slope, fit.Intercept)
}

func (p *Printer) FormatMean(mean float64) string {
	return p.p.Sprintf(msgMeanEq, mean)
}

func (p *Printer) FormatRSquared(r2 float64) string {
	return p.p.Sprintf(msgR2, r2)
}
