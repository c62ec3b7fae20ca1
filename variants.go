package hallplot

import "github.com/vdobler/hallplot/grid"

// Measurements of the Hall effect lab.
var (
	// Hall voltage U_x in mV against current I in µA.
	hallVoltageData = rowsOf(
		[]float64{50, 100, 150, 200, 250},
		[]float64{4.3, 7.8, 13.15, 17.1, 21.35},
		11.3, 0.53)

	// Hall coefficient R_H in m³/C against voltage U in mV.
	hallCoefficientData = rowsOf(
		[]float64{4.3, 7.8, 13.2, 17.1, 21.4},
		[]float64{0.43, 0.40, 0.44, 0.43, 0.43},
		0.67, 0.05)
)

func rowsOf(x, y []float64, dx, dy float64) []Row {
	rows := make([]Row, len(x))
	for i := range x {
		rows[i] = Row{X: x[i], Y: y[i], DX: dx, DY: dy}
	}
	return rows
}

// Sheets of the lab report.
var (
	LetterSheet = grid.SheetFromInches(11, 7, 300)
	MMSheet     = grid.SheetSpec{WidthMM: 164.8, HeightMM: 104.8, DPI: 300}
)

var (
	voltageLabels = map[string]Labels{
		"ru": {
			Title: "Зависимость напряжения Холла от тока",
			X:     "Ток I, мкА",
			Y:     "Напряжение Холла U_x, мВ",
		},
		"en": {
			Title: "Hall voltage versus current",
			X:     "Current I, µA",
			Y:     "Hall voltage U_x, mV",
		},
	}
	coefficientLabels = map[string]Labels{
		"ru": {
			Title: "Зависимость коэффициента Холла от напряжения",
			X:     "U, мВ",
			Y:     "R_H, м³/Кл",
		},
		"en": {
			Title: "Hall coefficient versus voltage",
			X:     "U, mV",
			Y:     "R_H, m³/C",
		},
	}
)

// mmTheme is the thinner look of the figures on the millimetre sheet.
func mmTheme(major, minor string, points, errors, trend AesMapping, trendIsMean bool) Theme {
	t := Theme{
		PointStyle: points,
		ErrorStyle: errors,
		MajorGridStyle: AesMapping{
			"size": "0.7", "linetype": "dashed", "color": major, "alpha": "0.55",
		},
		MinorGridStyle: AesMapping{
			"size": "0.45", "linetype": "dotted", "color": minor, "alpha": "0.45",
		},
		TitleSize: "14",
		LabelSize: "12",
	}
	if trendIsMean {
		t.MeanStyle = trend
	} else {
		t.FitStyle = trend
	}
	return t
}

// Builtin are the variants of the lab report.
var Builtin = Registry{
	"hall-voltage": {
		Name:       "hall-voltage",
		Output:     "hall_voltage_mm_style.png",
		Sheet:      LetterSheet,
		Grid:       GridData,
		Ticks:      TickSteps{MajorX: 10, MinorX: 1, MajorY: 1, MinorY: 0.2},
		Trend:      TrendFit,
		FitFrom:    30,
		FitTo:      270,
		FitSamples: 200,
		XLim:       &Range{Min: 30, Max: 270},
		YLim:       &Range{Min: 2, Max: 24},
		Labels:     voltageLabels,
		Data:       hallVoltageData,
	},

	"hall-coefficient": {
		Name:    "hall-coefficient",
		Output:  "hall_coefficient_vs_voltage_mm.png",
		Sheet:   LetterSheet,
		Grid:    GridData,
		Ticks:   TickSteps{MajorX: 2, MinorX: 1, MajorY: 0.02, MinorY: 0.01},
		Trend:   TrendMean,
		XMargin: 5,
		YMargin: 0.08,
		Theme: Theme{
			PointStyle: AesMapping{"shape": "o", "size": "8", "color": "red", "alpha": "0.8"},
			ErrorStyle: AesMapping{"size": "2", "color": "red", "alpha": "0.8", "capsize": "5"},
			TitleSize:  "14",
			LabelSize:  "12",
		},
		Labels: coefficientLabels,
		Data:   hallCoefficientData,
	},

	"hall-voltage-mm": {
		Name:       "hall-voltage-mm",
		Output:     "plot_grid_mm_correct.png",
		Sheet:      MMSheet,
		Grid:       GridPhysical,
		Ticks:      TickSteps{MajorX: 10, MinorX: 1, MajorY: 10, MinorY: 1},
		Trend:      TrendFit,
		FitFrom:    40,
		FitTo:      260,
		FitSamples: 250,
		XLim:       &Range{Min: 35, Max: 265},
		YLim:       &Range{Min: 2, Max: 24},
		Theme: mmTheme("#505050", "#b0b0b0",
			AesMapping{"shape": "D", "size": "7", "fill": "#009E73", "edge": "#004d40", "alpha": "1"},
			AesMapping{"size": "1.5", "color": "#444444", "alpha": "1", "capsize": "4"},
			AesMapping{"size": "2.4", "linetype": "solid", "color": "#D55E00"},
			false),
		Labels: voltageLabels,
		Data:   hallVoltageData,
	},

	"hall-coefficient-mm": {
		Name:    "hall-coefficient-mm",
		Output:  "plot_RH_mm_correct.png",
		Sheet:   MMSheet,
		Grid:    GridPhysical,
		Ticks:   TickSteps{MajorX: 2, MinorX: 1, MajorY: 0.02, MinorY: 0.01},
		Trend:   TrendMean,
		XMargin: 4,
		YMargin: 0.05,
		Theme: mmTheme("#4a4a4a", "#9e9e9e",
			AesMapping{"shape": "s", "size": "7", "fill": "#0072B2", "edge": "#003f5c", "alpha": "1"},
			AesMapping{"size": "1.6", "color": "#404040", "alpha": "1", "capsize": "4"},
			AesMapping{"size": "2.3", "linetype": "dotdash", "color": "#CC79A7"},
			true),
		Labels: coefficientLabels,
		Data:   hallCoefficientData,
	},
}
