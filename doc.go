// Package hallplot draws the calibration charts of the Hall effect lab:
// measured points with error bars in both directions, a least squares
// line or a mean line over them, and a millimetre paper grid behind.
//
// # Figures
//
// A Figure lives on a physical sheet (grid.SheetSpec) and is built in
// phases which must be run in order:
//
//	fig, _ := NewFigure(sheet, theme)
//	fig.SetTitle(...); fig.SetLabels(...); fig.Add(geoms...)
//	fig.Layout(limits, ticks)   // axis limits and ticks are fixed
//	fig.FinalizeTransform()     // layout, the axis transform is valid
//	fig.OverlayGrid(strategy)   // grid lines computed from the transform
//	fig.Save("out.png")
//
// Calling an operation out of order yields a PhaseError; asking for a
// grid before the transform is committed yields grid.ErrTransformNotReady.
//
// # Grids
//
// grid.PhysicalUnitGrid draws lines every millimetre of the printed
// sheet, independent of the data. grid.DataUnitGrid draws lines at
// multiples of the tick steps, which is what most plotting programs do.
//
// # Variants
//
// A Variant bundles everything needed for one chart. The four charts of
// the lab report are available in Builtin; more can be loaded from JSON
// with LoadVariants and measurements from .xlsx or .csv with LoadRows.
package hallplot
