package stat

import (
	"errors"
	"fmt"
)

// ErrDegenerateFit is returned when all x values are identical and no
// unique regression line exists.
var ErrDegenerateFit = errors.New("stat: degenerate fit, x values have zero variance")

// InsufficientDataError reports that fewer than Min values were supplied.
type InsufficientDataError struct {
	N   int // number of values supplied
	Min int // number of values needed
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("stat: insufficient data, got %d values, need at least %d", e.N, e.Min)
}

// DimensionMismatchError reports two sequences which must have the
// same length but do not.
type DimensionMismatchError struct {
	What       string // e.g. "x/y" or "y/sigma"
	Len1, Len2 int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("stat: dimension mismatch %s: %d != %d", e.What, e.Len1, e.Len2)
}

// InvalidWeightError reports a non-positive or non-finite uncertainty
// passed to a weighted fit.
type InvalidWeightError struct {
	Index int
	Sigma float64
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("stat: invalid uncertainty %g at index %d", e.Sigma, e.Index)
}
