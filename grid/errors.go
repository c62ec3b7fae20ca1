package grid

import (
	"errors"
	"fmt"
)

// ErrTransformNotReady is returned if grid lines are requested before
// the plotting surface has committed its data-to-display mapping.
var ErrTransformNotReady = errors.New("grid: axis transform not ready, layout has not happened")

// InvalidSheetSpecError reports a non-positive sheet dimension or
// resolution.
type InvalidSheetSpecError struct {
	Field string
	Value float64
}

func (e *InvalidSheetSpecError) Error() string {
	return fmt.Sprintf("grid: invalid sheet spec, %s = %g must be positive", e.Field, e.Value)
}

// InvalidStepError reports a grid step which is not positive.
type InvalidStepError struct {
	Name string
	Step float64
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("grid: invalid step %s = %g", e.Name, e.Step)
}
