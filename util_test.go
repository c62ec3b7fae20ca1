package hallplot

import (
	"io"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func init() {
	DefaultLogger = NewLogger(io.Discard, LevelError)
}
