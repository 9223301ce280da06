package lineweaver

import (
	"errors"
	"math"
)

// ErrNoResults indicates that Domain was called without any successful fit
// to derive a plot range from.
var ErrNoResults = errors.New("no fit results to derive a plot domain from")

// Domain returns the shared x-axis range for a comparative Lineweaver-Burk
// plot over the given fits. The minimum spans 1.1x past the leftmost x
// intercept (or sits at zero when every intercept is positive); the maximum
// spans 1.1x past the largest observed reciprocal concentration. Nil results
// (conditions whose analysis failed) are skipped; at least one non-nil
// result is required.
//
// The range is recomputed from its inputs on every call. Nothing is cached,
// so it always reflects the fits actually being plotted.
func Domain(results ...*FitResult) (min, max float64, err error) {
	any := false
	min = 0
	max = math.Inf(-1)

	for _, r := range results {
		if r == nil {
			continue
		}
		any = true

		if xi := r.XIntercept(); xi < min {
			min = xi
		}
		for _, x := range r.InvS {
			if x > max {
				max = x
			}
		}
	}

	if !any {
		return 0, 0, ErrNoResults
	}

	return 1.1 * min, 1.1 * max, nil
}

// Linspace returns n evenly spaced values from min to max inclusive, the
// sample points at which callers evaluate the fitted lines for plotting.
// n < 1 returns nil; n == 1 returns just min.
func Linspace(min, max float64, n int) []float64 {
	if n < 1 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}

	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// Land exactly on the endpoint rather than accumulating step error.
	out[n-1] = max

	return out
}
