package lineweaver

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultInterceptTolerance is the |intercept| below which Fit reports
// ErrDegenerateFit instead of deriving an unbounded Vmax.
const DefaultInterceptTolerance = 1e-12

var (
	// ErrInsufficientData indicates fewer than two usable samples after
	// filtering: the regression is underdetermined.
	ErrInsufficientData = errors.New("insufficient data for regression")

	// ErrZeroVelocity indicates a retained sample with velocity zero, whose
	// reciprocal would be infinite and would corrupt the regression.
	ErrZeroVelocity = errors.New("zero velocity in sample set")

	// ErrDegenerateFit indicates a fitted intercept at (or within tolerance
	// of) zero, which makes Vmax = 1/intercept undefined.
	ErrDegenerateFit = errors.New("degenerate fit: intercept is zero")
)

// FitResult holds the fitted Lineweaver-Burk line, the kinetics parameters
// derived from it, and the regression diagnostics. InvS and InvV are the
// reciprocal-transformed samples the line was fitted to, in input order,
// retained so callers can plot the data alongside the fit.
type FitResult struct {
	Slope     float64
	Intercept float64

	Vmax float64
	Km   float64

	// R is the Pearson correlation coefficient of the reciprocal samples.
	R float64
	// PValue is the two-sided p-value for a t-test whose null hypothesis is
	// that the slope is zero. NaN when there are no residual degrees of
	// freedom (exactly two points).
	PValue float64
	// StdErr and InterceptStdErr are the standard errors of the slope and
	// intercept. Both are zero for an exact two-point fit.
	StdErr          float64
	InterceptStdErr float64
	// RMSE is the root mean square error of the residuals in reciprocal
	// velocity space.
	RMSE float64

	InvS []float64
	InvV []float64
	N    int
}

// RSquared returns the coefficient of determination of the fit.
func (r *FitResult) RSquared() float64 {
	return r.R * r.R
}

// XIntercept returns the x-axis crossing of the fitted line, -1/Km. On a
// Lineweaver-Burk plot this is the point conventionally read off to compare
// Km between conditions.
func (r *FitResult) XIntercept() float64 {
	return -1 / r.Km
}

// Eval returns the fitted line's value slope*x + intercept at x.
func (r *FitResult) Eval(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Analyze filters samples and fits them: the per-condition entry point. The
// uninhibited and inhibited sets of one assay are analyzed by two independent
// Analyze calls, so one condition's failure never suppresses the other's
// result.
func Analyze(samples []Sample) (*FitResult, error) {
	return Fit(Filter(samples))
}

// Fit reciprocal-transforms the samples and performs an ordinary
// least-squares regression of 1/v against 1/S, then derives
// Vmax = 1/intercept and Km = slope*Vmax.
//
// The samples must already be free of zero concentrations (see Filter) and
// there must be at least two of them. A zero velocity is rejected with
// ErrZeroVelocity rather than silently feeding an infinite reciprocal into
// the regression. An intercept within DefaultInterceptTolerance of zero is
// rejected with ErrDegenerateFit.
func Fit(samples []Sample) (*FitResult, error) {
	return FitTolerance(samples, DefaultInterceptTolerance)
}

// FitTolerance is Fit with an explicit intercept tolerance for the
// degenerate-fit check. A negative tolerance disables the check, in which
// case a zero intercept propagates an infinite Vmax into the result.
func FitTolerance(samples []Sample, interceptTol float64) (*FitResult, error) {
	n := len(samples)
	if n < 2 {
		return nil, fmt.Errorf("have %d samples with nonzero concentration, need at least 2: %w", n, ErrInsufficientData)
	}

	invS := make([]float64, n)
	invV := make([]float64, n)
	for i, s := range samples {
		if s.Velocity == 0 {
			return nil, fmt.Errorf("sample %d (concentration %g): %w", i, s.Concentration, ErrZeroVelocity)
		}
		invS[i] = 1 / s.Concentration
		invV[i] = 1 / s.Velocity
	}

	// All concentrations identical: the reciprocal x values collapse to a
	// single point and no line is determined.
	sxx := 0.0
	meanX := stat.Mean(invS, nil)
	for _, x := range invS {
		sxx += (x - meanX) * (x - meanX)
	}
	if sxx == 0 {
		return nil, fmt.Errorf("all %d samples share one concentration: %w", n, ErrInsufficientData)
	}

	intercept, slope := stat.LinearRegression(invS, invV, nil, false)

	if interceptTol >= 0 && math.Abs(intercept) <= interceptTol {
		return nil, fmt.Errorf("intercept %g within tolerance %g of zero: %w", intercept, interceptTol, ErrDegenerateFit)
	}

	res := &FitResult{
		Slope:     slope,
		Intercept: intercept,
		Vmax:      1 / intercept,
		R:         stat.Correlation(invS, invV, nil),
		InvS:      invS,
		InvV:      invV,
		N:         n,
	}
	res.Km = slope * res.Vmax

	if err := diagnostics(res, sxx); err != nil {
		return nil, err
	}

	return res, nil
}

// diagnostics fills in the residual-based measures: RMSE, standard errors,
// and the slope p-value. sxx is the sum of squared x deviations, already
// computed by the caller.
func diagnostics(res *FitResult, sxx float64) error {
	n := res.N

	sse := 0.0
	sumX2 := 0.0
	squaredResiduals := make([]float64, n)
	for i, x := range res.InvS {
		resid := res.InvV[i] - res.Eval(x)
		sse += resid * resid
		squaredResiduals[i] = resid * resid
		sumX2 += x * x
	}

	meanSq, err := stats.Mean(stats.Float64Data(squaredResiduals))
	if err != nil {
		return fmt.Errorf("computing residual RMSE: %w", err)
	}
	res.RMSE = math.Sqrt(meanSq)

	df := float64(n - 2)
	if df <= 0 {
		// An exact two-point line has no residual degrees of freedom; the
		// standard errors are zero and the t-test is undefined.
		res.StdErr = 0
		res.InterceptStdErr = 0
		res.PValue = math.NaN()

		return nil
	}

	res.StdErr = math.Sqrt(sse / df / sxx)
	res.InterceptStdErr = res.StdErr * math.Sqrt(sumX2/float64(n))

	if res.StdErr == 0 {
		// Noiseless data fits exactly; the slope is infinitely many standard
		// errors from zero.
		res.PValue = 0

		return nil
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	t := math.Abs(res.Slope) / res.StdErr
	res.PValue = 2 * tDist.CDF(-t)

	return nil
}
