package lineweaver

import (
	"math"
	"testing"
)

func referenceFits(t *testing.T) (uninhibited, inhibited *FitResult) {
	t.Helper()

	concentrations := []float64{1, 2, 4, 8, 16, 32, 50}

	un, err := Fit(mustSamples(t, concentrations, []float64{17.1, 29.5, 51.2, 73.9, 102.1, 118.5, 130.2}))
	if err != nil {
		t.Fatal(err)
	}
	in, err := Fit(mustSamples(t, concentrations, []float64{7.1, 13.6, 25.0, 42.8, 66.6, 92.3, 107.1}))
	if err != nil {
		t.Fatal(err)
	}

	return un, in
}

func TestDomainSpansBothFits(t *testing.T) {
	un, in := referenceFits(t)

	min, max, err := Domain(un, in)
	if err != nil {
		t.Fatal(err)
	}

	// x intercepts are -0.130920086378 (uninhibited) and -0.0490956025107
	// (inhibited); the largest reciprocal concentration in either set is 1.
	if want := 1.1 * -0.130920086378; relDiff(min, want) > 1e-6 {
		t.Fatalf("domain min: got %.12g, expected %.12g", min, want)
	}
	if want := 1.1; relDiff(max, want) > 1e-12 {
		t.Fatalf("domain max: got %.12g, expected %.12g", max, want)
	}
}

func TestDomainSkipsFailedCondition(t *testing.T) {
	un, _ := referenceFits(t)

	min, max, err := Domain(un, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := 1.1 * un.XIntercept(); relDiff(min, want) > 1e-12 {
		t.Fatalf("single-fit domain min: got %.12g, expected %.12g", min, want)
	}
	if relDiff(max, 1.1) > 1e-12 {
		t.Fatalf("single-fit domain max: got %.12g, expected 1.1", max)
	}

	if _, _, err := Domain(nil, nil); err == nil {
		t.Fatal("Domain with no usable fits returned no error")
	}
}

func TestDomainMinClampsAtZero(t *testing.T) {
	// A negative Km puts the x intercept on the positive axis; the domain
	// minimum must then stay at zero rather than move right.
	r := &FitResult{Km: -2, InvS: []float64{0.25, 1}}

	min, max, err := Domain(r)
	if err != nil {
		t.Fatal(err)
	}
	if min != 0 {
		t.Fatalf("domain min: got %g, expected 0", min)
	}
	if relDiff(max, 1.1) > 1e-12 {
		t.Fatalf("domain max: got %g, expected 1.1", max)
	}
}

func TestXInterceptAndEval(t *testing.T) {
	un, _ := referenceFits(t)

	if want := -1 / un.Km; un.XIntercept() != want {
		t.Fatalf("XIntercept: got %.12g, expected %.12g", un.XIntercept(), want)
	}
	if un.Eval(0) != un.Intercept {
		t.Fatalf("Eval(0): got %.12g, expected intercept %.12g", un.Eval(0), un.Intercept)
	}
	// The line must cross zero at its x intercept.
	if y := un.Eval(un.XIntercept()); math.Abs(y) > 1e-15 {
		t.Fatalf("Eval(XIntercept()): got %g, expected 0", y)
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(-0.5, 1.1, 100)

	if len(got) != 100 {
		t.Fatalf("Linspace returned %d points, expected 100", len(got))
	}
	if got[0] != -0.5 || got[99] != 1.1 {
		t.Fatalf("Linspace endpoints (%g, %g), expected (-0.5, 1.1)", got[0], got[99])
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("Linspace not strictly increasing at %d: %g then %g", i-1, got[i-1], got[i])
		}
	}

	if Linspace(0, 1, 0) != nil {
		t.Fatal("Linspace with n=0 returned a non-nil slice")
	}
	if one := Linspace(3, 9, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace with n=1 returned %v, expected [3]", one)
	}
}
