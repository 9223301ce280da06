// Package lineweaver computes enzyme kinetics parameters (Vmax, Km) from
// substrate-concentration/velocity measurements using the Lineweaver-Burk
// double-reciprocal linearization. The package is a pure numeric core: it
// holds no state between calls, and repeated calls with identical inputs
// produce identical results.
package lineweaver

import "fmt"

// Sample is a single paired measurement: the substrate concentration at which
// the reaction was run, and the initial velocity observed at that
// concentration. Units are whatever the caller measured in; the fit is
// unit-agnostic.
type Sample struct {
	Concentration float64
	Velocity      float64
}

// NewSamples pairs up parallel concentration and velocity slices. The two
// inputs must have the same length, because the 0th concentration corresponds
// to the 0th velocity, etc.
func NewSamples(concentrations, velocities []float64) ([]Sample, error) {
	if len(concentrations) != len(velocities) {
		return nil, fmt.Errorf("lineweaver: %d concentrations but %d velocities; inputs must have the same length", len(concentrations), len(velocities))
	}

	out := make([]Sample, len(concentrations))
	for i := range concentrations {
		out[i] = Sample{Concentration: concentrations[i], Velocity: velocities[i]}
	}

	return out, nil
}

// Filter returns the subsequence of samples whose concentration is nonzero,
// preserving order and pairing. A zero concentration cannot be
// reciprocal-transformed and is dropped before fitting. Zero velocities are
// not dropped here; Fit rejects them explicitly.
func Filter(samples []Sample) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if s.Concentration == 0 {
			continue
		}
		out = append(out, s)
	}

	return out
}
