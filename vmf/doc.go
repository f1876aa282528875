// Package vmf implements the von Mises–Fisher distribution over unit
// vectors on the hypersphere S^{D-1} embedded in R^D, for 2 ≤ D ≤ 5.
//
// 🚀 What is vmf?
//
//	The directional analogue of the Gaussian: density
//
//	    pdf(x; μ, κ) = exp(κ·μᵀx) / Z(κ)
//
//	over unit vectors x, where μ is a unit mean direction and κ ≥ 0 the
//	concentration. κ = 0 is the uniform law on the sphere; κ → ∞ collapses
//	onto a point mass at μ.
//
// ✨ Key features:
//   - batched parameters — one flat batch axis, scalar κ broadcast
//   - overflow-free log-normalizer via scaled Bessel functions (bessel/)
//   - seeded, deterministic sampling: inversion for D=3, Wood'94
//     rejection (with a hard iteration cap) for D ∈ {2,4,5}
//   - Householder reorientation from the e1-aligned sampling frame to μ
//   - moments: mode, mean; covariance for D ≤ 2 (higher D is refused —
//     documented numerical instability, not a missing feature)
//
// ⚙️ Usage:
//
//	opts := vmf.DefaultOptions()
//	opts.ValidateArgs = true
//
//	d, err := vmf.New(
//	    [][]float64{{0, 1, 0}, {1, 0, 0}}, // batch of two directions on S²
//	    []float64{2},                      // scalar κ broadcast to both
//	    &opts,
//	)
//	if err != nil { ... }
//
//	lp, err := d.LogProb([][]float64{{1, 0, 0}, {0, 1, 0}})
//	samples, err := d.Sample(1000, 42) // shape [1000][2][3], reproducible
//
// Numeric policy:
//
//   - ValidateArgs gates parameter and sample ingestion checks (unit
//     norms, non-negative κ, event-dimension match).
//   - AllowUnsafeStats=false turns on post-computation stability checks:
//     finiteness, cosine range, sample-norm drift, basis-rotation
//     round-trip. With the default true, NaN/Inf propagate silently —
//     a speed/safety trade-off the caller opts into.
//   - The rejection loop is capped (MaxRejectionRounds) and reports
//     ErrNoAccept instead of looping forever; the cap is the only
//     cancellation boundary the algorithm needs.
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrDimension, ErrEmptyBatch, ErrBatchMismatch, ErrBadSampleCount —
//	  construction/ingestion shape failures (checked always).
//	– ErrConcentration, ErrMeanNotUnit, ErrSampleDim, ErrSampleNotUnit —
//	  validation failures (checked when ValidateArgs).
//	– ErrNonFinite, ErrCosineRange, ErrRotation, ErrNoAccept — numerical
//	  instability (surfaced unless AllowUnsafeStats, except ErrNoAccept
//	  which always surfaces — the alternative is a silent garbage lane).
//	– ErrCovarianceDim — covariance requested for D > 2.
//
// See example_test.go for runnable scenarios and doc comments on each
// method for formulas and tolerances.
package vmf
