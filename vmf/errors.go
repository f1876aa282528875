// Package vmf: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vmf
// package. All operations return these sentinels and tests check them via
// errors.Is. Context (batch lane, offending order, worst value) is added
// by wrapping with fmt.Errorf("ctx: %w", ErrX) at the point of detection;
// callers still match with errors.Is.

package vmf

import "errors"

var (
	// ErrDimension is returned when the event dimension is outside [2, 5].
	// Checked at construction, always — not gated by ValidateArgs.
	ErrDimension = errors.New("vmf: event dimension must be in [2, 5]")

	// ErrEmptyBatch indicates an empty mean-direction or concentration batch.
	ErrEmptyBatch = errors.New("vmf: empty parameter batch")

	// ErrBatchMismatch indicates batch lengths that violate the broadcast
	// rule (lengths must be equal, or one of them must be 1).
	ErrBatchMismatch = errors.New("vmf: batch lengths are not broadcastable")

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("vmf: sample count must be positive")

	// ErrConcentration indicates a negative or non-finite concentration.
	// Checked only when ValidateArgs.
	ErrConcentration = errors.New("vmf: concentration must be non-negative and finite")

	// ErrMeanNotUnit indicates a mean direction whose norm deviates from 1
	// beyond tolerance. Checked only when ValidateArgs.
	ErrMeanNotUnit = errors.New("vmf: mean direction must be unit length")

	// ErrSampleDim indicates an ingested point whose innermost dimension
	// does not match the event dimension. Checked only when ValidateArgs.
	ErrSampleDim = errors.New("vmf: sample dimension does not match event dimension")

	// ErrSampleNotUnit indicates an ingested or produced point whose norm
	// deviates from 1 beyond tolerance.
	ErrSampleNotUnit = errors.New("vmf: sample must be unit length")

	// ErrNonFinite indicates a NaN or Inf in a computed quantity.
	// Surfaced only when AllowUnsafeStats is false.
	ErrNonFinite = errors.New("vmf: non-finite value encountered")

	// ErrCosineRange indicates a sampled cosine outside [-1.01, 1.01].
	// Surfaced only when AllowUnsafeStats is false.
	ErrCosineRange = errors.New("vmf: sampled cosine outside tolerated range")

	// ErrRotation indicates that the Householder reflection failed to map
	// the basis vector onto the mean direction within tolerance.
	// Surfaced only when AllowUnsafeStats is false.
	ErrRotation = errors.New("vmf: rotation does not reproduce the mean direction")

	// ErrNoAccept indicates the rejection sampler exhausted its round cap
	// with lanes still pending. Always surfaced: the only alternatives are
	// an unbounded loop or an undetected garbage lane.
	ErrNoAccept = errors.New("vmf: rejection sampler failed to converge")

	// ErrCovarianceDim indicates a covariance request for D > 2. The
	// closed form is numerically unstable there; refusing is intentional.
	ErrCovarianceDim = errors.New("vmf: covariance is only supported for event dimension <= 2")
)
