// Package vmf: configuration and numeric policy for the von Mises–Fisher
// distribution. This file defines the Options struct, its defaults, and
// the tolerance constants shared by validation and sampling.

package vmf

// Supported event dimensions. The Bessel ladder behind the normalizer
// tops out at order D/2 = 2.5, and the covariance closed form is unstable
// above D = 2; both bounds are part of the contract, not placeholders.
const (
	// MinDim is the smallest supported event dimension (the circle S¹).
	MinDim = 2

	// MaxDim is the largest supported event dimension.
	MaxDim = 5
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxRejectionRounds caps the Wood'94 rejection loop. Each
	// lockstep round accepts a lane with probability ≳ 2/3 uniformly in κ,
	// so 100 rounds push the per-lane failure probability below 1e-17;
	// hitting the cap therefore signals numeric breakage, not bad luck.
	DefaultMaxRejectionRounds = 100

	// DefaultUnitTolerance is the allowed deviation of a sample norm
	// from 1, both on ingestion (LogProb with ValidateArgs) and on the
	// sampler's own output check.
	DefaultUnitTolerance = 1e-4

	// MeanTolerance is the allowed deviation of a mean-direction norm
	// from 1 at construction.
	MeanTolerance = 1e-6

	// RotationTolerance bounds ‖rotate(e1) - μ‖ in the sampler's
	// basis-rotation round-trip check.
	RotationTolerance = 1e-5

	// CosineSlack is the absolute bound tolerated for sampled cosines;
	// values beyond ±CosineSlack indicate a broken sampler rather than
	// floating-point drift.
	CosineSlack = 1.01
)

// Options configures validation and stability policy.
//
// Fields:
//   - ValidateArgs       — check parameters at construction and points at
//     ingestion (unit norms, κ ≥ 0, dimension match). Off by default;
//     violations then propagate silently into outputs.
//   - AllowUnsafeStats   — when true (default), computed quantities are
//     not checked for NaN/Inf and sampler invariants are not verified;
//     when false, the first violation aborts with a descriptive error.
//   - MaxRejectionRounds — hard cap on Wood'94 rejection rounds; values
//     ≤ 0 fall back to DefaultMaxRejectionRounds.
//
// Example:
//
//	opts := vmf.DefaultOptions()
//	opts.ValidateArgs = true
//	opts.AllowUnsafeStats = false
//	d, err := vmf.New(mu, kappa, &opts)
type Options struct {
	ValidateArgs       bool
	AllowUnsafeStats   bool
	MaxRejectionRounds int
}

// DefaultOptions returns the default policy: no argument validation, no
// stability checks (mirroring the permissive fast path), capped rejection.
func DefaultOptions() Options {
	return Options{
		ValidateArgs:       false,
		AllowUnsafeStats:   true,
		MaxRejectionRounds: DefaultMaxRejectionRounds,
	}
}
