package vmf

// Test-Bridge (White-Box) for the Householder reflector.
//
// Purpose:
//   - Expose the UNEXPORTED reflector to vmf_test ONLY, so the reflection
//     invariants (self-inverse, e1 ↔ μ exchange, identity guard) can be
//     verified directly without widening the prod API.
//
// Provided Surface:
//   - NewReflector_TestOnly builds the reflector for a mean direction.
//   - Reflector_TestOnly.Apply / IsIdentity forward to the private type.

// Reflector_TestOnly wraps the private reflector for white-box tests.
type Reflector_TestOnly struct {
	r reflector
}

// NewReflector_TestOnly forwards to newReflector.
func NewReflector_TestOnly(mu []float64) Reflector_TestOnly {
	return Reflector_TestOnly{r: newReflector(mu)}
}

// Apply forwards to reflector.apply (in-place reflection of v).
func (r Reflector_TestOnly) Apply(v []float64) { r.r.apply(v) }

// IsIdentity reports whether the identity guard fired (μ ≈ e1).
func (r Reflector_TestOnly) IsIdentity() bool { return r.r.identity }

// LogAddExp_TestOnly forwards to the private logAddExp helper.
var LogAddExp_TestOnly = logAddExp
