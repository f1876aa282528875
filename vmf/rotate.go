package vmf

import "gonum.org/v1/gonum/floats"

// minReflectorNorm is the ‖e1 - μ‖ threshold below which the reflection
// degenerates to the identity (μ already is the basis vector; normalizing
// would divide by ~0).
const minReflectorNorm = 1e-12

// reflector is the Householder reflection across the hyperplane normal to
// u = normalize(e1 - μ). It is self-inverse and exchanges e1 ↔ μ, which is
// exactly what moves samples drawn symmetric about e1 into samples
// symmetric about μ (and back).
type reflector struct {
	u        []float64
	identity bool
}

// newReflector builds the reflector for mean direction mu.
func newReflector(mu []float64) reflector {
	u := make([]float64, len(mu))
	u[0] = 1 - mu[0]
	for j := 1; j < len(mu); j++ {
		u[j] = -mu[j]
	}
	n := floats.Norm(u, 2)
	if n < minReflectorNorm {
		return reflector{identity: true}
	}
	floats.Scale(1/n, u)

	return reflector{u: u}
}

// apply reflects v in place: v ← v - 2·(vᵀu)·u.
func (r reflector) apply(v []float64) {
	if r.identity {
		return
	}
	floats.AddScaled(v, -2*floats.Dot(v, r.u), r.u)
}
