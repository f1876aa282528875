package vmf

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws n points per batch lane, returned with shape [n][B][D].
//
// All randomness comes from one deterministic stream seeded by seed: the
// cosine coordinates are drawn first (lane-major within each sample), then
// the orthogonal completions, so identical seeds give identical output.
// The stream is local to the call; nothing is shared or mutated.
//
// Strategy is fixed by the event dimension: closed-form inversion for
// D = 3, Wood'94 rejection for D ∈ {2, 4, 5}. Samples are generated
// symmetric about the basis vector e1 and then Householder-reflected onto
// each lane's mean direction.
//
// Unless AllowUnsafeStats, the call verifies cosines lie in ±CosineSlack,
// every output has unit norm within DefaultUnitTolerance, and the
// reflection maps e1 onto μ within RotationTolerance. The rejection cap
// (MaxRejectionRounds) is enforced regardless and surfaces ErrNoAccept.
func (d *VonMisesFisher) Sample(n int, seed uint64) ([][][]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadSampleCount)
	}
	rng := rand.New(rand.NewSource(seed))

	// Cosine of the angle to e1, one value per (sample, lane).
	lanes := n * d.batch
	u := make([]float64, lanes)
	var err error
	if d.dim == 3 {
		err = d.sampleCosInversion(rng, u)
	} else {
		err = d.sampleCosRejection(rng, u)
	}
	if err != nil {
		return nil, err
	}
	if !d.opts.AllowUnsafeStats {
		if err = checkCosineRange(u); err != nil {
			return nil, err
		}
	}

	// One reflector per batch lane; optionally prove it sends e1 to μ.
	refl := make([]reflector, d.batch)
	for b := 0; b < d.batch; b++ {
		refl[b] = newReflector(d.muAt(b))
	}
	if !d.opts.AllowUnsafeStats {
		if err = d.checkBasisRotation(refl); err != nil {
			return nil, err
		}
	}

	// Complete each cosine with a uniform direction on S^{D-2}, assemble,
	// renormalize against drift, then reorient onto μ.
	out := make([][][]float64, n)
	orth := make([]float64, d.dim-1)
	for i := 0; i < n; i++ {
		out[i] = make([][]float64, d.batch)
		for b := 0; b < d.batch; b++ {
			for j := range orth {
				orth[j] = rng.NormFloat64()
			}
			floats.Scale(1/floats.Norm(orth, 2), orth)

			row := make([]float64, d.dim)
			c := u[i*d.batch+b]
			row[0] = c
			s := math.Sqrt(math.Max(1-c*c, 0))
			for j := range orth {
				row[j+1] = s * orth[j]
			}
			floats.Scale(1/floats.Norm(row, 2), row)

			if !d.opts.AllowUnsafeStats {
				if err = checkUnitRow(row, DefaultUnitTolerance, b); err != nil {
					return nil, err
				}
			}
			refl[b].apply(row)
			out[i][b] = row
		}
	}

	return out, nil
}

// sampleCosInversion fills u for D = 3 via the closed-form inverse CDF.
//
// With z ~ U(0,1):
//
//	u = 1 + log(z + (1-z)·e^{-2κ}) / κ
//
// evaluated as 1 + logsumexp(log z, log1p(-z) - 2κ)/κ for stability.
// κ = 0 degenerates to u = 2z - 1 (uniform cosine); z = 0 gives exactly -1.
func (d *VonMisesFisher) sampleCosInversion(rng *rand.Rand, u []float64) error {
	for i := range u {
		k := d.concAt(i % d.batch)
		z := rng.Float64()
		switch {
		case z == 0:
			u[i] = -1
		case k > 0:
			u[i] = 1 + logAddExp(math.Log(z), math.Log1p(-z)-2*k)/k
		default:
			u[i] = 2*z - 1
		}
	}

	return nil
}

// sampleCosRejection fills u for D ∈ {2, 4, 5} via Wood (1994).
//
// Per lane, with dim = D-1:
//
//	b = dim / (2κ + sqrt(4κ² + dim²))
//	x = (1-b)/(1+b)
//	c = κx + dim·log(1-x²)
//
// then candidates w = (1-(1+b)β)/(1-(1-b)β), β ~ Beta(dim/2, dim/2), are
// accepted when κw + dim·log(1-xw) - c ≥ log U. Rounds run in lockstep:
// every round draws a full batch-wide β and U so the stream position is
// independent of acceptance history; accepted lanes keep their value and
// only pending lanes consume their candidates. The loop ends when no lane
// is pending, or errors with ErrNoAccept at the round cap.
func (d *VonMisesFisher) sampleCosRejection(rng *rand.Rand, u []float64) error {
	dim := float64(d.dim - 1)

	// Per-lane envelope constants; κ = 0 gives b=1, x=0, c=0 and accepts
	// every candidate (w = 1-2β, the uniform cosine law on S^{D-1}).
	env := make([]struct{ b, x, c float64 }, d.batch)
	for b := 0; b < d.batch; b++ {
		k := d.concAt(b)
		bb := dim / (2*k + math.Sqrt(4*k*k+dim*dim))
		xx := (1 - bb) / (1 + bb)
		env[b] = struct{ b, x, c float64 }{bb, xx, k*xx + dim*math.Log1p(-xx*xx)}
	}

	beta := distuv.Beta{Alpha: dim / 2, Beta: dim / 2, Src: rng}
	pending := make([]bool, len(u))
	for i := range pending {
		pending[i] = true
	}
	remaining := len(u)

	for round := 0; round < d.opts.MaxRejectionRounds && remaining > 0; round++ {
		for i := range u {
			bv := beta.Rand()
			uv := rng.Float64()
			if !pending[i] {
				continue
			}
			lane := i % d.batch
			e := env[lane]
			k := d.concAt(lane)
			w := (1 - (1+e.b)*bv) / (1 - (1-e.b)*bv)
			if k*w+dim*math.Log1p(-e.x*w)-e.c >= math.Log(uv) {
				u[i] = w
				pending[i] = false
				remaining--
			}
		}
	}
	if remaining > 0 {
		return fmt.Errorf("%d of %d lanes pending after %d rounds: %w",
			remaining, len(u), d.opts.MaxRejectionRounds, ErrNoAccept)
	}
	if !d.opts.AllowUnsafeStats {
		return checkFinite(u, "rejection cosine")
	}

	return nil
}

// checkBasisRotation verifies rotate(e1) ≈ μ for every lane.
func (d *VonMisesFisher) checkBasisRotation(refl []reflector) error {
	e1 := make([]float64, d.dim)
	for b := 0; b < d.batch; b++ {
		for j := range e1 {
			e1[j] = 0
		}
		e1[0] = 1
		refl[b].apply(e1)
		floats.Sub(e1, d.muAt(b))
		if dev := floats.Norm(e1, 2); dev > RotationTolerance {
			return fmt.Errorf("lane %d deviates by %v: %w", b, dev, ErrRotation)
		}
	}

	return nil
}

// logAddExp returns log(e^a + e^b) without overflow.
func logAddExp(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return a
	}

	return a + math.Log1p(math.Exp(b-a))
}
