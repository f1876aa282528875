package vmf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sphera/bessel"
	"gonum.org/v1/gonum/floats"
)

// LogNormalization returns, per batch lane, the log of the normalizer
// Z(κ) that divides the unnormalized density: pdf = exp(κ·μᵀx)/Z(κ).
//
// For κ > 0, with v = D/2 - 1 and Ive the scaled Bessel value,
//
//	log Z(κ) = -[(D/2-1)·log κ - (D/2)·log 2π - log Ive(v, κ) - κ]
//
// where the trailing -κ undoes the exponential scaling; the unscaled
// I_v(κ) is never formed, so large κ cannot overflow. At κ = 0 the
// density is uniform and log Z is the log hypersphere surface area,
//
//	log Z(0) = log 2 + (D/2)·log π - lnΓ(D/2)
//
// computed directly via Lgamma, bypassing the Bessel ladder. Mixed
// batches of zero and positive concentration dispatch per lane.
func (d *VonMisesFisher) LogNormalization() ([]float64, error) {
	half := float64(d.dim) / 2
	out := make([]float64, d.batch)
	for b := 0; b < d.batch; b++ {
		k := d.concAt(b)
		if k > 0 {
			ive, err := bessel.Ive(half-1, k)
			if err != nil {
				return nil, err
			}
			out[b] = -((half-1)*math.Log(k) - half*math.Log(2*math.Pi) - math.Log(ive) - k)
		} else {
			lg, _ := math.Lgamma(half)
			out[b] = math.Ln2 + half*math.Log(math.Pi) - lg
		}
	}
	if !d.opts.AllowUnsafeStats {
		if err := checkFinite(out, "log normalization"); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// UnnormalizedLogProb returns κ·(μᵀx) per lane, without the normalizer.
// Useful when only relative density matters (e.g. MCMC accept ratios).
//
// x broadcasts against the parameter batch under the 1-or-equal rule:
// len(x) must equal the batch size, or either side must be 1. Under
// ValidateArgs each row must have the event dimension and unit norm.
func (d *VonMisesFisher) UnnormalizedLogProb(x [][]float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyBatch
	}
	if d.opts.ValidateArgs {
		if err := d.checkPoints(x); err != nil {
			return nil, err
		}
	}
	n := len(x)
	if n != d.batch && n != 1 && d.batch != 1 {
		return nil, fmt.Errorf("point batch %d vs parameter batch %d: %w", n, d.batch, ErrBatchMismatch)
	}
	size := n
	if d.batch > size {
		size = d.batch
	}

	out := make([]float64, size)
	for i := 0; i < size; i++ {
		row := x[0]
		if n > 1 {
			row = x[i]
		}
		lane := 0
		if d.batch > 1 {
			lane = i
		}
		if len(row) != d.dim {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), d.dim, ErrSampleDim)
		}
		out[i] = d.concAt(lane) * floats.Dot(d.muAt(lane), row)
	}
	if !d.opts.AllowUnsafeStats {
		if err := checkFinite(out, "unnormalized log prob"); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// LogProb returns the log-density per lane: UnnormalizedLogProb minus
// LogNormalization, with the same broadcast rule over x.
func (d *VonMisesFisher) LogProb(x [][]float64) ([]float64, error) {
	un, err := d.UnnormalizedLogProb(x)
	if err != nil {
		return nil, err
	}
	lz, err := d.LogNormalization()
	if err != nil {
		return nil, err
	}
	for i := range un {
		lane := 0
		if d.batch > 1 {
			lane = i
		}
		un[i] -= lz[lane]
	}

	return un, nil
}

// Prob returns exp(LogProb(x)).
func (d *VonMisesFisher) Prob(x [][]float64) ([]float64, error) {
	lp, err := d.LogProb(x)
	if err != nil {
		return nil, err
	}
	for i := range lp {
		lp[i] = math.Exp(lp[i])
	}

	return lp, nil
}
