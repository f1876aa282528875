package vmf

import (
	"fmt"

	"github.com/katalvlaran/sphera/bessel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mode returns the mode of each lane, which is the mean direction itself,
// broadcast over the batch.
func (d *VonMisesFisher) Mode() [][]float64 {
	return d.MeanDirection()
}

// meanRatio returns h = Ive(D/2, κ) / Ive(D/2-1, κ), the mean resultant
// length. The e^{-κ} scale factors cancel identically in the ratio, so
// this equals the unscaled I_{D/2}/I_{D/2-1} at any κ.
func (d *VonMisesFisher) meanRatio(k float64) (float64, error) {
	half := float64(d.dim) / 2
	num, err := bessel.Ive(half, k)
	if err != nil {
		return 0, err
	}
	den, err := bessel.Ive(half-1, k)
	if err != nil {
		return 0, err
	}

	return num / den, nil
}

// Mean returns the arithmetic mean μ·h per lane, with h the mean
// resultant length. The mean lies strictly inside the sphere (it is not
// in the support). Lanes with κ = 0 get the zero vector: the uniform law
// has no preferred direction.
func (d *VonMisesFisher) Mean() ([][]float64, error) {
	out := make([][]float64, d.batch)
	for b := 0; b < d.batch; b++ {
		row := make([]float64, d.dim)
		if k := d.concAt(b); k > 0 {
			h, err := d.meanRatio(k)
			if err != nil {
				return nil, err
			}
			copy(row, d.muAt(b))
			floats.Scale(h, row)
			if !d.opts.AllowUnsafeStats {
				if err = checkFinite(row, fmt.Sprintf("mean lane %d", b)); err != nil {
					return nil, err
				}
			}
		}
		out[b] = row
	}

	return out, nil
}

// Covariance returns the covariance matrix of each lane as a D×D
// symmetric matrix:
//
//	Σ = μμᵀ·(1 - D·h/κ - h²) + (h/κ)·I
//
// with h the mean resultant length. Supported only for D ≤ 2: the closed
// form cancels catastrophically for higher dimensions, so those return
// ErrCovarianceDim — a documented refusal, not a gap. Lanes with κ = 0
// get the isotropic covariance I/D of the uniform law.
func (d *VonMisesFisher) Covariance() ([]*mat.SymDense, error) {
	if d.dim > 2 {
		return nil, fmt.Errorf("event dimension %d: %w", d.dim, ErrCovarianceDim)
	}
	out := make([]*mat.SymDense, d.batch)
	for b := 0; b < d.batch; b++ {
		cov := mat.NewSymDense(d.dim, nil)
		k := d.concAt(b)
		if k > 0 {
			h, err := d.meanRatio(k)
			if err != nil {
				return nil, err
			}
			mu := d.muAt(b)
			coef := 1 - float64(d.dim)*h/k - h*h
			for i := 0; i < d.dim; i++ {
				for j := i; j < d.dim; j++ {
					v := mu[i] * mu[j] * coef
					if i == j {
						v += h / k
					}
					cov.SetSym(i, j, v)
				}
			}
		} else {
			for i := 0; i < d.dim; i++ {
				cov.SetSym(i, i, 1/float64(d.dim))
			}
		}
		if !d.opts.AllowUnsafeStats {
			if err := checkFinite(cov.RawSymmetric().Data, fmt.Sprintf("covariance lane %d", b)); err != nil {
				return nil, err
			}
		}
		out[b] = cov
	}

	return out, nil
}
