package vmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// VonMisesFisher holds the parameters of a batch of von Mises–Fisher
// distributions over S^{D-1}. Immutable once constructed: every method is
// a pure function of the parameters (plus an explicit seed for Sample),
// so a value is safe to share across concurrent calls.
type VonMisesFisher struct {
	mean  []float64 // flattened batch of unit vectors, batch*dim, row-major
	conc  []float64 // concentrations, length batch or 1 (scalar broadcast)
	batch int       // number of distribution lanes
	dim   int       // event dimension D
	opts  Options
}

// New constructs a batched von Mises–Fisher distribution.
//
// meanDirection is a batch of D-vectors (all rows the same length,
// 2 ≤ D ≤ 5); concentration has length len(meanDirection) or 1 (a scalar
// broadcast across the batch). A single mean direction with a longer
// concentration batch broadcasts the other way. opts may be nil for
// DefaultOptions.
//
// Shape errors (ErrDimension, ErrEmptyBatch, ErrBatchMismatch) are
// reported unconditionally. Value checks — unit-norm mean directions
// within MeanTolerance, non-negative finite concentrations — run only
// under ValidateArgs; without it, violations propagate silently.
func New(meanDirection [][]float64, concentration []float64, opts *Options) (*VonMisesFisher, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxRejectionRounds <= 0 {
		o.MaxRejectionRounds = DefaultMaxRejectionRounds
	}

	if len(meanDirection) == 0 || len(concentration) == 0 {
		return nil, ErrEmptyBatch
	}
	dim := len(meanDirection[0])
	if dim < MinDim || dim > MaxDim {
		return nil, fmt.Errorf("got dimension %d: %w", dim, ErrDimension)
	}
	for i, row := range meanDirection {
		if len(row) != dim {
			return nil, fmt.Errorf("row %d has length %d, row 0 has %d: %w",
				i, len(row), dim, ErrBatchMismatch)
		}
	}

	// Broadcast rule: lengths equal, or one side is 1.
	mb, cb := len(meanDirection), len(concentration)
	if mb != cb && mb != 1 && cb != 1 {
		return nil, fmt.Errorf("mean batch %d vs concentration batch %d: %w",
			mb, cb, ErrBatchMismatch)
	}
	batch := mb
	if cb > batch {
		batch = cb
	}

	if o.ValidateArgs {
		for i, k := range concentration {
			if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
				return nil, fmt.Errorf("lane %d has concentration %v: %w", i, k, ErrConcentration)
			}
		}
		for i, row := range meanDirection {
			if math.Abs(floats.Norm(row, 2)-1) > MeanTolerance {
				return nil, fmt.Errorf("lane %d has norm %v: %w", i, floats.Norm(row, 2), ErrMeanNotUnit)
			}
		}
	}

	// Materialize the broadcast so every method indexes one flat batch.
	mean := make([]float64, batch*dim)
	for b := 0; b < batch; b++ {
		src := meanDirection[0]
		if mb > 1 {
			src = meanDirection[b]
		}
		copy(mean[b*dim:(b+1)*dim], src)
	}
	conc := make([]float64, len(concentration))
	copy(conc, concentration)

	return &VonMisesFisher{mean: mean, conc: conc, batch: batch, dim: dim, opts: o}, nil
}

// Dim returns the event dimension D.
func (d *VonMisesFisher) Dim() int { return d.dim }

// EventShape returns the event dimension D (shape-introspection alias).
func (d *VonMisesFisher) EventShape() int { return d.dim }

// Batch returns the number of distribution lanes.
func (d *VonMisesFisher) Batch() int { return d.batch }

// BatchShape returns the batch shape: [B] for a batched construction,
// empty for a single unbatched distribution.
func (d *VonMisesFisher) BatchShape() []int {
	if d.batch == 1 {
		return []int{}
	}

	return []int{d.batch}
}

// MeanDirection returns a copy of the (broadcast) mean-direction batch.
func (d *VonMisesFisher) MeanDirection() [][]float64 {
	out := make([][]float64, d.batch)
	for b := 0; b < d.batch; b++ {
		out[b] = append([]float64(nil), d.muAt(b)...)
	}

	return out
}

// Concentration returns a copy of the (broadcast) concentration batch.
func (d *VonMisesFisher) Concentration() []float64 {
	out := make([]float64, d.batch)
	for b := 0; b < d.batch; b++ {
		out[b] = d.concAt(b)
	}

	return out
}

// muAt returns the mean-direction row of lane b (shared backing array;
// callers must not mutate).
func (d *VonMisesFisher) muAt(b int) []float64 {
	return d.mean[b*d.dim : (b+1)*d.dim]
}

// concAt returns the concentration of lane b under scalar broadcast.
func (d *VonMisesFisher) concAt(b int) float64 {
	if len(d.conc) == 1 {
		return d.conc[0]
	}

	return d.conc[b]
}
