// Package vmf: post-hoc numeric validation. Checks live here, outside the
// arithmetic path, and are invoked conditionally on the Options flags;
// each returns nil or a wrapped sentinel identifying the offending
// quantity and, where feasible, the batch lane.

package vmf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// checkFinite scans vals for NaN/Inf; what names the quantity in the error.
func checkFinite(vals []float64, what string) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s lane %d is %v: %w", what, i, v, ErrNonFinite)
		}
	}

	return nil
}

// checkCosineRange verifies every sampled cosine lies in ±CosineSlack.
func checkCosineRange(u []float64) error {
	for i, v := range u {
		if v < -CosineSlack || v > CosineSlack || math.IsNaN(v) {
			return fmt.Errorf("cosine lane %d is %v: %w", i, v, ErrCosineRange)
		}
	}

	return nil
}

// checkUnitRow verifies ‖row‖ is within tol of 1.
func checkUnitRow(row []float64, tol float64, lane int) error {
	n := floats.Norm(row, 2)
	if math.IsNaN(n) || math.Abs(n-1) > tol {
		return fmt.Errorf("lane %d has norm %v: %w", lane, n, ErrSampleNotUnit)
	}

	return nil
}

// checkPoints validates ingested density arguments: event dimension and
// unit norm. Called only under ValidateArgs.
func (d *VonMisesFisher) checkPoints(x [][]float64) error {
	for i, row := range x {
		if len(row) != d.dim {
			return fmt.Errorf("row %d has length %d, want %d: %w", i, len(row), d.dim, ErrSampleDim)
		}
		if err := checkUnitRow(row, DefaultUnitTolerance, i); err != nil {
			return err
		}
	}

	return nil
}
