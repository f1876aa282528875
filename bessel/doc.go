// Package bessel evaluates exponentially scaled modified Bessel functions
// of the first kind, Ive(v, z) = I_v(z)·e^{-|z|}, for the half-integer
// ladder of orders needed by hyperspherical distributions:
//
//	v ∈ {-0.5, 0, 0.5, 1, 1.5, 2, 2.5}
//
// The scaling keeps every intermediate bounded: I_v(z) itself grows like
// e^{z}/sqrt(2πz) and overflows float64 near z ≈ 709, while Ive stays in
// (0, 1] for all z > 0.
//
// Evaluation strategy:
//
//   - v = 0, 1 — polynomial kernels (Abramowitz & Stegun 9.8.1–9.8.4),
//     |relative error| < 2e-7 over the full range.
//   - v = ±0.5 — exact closed forms via scaled sinh/cosh:
//     I_{+0.5}(z)e^{-z} = sqrt(2/(πz))·sinh(z)e^{-z}
//     I_{-0.5}(z)e^{-z} = sqrt(2/(πz))·cosh(z)e^{-z}
//     with sinh/cosh computed as e^{x-|x|} combinations so nothing overflows.
//   - v > 1 — the upward recurrence I_v = I_{v-2} - 2(v-1)/z·I_{v-1},
//     applied to already-scaled values (the e^{-|z|} factor cancels
//     identically), filled bottom-up into a fixed-size per-call table.
//     The ladder stops at 2.5: the upward recurrence subtracts nearly
//     equal quantities and sheds precision as the order grows, so larger
//     orders return ErrOrder instead of a quietly wrong value.
//
// Arguments z ≤ 0 are evaluated at z = 1 and the caller is responsible
// for masking the result (the convention of the batched callers in vmf,
// which dispatch on the sign of the concentration themselves).
//
// Errors (sentinel):
//
//	– ErrOrder  — requested order is not on the supported ladder.
//	– ErrLength — IveBatch destination does not match the argument batch.
//
// Example usage:
//
//	v, err := bessel.Ive(1.5, 2.0)
//	if err != nil {
//	    // handle ErrOrder
//	}
//	fmt.Printf("I_1.5(2)·e^-2 = %.12f\n", v)
package bessel
