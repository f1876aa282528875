package bessel_test

import (
	"testing"

	"github.com/katalvlaran/sphera/bessel"
)

// benchmarkIve is a helper that evaluates one order over a fixed argument
// grid; it resets the timer before the loop and fails on unexpected errors.
func benchmarkIve(b *testing.B, v float64) {
	z := make([]float64, 256)
	for i := range z {
		z[i] = 0.1 + float64(i)*0.5 // arguments from 0.1 up to ~128
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, x := range z {
			if _, err := bessel.Ive(v, x); err != nil {
				b.Fatalf("Ive failed: %v", err)
			}
		}
	}
}

// BenchmarkIve_Base0 benchmarks the direct I0e kernel path.
func BenchmarkIve_Base0(b *testing.B) { benchmarkIve(b, 0) }

// BenchmarkIve_Half benchmarks the sinh closed-form path.
func BenchmarkIve_Half(b *testing.B) { benchmarkIve(b, 0.5) }

// BenchmarkIve_Ladder25 benchmarks the full bottom-up ladder to order 2.5.
func BenchmarkIve_Ladder25(b *testing.B) { benchmarkIve(b, 2.5) }

// BenchmarkIveBatch benchmarks the batched entry point at order 1.5.
func BenchmarkIveBatch(b *testing.B) {
	z := make([]float64, 1024)
	for i := range z {
		z[i] = 0.5 + float64(i)*0.1
	}
	dst := make([]float64, len(z))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bessel.IveBatch(1.5, z, dst); err != nil {
			b.Fatalf("IveBatch failed: %v", err)
		}
	}
}
