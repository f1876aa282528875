// Package sphera is a toolkit for directional statistics on the unit
// hypersphere — probability on spheres, from scaled special functions to
// seeded, batched samplers.
//
// 🚀 What is sphera?
//
//	A focused, numerics-first library that brings together:
//		• Scaled Bessel functions: I_v(z)·e^{-|z|} for the half-integer ladder
//		• The von Mises–Fisher distribution on S^{D-1}, 2 ≤ D ≤ 5
//		• Log-density, normalizers and moments with overflow-free arithmetic
//		• Batched sampling: closed-form inversion (D=3), Wood'94 rejection
//		• Householder reorientation of basis-aligned samples to any mean
//
// ✨ Why choose sphera?
//
//   - Deterministic – every sampling call owns a single seeded stream
//   - Honest numerics – explicit stability policy, no silent hangs
//   - Small API – one distribution type, sentinel errors, errors.Is
//   - Batch-native – one flat batch axis, scalar broadcast for κ
//
// Under the hood, everything is organized under two subpackages:
//
//	bessel/ — exponentially scaled modified Bessel functions of the first kind
//	vmf/    — the von Mises–Fisher distribution: density, moments, sampling
//
// Quick ASCII picture (D=3, κ grows → mass gathers at μ):
//
//	   · ·  ·          · ····
//	 ·   ·    ·      ·  ·███·
//	·  ·   ·   ·  →  ·   ···
//	  κ = 0 (uniform)   κ ≫ 1 (concentrated at μ)
//
// Dive into examples/ for runnable scenarios and the per-package doc.go
// files for formulas, tolerances and error contracts.
//
//	go get github.com/katalvlaran/sphera
package sphera
