// Package simdops wraps the SIMD kernels used by sequence operations.
//
// The wrappers keep the call sites independent of the accelerated package and
// fall back to plain loops for inputs too short to benefit from vector code.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// minVectorLen is the shortest input routed to the SIMD kernels.
// Below this the call overhead dominates.
const minVectorLen = 16

// Ops provides float64 vector kernels.
// Function fields allow tests to substitute reference implementations.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by s: dst[i] = a[i] * s.
	// dst and a may alias.
	Scale func(dst, a []float64, s float64)

	// Interleave2 interleaves two equal-length slices:
	// dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
	Interleave2 func(dst, a, b []float64)
}

var ops64 = Ops{
	Sum:         sum,
	Scale:       scale,
	Interleave2: interleave2,
}

// Float64Ops returns the shared float64 operations.
func Float64Ops() *Ops {
	return &ops64
}

// Info describes the SIMD instruction set detected at runtime.
func Info() string {
	return cpu.Info()
}

func sum(a []float64) float64 {
	if len(a) >= minVectorLen {
		return f64.Sum(a)
	}
	var total float64
	for _, v := range a {
		total += v
	}
	return total
}

func scale(dst, a []float64, s float64) {
	if len(a) >= minVectorLen {
		f64.Scale(dst, a, s)
		return
	}
	for i, v := range a {
		dst[i] = v * s
	}
}

func interleave2(dst, a, b []float64) {
	if len(a) >= minVectorLen {
		f64.Interleave2(dst, a, b)
		return
	}
	for i := range a {
		dst[2*i] = a[i]
		dst[2*i+1] = b[i]
	}
}
