package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i + 1)
	}
	return s
}

func TestSum(t *testing.T) {
	ops := Float64Ops()
	for _, n := range []int{0, 1, minVectorLen - 1, minVectorLen, 100} {
		a := ramp(n)
		assert.InDelta(t, float64(n*(n+1)/2), ops.Sum(a), 1e-9, "n=%d", n)
	}
}

func TestScale(t *testing.T) {
	ops := Float64Ops()
	for _, n := range []int{3, 64} {
		a := ramp(n)
		dst := make([]float64, n)
		ops.Scale(dst, a, -2)
		for i := range a {
			assert.Equal(t, -2*a[i], dst[i])
		}

		// In place.
		ops.Scale(a, a, 0.5)
		for i := range a {
			assert.Equal(t, float64(i+1)*0.5, a[i])
		}
	}
}

func TestInterleave2(t *testing.T) {
	ops := Float64Ops()
	for _, n := range []int{2, 40} {
		a := ramp(n)
		b := make([]float64, n)
		for i := range b {
			b[i] = -a[i]
		}
		dst := make([]float64, 2*n)
		ops.Interleave2(dst, a, b)
		for i := range a {
			assert.Equal(t, a[i], dst[2*i])
			assert.Equal(t, b[i], dst[2*i+1])
		}
	}
}

func TestInfo(t *testing.T) {
	assert.NotEmpty(t, Info())
}
