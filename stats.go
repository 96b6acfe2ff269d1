package numseq

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-numseq/internal/simdops"
)

// Deltas returns the differences between consecutive current values.
func (s *Sequence) Deltas() []float64 {
	if len(s.current) < 2 {
		return []float64{}
	}
	return floats.SubTo(make([]float64, len(s.current)-1), s.current[1:], s.current[:len(s.current)-1])
}

// Odd returns the current values v with v mod 2 == 1 (floored modulo, so
// negative odd integers are included).
func (s *Sequence) Odd() []float64 {
	return s.parity(oddRemainder)
}

// Even returns the current values v with v mod 2 == 0.
func (s *Sequence) Even() []float64 {
	return s.parity(0)
}

func (s *Sequence) parity(rem float64) []float64 {
	out := []float64{}
	for _, v := range s.current {
		if floorMod(v, parityModulus) == rem {
			out = append(out, v)
		}
	}
	return out
}

// Min returns the smallest current value, or NaN for an empty sequence.
func (s *Sequence) Min() float64 {
	if len(s.current) == 0 {
		return math.NaN()
	}
	return floats.Min(s.current)
}

// Max returns the largest current value, or NaN for an empty sequence.
func (s *Sequence) Max() float64 {
	if len(s.current) == 0 {
		return math.NaN()
	}
	return floats.Max(s.current)
}

// Sum returns the sum of the current values.
func (s *Sequence) Sum() float64 {
	return simdops.Float64Ops().Sum(s.current)
}

// Mean returns the arithmetic mean, or NaN for an empty sequence.
func (s *Sequence) Mean() float64 {
	if len(s.current) == 0 {
		return math.NaN()
	}
	return stat.Mean(s.current, nil)
}

// Median returns the middle value; for an even count it averages the two
// middle values. An empty sequence yields NaN.
func (s *Sequence) Median() float64 {
	n := len(s.current)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(s.current)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
