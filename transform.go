package numseq

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-numseq/internal/simdops"
)

// mapped returns f applied to every current value.
func (s *Sequence) mapped(f func(float64) float64) []float64 {
	out := make([]float64, len(s.current))
	for i, v := range s.current {
		out[i] = f(v)
	}
	return out
}

// Abs returns a new sequence holding the absolute values.
func (s *Sequence) Abs() *Sequence {
	return newResult(s.mapped(math.Abs))
}

// AbsInPlace replaces the current values with their absolute values.
func (s *Sequence) AbsInPlace() *Sequence {
	s.current = s.mapped(math.Abs)
	return s
}

// Neg returns a new sequence holding the negated values.
func (s *Sequence) Neg() *Sequence {
	out := make([]float64, len(s.current))
	simdops.Float64Ops().Scale(out, s.current, -1)
	return newResult(out)
}

// NegInPlace negates the current values.
func (s *Sequence) NegInPlace() *Sequence {
	simdops.Float64Ops().Scale(s.current, s.current, -1)
	return s
}

// midpoint returns (min + max) / 2 of the current values.
func (s *Sequence) midpoint() float64 {
	return (floats.Min(s.current) + floats.Max(s.current)) / pivotDivisor
}

// Invert returns a new sequence reflected about the midpoint of its range,
// so the minimum and maximum trade places.
func (s *Sequence) Invert() *Sequence {
	if len(s.current) == 0 {
		return newResult([]float64{})
	}
	return s.InvertAround(s.midpoint())
}

// InvertAround returns a new sequence with every value v replaced by
// 2*pivot - v.
func (s *Sequence) InvertAround(pivot float64) *Sequence {
	return newResult(s.mapped(func(v float64) float64 {
		return pivotFactor*pivot - v
	}))
}

// InvertInPlace reflects the current values about the midpoint of their range.
func (s *Sequence) InvertInPlace() *Sequence {
	if len(s.current) == 0 {
		return s
	}
	pivot := s.midpoint()
	for i, v := range s.current {
		s.current[i] = pivotFactor*pivot - v
	}
	return s
}

// Scale linearly maps the current values from their own [min, max] onto
// [lo, hi]. When all values are equal the source range is empty and every
// value becomes lo.
func (s *Sequence) Scale(lo, hi float64) *Sequence {
	if len(s.current) == 0 {
		return s
	}
	vMin, vMax := floats.Min(s.current), floats.Max(s.current)
	span := vMax - vMin
	for i, v := range s.current {
		if span == 0 {
			s.current[i] = lo
			continue
		}
		s.current[i] = lo + (v-vMin)*(hi-lo)/span
	}
	return s
}

// Clip clamps every current value into [lo, hi].
// If lo > hi every value becomes hi.
func (s *Sequence) Clip(lo, hi float64) *Sequence {
	for i, v := range s.current {
		s.current[i] = math.Min(math.Max(v, lo), hi)
	}
	return s
}

// Round rounds the current values to the given number of decimals using
// round-half-to-even. Rounding to more decimals than float64 can hold leaves
// the values unchanged.
func (s *Sequence) Round(decimals int) *Sequence {
	if decimals >= maxRoundDecimals {
		return s
	}
	p := math.Pow(decimalBase, float64(decimals))
	for i, v := range s.current {
		scaled := v * p
		switch {
		case p == 0:
			s.current[i] = math.Copysign(0, v)
		case math.IsInf(scaled, 0):
			// v is already a whole multiple of 1/p.
		default:
			s.current[i] = math.RoundToEven(scaled) / p
		}
	}
	return s
}

// Ceil rounds the current values up.
func (s *Sequence) Ceil() *Sequence {
	s.current = s.mapped(math.Ceil)
	return s
}

// Floor rounds the current values down.
func (s *Sequence) Floor() *Sequence {
	s.current = s.mapped(math.Floor)
	return s
}

// Rotate shifts the current values circularly by n positions. Positive n moves
// values toward higher indices; values falling off the end wrap to the front.
func (s *Sequence) Rotate(n int) *Sequence {
	size := len(s.current)
	if size == 0 {
		return s
	}
	k := ((n % size) + size) % size
	out := make([]float64, size)
	for i, v := range s.current {
		out[(i+k)%size] = v
	}
	s.current = out
	return s
}

// Reverse reverses the order of the current values.
func (s *Sequence) Reverse() *Sequence {
	slices.Reverse(s.current)
	return s
}

// SortOrder selects how Sort arranges values.
type SortOrder int

const (
	// Ascending sorts from smallest to largest.
	Ascending SortOrder = iota

	// Descending sorts from largest to smallest.
	Descending

	// Shuffle applies a uniform random permutation.
	Shuffle
)

var sortOrderNames = [...]string{"ascending", "descending", "shuffle"}

// String returns the lower-case order name.
func (o SortOrder) String() string {
	if o < 0 || int(o) >= len(sortOrderNames) {
		return fmt.Sprintf("SortOrder(%d)", int(o))
	}
	return sortOrderNames[o]
}

// ParseSortOrder maps an order name (as returned by String) to a SortOrder.
func ParseSortOrder(name string) (SortOrder, error) {
	for i, n := range sortOrderNames {
		if n == name {
			return SortOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sort order %q", ErrConfiguration, name)
}

// Sort reorders the current values. Shuffle draws from the source given with
// WithSource, or the global generator when none is given.
func (s *Sequence) Sort(order SortOrder, opts ...Option) error {
	switch order {
	case Ascending:
		slices.Sort(s.current)
	case Descending:
		slices.Sort(s.current)
		slices.Reverse(s.current)
	case Shuffle:
		o := applyOptions(opts)
		o.shuffle(len(s.current), func(i, j int) {
			s.current[i], s.current[j] = s.current[j], s.current[i]
		})
	default:
		return fmt.Errorf("%w: unknown sort order %d", ErrConfiguration, int(order))
	}
	return nil
}

// UniqueMode selects how Unique removes duplicates.
type UniqueMode int

const (
	// UniqueFirst keeps the first occurrence of every value, preserving order.
	UniqueFirst UniqueMode = iota

	// UniqueSingletons keeps only values that occur exactly once.
	UniqueSingletons

	// UniqueConsecutive collapses runs of equal adjacent values.
	UniqueConsecutive
)

var uniqueModeNames = [...]string{"first", "singletons", "consecutive"}

func (m UniqueMode) String() string {
	if m < 0 || int(m) >= len(uniqueModeNames) {
		return fmt.Sprintf("UniqueMode(%d)", int(m))
	}
	return uniqueModeNames[m]
}

// ParseUniqueMode maps a mode name (as returned by String) to a UniqueMode.
func ParseUniqueMode(name string) (UniqueMode, error) {
	for i, n := range uniqueModeNames {
		if n == name {
			return UniqueMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unique mode %q", ErrConfiguration, name)
}

// Unique removes duplicate values according to mode.
func (s *Sequence) Unique(mode UniqueMode) error {
	var out []float64
	switch mode {
	case UniqueFirst:
		seen := make(map[float64]struct{}, len(s.current))
		out = make([]float64, 0, len(s.current))
		for _, v := range s.current {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	case UniqueSingletons:
		counts := make(map[float64]int, len(s.current))
		for _, v := range s.current {
			counts[v]++
		}
		out = make([]float64, 0, len(s.current))
		for _, v := range s.current {
			if counts[v] == 1 {
				out = append(out, v)
			}
		}
	case UniqueConsecutive:
		out = make([]float64, 0, len(s.current))
		for i, v := range s.current {
			if i == 0 || v != s.current[i-1] {
				out = append(out, v)
			}
		}
	default:
		return fmt.Errorf("%w: unknown unique mode %d", ErrConfiguration, int(mode))
	}
	s.current = out
	return nil
}

// shuffle runs a Fisher-Yates shuffle with the configured generator.
func (o *options) shuffle(n int, swap func(i, j int)) {
	if o.src == nil {
		rand.Shuffle(n, swap)
		return
	}
	rand.New(o.src).Shuffle(n, swap)
}
