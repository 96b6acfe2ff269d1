package numseq

import (
	"fmt"
	"slices"
)

type indexKind int

const (
	indexInvalid indexKind = iota
	indexPosition
	indexSpan
)

// Index addresses either a single position or a contiguous range [Start, End).
// Build one with Position or Span; the zero Index is rejected with ErrIndexType.
type Index struct {
	kind       indexKind
	start, end int
}

// Position addresses a single element. Negative values count from the end.
func Position(i int) Index {
	return Index{kind: indexPosition, start: i}
}

// Span addresses the half-open range [start, end).
func Span(start, end int) Index {
	return Index{kind: indexSpan, start: start, end: end}
}

// resolve normalizes a position against n elements.
func resolve(i, n int) (int, error) {
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: index %d with length %d", ErrIndexRange, i, n)
	}
	return idx, nil
}

func checkSpan(start, end, n int) error {
	if start < 0 || end > n || start > end {
		return fmt.Errorf("%w: range [%d, %d) with length %d", ErrIndexRange, start, end, n)
	}
	return nil
}

// At returns the current value at position i.
func (s *Sequence) At(i int) (float64, error) {
	idx, err := resolve(i, len(s.current))
	if err != nil {
		return 0, err
	}
	return s.current[idx], nil
}

// Set replaces the current value at position i.
func (s *Sequence) Set(i int, v float64) error {
	idx, err := resolve(i, len(s.current))
	if err != nil {
		return err
	}
	s.current[idx] = v
	return nil
}

// Slice returns a copy of the current values in [start, end).
func (s *Sequence) Slice(start, end int) ([]float64, error) {
	if err := checkSpan(start, end, len(s.current)); err != nil {
		return nil, err
	}
	return slices.Clone(s.current[start:end]), nil
}

// SetRange assigns x to the current values in [start, end).
// A scalar is broadcast over the range; a collection must match its length.
func (s *Sequence) SetRange(start, end int, x Operand) error {
	if err := checkSpan(start, end, len(s.current)); err != nil {
		return err
	}
	if err := x.validate(); err != nil {
		return err
	}
	if x.kind == operandScalar {
		for i := start; i < end; i++ {
			s.current[i] = x.scalar
		}
		return nil
	}
	values := x.slice()
	if len(values) != end-start {
		return fmt.Errorf("%w: assigning %d values to a range of %d", ErrShapeMismatch, len(values), end-start)
	}
	copy(s.current[start:end], values)
	return nil
}

// Get returns the values addressed by ix.
func (s *Sequence) Get(ix Index) ([]float64, error) {
	switch ix.kind {
	case indexPosition:
		v, err := s.At(ix.start)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	case indexSpan:
		return s.Slice(ix.start, ix.end)
	default:
		return nil, ErrIndexType
	}
}

// Put assigns x to the elements addressed by ix.
// A position accepts a scalar or a single-element collection.
func (s *Sequence) Put(ix Index, x Operand) error {
	switch ix.kind {
	case indexPosition:
		idx, err := resolve(ix.start, len(s.current))
		if err != nil {
			return err
		}
		return s.SetRange(idx, idx+1, x)
	case indexSpan:
		return s.SetRange(ix.start, ix.end, x)
	default:
		return ErrIndexType
	}
}
