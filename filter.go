package numseq

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-numseq/internal/expr"
)

type predicateKind int

const (
	predicateInvalid predicateKind = iota
	predicateMask
	predicateExpr
	predicateFunc
)

// Predicate selects which current values a filter keeps.
// Build one with Mask, Expr or Func; the zero Predicate is rejected with
// ErrTypeMismatch.
type Predicate struct {
	kind predicateKind
	mask []bool
	src  string
	fn   func([]float64) []bool
}

// Mask keeps the values whose position is true. The mask must have the same
// length as the sequence.
func Mask(mask []bool) Predicate {
	return Predicate{kind: predicateMask, mask: mask}
}

// Expr keeps the values for which a comparison expression over x holds, for
// example "x >= 60 && x % 12 != 1". The expression is interpreted by the
// package; see internal/expr for the grammar.
func Expr(src string) Predicate {
	return Predicate{kind: predicateExpr, src: src}
}

// Func keeps the values for which fn returns true. fn receives a copy of the
// current values and must return a mask of the same length.
func Func(fn func(values []float64) []bool) Predicate {
	return Predicate{kind: predicateFunc, fn: fn}
}

// evaluate computes the mask for the current values without touching them.
func (p Predicate) evaluate(values []float64) ([]bool, error) {
	var mask []bool
	switch p.kind {
	case predicateMask:
		mask = p.mask
	case predicateExpr:
		prog, err := expr.Compile(p.src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		mask = prog.Mask(values)
	case predicateFunc:
		if p.fn == nil {
			return nil, fmt.Errorf("%w: nil predicate function", ErrTypeMismatch)
		}
		mask = p.fn(slices.Clone(values))
	default:
		return nil, fmt.Errorf("%w: uninitialized predicate", ErrTypeMismatch)
	}
	if len(mask) != len(values) {
		return nil, fmt.Errorf("%w: mask has %d entries for %d values", ErrShapeMismatch, len(mask), len(values))
	}
	return mask, nil
}

// Filter removes every current value the predicate rejects.
func (s *Sequence) Filter(p Predicate) error {
	mask, err := p.evaluate(s.current)
	if err != nil {
		return err
	}
	out := make([]float64, 0, len(s.current))
	for i, v := range s.current {
		if mask[i] {
			out = append(out, v)
		}
	}
	s.current = out
	return nil
}

// FilterFill replaces every current value the predicate rejects with fill,
// keeping the length unchanged.
func (s *Sequence) FilterFill(p Predicate, fill float64) error {
	mask, err := p.evaluate(s.current)
	if err != nil {
		return err
	}
	for i := range s.current {
		if !mask[i] {
			s.current[i] = fill
		}
	}
	return nil
}
