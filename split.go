package numseq

import (
	"fmt"
	"slices"
)

// SplitSide selects where a cut falls relative to a split point.
type SplitSide int

const (
	// SideAfter cuts immediately after the split point, so the separator ends
	// the preceding part.
	SideAfter SplitSide = iota

	// SideBefore cuts immediately before the split point, so the separator
	// starts the following part.
	SideBefore
)

// SplitOptions configures Split.
type SplitOptions struct {
	// Selection picks the split points; exactly one selector must be set.
	Selection

	// KeepSeparator keeps the element at each split point in the output.
	// When false the separator is dropped from both neighbouring parts.
	KeepSeparator bool

	// Side places the cut before or after each split point.
	Side SplitSide
}

// Validate checks the selector and side.
func (o SplitOptions) Validate() error {
	if err := o.Selection.Validate(); err != nil {
		return err
	}
	if o.Side != SideAfter && o.Side != SideBefore {
		return fmt.Errorf("%w: unknown split side %d", ErrConfiguration, int(o.Side))
	}
	return nil
}

// Split partitions the current values into new sequences at the selected
// points. Parts are returned in order and are never empty; concatenating them,
// with dropped separators put back, reproduces the current values.
//
// Index selections must lie in range; value selections must match at least
// one element. A split point at position 0 is ignored.
func (s *Sequence) Split(opts SplitOptions) ([]*Sequence, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	vals := s.current
	n := len(vals)

	var points []int
	if len(opts.Indices) > 0 {
		for _, i := range opts.Indices {
			if i < 0 || i >= n {
				return nil, fmt.Errorf("%w: split index %d with length %d", ErrIndexRange, i, n)
			}
			points = append(points, i)
		}
		slices.Sort(points)
		points = slices.Compact(points)
	} else {
		for i, v := range vals {
			if slices.Contains(opts.Values, v) {
				points = append(points, i)
			}
		}
		if len(points) == 0 {
			return nil, fmt.Errorf("%w: split values %v not found", ErrConfiguration, opts.Values)
		}
	}

	var parts []*Sequence
	emit := func(from, to int) {
		if from < to {
			parts = append(parts, newResult(slices.Clone(vals[from:to])))
		}
	}

	start := 0
	for _, p := range points {
		// A cut at the first element would only separate nothing from the rest.
		if p == 0 {
			continue
		}
		switch {
		case opts.Side == SideAfter && opts.KeepSeparator:
			emit(start, p+1)
			start = p + 1
		case opts.Side == SideAfter:
			emit(start, p)
			start = p + 1
		case opts.KeepSeparator:
			emit(start, p)
			start = p
		default:
			emit(start, p)
			start = p + 1
		}
	}
	emit(start, n)

	return parts, nil
}
