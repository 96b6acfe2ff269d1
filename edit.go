package numseq

import (
	"fmt"
	"slices"

	"github.com/tphakala/go-numseq/internal/simdops"
)

// Selection picks elements either by position or by value.
// Exactly one of the two fields must be non-empty.
type Selection struct {
	// Indices selects elements by position.
	Indices []int

	// Values selects every element exactly equal to one of these values.
	// Float equality is exact, so non-integral values rarely match after
	// arithmetic.
	Values []float64
}

// ByIndex returns a Selection of positions.
func ByIndex(indices ...int) Selection {
	return Selection{Indices: indices}
}

// ByValue returns a Selection of values.
func ByValue(values ...float64) Selection {
	return Selection{Values: values}
}

// Validate checks that exactly one selector is set.
func (sel Selection) Validate() error {
	hasIdx, hasVal := len(sel.Indices) > 0, len(sel.Values) > 0
	if hasIdx == hasVal {
		return fmt.Errorf("%w: provide exactly one of indices or values", ErrConfiguration)
	}
	return nil
}

// Repeated returns a new sequence with the current values tiled n times.
func (s *Sequence) Repeated(n int) (*Sequence, error) {
	out, err := s.tiled(n)
	if err != nil {
		return nil, err
	}
	return newResult(out), nil
}

// Repeat tiles the current values n times in place. Repeat(0) empties the sequence.
func (s *Sequence) Repeat(n int) error {
	out, err := s.tiled(n)
	if err != nil {
		return err
	}
	s.current = out
	return nil
}

func (s *Sequence) tiled(n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: repetition count must be non-negative, got %d", ErrConfiguration, n)
	}
	if len(s.current) > 0 && n > maxLength/len(s.current) {
		return nil, fmt.Errorf("%w: repeating %d values %d times exceeds %d", ErrConfiguration, len(s.current), n, maxLength)
	}
	return slices.Repeat(s.current, n), nil
}

func checkLength(n int) error {
	if n > maxLength {
		return fmt.Errorf("%w: length %d exceeds %d", ErrConfiguration, n, maxLength)
	}
	return nil
}

// Concatenated returns a new sequence holding the current values followed by x.
func (s *Sequence) Concatenated(x Operand) (*Sequence, error) {
	if err := x.validate(); err != nil {
		return nil, err
	}
	return newResult(slices.Concat(s.current, x.slice())), nil
}

// Concat appends the values of x (a scalar, collection or sequence) in place.
func (s *Sequence) Concat(x Operand) error {
	if err := x.validate(); err != nil {
		return err
	}
	s.current = slices.Concat(s.current, x.slice())
	return nil
}

// Append is an alias for Concat.
func (s *Sequence) Append(x Operand) error {
	return s.Concat(x)
}

// Insert places the values of x before position pos. pos == Len() appends.
func (s *Sequence) Insert(pos int, x Operand) error {
	if pos < 0 || pos > len(s.current) {
		return fmt.Errorf("%w: insert position %d with length %d", ErrIndexRange, pos, len(s.current))
	}
	if err := x.validate(); err != nil {
		return err
	}
	s.current = slices.Insert(slices.Clone(s.current), pos, x.slice()...)
	return nil
}

// Pad appends count copies of fill.
func (s *Sequence) Pad(count int, fill float64) error {
	if count < 0 {
		return fmt.Errorf("%w: pad count must be non-negative, got %d", ErrConfiguration, count)
	}
	if count > maxLength-len(s.current) {
		return fmt.Errorf("%w: padding %d values by %d exceeds %d", ErrConfiguration, len(s.current), count, maxLength)
	}
	s.current = padTo(s.current, len(s.current)+count, fill)
	return nil
}

// Remove deletes the selected elements. By index, every position must be in
// range (negative positions count from the end); by value, all exact matches
// are removed.
func (s *Sequence) Remove(sel Selection) error {
	if err := sel.Validate(); err != nil {
		return err
	}

	n := len(s.current)
	drop := make([]bool, n)
	if len(sel.Indices) > 0 {
		for _, i := range sel.Indices {
			idx, err := resolve(i, n)
			if err != nil {
				return err
			}
			drop[idx] = true
		}
	} else {
		match := make(map[float64]struct{}, len(sel.Values))
		for _, v := range sel.Values {
			match[v] = struct{}{}
		}
		for i, v := range s.current {
			_, drop[i] = match[v]
		}
	}

	out := make([]float64, 0, n)
	for i, v := range s.current {
		if !drop[i] {
			out = append(out, v)
		}
	}
	s.current = out
	return nil
}

// Interleave returns a new sequence alternating chunks of step elements from
// s and x. Once one side runs out the other continues alone.
func (s *Sequence) Interleave(x Operand, step int) (*Sequence, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrConfiguration, step)
	}
	if err := x.validate(); err != nil {
		return nil, err
	}
	a, b := s.current, x.slice()

	if step == 1 && len(a) == len(b) {
		out := make([]float64, 2*len(a))
		simdops.Float64Ops().Interleave2(out, a, b)
		return newResult(out), nil
	}

	out := make([]float64, 0, len(a)+len(b))
	for i := 0; i < len(a) || i < len(b); i += step {
		if i < len(a) {
			out = append(out, a[i:min(i+step, len(a))]...)
		}
		if i < len(b) {
			out = append(out, b[i:min(i+step, len(b))]...)
		}
	}
	return newResult(out), nil
}

// Items returns the current values at the given positions, in order.
func (s *Sequence) Items(indices ...int) ([]float64, error) {
	out := make([]float64, len(indices))
	for k, i := range indices {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// IndicesOf returns, for each value, the positions where it occurs.
func (s *Sequence) IndicesOf(values ...float64) [][]int {
	out := make([][]int, len(values))
	for k, want := range values {
		out[k] = []int{}
		for i, v := range s.current {
			if v == want {
				out[k] = append(out[k], i)
			}
		}
	}
	return out
}
