package numseq

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Sequence is an ordered collection of float64 values with a mutable working
// view and an immutable baseline.
//
// The baseline (original) is fixed at construction as values + offset. Every
// operation reads and writes the working view (current), whose length may
// drift away from the baseline after structural edits. Reset restores the
// working view from the baseline.
type Sequence struct {
	original []float64
	current  []float64
	offset   float64
}

// New creates a sequence from values with offset added to every element.
// The values slice is copied; later changes to it are not observed.
func New(values []float64, offset float64) *Sequence {
	original := make([]float64, len(values))
	for i, v := range values {
		original[i] = v + offset
	}
	return &Sequence{
		original: original,
		current:  slices.Clone(original),
		offset:   offset,
	}
}

// newResult wraps a freshly computed buffer without copying it.
// The buffer must not be referenced anywhere else.
func newResult(values []float64) *Sequence {
	return &Sequence{
		original: values,
		current:  slices.Clone(values),
	}
}

// Values returns a copy of the current values.
func (s *Sequence) Values() []float64 {
	return slices.Clone(s.current)
}

// Original returns a copy of the baseline values.
func (s *Sequence) Original() []float64 {
	return slices.Clone(s.original)
}

// Offset returns the offset applied at construction or by the last Shift.
func (s *Sequence) Offset() float64 {
	return s.offset
}

// Len returns the number of current values.
func (s *Sequence) Len() int {
	return len(s.current)
}

// All returns an iterator over index/value pairs of the current values.
// Each ranging reads the values current at that time, so an iterator can be
// reused after the sequence changes.
func (s *Sequence) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range s.current {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Iter returns an iterator over the current values.
func (s *Sequence) Iter() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range s.current {
			if !yield(v) {
				return
			}
		}
	}
}

// Shift records delta as the new offset and adds it to every current value.
// The baseline is not re-derived.
func (s *Sequence) Shift(delta float64) *Sequence {
	s.offset = delta
	for i := range s.current {
		s.current[i] += delta
	}
	return s
}

// Reset restores the current values from the baseline.
func (s *Sequence) Reset() *Sequence {
	s.current = slices.Clone(s.original)
	return s
}

// Copy returns a fully independent duplicate with the same offset.
func (s *Sequence) Copy() *Sequence {
	return &Sequence{
		original: slices.Clone(s.original),
		current:  slices.Clone(s.current),
		offset:   s.offset,
	}
}

// String formats the current values, e.g. "Sequence[60 62 64]".
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteString("Sequence[")
	for i, v := range s.current {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}
