package numseq

import (
	"fmt"
	"slices"
)

type operandKind int

const (
	operandInvalid operandKind = iota
	operandScalar
	operandValues
	operandSequence
)

// Operand is the right-hand side of a binary operation: a scalar, a plain
// collection of values, or another Sequence.
// The zero Operand is invalid and rejected with ErrTypeMismatch.
type Operand struct {
	kind   operandKind
	scalar float64
	values []float64
	seq    *Sequence
}

// Scalar returns an operand broadcast against every element.
func Scalar(v float64) Operand {
	return Operand{kind: operandScalar, scalar: v}
}

// Values returns a collection operand. The slice is not copied.
func Values(v ...float64) Operand {
	if v == nil {
		v = []float64{}
	}
	return Operand{kind: operandValues, values: v}
}

// Of returns an operand that reads the current values of seq.
func Of(seq *Sequence) Operand {
	return Operand{kind: operandSequence, seq: seq}
}

// OperandFrom converts a dynamically typed value into an Operand.
// Supported inputs are Go integer and float scalars, []float64, []int, []any of
// numbers, *Sequence and Operand. Anything else fails with ErrTypeMismatch.
func OperandFrom(v any) (Operand, error) {
	switch x := v.(type) {
	case Operand:
		return x, x.validate()
	case *Sequence:
		op := Of(x)
		return op, op.validate()
	case []float64:
		return Values(slices.Clone(x)...), nil
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return Values(out...), nil
	case []any:
		out := make([]float64, len(x))
		for i, e := range x {
			f, ok := toFloat(e)
			if !ok {
				return Operand{}, fmt.Errorf("%w: element %d has type %T", ErrTypeMismatch, i, e)
			}
			out[i] = f
		}
		return Values(out...), nil
	default:
		if f, ok := toFloat(v); ok {
			return Scalar(f), nil
		}
		return Operand{}, fmt.Errorf("%w: unsupported operand type %T", ErrTypeMismatch, v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsScalar reports whether the operand is a scalar.
func (o Operand) IsScalar() bool {
	return o.kind == operandScalar
}

func (o Operand) validate() error {
	switch o.kind {
	case operandScalar, operandValues:
		return nil
	case operandSequence:
		if o.seq == nil {
			return fmt.Errorf("%w: nil sequence operand", ErrTypeMismatch)
		}
		return nil
	default:
		return fmt.Errorf("%w: uninitialized operand", ErrTypeMismatch)
	}
}

// slice returns the operand's values without copying.
// A scalar becomes a one-element slice.
func (o Operand) slice() []float64 {
	switch o.kind {
	case operandScalar:
		return []float64{o.scalar}
	case operandSequence:
		return o.seq.current
	default:
		return o.values
	}
}

// align right-pads the shorter of a and b with fill so both have the length of
// the longer. The inputs are never modified; fresh slices are returned.
func align(a, b []float64, fill float64) ([]float64, []float64) {
	n := max(len(a), len(b))
	return padTo(a, n, fill), padTo(b, n, fill)
}

func padTo(v []float64, n int, fill float64) []float64 {
	out := make([]float64, n)
	copy(out, v)
	for i := len(v); i < n; i++ {
		out[i] = fill
	}
	return out
}
