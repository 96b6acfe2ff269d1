package numseq

import (
	"fmt"
	"math"

	"github.com/tphakala/go-numseq/internal/simdops"
)

// Op enumerates the binary operators supported by the dispatcher.
type Op int

const (
	// OpAdd is element-wise addition. Missing elements are padded with 0.
	OpAdd Op = iota

	// OpSub is element-wise subtraction. Missing elements are padded with 0.
	OpSub

	// OpMul is element-wise multiplication. Missing elements are padded with 1.
	OpMul

	// OpDiv is element-wise true division. Missing elements are padded with 1.
	OpDiv

	// OpFloorDiv is floor(a / b). Missing elements are padded with 1.
	OpFloorDiv

	// OpPow is a raised to b. Missing elements are padded with 1.
	OpPow

	// OpMod is the floored modulo; the result takes the sign of b.
	// Missing elements are padded with 1.
	OpMod
)

var opNames = [...]string{"add", "sub", "mul", "div", "floordiv", "pow", "mod"}

// String returns the lower-case operator name.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// ParseOp maps an operator name (as returned by String) to an Op.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrConfiguration, name)
}

func (op Op) valid() bool {
	return op >= OpAdd && op <= OpMod
}

// Fill returns the value used to pad the shorter operand.
func (op Op) Fill() float64 {
	if op == OpAdd || op == OpSub {
		return fillAdditive
	}
	return fillMultiplicative
}

func (op Op) eval(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpFloorDiv:
		return math.Floor(a / b)
	case OpPow:
		return math.Pow(a, b)
	default:
		return floorMod(a, b)
	}
}

// floorMod returns a mod b with the sign of b. b == 0 yields NaN.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// binary computes op over the current values and x. With reversed set the
// operands are swapped, i.e. the result is x op s.
func (s *Sequence) binary(op Op, x Operand, reversed bool) ([]float64, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: unknown operator %d", ErrConfiguration, int(op))
	}
	if err := x.validate(); err != nil {
		return nil, err
	}

	if x.kind == operandScalar {
		out := make([]float64, len(s.current))
		// Multiplication commutes, so both orders take the vector path.
		if op == OpMul {
			simdops.Float64Ops().Scale(out, s.current, x.scalar)
			return out, nil
		}
		for i, v := range s.current {
			if reversed {
				out[i] = op.eval(x.scalar, v)
			} else {
				out[i] = op.eval(v, x.scalar)
			}
		}
		return out, nil
	}

	a, b := align(s.current, x.slice(), op.Fill())
	if reversed {
		a, b = b, a
	}
	for i := range a {
		a[i] = op.eval(a[i], b[i])
	}
	return a, nil
}

// Apply returns a new sequence holding s op x. The result has offset 0.
func (s *Sequence) Apply(op Op, x Operand) (*Sequence, error) {
	out, err := s.binary(op, x, false)
	if err != nil {
		return nil, err
	}
	return newResult(out), nil
}

// ApplyReversed returns a new sequence holding x op s. The result has offset 0.
func (s *Sequence) ApplyReversed(op Op, x Operand) (*Sequence, error) {
	out, err := s.binary(op, x, true)
	if err != nil {
		return nil, err
	}
	return newResult(out), nil
}

// ApplyInPlace replaces the current values with s op x and returns s.
// On error s is left unchanged.
func (s *Sequence) ApplyInPlace(op Op, x Operand) (*Sequence, error) {
	out, err := s.binary(op, x, false)
	if err != nil {
		return nil, err
	}
	s.current = out
	return s, nil
}

// SIMDInfo describes the vector instruction set used by the arithmetic kernels.
func SIMDInfo() string {
	return simdops.Info()
}
