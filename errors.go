package numseq

import "errors"

// Common errors returned by sequence operations.
// Callers match them with errors.Is; the returned error usually wraps one of
// these with additional context.
var (
	// ErrConfiguration indicates conflicting or missing arguments, e.g. a split
	// with both or neither selector, a non-positive step or a negative repeat count.
	ErrConfiguration = errors.New("numseq: invalid configuration")

	// ErrTypeMismatch indicates an unsupported operand, predicate or argument type.
	ErrTypeMismatch = errors.New("numseq: type mismatch")

	// ErrIndexType indicates an index that is neither a position nor a range.
	ErrIndexType = errors.New("numseq: invalid index type")

	// ErrIndexRange indicates an index outside the sequence bounds.
	ErrIndexRange = errors.New("numseq: index out of range")

	// ErrSampling indicates a sampling request that cannot be satisfied,
	// such as drawing more values without replacement than are available.
	ErrSampling = errors.New("numseq: sampling request exceeds population")

	// ErrShapeMismatch indicates operands whose lengths must match but do not.
	ErrShapeMismatch = errors.New("numseq: shape mismatch")
)
