package numseq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Interpolate returns steps sequences blending the current values into the
// target's. For t at steps evenly spaced points of [0, 1], each output equals
//
//	current + (target - current) * t^curve
//
// so the first output is a copy of s and the last a copy of target (for
// steps >= 2). A curve of 1 is linear; larger values ease in, smaller values
// ease out.
func (s *Sequence) Interpolate(target *Sequence, steps int, curve float64) ([]*Sequence, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: nil interpolation target", ErrTypeMismatch)
	}
	if len(target.current) != len(s.current) {
		return nil, fmt.Errorf("%w: interpolating %d values into %d", ErrShapeMismatch, len(s.current), len(target.current))
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: interpolation steps must be positive, got %d", ErrConfiguration, steps)
	}
	if err := checkLength(steps); err != nil {
		return nil, err
	}

	ts := make([]float64, steps)
	if steps >= spanMinPoints {
		floats.Span(ts, 0, 1)
	}

	diff := floats.SubTo(make([]float64, len(s.current)), target.current, s.current)
	out := make([]*Sequence, steps)
	for i, t := range ts {
		row := floats.AddScaledTo(make([]float64, len(s.current)), s.current, math.Pow(t, curve), diff)
		out[i] = newResult(row)
	}
	return out, nil
}

// InterpolateLinear is Interpolate with a linear curve.
func (s *Sequence) InterpolateLinear(target *Sequence, steps int) ([]*Sequence, error) {
	return s.Interpolate(target, steps, defaultCurve)
}
