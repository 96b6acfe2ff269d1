package pipeline

import (
	"fmt"

	"github.com/tphakala/go-numseq"
)

func runStage(env *Env, idx int, spec StageSpec) error {
	target, err := env.Lookup(spec.Target)
	if err != nil {
		return err
	}

	switch spec.Type {
	case StageSample, StageSplit, StageInterpolate, StageStats:
		return generate(env, idx, spec, target)
	case StageApply:
		return apply(env, spec, target)
	}

	// Transforms run on the target itself, or on a copy stored under Into.
	work := target
	if spec.Into != "" && spec.Into != spec.Target {
		work = target.Copy()
	}
	if err := transform(env, spec, work); err != nil {
		return err
	}
	if work != target {
		env.Sequences[spec.Into] = work
	}
	return nil
}

func operand(env *Env, pr Params) (numseq.Operand, error) {
	if pr.With == "" {
		return pr.Operand, nil
	}
	s, err := env.Lookup(pr.With)
	if err != nil {
		return numseq.Operand{}, err
	}
	return numseq.Of(s), nil
}

func apply(env *Env, spec StageSpec, target *numseq.Sequence) error {
	pr := spec.Params
	x, err := operand(env, pr)
	if err != nil {
		return err
	}

	inPlace := spec.Into == "" || spec.Into == spec.Target
	switch {
	case inPlace && !pr.Reversed:
		_, err = target.ApplyInPlace(pr.Op, x)
		return err
	case pr.Reversed:
		res, err := target.ApplyReversed(pr.Op, x)
		if err != nil {
			return err
		}
		env.Sequences[outName(spec)] = res
	default:
		res, err := target.Apply(pr.Op, x)
		if err != nil {
			return err
		}
		env.Sequences[spec.Into] = res
	}
	return nil
}

func outName(spec StageSpec) string {
	if spec.Into != "" {
		return spec.Into
	}
	return spec.Target
}

func transform(env *Env, spec StageSpec, s *numseq.Sequence) error {
	pr := spec.Params
	switch spec.Type {
	case StageAbs:
		s.AbsInPlace()
	case StageNeg:
		s.NegInPlace()
	case StageInvert:
		if pr.HasValue {
			return s.SetRange(0, s.Len(), numseq.Of(s.InvertAround(pr.Value)))
		}
		s.InvertInPlace()
	case StageScale:
		s.Scale(pr.Min, pr.Max)
	case StageClip:
		s.Clip(pr.Min, pr.Max)
	case StageRound:
		s.Round(pr.N)
	case StageRotate:
		s.Rotate(pr.N)
	case StageReverse:
		s.Reverse()
	case StageSort:
		return s.Sort(pr.Sort, env.options()...)
	case StageUnique:
		return s.Unique(pr.Unique)
	case StageRepeat:
		return s.Repeat(pr.N)
	case StagePad:
		return s.Pad(pr.N, pr.Value)
	case StageRemove:
		return s.Remove(pr.Selection)
	case StageFilter:
		if pr.HasValue {
			return s.FilterFill(numseq.Expr(pr.Expr), pr.Value)
		}
		return s.Filter(numseq.Expr(pr.Expr))
	case StageShift:
		s.Shift(pr.Value)
	case StageReset:
		s.Reset()
	case StageConcat, StageInsert, StageInterleave:
		x, err := operand(env, pr)
		if err != nil {
			return err
		}
		return splice(spec.Type, s, x, pr.N)
	default:
		return fmt.Errorf("%w: stage %s is not a transform", numseq.ErrConfiguration, spec.Type)
	}
	return nil
}

func splice(t StageType, s *numseq.Sequence, x numseq.Operand, n int) error {
	switch t {
	case StageConcat:
		return s.Concat(x)
	case StageInsert:
		return s.Insert(n, x)
	default:
		res, err := s.Interleave(x, n)
		if err != nil {
			return err
		}
		return replace(s, res)
	}
}

// replace overwrites the current values of s with those of res, which may
// differ in length.
func replace(s, res *numseq.Sequence) error {
	if err := s.Repeat(0); err != nil {
		return err
	}
	return s.Concat(numseq.Of(res))
}

func generate(env *Env, idx int, spec StageSpec, target *numseq.Sequence) error {
	pr := spec.Params
	out := Output{Stage: idx, Type: spec.Type, Target: spec.Target}

	switch spec.Type {
	case StageSample:
		opts := env.options()
		if pr.HasWindow {
			opts = append(opts, numseq.WithWindow(pr.Start, pr.End))
		}
		vals, err := target.Sample(pr.N, pr.Mode, opts...)
		if err != nil {
			return err
		}
		out.Rows = [][]float64{vals}
		if spec.Into != "" {
			env.Sequences[spec.Into] = numseq.New(vals, 0)
		}

	case StageSplit:
		parts, err := target.Split(pr.Split)
		if err != nil {
			return err
		}
		out.Rows = collect(env, spec.Into, parts)

	case StageInterpolate:
		with, err := env.Lookup(pr.With)
		if err != nil {
			return err
		}
		curve := defaultCurve
		if pr.HasCurve {
			curve = pr.Curve
		}
		steps, err := target.Interpolate(with, pr.N, curve)
		if err != nil {
			return err
		}
		out.Rows = collect(env, spec.Into, steps)

	case StageStats:
		out.Stats = &Stats{
			Len:    target.Len(),
			Min:    target.Min(),
			Max:    target.Max(),
			Sum:    target.Sum(),
			Mean:   target.Mean(),
			Median: target.Median(),
		}
	}

	env.Outputs = append(env.Outputs, out)
	return nil
}

// collect returns the values of seqs and, when into is set, stores each one
// as "<into>.<i>".
func collect(env *Env, into string, seqs []*numseq.Sequence) [][]float64 {
	rows := make([][]float64, len(seqs))
	for i, s := range seqs {
		rows[i] = s.Values()
		if into != "" {
			env.Sequences[fmt.Sprintf(partNameFormat, into, i)] = s
		}
	}
	return rows
}
