// Package pipeline applies an ordered chain of sequence operations to a set
// of named sequences.
//
// Each StageSpec names the operation, the sequence it reads (Target) and
// where the result goes (Into). BuildPipeline checks the specs up front so
// that a malformed chain fails before any sequence is touched; Run then
// applies the stages in order and collects the values that generative
// stages (sample, split, interpolate, stats) produce.
package pipeline

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/tphakala/go-numseq"
	"github.com/tphakala/go-numseq/internal/logging"
)

// StageType identifies the operation a stage performs.
type StageType int

const (
	// StageApply performs a broadcasting binary operation.
	StageApply StageType = iota

	// StageAbs takes absolute values.
	StageAbs

	// StageNeg negates values.
	StageNeg

	// StageInvert mirrors values around the midpoint, or around Params.Value
	// when Params.HasValue is set.
	StageInvert

	// StageScale maps values linearly onto [Params.Min, Params.Max].
	StageScale

	// StageClip clamps values to [Params.Min, Params.Max].
	StageClip

	// StageRound rounds to Params.N decimals.
	StageRound

	// StageRotate rotates right by Params.N.
	StageRotate

	// StageReverse reverses the order.
	StageReverse

	// StageSort reorders by Params.Sort.
	StageSort

	// StageUnique drops duplicates by Params.Unique.
	StageUnique

	// StageRepeat tiles Params.N times.
	StageRepeat

	// StageConcat appends the operand.
	StageConcat

	// StageInsert inserts the operand at Params.N.
	StageInsert

	// StagePad appends Params.N copies of Params.Value.
	StagePad

	// StageRemove deletes Params.Selection.
	StageRemove

	// StageInterleave alternates chunks of Params.N values with the operand.
	StageInterleave

	// StageFilter keeps values matching Params.Expr, or replaces the others
	// with Params.Value when Params.HasValue is set.
	StageFilter

	// StageShift shifts by Params.Value.
	StageShift

	// StageReset restores the baseline.
	StageReset

	// StageSample draws Params.N values using Params.Mode.
	StageSample

	// StageSplit partitions at Params.Split.
	StageSplit

	// StageInterpolate blends towards the sequence named Params.With over
	// Params.N steps.
	StageInterpolate

	// StageStats records summary statistics.
	StageStats
)

var stageNames = [...]string{
	"apply", "abs", "neg", "invert", "scale", "clip", "round", "rotate",
	"reverse", "sort", "unique", "repeat", "concat", "insert", "pad",
	"remove", "interleave", "filter", "shift", "reset", "sample", "split",
	"interpolate", "stats",
}

// String returns the stage name used in recipes and logs.
func (t StageType) String() string {
	if t < 0 || int(t) >= len(stageNames) {
		return fmt.Sprintf("StageType(%d)", int(t))
	}
	return stageNames[t]
}

// ParseStageType maps a stage name to a StageType.
func ParseStageType(name string) (StageType, error) {
	i := slices.Index(stageNames[:], name)
	if i < 0 {
		return 0, fmt.Errorf("%w: unknown stage %q", numseq.ErrConfiguration, name)
	}
	return StageType(i), nil
}

// Params carries the arguments of a stage. Only the fields relevant to the
// stage type are read.
type Params struct {
	Op numseq.Op

	// Reversed computes operand op target. The result is a new sequence
	// stored under Into, or replacing Target when Into is empty.
	Reversed bool

	// Operand is the right-hand side of apply, concat, insert and
	// interleave. With takes precedence when set.
	Operand numseq.Operand
	With    string

	N        int
	Min, Max float64

	// Value is the pivot, fill or shift amount.
	Value    float64
	HasValue bool

	Sort      numseq.SortOrder
	Unique    numseq.UniqueMode
	Selection numseq.Selection
	Expr      string

	Mode      numseq.SampleMode
	HasWindow bool
	Start     int
	End       int

	Split numseq.SplitOptions

	// Curve is the interpolation exponent, read only when HasCurve is set.
	Curve    float64
	HasCurve bool
}

// StageSpec specifies one stage.
type StageSpec struct {
	Type StageType

	// Target names the sequence the stage reads.
	Target string

	// Into names where the result is stored. Empty means Target, in which
	// case transforms run in place. Generative stages store nothing when
	// Into is empty; their values are only collected as outputs.
	Into string

	Params Params
}

// Output is the value produced by a generative stage.
type Output struct {
	Stage  int
	Type   StageType
	Target string
	Rows   [][]float64
	Stats  *Stats
}

// Stats summarizes a sequence.
type Stats struct {
	Len    int
	Min    float64
	Max    float64
	Sum    float64
	Mean   float64
	Median float64
}

// Env holds the named sequences a pipeline operates on and the outputs it
// collects.
type Env struct {
	Sequences map[string]*numseq.Sequence
	Outputs   []Output

	// Source seeds the random stages; nil uses the global generator.
	Source rand.Source
}

// NewEnv creates an empty environment.
func NewEnv(src rand.Source) *Env {
	return &Env{
		Sequences: make(map[string]*numseq.Sequence),
		Outputs:   make([]Output, 0, defaultOutputCapacity),
		Source:    src,
	}
}

// Lookup returns the sequence stored under name.
func (e *Env) Lookup(name string) (*numseq.Sequence, error) {
	s, ok := e.Sequences[name]
	if !ok {
		return nil, fmt.Errorf("%w: no sequence named %q", numseq.ErrConfiguration, name)
	}
	return s, nil
}

func (e *Env) options() []numseq.Option {
	if e.Source == nil {
		return nil
	}
	return []numseq.Option{numseq.WithSource(e.Source)}
}

// Pipeline is a validated chain of stages.
type Pipeline struct {
	stages []StageSpec
	log    logrus.FieldLogger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger stages are reported to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Pipeline) {
		p.log = l
	}
}

// BuildPipeline validates specs and returns a pipeline applying them in order.
func BuildPipeline(specs []StageSpec, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		stages: make([]StageSpec, 0, max(len(specs), defaultStageCapacity)),
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i, spec := range specs {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, spec.Type, err)
		}
		p.stages = append(p.stages, spec)
	}
	return p, nil
}

// validate checks what can be checked without the sequences. Value-level
// errors (ranges, shapes) surface from Run.
func (s StageSpec) validate() error {
	if s.Type < StageApply || s.Type > StageStats {
		return fmt.Errorf("%w: unknown stage type %d", numseq.ErrConfiguration, int(s.Type))
	}
	if s.Target == "" {
		return fmt.Errorf("%w: stage needs a target", numseq.ErrConfiguration)
	}

	pr := s.Params
	switch s.Type {
	case StageApply:
		if _, err := numseq.ParseOp(pr.Op.String()); err != nil {
			return err
		}
	case StageRemove:
		return pr.Selection.Validate()
	case StageSplit:
		return pr.Split.Validate()
	case StageFilter:
		if pr.Expr == "" {
			return fmt.Errorf("%w: filter needs an expression", numseq.ErrConfiguration)
		}
	case StageInterpolate:
		if pr.With == "" {
			return fmt.Errorf("%w: interpolate needs a sequence to blend with", numseq.ErrConfiguration)
		}
		if pr.N < 1 {
			return fmt.Errorf("%w: interpolate needs at least one step, got %d", numseq.ErrConfiguration, pr.N)
		}
		if pr.HasCurve && !(pr.Curve > 0) {
			return fmt.Errorf("%w: interpolation curve must be positive, got %g", numseq.ErrConfiguration, pr.Curve)
		}
	case StageRepeat, StagePad, StageSample:
		if pr.N < 0 {
			return fmt.Errorf("%w: count must be non-negative, got %d", numseq.ErrConfiguration, pr.N)
		}
	case StageInterleave:
		if pr.N < 1 {
			return fmt.Errorf("%w: interleave step must be positive, got %d", numseq.ErrConfiguration, pr.N)
		}
	}
	return nil
}

// Stages returns the stage specs.
func (p *Pipeline) Stages() []StageSpec {
	return slices.Clone(p.stages)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Run applies every stage to env in order. It stops at the first failing
// stage; earlier stages stay applied.
func (p *Pipeline) Run(env *Env) error {
	for i, spec := range p.stages {
		log := p.log.WithFields(logrus.Fields{
			"stage":  i,
			"type":   spec.Type.String(),
			"target": spec.Target,
		})
		if spec.Into != "" {
			log = log.WithField("into", spec.Into)
		}
		log.Debug("applying stage")

		if err := runStage(env, i, spec); err != nil {
			return fmt.Errorf("stage %d (%s): %w", i, spec.Type, err)
		}
	}
	return nil
}
