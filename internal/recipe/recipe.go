// Package recipe loads YAML recipes describing named sequences and the chain
// of operations applied to them.
//
// A recipe looks like:
//
//	name: arpeggio
//	seed: 7
//	sequences:
//	  melody: {values: [0, 4, 7], offset: 60}
//	  tonic:  {scale: {model: major, root: 60}}
//	steps:
//	  - {op: add, target: melody, operand: 12}
//	  - {op: sample, target: tonic, into: line, n: 8, mode: fold}
//
// Operator names (add, sub, mul, div, floordiv, pow, mod) become apply
// stages; every other op names a pipeline stage.
package recipe

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tphakala/go-numseq"
	"github.com/tphakala/go-numseq/internal/pipeline"
	"github.com/tphakala/go-numseq/pitch"
)

var recipeValidate = validator.New()

// Recipe is the root document.
type Recipe struct {
	Name string `yaml:"name" validate:"required"`

	// Seed makes random stages reproducible. Unset draws from the global
	// generator.
	Seed *uint64 `yaml:"seed"`

	// Models adds scale models usable by name in sequence definitions. They
	// shadow the presets.
	Models []pitch.Model `yaml:"models" validate:"dive"`

	Sequences map[string]SequenceDef `yaml:"sequences" validate:"required,min=1,dive"`
	Steps     []Step                 `yaml:"steps" validate:"required,min=1,dive"`
}

// SequenceDef defines one named sequence. Exactly one of Values, Scale and
// Chord must be set.
type SequenceDef struct {
	Values []float64 `yaml:"values"`
	Offset float64   `yaml:"offset"`
	Scale  *ScaleDef `yaml:"scale"`
	Chord  *ChordDef `yaml:"chord"`
}

// ScaleDef builds one octave of a scale model.
type ScaleDef struct {
	Model string  `yaml:"model" validate:"required"`
	Root  float64 `yaml:"root"`
}

// ChordDef builds the triad on a scale degree (0-based).
type ChordDef struct {
	Model  string  `yaml:"model" validate:"required"`
	Root   float64 `yaml:"root"`
	Degree int     `yaml:"degree" validate:"gte=0"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op     string `yaml:"op" validate:"required"`
	Target string `yaml:"target" validate:"required"`
	Into   string `yaml:"into"`

	// Operand is a number or a list of numbers. With names another sequence
	// to use instead.
	Operand  any    `yaml:"operand"`
	With     string `yaml:"with"`
	Reversed bool   `yaml:"reversed"`

	// N is a count, position, step or number of decimals. It must be
	// integral.
	N *float64 `yaml:"n"`

	Min   *float64 `yaml:"min"`
	Max   *float64 `yaml:"max"`
	Value *float64 `yaml:"value"`

	Order string `yaml:"order" validate:"omitempty,oneof=ascending descending shuffle"`
	Mode  string `yaml:"mode"`
	Expr  string `yaml:"expr"`

	Indices []int     `yaml:"indices"`
	Values  []float64 `yaml:"values"`

	Window        []int    `yaml:"window" validate:"omitempty,len=2,dive,gte=0"`
	KeepSeparator bool     `yaml:"keep_separator"`
	Side          string   `yaml:"side" validate:"omitempty,oneof=after before"`
	Curve         *float64 `yaml:"curve" validate:"omitempty,gt=0"`
}

// Load decodes and validates a recipe. Unknown fields are rejected.
func Load(r io.Reader) (*Recipe, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rec Recipe
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: decode recipe: %w", numseq.ErrConfiguration, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadFile loads the recipe at path.
func LoadFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipe: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the struct tags and the cross-field rules tags cannot
// express.
func (r *Recipe) Validate() error {
	if err := recipeValidate.Struct(r); err != nil {
		return fmt.Errorf("%w: recipe: %w", numseq.ErrConfiguration, err)
	}
	for i := range r.Models {
		if err := r.Models[i].Validate(); err != nil {
			return err
		}
	}
	for name, def := range r.Sequences {
		if name == "" {
			return fmt.Errorf("%w: sequence with empty name", numseq.ErrConfiguration)
		}
		set := 0
		for _, ok := range []bool{def.Values != nil, def.Scale != nil, def.Chord != nil} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("%w: sequence %q must set exactly one of values, scale or chord", numseq.ErrConfiguration, name)
		}
	}
	return nil
}

// model resolves a scale model by name, recipe models first.
func (r *Recipe) model(name string) (pitch.Model, error) {
	for _, m := range r.Models {
		if m.Name == name {
			return m, nil
		}
	}
	return pitch.Lookup(name)
}

// Env builds the environment holding every defined sequence.
func (r *Recipe) Env() (*pipeline.Env, error) {
	var src rand.Source
	if r.Seed != nil {
		src = rand.NewPCG(*r.Seed, *r.Seed)
	}
	env := pipeline.NewEnv(src)

	for name, def := range r.Sequences {
		seq, err := r.build(def)
		if err != nil {
			return nil, fmt.Errorf("sequence %q: %w", name, err)
		}
		env.Sequences[name] = seq
	}
	return env, nil
}

func (r *Recipe) build(def SequenceDef) (*numseq.Sequence, error) {
	switch {
	case def.Scale != nil:
		m, err := r.model(def.Scale.Model)
		if err != nil {
			return nil, err
		}
		s, err := pitch.NewScale(m, def.Scale.Root)
		if err != nil {
			return nil, err
		}
		return s.Sequence, nil
	case def.Chord != nil:
		m, err := r.model(def.Chord.Model)
		if err != nil {
			return nil, err
		}
		c, err := pitch.ChordOn(m, def.Chord.Root, def.Chord.Degree)
		if err != nil {
			return nil, err
		}
		return c.Sequence, nil
	default:
		return numseq.New(def.Values, def.Offset), nil
	}
}

// Stages converts the steps into pipeline stage specs.
func (r *Recipe) Stages() ([]pipeline.StageSpec, error) {
	specs := make([]pipeline.StageSpec, 0, len(r.Steps))
	for i, st := range r.Steps {
		spec, err := st.stage()
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Pipeline converts the steps and builds the pipeline.
func (r *Recipe) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	specs, err := r.Stages()
	if err != nil {
		return nil, err
	}
	return pipeline.BuildPipeline(specs, opts...)
}

func (s Step) stage() (pipeline.StageSpec, error) {
	spec := pipeline.StageSpec{Target: s.Target, Into: s.Into}
	pr := &spec.Params

	if op, err := numseq.ParseOp(s.Op); err == nil {
		spec.Type = pipeline.StageApply
		pr.Op = op
	} else {
		t, err := pipeline.ParseStageType(s.Op)
		if err != nil {
			return spec, err
		}
		if t == pipeline.StageApply {
			return spec, fmt.Errorf("%w: name the operator (add, sub, ...) instead of apply", numseq.ErrConfiguration)
		}
		spec.Type = t
	}

	n, err := integral("n", s.N)
	if err != nil {
		return spec, err
	}
	pr.N = n
	pr.With = s.With
	pr.Reversed = s.Reversed
	pr.Expr = s.Expr
	if s.Operand != nil {
		if pr.Operand, err = numseq.OperandFrom(s.Operand); err != nil {
			return spec, err
		}
	}
	if s.Min != nil {
		pr.Min = *s.Min
	}
	if s.Max != nil {
		pr.Max = *s.Max
	}
	if s.Value != nil {
		pr.Value, pr.HasValue = *s.Value, true
	}
	if s.Curve != nil {
		pr.Curve, pr.HasCurve = *s.Curve, true
	}
	if len(s.Indices) > 0 || len(s.Values) > 0 {
		pr.Selection = numseq.Selection{Indices: s.Indices, Values: s.Values}
	}

	switch spec.Type {
	case pipeline.StageSort:
		if s.Order != "" {
			if pr.Sort, err = numseq.ParseSortOrder(s.Order); err != nil {
				return spec, err
			}
		}
	case pipeline.StageUnique:
		if s.Mode != "" {
			if pr.Unique, err = numseq.ParseUniqueMode(s.Mode); err != nil {
				return spec, err
			}
		}
	case pipeline.StageSample:
		if s.Mode != "" {
			if pr.Mode, err = numseq.ParseSampleMode(s.Mode); err != nil {
				return spec, err
			}
		}
		if len(s.Window) == 2 {
			pr.HasWindow = true
			pr.Start, pr.End = s.Window[0], s.Window[1]
		}
	case pipeline.StageSplit:
		pr.Split = numseq.SplitOptions{Selection: pr.Selection, KeepSeparator: s.KeepSeparator}
		if s.Side == "before" {
			pr.Split.Side = numseq.SideBefore
		}
	}
	return spec, nil
}

// integral converts an optional YAML number to int, rejecting fractions.
func integral(field string, v *float64) (int, error) {
	if v == nil {
		return 0, nil
	}
	if *v != math.Trunc(*v) || math.IsInf(*v, 0) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %g", numseq.ErrTypeMismatch, field, *v)
	}
	return int(*v), nil
}
