package pitch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tphakala/go-numseq"
)

var modelValidate = validator.New()

// Chord qualities used in Model.HarmonicQuality.
const (
	QualityMajor      = "maj"
	QualityMinor      = "min"
	QualityDiminished = "dim"
	QualityAugmented  = "aug"
)

// triadSpan is the number of scale steps between the root and fifth of a
// diatonic triad; tones sit on every second step.
const (
	triadSpan = 4
	triadStep = 2
)

// Model describes a scale: its semitone offsets from the tonic, the chord
// quality built on each degree and the tones of the tonic chord.
type Model struct {
	Name            string    `yaml:"name" validate:"required"`
	Intervals       []float64 `yaml:"intervals" validate:"required,min=1,dive,gte=0,lt=12"`
	HarmonicQuality []string  `yaml:"harmonic_quality" validate:"required,eqfield=Intervals,dive,oneof=maj min dim aug"`
	ChordTones      []float64 `yaml:"chord_tones" validate:"required,min=1,dive,gte=0"`
}

// Validate checks the struct tags and that intervals start at the tonic and
// rise strictly.
func (m *Model) Validate() error {
	if err := modelValidate.Struct(m); err != nil {
		return fmt.Errorf("%w: scale model: %w", numseq.ErrConfiguration, err)
	}
	if m.Intervals[0] != 0 {
		return fmt.Errorf("%w: scale model %q must start at 0", numseq.ErrConfiguration, m.Name)
	}
	for i := 1; i < len(m.Intervals); i++ {
		if m.Intervals[i] <= m.Intervals[i-1] {
			return fmt.Errorf("%w: scale model %q intervals must rise strictly", numseq.ErrConfiguration, m.Name)
		}
	}
	return nil
}

// Degrees returns the number of scale degrees.
func (m *Model) Degrees() int {
	return len(m.Intervals)
}

// Quality returns the chord quality on degree (0-based).
func (m *Model) Quality(degree int) (string, error) {
	if degree < 0 || degree >= len(m.HarmonicQuality) {
		return "", fmt.Errorf("%w: degree %d of %d", numseq.ErrIndexRange, degree, len(m.HarmonicQuality))
	}
	return m.HarmonicQuality[degree], nil
}

// Preset scale models.
var (
	Major = Model{
		Name:            "major",
		Intervals:       []float64{0, 2, 4, 5, 7, 9, 11},
		HarmonicQuality: []string{QualityMajor, QualityMinor, QualityMinor, QualityMajor, QualityMajor, QualityMinor, QualityDiminished},
		ChordTones:      []float64{0, 4, 7},
	}

	NaturalMinor = Model{
		Name:            "natural-minor",
		Intervals:       []float64{0, 2, 3, 5, 7, 8, 10},
		HarmonicQuality: []string{QualityMinor, QualityDiminished, QualityMajor, QualityMinor, QualityMinor, QualityMajor, QualityMajor},
		ChordTones:      []float64{0, 3, 7},
	}
)

var presets = map[string]*Model{
	"major":         &Major,
	"maj":           &Major,
	"natural-minor": &NaturalMinor,
	"minor":         &NaturalMinor,
	"minnat":        &NaturalMinor,
}

// Lookup returns a copy of the preset registered under name (case
// insensitive). Accepted names: major, maj, natural-minor, minor, minnat.
func Lookup(name string) (Model, error) {
	m, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Model{}, fmt.Errorf("%w: unknown scale model %q", numseq.ErrConfiguration, name)
	}
	return Model{
		Name:            m.Name,
		Intervals:       slices.Clone(m.Intervals),
		HarmonicQuality: slices.Clone(m.HarmonicQuality),
		ChordTones:      slices.Clone(m.ChordTones),
	}, nil
}

// NewScale builds one octave of model starting at root. The resulting set
// has offset root, so Reset and IntervalsFrom(root) recover the model.
func NewScale(model Model, root float64) (*Set, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return New(model.Intervals, root), nil
}

// Chord returns the tonic chord of model on root.
func Chord(model Model, root float64) (*Set, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return New(model.ChordTones, root), nil
}

// ChordOn returns the diatonic triad built on degree (0-based) of model
// rooted at root. Tones past the last degree continue in the next octave.
func ChordOn(model Model, root float64, degree int) (*Set, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	n := len(model.Intervals)
	if degree < 0 || degree >= n {
		return nil, fmt.Errorf("%w: degree %d of %d", numseq.ErrIndexRange, degree, n)
	}
	notes := make([]float64, 0, triadSpan/triadStep+1)
	for k := 0; k <= triadSpan; k += triadStep {
		step := degree + k
		octave := float64(step / n)
		notes = append(notes, model.Intervals[step%n]+octave*SemitonesPerOctave)
	}
	return New(notes, root), nil
}
