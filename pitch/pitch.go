// Package pitch layers pitch semantics over numseq sequences: intervals,
// MIDI note number to frequency conversion, and scale models.
//
// Pitches are MIDI-style note numbers where 60 is middle C and 69 is A4.
// Values need not be integral; 60.5 is a quarter tone above middle C.
package pitch

import (
	"fmt"
	"math"

	"github.com/tphakala/go-numseq"
)

// Tuning reference.
const (
	// DefaultA4 is the concert pitch of A4 in Hz.
	DefaultA4 = 440.0

	// A4Note is the note number of A4.
	A4Note = 69.0

	// SemitonesPerOctave is the number of equal-tempered steps in an octave.
	SemitonesPerOctave = 12.0
)

// Set is a sequence whose values are note numbers.
type Set struct {
	*numseq.Sequence
}

// New creates a pitch set from note numbers, adding offset to each.
func New(notes []float64, offset float64) *Set {
	return &Set{Sequence: numseq.New(notes, offset)}
}

// Wrap views an existing sequence as a pitch set. The sequence is shared, not
// copied.
func Wrap(seq *numseq.Sequence) *Set {
	return &Set{Sequence: seq}
}

// Intervals returns the semitone distance between consecutive pitches.
func (p *Set) Intervals() []float64 {
	return p.Deltas()
}

// IntervalsFrom returns the semitone distance of every pitch from ref.
func (p *Set) IntervalsFrom(ref float64) []float64 {
	out := p.Values()
	for i := range out {
		out[i] -= ref
	}
	return out
}

// Transposed returns a new set moved by semitones.
func (p *Set) Transposed(semitones float64) *Set {
	// Scalar operands never fail.
	seq, _ := p.Add(numseq.Scalar(semitones))
	return Wrap(seq)
}

// Frequencies converts the pitches to Hz relative to a4.
func (p *Set) Frequencies(a4 float64) []float64 {
	out := p.Values()
	for i, n := range out {
		out[i] = NoteToFrequency(n, a4)
	}
	return out
}

// FromFrequencies builds a pitch set from frequencies in Hz relative to a4.
// Every frequency and a4 must be positive.
func FromFrequencies(freqs []float64, a4 float64) (*Set, error) {
	if !(a4 > 0) {
		return nil, fmt.Errorf("%w: reference frequency must be positive, got %g", numseq.ErrConfiguration, a4)
	}
	notes := make([]float64, len(freqs))
	for i, f := range freqs {
		if !(f > 0) {
			return nil, fmt.Errorf("%w: frequency %d must be positive, got %g", numseq.ErrConfiguration, i, f)
		}
		notes[i] = FrequencyToNote(f, a4)
	}
	return New(notes, 0), nil
}

// NoteToFrequency converts a note number to Hz.
func NoteToFrequency(note, a4 float64) float64 {
	return a4 * math.Exp2((note-A4Note)/SemitonesPerOctave)
}

// FrequencyToNote converts Hz to a (possibly fractional) note number.
func FrequencyToNote(freq, a4 float64) float64 {
	return A4Note + SemitonesPerOctave*math.Log2(freq/a4)
}
