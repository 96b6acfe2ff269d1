package numseq

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// SampleMode selects the indexing policy used by Sample.
type SampleMode int

const (
	// SampleUniform draws uniformly with replacement from all current values.
	// The window is validated but otherwise ignored.
	SampleUniform SampleMode = iota

	// SampleWrap cycles through the window: output i is the value at
	// start + i mod (end - start + 1).
	SampleWrap

	// SampleFold walks the window back and forth, starting at start and
	// turning around whenever the walk reaches start or end.
	SampleFold

	// SampleClip walks forward from start and holds the value at end once
	// the walk reaches it.
	SampleClip

	// SampleRand draws uniformly with replacement from the window.
	SampleRand

	// SampleRandNoReplace draws uniformly without replacement from the window.
	// Requesting more values than the window holds fails with ErrSampling.
	SampleRandNoReplace
)

var sampleModeNames = [...]string{"uniform", "wrap", "fold", "clip", "rand", "randnoreplace"}

// String returns the lower-case mode name.
func (m SampleMode) String() string {
	if m < 0 || int(m) >= len(sampleModeNames) {
		return fmt.Sprintf("SampleMode(%d)", int(m))
	}
	return sampleModeNames[m]
}

// ParseSampleMode maps a mode name (as returned by String) to a SampleMode.
func ParseSampleMode(name string) (SampleMode, error) {
	for i, n := range sampleModeNames {
		if n == name {
			return SampleMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown sample mode %q", ErrConfiguration, name)
}

// Option configures Sample and Sort.
type Option func(*options)

type options struct {
	hasWindow  bool
	start, end int
	src        rand.Source
}

// WithWindow restricts sampling to the inclusive index range [start, end].
// The default window covers the whole sequence.
func WithWindow(start, end int) Option {
	return func(o *options) {
		o.hasWindow = true
		o.start, o.end = start, end
	}
}

// WithSource sets the random source used by the random modes and by Shuffle.
// Two calls with sources in the same state produce the same output.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func applyOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// rng returns a generator drawing from the configured source, or nil for the
// global generator.
func (o *options) rng() *rand.Rand {
	if o.src == nil {
		return nil
	}
	return rand.New(o.src)
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}
	return r.IntN(n)
}

// Sample generates length values drawn from the current values according to
// mode. See SampleMode for the policies.
func (s *Sequence) Sample(length int, mode SampleMode, opts ...Option) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: sample length must be non-negative, got %d", ErrConfiguration, length)
	}
	if mode < SampleUniform || mode > SampleRandNoReplace {
		return nil, fmt.Errorf("%w: unknown sample mode %d", ErrConfiguration, int(mode))
	}
	if err := checkLength(length); err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	n := len(s.current)
	start, end := 0, n-1
	if o.hasWindow {
		start, end = o.start, o.end
	}
	if length == 0 {
		return []float64{}, nil
	}
	if start < 0 || end >= n || start > end {
		return nil, fmt.Errorf("%w: window [%d, %d] with length %d", ErrIndexRange, start, end, n)
	}

	size := end - start + 1
	out := make([]float64, length)
	vals := s.current

	switch mode {
	case SampleUniform:
		r := o.rng()
		for i := range out {
			out[i] = vals[intN(r, n)]
		}

	case SampleWrap:
		for i := range out {
			out[i] = vals[start+i%size]
		}

	case SampleFold:
		if size < minFoldWindow {
			for i := range out {
				out[i] = vals[start]
			}
			break
		}
		idx, dir := start, 1
		for i := range out {
			out[i] = vals[idx]
			idx += dir
			if idx == end || idx == start {
				dir = -dir
			}
		}

	case SampleClip:
		for i := range out {
			out[i] = vals[min(start+i, end)]
		}

	case SampleRand:
		r := o.rng()
		for i := range out {
			out[i] = vals[start+intN(r, size)]
		}

	case SampleRandNoReplace:
		if length > size {
			return nil, fmt.Errorf("%w: %d values requested from a window of %d", ErrSampling, length, size)
		}
		idxs := make([]int, length)
		sampleuv.WithoutReplacement(idxs, size, o.src)
		// Draw order is not guaranteed to be random; shuffle so output order is.
		o.shuffle(len(idxs), func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})
		for i, k := range idxs {
			out[i] = vals[start+k]
		}
	}

	return out, nil
}
