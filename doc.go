// Package numseq provides an aligned numeric-sequence algebra for algorithmic
// music composition.
//
// A [Sequence] holds an ordered list of float64 values (pitch numbers, duration
// ratios, velocities...) together with the baseline it was created from. All
// operations read and write the sequence's current values; [Sequence.Reset]
// restores the baseline at any time.
//
// # Features
//
//   - Broadcasting arithmetic: operands of different length are padded with the
//     operator's identity (0 for add/subtract, 1 for everything else)
//   - Pure and in-place method families for every operator
//   - Structural edits: invert, scale, clip, rotate, splice, dedupe, filter
//   - Positional sampling with wrap, fold, clip and random policies
//   - Splitting by index or value and curved interpolation between sequences
//   - Optional SIMD acceleration via github.com/tphakala/simd
//
// # Quick Start
//
//	s := numseq.New([]float64{60, 62, 64, 65}, 0)
//
//	// Pure: returns a new sequence
//	up, err := s.Add(numseq.Scalar(12))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// In-place: mutates s and returns it
//	if _, err := s.MulInPlace(numseq.Values(1, 2)); err != nil {
//	    log.Fatal(err)
//	}
//	// s.Values() == [60 124 64 65], up.Values() == [72 74 76 77]
//
// # Broadcasting
//
// When both operands are collections, the shorter one is right-padded before
// the element-wise operation:
//
//	[1 2 3 4] + [10 20]  ->  [11 22 3 4]    (padded with 0)
//	[1 2 3 4] * [10 20]  ->  [10 40 3 4]    (padded with 1)
//
// Division by zero and other invalid floating point operations never fail; they
// produce IEEE infinities and NaN.
//
// # Errors
//
// Every failure is reported with one of the sentinel errors ([ErrConfiguration],
// [ErrTypeMismatch], [ErrIndexType], [ErrIndexRange], [ErrSampling],
// [ErrShapeMismatch]) and can be matched with errors.Is. Arguments are validated
// before any state changes, so a failed in-place operation leaves the sequence
// untouched.
//
// # Concurrency
//
// A Sequence is not safe for concurrent mutation. Use [Sequence.Copy] to hand an
// independent duplicate to another goroutine.
package numseq
