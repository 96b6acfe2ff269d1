package numseq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)

	r, err := s.Repeated(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, r.Values())
	assert.Equal(t, []float64{1, 2, 3}, s.Values())

	require.NoError(t, s.Repeat(3))
	assert.Len(t, s.Values(), 9)

	require.NoError(t, s.Repeat(0))
	assert.Empty(t, s.Values())
}

func TestRepeat_NegativeCount(t *testing.T) {
	s := New([]float64{1, 2}, 0)

	_, err := s.Repeated(-1)
	require.ErrorIs(t, err, ErrConfiguration)

	require.ErrorIs(t, s.Repeat(-2), ErrConfiguration)
	assert.Equal(t, []float64{1, 2}, s.Values())
}

func TestRepeatAndPad_HugeCounts(t *testing.T) {
	s := New([]float64{1, 2}, 0)

	require.ErrorIs(t, s.Repeat(math.MaxInt/2), ErrConfiguration)
	_, err := s.Repeated(math.MaxInt)
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, s.Pad(math.MaxInt, 0), ErrConfiguration)
	assert.Equal(t, []float64{1, 2}, s.Values())

	empty := New(nil, 0)
	require.NoError(t, empty.Repeat(math.MaxInt))
	assert.Empty(t, empty.Values())
}

func TestConcat(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)
	other := New([]float64{7, 8}, 0)

	got, err := s.Concatenated(Values(4, 5))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got.Values())

	require.NoError(t, s.Concat(Scalar(4)))
	require.NoError(t, s.Concat(Of(other)))
	require.NoError(t, s.Append(Values(9)))
	assert.Equal(t, []float64{1, 2, 3, 4, 7, 8, 9}, s.Values())

	require.ErrorIs(t, s.Concat(Operand{}), ErrTypeMismatch)
}

func TestInsert(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)

	require.NoError(t, s.Insert(1, Values(10, 11)))
	assert.Equal(t, []float64{1, 10, 11, 2, 3}, s.Values())

	require.NoError(t, s.Insert(5, Scalar(99)))
	assert.Equal(t, []float64{1, 10, 11, 2, 3, 99}, s.Values())

	require.NoError(t, s.Insert(0, Scalar(0)))
	assert.Equal(t, 0.0, s.Values()[0])

	require.ErrorIs(t, s.Insert(8, Scalar(1)), ErrIndexRange)
	require.ErrorIs(t, s.Insert(-1, Scalar(1)), ErrIndexRange)
}

func TestInsert_Self(t *testing.T) {
	s := New([]float64{1, 2}, 0)
	require.NoError(t, s.Insert(1, Of(s)))
	assert.Equal(t, []float64{1, 1, 2, 2}, s.Values())
}

func TestPad(t *testing.T) {
	s := New([]float64{1}, 0)

	require.NoError(t, s.Pad(3, -1))
	assert.Equal(t, []float64{1, -1, -1, -1}, s.Values())

	require.NoError(t, s.Pad(0, 5))
	assert.Len(t, s.Values(), 4)

	require.ErrorIs(t, s.Pad(-1, 0), ErrConfiguration)
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []float64
	}{
		{"single index", ByIndex(1), []float64{1, 3, 2, 1}},
		{"several indices", ByIndex(0, 4, 0), []float64{2, 3, 2}},
		{"negative index", ByIndex(-1), []float64{1, 2, 3, 2}},
		{"single value removes all", ByValue(2), []float64{1, 3, 1}},
		{"several values", ByValue(1, 3), []float64{2, 2}},
		{"missing value", ByValue(42), []float64{1, 2, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]float64{1, 2, 3, 2, 1}, 0)
			require.NoError(t, s.Remove(tt.sel))
			assert.Equal(t, tt.want, s.Values())
		})
	}
}

func TestRemove_Validation(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)

	require.ErrorIs(t, s.Remove(Selection{}), ErrConfiguration)
	require.ErrorIs(t, s.Remove(Selection{Indices: []int{0}, Values: []float64{1}}), ErrConfiguration)
	require.ErrorIs(t, s.Remove(ByIndex(0, 3)), ErrIndexRange)
	assert.Equal(t, []float64{1, 2, 3}, s.Values(), "failed remove must not partially apply")
}

func TestInterleave(t *testing.T) {
	s := New([]float64{1, 2, 3, 4}, 0)

	got, err := s.Interleave(Values(10, 20, 30), 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 2, 20, 3, 30, 4}, got.Values())

	got, err = s.Interleave(Values(10, 20, 30, 40), 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 10, 20, 3, 4, 30, 40}, got.Values())

	got, err = s.Interleave(Values(10, 20, 30, 40), 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 10, 2, 20, 3, 30, 4, 40}, got.Values())

	_, err = s.Interleave(Values(1), 0)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestInterleave_LongEqualInputs(t *testing.T) {
	a := make([]float64, 32)
	b := make([]float64, 32)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(-i)
	}

	got, err := New(a, 0).Interleave(Values(b...), 1)
	require.NoError(t, err)
	v := got.Values()
	require.Len(t, v, 64)
	for i := range a {
		assert.Equal(t, a[i], v[2*i])
		assert.Equal(t, b[i], v[2*i+1])
	}
}

func TestItemsAndIndicesOf(t *testing.T) {
	s := New([]float64{10, 20, 30, 20, 50}, 0)

	items, err := s.Items(0, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 30, 50}, items)

	_, err = s.Items(5)
	require.ErrorIs(t, err, ErrIndexRange)

	assert.Equal(t, [][]int{{1, 3}, {4}, {}}, s.IndicesOf(20, 50, 99))
}
