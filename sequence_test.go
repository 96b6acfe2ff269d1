package numseq

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesOffset(t *testing.T) {
	s := New([]float64{1, 2, 3}, 10)

	assert.Equal(t, []float64{11, 12, 13}, s.Values())
	assert.Equal(t, []float64{11, 12, 13}, s.Original())
	assert.Equal(t, 10.0, s.Offset())
	assert.Equal(t, 3, s.Len())
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := []float64{1, 2, 3}
	s := New(in, 0)
	in[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestValues_ReturnsCopy(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)
	v := s.Values()
	v[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, s.Values())
}

func TestReset_RestoresOriginal(t *testing.T) {
	s := New([]float64{1, 2, 3, 4}, 0)

	_, err := s.AddInPlace(Scalar(10))
	require.NoError(t, err)
	require.NoError(t, s.Repeat(3))
	s.Reverse().Rotate(2).Clip(0, 20)
	require.NoError(t, s.Remove(ByIndex(0, 1)))
	require.NoError(t, s.Unique(UniqueConsecutive))

	s.Reset()
	assert.Equal(t, s.Original(), s.Values())
}

func TestCopy_IsIndependent(t *testing.T) {
	s := New([]float64{1, 2, 3}, 5)
	c := s.Copy()

	_, err := c.MulInPlace(Scalar(2))
	require.NoError(t, err)
	require.NoError(t, c.Append(Scalar(100)))
	c.Shift(1)

	assert.Equal(t, []float64{6, 7, 8}, s.Values())
	assert.Equal(t, []float64{6, 7, 8}, s.Original())
	assert.Equal(t, 5.0, s.Offset())
	assert.Equal(t, 1.0, c.Offset())
	assert.Equal(t, []float64{13, 15, 17, 101}, c.Values())
}

func TestShift_KeepsOriginal(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)
	s.Shift(12)

	assert.Equal(t, []float64{13, 14, 15}, s.Values())
	assert.Equal(t, []float64{1, 2, 3}, s.Original())
	assert.Equal(t, 12.0, s.Offset())
}

func TestIter_ReflectsCurrentState(t *testing.T) {
	s := New([]float64{1, 2, 3}, 0)
	it := s.Iter()

	assert.Equal(t, []float64{1, 2, 3}, slices.Collect(it))

	require.NoError(t, s.Append(Values(4, 5)))
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, slices.Collect(it))
}

func TestAll_StopsEarly(t *testing.T) {
	s := New([]float64{10, 20, 30}, 0)

	var got []int
	for i, v := range s.All() {
		if v > 20 {
			break
		}
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 1}, got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Sequence[60 62.5 -1]", New([]float64{60, 62.5, -1}, 0).String())
	assert.Equal(t, "Sequence[]", New(nil, 0).String())
}

func TestIndexAccess(t *testing.T) {
	s := New([]float64{10, 20, 30, 40, 50}, 0)

	v, err := s.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	_, err = s.At(5)
	require.ErrorIs(t, err, ErrIndexRange)

	_, err = s.At(-9)
	require.ErrorIs(t, err, ErrIndexRange)
	assert.Contains(t, err.Error(), "index -9 with length 5")

	require.NoError(t, s.Set(0, 11))
	require.ErrorIs(t, s.Set(-6, 0), ErrIndexRange)

	part, err := s.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30}, part)

	_, err = s.Slice(3, 1)
	require.ErrorIs(t, err, ErrIndexRange)

	assert.Equal(t, []float64{11, 20, 30, 40, 50}, s.Values())
}

func TestGetPut(t *testing.T) {
	s := New([]float64{1, 2, 3, 4}, 0)

	got, err := s.Get(Position(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, got)

	got, err = s.Get(Span(0, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	_, err = s.Get(Index{})
	require.ErrorIs(t, err, ErrIndexType)
	require.ErrorIs(t, s.Put(Index{}, Scalar(1)), ErrIndexType)

	require.NoError(t, s.Put(Span(1, 3), Scalar(0)))
	assert.Equal(t, []float64{1, 0, 0, 4}, s.Values())

	require.NoError(t, s.Put(Span(2, 4), Values(7, 8)))
	assert.Equal(t, []float64{1, 0, 7, 8}, s.Values())

	require.NoError(t, s.Put(Position(-1), Scalar(9)))
	assert.Equal(t, []float64{1, 0, 7, 9}, s.Values())

	err = s.Put(Span(0, 3), Values(1, 2))
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float64{1, 0, 7, 9}, s.Values(), "failed assignment must not modify")

	require.ErrorIs(t, s.Put(Span(0, 1), Operand{}), ErrTypeMismatch)
}
