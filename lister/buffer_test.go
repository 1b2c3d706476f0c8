package lister

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/flist/flerrors"
)

func TestResultBuffer_GrowsToLimit(t *testing.T) {
	buf := newResultBuffer(5)
	for i := range 5 {
		require.NoError(t, buf.append(strconv.Itoa(i)))
	}
	err := buf.append("overflow")
	require.Error(t, err)
	assert.ErrorIs(t, err, flerrors.ErrSizeLimit)

	var limitErr *flerrors.LimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 5, limitErr.Limit)

	// The collected entries survive the failed append.
	assert.Equal(t, 5, buf.len())
}

func TestResultBuffer_DoublingSaturates(t *testing.T) {
	// A limit just above a doubling boundary: growth goes 3 -> 6 -> 7,
	// not 3 -> 6 -> 12.
	buf := newResultBuffer(7)
	buf.entries = make([]string, 0, 3)
	for i := range 7 {
		require.NoError(t, buf.append(strconv.Itoa(i)))
	}
	assert.Equal(t, 7, cap(buf.entries))
	assert.ErrorIs(t, buf.append("x"), flerrors.ErrSizeLimit)
}

func TestResultBuffer_FinalizeExactLength(t *testing.T) {
	buf := newResultBuffer(DefaultMaxSize)
	require.NoError(t, buf.append("a"))
	require.NoError(t, buf.append("b"))

	out := buf.finalize()
	assert.Equal(t, []string{"a", "b"}, out)
	assert.Equal(t, len(out), cap(out))
}

func TestResultBuffer_InitialCapacityClamped(t *testing.T) {
	buf := newResultBuffer(2)
	assert.Equal(t, 2, cap(buf.entries))
}
