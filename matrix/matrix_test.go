package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/lllbkz/rational"
)

func TestIdentityAndDims(t *testing.T) {
	m := Identity(3)
	rows, cols := m.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := rational.Zero()
			if i == j {
				want = rational.One()
			}
			assert.True(t, m.At(i, j).Equal(want), "m[%d][%d]", i, j)
		}
	}
}

func TestRowOpsAndSwap(t *testing.T) {
	m := NewDenseFromInts([][]int64{{1, 2}, {3, 4}})
	m.SwapRows(0, 1)
	assert.True(t, m.At(0, 0).Equal(rational.FromInt64(3)))
	assert.True(t, m.At(1, 0).Equal(rational.FromInt64(1)))
}

func TestVectorDotAndNorm(t *testing.T) {
	v := VectorFromSlice([]rational.Rational{rational.FromInt64(3), rational.FromInt64(4)})
	assert.True(t, v.SqNorm().Equal(rational.FromInt64(25)))
	w := v.Scale(rational.FromInt64(2))
	assert.True(t, w.At(0).Equal(rational.FromInt64(6)))
}

func TestSubmatrixIsIndependentCopy(t *testing.T) {
	m := NewDenseFromInts([][]int64{{1, 2, 3}, {4, 5, 6}})
	sub := m.Submatrix(0, 2, 1, 3)
	sub.Set(0, 0, rational.FromInt64(99))
	assert.True(t, m.At(0, 1).Equal(rational.FromInt64(2)), "submatrix mutation must not alias parent")
}
