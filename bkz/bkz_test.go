package bkz

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/lllbkz/lll"
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

func defaultParams() lll.Params {
	return lll.NewParams(lll.WithDelta(rational.FromInts(3, 4)))
}

func assertSizeReduced(t *testing.T, res lll.Result) {
	t.Helper()
	mu := res.GramSchmidtCoefficients()
	n, _ := mu.Dims()
	half := rational.Half()
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			assert.True(t, mu.At(i, j).Abs().Cmp(half) <= 0,
				"mu[%d][%d] = %s exceeds 1/2", i, j, mu.At(i, j))
		}
	}
}

func assertLovasz(t *testing.T, res lll.Result, delta rational.Rational) {
	t.Helper()
	mu := res.GramSchmidtCoefficients()
	sizes := res.GramSchmidtSizes()
	for i := 1; i < len(sizes); i++ {
		muII1 := mu.At(i, i-1)
		threshold := delta.Sub(muII1.Mul(muII1)).Mul(sizes[i-1])
		assert.True(t, sizes[i].Cmp(threshold) >= 0,
			"Lovász condition fails at i=%d", i)
	}
}

// q-ary lattice: rows 0..m-1 are q*e_i, rows m..m+n-1 are [a_i | e_i].
// Small, deterministic, and has a short vector hidden in the A block
// once reduced, the classic "BKZ improves LLL" scenario of spec.md §8
// scenario 5, scaled down for a fast exact-rational test.
func smallQaryBasis() *matrix.Matrix {
	a := [][]int64{
		{2, 5},
		{4, 1},
	}
	q := int64(11)
	m := len(a)
	n := len(a[0])
	size := m + n
	rows := make([][]int64, size)
	for i := 0; i < size; i++ {
		rows[i] = make([]int64, size)
	}
	for i := 0; i < m; i++ {
		rows[i][i] = q
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rows[m+j][i] = a[i][j]
		}
	}
	for i := 0; i < n; i++ {
		rows[m+i][m+i] = 1
	}
	return matrix.NewDenseFromInts(rows)
}

// Same q-ary shape as smallQaryBasis but large enough (n=6) that a
// block size of 3 gives h = min(j+blockSize, n) < n for most outer
// iterations (e.g. j=1: k=3, h=4<6) — the window-splice path that
// smallQaryBasis's 4x4/β=3 case never reaches, since there h==n==4 on
// every iteration.
func biggerQaryBasis() *matrix.Matrix {
	a := [][]int64{
		{2, 5, 3},
		{4, 1, 6},
		{3, 2, 1},
	}
	q := int64(11)
	m := len(a)
	n := len(a[0])
	size := m + n
	rows := make([][]int64, size)
	for i := 0; i < size; i++ {
		rows[i] = make([]int64, size)
	}
	for i := 0; i < m; i++ {
		rows[i][i] = q
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			rows[m+j][i] = a[i][j]
		}
	}
	for i := 0; i < n; i++ {
		rows[m+i][m+i] = 1
	}
	return matrix.NewDenseFromInts(rows)
}

func TestReduceBKZInvalidBlockSize(t *testing.T) {
	b := matrix.Identity(3)
	_, err := ReduceBKZ(b, 1, defaultParams())
	require.Error(t, err)
}

func TestReduceBKZSubsumesLLL(t *testing.T) {
	b := smallQaryBasis()
	params := defaultParams()

	bkzRes, err := ReduceBKZ(b, 3, params)
	require.NoError(t, err)

	assertSizeReduced(t, bkzRes)
	assertLovasz(t, bkzRes, params.Delta())
}

func TestReduceBKZAtLeastAsGoodAsLLL(t *testing.T) {
	b := smallQaryBasis()
	params := defaultParams()

	lllRes, err := lll.Reduce(b, params)
	require.NoError(t, err)
	lllFirst := lllRes.GramSchmidtSizes()[0]

	bkzRes, err := ReduceBKZ(b, 3, params)
	require.NoError(t, err)
	bkzFirst := bkzRes.GramSchmidtSizes()[0]

	assert.True(t, bkzFirst.Cmp(lllFirst) <= 0,
		"BKZ first GS norm %s should be <= LLL first GS norm %s", bkzFirst, lllFirst)
}

// Regression test for the block-window splice: when the augmented
// block [0, h) is a strict prefix of the full n-row basis, the rows
// [h, n) must survive untouched in the result instead of being
// dropped along with the trimmed dependent vector w.
func TestReduceBKZPreservesRankWhenBlockWindowSmallerThanBasis(t *testing.T) {
	b := biggerQaryBasis()
	nBefore, _ := b.Dims()
	params := defaultParams()

	res, err := ReduceBKZ(b, 3, params)
	require.NoError(t, err)

	nAfter, _ := res.ReducedBasis().Dims()
	assert.Equal(t, nBefore, nAfter,
		"BKZ dropped rows: block window h < n must be spliced back over the full basis, not replace it")
	assert.Equal(t, 0, res.NumDependentVectors())
	assert.Equal(t, nBefore, len(res.GramSchmidtSizes()))

	assertSizeReduced(t, res)
	assertLovasz(t, res, params.Delta())
}

func TestPassvec(t *testing.T) {
	ok := passvec(asBig([]int64{0, 1, 0, 0}), 1, 4)
	assert.True(t, ok)
	notOk := passvec(asBig([]int64{0, 1, 1, 0}), 1, 4)
	assert.False(t, notOk)
}

func asBig(xs []int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}
