// Package bkz implements the Block Korkine-Zolotarev driver and
// Schnorr-Euchner enumerator of spec.md §4.3. It wraps repeated calls
// into package lll, threading the Gram-Schmidt data of each LLL
// Result back in as the enumerator's state.
package bkz

import (
	"fmt"

	"github.com/lattice-labs/lllbkz/lll"
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// ReduceBKZ runs BKZ reduction on b with the given block size and
// Params, per spec.md §4.3's public contract.
func ReduceBKZ(b *matrix.Matrix, blockSize int, params lll.Params) (lll.Result, error) {
	if blockSize < 2 {
		return lll.Result{}, fmt.Errorf("%w: got %d", ErrInvalidBlockSize, blockSize)
	}

	res, err := lll.Reduce(b, params)
	if err != nil {
		return lll.Result{}, err
	}

	n, _ := res.ReducedBasis().Dims()
	if n < 2 {
		return res, nil
	}

	z, j := 0, 0
	for z < n-1 {
		j = (j % (n - 1)) + 1
		k := min(j+blockSize-1, n)
		h := min(k+1, n)

		v := enumerate(j-1, k-1, n, res.GramSchmidtSizes(), res.GramSchmidtCoefficients())

		if passvec(v, j-1, n) {
			z++
			res, err = lll.Reduce(res.ReducedBasis(), params)
			if err != nil {
				return lll.Result{}, err
			}
			n, _ = res.ReducedBasis().Dims()
			continue
		}

		z = 0
		current := res.ReducedBasis()
		_, m := current.Dims()

		w := matrix.NewVector(m)
		for s := j - 1; s <= k-1; s++ {
			coeff := rational.FromBigInt(v[s])
			if coeff.IsZero() {
				continue
			}
			w.AddEq(current.Row(s).Scale(coeff))
		}

		aug := matrix.NewDense(h+1, m)
		row := 0
		for i := 0; i <= j-2; i++ {
			aug.SetRow(row, current.Row(i))
			row++
		}
		aug.SetRow(row, w)
		row++
		for i := j - 1; i <= h-1; i++ {
			aug.SetRow(row, current.Row(i))
			row++
		}

		// aug spans only rows [0, h) of the current basis plus the
		// dependent vector w; lll.Reduce trims w back out and leaves the
		// reduced span of those h rows. Rows [h, n) were never part of
		// aug and must be spliced back in verbatim, then the combined
		// n-row basis re-reduced to refresh the Gram-Schmidt state the
		// next outer iteration reads.
		blockRes, err := lll.Reduce(aug, params)
		if err != nil {
			return lll.Result{}, err
		}
		block := blockRes.ReducedBasis()
		hb, _ := block.Dims()

		combined := matrix.NewDense(hb+(n-h), m)
		for i := 0; i < hb; i++ {
			combined.SetRow(i, block.Row(i))
		}
		for i := h; i < n; i++ {
			combined.SetRow(hb+(i-h), current.Row(i))
		}

		res, err = lll.Reduce(combined, params)
		if err != nil {
			return lll.Result{}, err
		}
		n, _ = res.ReducedBasis().Dims()
	}

	return res, nil
}
