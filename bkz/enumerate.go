package bkz

import (
	"math/big"

	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// enumerate runs the Schnorr-Euchner deep-insertion search of
// spec.md §4.3 over block [ini, fim] (inclusive, 0-based), returning
// a length-n integer coefficient vector u with uᵢ = 0 for i outside
// [ini, fim] minimising the squared norm of sum uᵢ·Bᴳˢᵢ subject to
// the running bound cL, seeded at S[ini].
func enumerate(ini, fim, n int, sizes []rational.Rational, mu *matrix.Matrix) []*big.Int {
	size := n + 2 // generous headroom: indices up to fim+1 <= n are touched.

	uT := make([]*big.Int, size)
	v := make([]*big.Int, size)
	delta := make([]*big.Int, size)
	d := make([]int, size)
	y := make([]rational.Rational, size)
	cT := make([]rational.Rational, size)
	for i := range uT {
		uT[i] = big.NewInt(0)
		v[i] = big.NewInt(0)
		delta[i] = big.NewInt(0)
		d[i] = 1
		y[i] = rational.Zero()
		cT[i] = rational.Zero()
	}

	u := make([]*big.Int, n)
	for i := range u {
		u[i] = big.NewInt(0)
	}

	cL := sizes[ini]
	uT[ini] = big.NewInt(1)
	u[ini] = big.NewInt(1)
	y[ini] = rational.Zero()
	delta[ini] = big.NewInt(0)
	d[ini] = 1
	s := ini
	t := ini
	cT[fim+1] = rational.Zero()

	for t <= fim {
		uTt := rational.FromBigInt(uT[t])
		offset := y[t].Add(uTt)
		cT[t] = cT[t+1].Add(offset.Mul(offset).Mul(sizes[t]))

		if cT[t].Cmp(cL) < 0 {
			if t > ini {
				t--
				ySum := rational.Zero()
				for i := t + 1; i <= s; i++ {
					ySum = ySum.Add(mu.At(i, t).Mul(rational.FromBigInt(uT[i])))
				}
				y[t] = ySum

				neg := ySum.Neg()
				rounded := neg.RoundInt()
				uT[t] = new(big.Int).Set(rounded)
				v[t] = new(big.Int).Set(rounded)
				delta[t] = big.NewInt(0)
				if neg.Less(rational.FromBigInt(rounded)) {
					d[t] = -1
				} else {
					d[t] = 1
				}
			} else {
				cL = cT[ini]
				for i := ini; i <= fim; i++ {
					u[i] = new(big.Int).Set(uT[i])
				}
			}
			continue
		}

		t++
		if t > s {
			s = t
		}
		if t < s {
			delta[t] = new(big.Int).Neg(delta[t])
		}
		if delta[t].Sign()*d[t] >= 0 {
			delta[t] = new(big.Int).Add(delta[t], big.NewInt(int64(d[t])))
		}
		uT[t] = new(big.Int).Add(v[t], delta[t])
	}

	return u
}

// passvec reports whether v is the unit vector e_idx (spec.md §4.3):
// v[idx] = 1 and every other entry zero.
func passvec(v []*big.Int, idx, n int) bool {
	for i := 0; i < n; i++ {
		want := int64(0)
		if i == idx {
			want = 1
		}
		if v[i].Cmp(big.NewInt(want)) != 0 {
			return false
		}
	}
	return true
}
