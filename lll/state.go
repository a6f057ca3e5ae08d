package lll

import (
	"github.com/lattice-labs/lllbkz/gso"
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// state is the private bundle of mutable matrices/arrays the kernel
// threads through a single reduction (spec.md §4.2 "State"). It is
// never shared across reductions; Reduce allocates one per call
// (spec.md §3 "Lifecycle").
type state struct {
	gs             *gso.State
	h              *matrix.Matrix
	k              int
	shouldUpdateGS bool
	params         Params
}

func newState(b *matrix.Matrix, params Params) *state {
	n, _ := b.Dims()
	return &state{
		gs:             gso.New(b),
		h:              matrix.Identity(n),
		k:              1,
		shouldUpdateGS: true,
		params:         params,
	}
}

// red performs size-reduction of row k against row l (spec.md §4.2).
func (s *state) red(k, l int) {
	muKL := s.gs.Mu.At(k, l)
	if muKL.Abs().Cmp(eta) <= 0 {
		return
	}
	q := muKL.Round()

	bk := s.gs.B.Row(k)
	bl := s.gs.B.Row(l)
	bk.SubEq(bl.Scale(q))

	hk := s.h.Row(k)
	hl := s.h.Row(l)
	hk.SubEq(hl.Scale(q))

	s.gs.Mu.Set(k, l, muKL.Sub(q))
	for i := 0; i < l; i++ {
		muKI := s.gs.Mu.At(k, i)
		muLI := s.gs.Mu.At(l, i)
		s.gs.Mu.Set(k, i, muKI.Sub(q.Mul(muLI)))
	}

	s.params.logf("red(%d, %d): q=%s", k, l, q)
}

// testCondition implements spec.md §4.2's per-index test: size-reduce
// against the immediate predecessor, then either swap on Lovász
// failure or finish size-reducing against all earlier rows and
// advance.
func (s *state) testCondition(k int) {
	s.red(k, k-1)

	sk := s.gs.Sizes[k]
	skm1 := s.gs.Sizes[k-1]
	muKKm1 := s.gs.Mu.At(k, k-1)
	threshold := s.params.Delta().Sub(muKKm1.Mul(muKKm1)).Mul(skm1)

	if sk.Cmp(threshold) < 0 {
		s.swapg(k)
		next := k - 1
		if next < 1 {
			next = 1
		}
		s.k = next
		s.shouldUpdateGS = false
		s.params.logf("swap at k=%d (Lovász failed), next k=%d", k, s.k)
		return
	}

	for l := k - 2; l >= 0; l-- {
		s.red(k, l)
	}
	s.k = k + 1
	s.shouldUpdateGS = true
}

// swapg exchanges rows row and row-1 across B, H, Bᴳˢ, μ, S and
// repairs the Gram-Schmidt data in place (spec.md §4.2). row must be
// >= 1.
func (s *state) swapg(row int) {
	s.gs.B.SwapRows(row, row-1)
	s.h.SwapRows(row, row-1)

	if row >= 2 {
		for j := 0; j < row-1; j++ {
			a := s.gs.Mu.At(row, j)
			b := s.gs.Mu.At(row-1, j)
			s.gs.Mu.Set(row, j, b)
			s.gs.Mu.Set(row-1, j, a)
		}
	}

	nu := s.gs.Mu.At(row, row-1)
	sn := s.gs.Sizes[row]
	snm1 := s.gs.Sizes[row-1]
	bPrime := sn.Add(nu.Mul(nu).Mul(snm1))

	kmax := s.gs.Kmax

	switch {
	case sn.IsZero() && nu.IsZero():
		s.gs.Sizes[row], s.gs.Sizes[row-1] = s.gs.Sizes[row-1], s.gs.Sizes[row]
		s.gs.GS.SwapRows(row, row-1)
		for i := row + 1; i <= kmax; i++ {
			a := s.gs.Mu.At(i, row)
			b := s.gs.Mu.At(i, row-1)
			s.gs.Mu.Set(i, row, b)
			s.gs.Mu.Set(i, row-1, a)
		}

	case sn.IsZero():
		s.gs.Sizes[row-1] = bPrime
		oldGSRowm1 := s.gs.GS.Row(row - 1).Copy()
		s.gs.GS.SetRow(row-1, oldGSRowm1.Scale(nu))
		s.gs.Mu.Set(row, row-1, rational.One().Div(nu))
		for i := row + 1; i <= kmax; i++ {
			s.gs.Mu.Set(i, row-1, s.gs.Mu.At(i, row-1).Div(nu))
		}

	default:
		t := snm1.Div(bPrime)
		newMuRowRowm1 := nu.Mul(t)
		s.gs.Mu.Set(row, row-1, newMuRowRowm1)

		b := s.gs.GS.Row(row - 1).Copy()
		newGSRowm1 := s.gs.GS.Row(row).Copy()
		newGSRowm1.AddEq(b.Scale(nu))
		s.gs.GS.SetRow(row-1, newGSRowm1)

		newGSRow := b.Scale(sn.Div(bPrime))
		newGSRow.SubEq(s.gs.GS.Row(row).Scale(newMuRowRowm1))
		s.gs.GS.SetRow(row, newGSRow)

		s.gs.Sizes[row] = sn.Mul(t)
		s.gs.Sizes[row-1] = bPrime

		for i := row + 1; i <= kmax; i++ {
			tPrime := s.gs.Mu.At(i, row)
			oldMuIRowm1 := s.gs.Mu.At(i, row-1)
			newMuIRow := oldMuIRowm1.Sub(nu.Mul(tPrime))
			newMuIRowm1 := tPrime.Add(newMuRowRowm1.Mul(newMuIRow))
			s.gs.Mu.Set(i, row, newMuIRow)
			s.gs.Mu.Set(i, row-1, newMuIRowm1)
		}
	}
}
