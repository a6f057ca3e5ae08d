// Package gso maintains the incrementally extended Gram-Schmidt state
// (Bᴳˢ, μ, S) described in spec.md §4.1. It is the leaf of the
// reduction engine: the LLL kernel extends it row by row as its main
// loop advances and never rewinds it except across a swap, which the
// LLL kernel repairs itself (spec.md §4.2's swapg).
package gso

import (
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// State is the Gram-Schmidt data for a basis B of n rows.
//
// Mu is strictly lower triangular: Mu.At(i, j) is only meaningful for
// j < i. Sizes[i] = ||GramSchmidt row i||^2.
type State struct {
	B     *matrix.Matrix
	GS    *matrix.Matrix
	Mu    *matrix.Matrix
	Sizes []rational.Rational
	Kmax  int // highest row index already orthogonalised
}

// New builds Gram-Schmidt state for basis b, orthogonalising row 0
// only (spec.md §4.2: "Initial ... Bᴳˢ row 0 = B row 0, S₀ = ‖B₀‖²").
// b is retained by reference; callers must not mutate it except
// through the returned State's own B field.
func New(b *matrix.Matrix) *State {
	n, m := b.Dims()
	s := &State{
		B:     b,
		GS:    matrix.NewDense(n, m),
		Mu:    matrix.NewDense(n, n),
		Sizes: make([]rational.Rational, n),
		Kmax:  0,
	}
	for i := range s.Sizes {
		s.Sizes[i] = rational.Zero()
	}
	s.GS.SetRow(0, b.Row(0))
	s.Sizes[0] = b.Row(0).SqNorm()
	return s
}

// Extend orthogonalises row k against rows 0..k-1, which must already
// be orthogonalised (spec.md §4.1).
func (s *State) Extend(k int) {
	for j := 0; j < k; j++ {
		if s.Sizes[j].IsZero() {
			s.Mu.Set(k, j, rational.Zero())
			continue
		}
		dot := s.B.Row(k).Dot(s.GS.Row(j))
		s.Mu.Set(k, j, dot.Div(s.Sizes[j]))
	}

	gsk := s.B.Row(k).Copy()
	for j := 0; j < k; j++ {
		muKJ := s.Mu.At(k, j)
		if muKJ.IsZero() {
			continue
		}
		gsk.SubEq(s.GS.Row(j).Scale(muKJ))
	}
	s.GS.SetRow(k, gsk)
	s.Sizes[k] = gsk.SqNorm()
}
