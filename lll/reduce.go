// Package lll implements the LLL kernel of spec.md §4.2: the
// swap/size-reduction state machine driven by an incrementally
// maintained Gram-Schmidt orthogonalisation (package gso), producing
// a reduced basis, its unimodular transformation, and the associated
// Gram-Schmidt data.
package lll

import (
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// Reduce runs LLL reduction on b with the given Params and returns
// the resulting Result, per spec.md §4.2's public contract. b is
// never mutated; Reduce works on its own copy and Result owns every
// matrix it returns (spec.md §5).
func Reduce(b *matrix.Matrix, params Params) (Result, error) {
	if err := params.validate(); err != nil {
		return Result{}, err
	}

	n, _ := b.Dims()
	st := newState(b.Clone(), params)

	if n <= 1 {
		return st.finish(), nil
	}

	for st.k < n {
		if st.k > st.gs.Kmax && st.shouldUpdateGS {
			st.gs.Kmax = st.k
			st.gs.Extend(st.k)
		}
		st.testCondition(st.k)
	}

	return st.finish(), nil
}

// finish counts the zero-row prefix spec.md §4.2 guarantees dependent
// rows settle into, trims it from the returned basis and Gram-Schmidt
// data, and packages an owned Result.
func (s *state) finish() Result {
	n, m := s.gs.B.Dims()

	p := 0
	for p < n && s.gs.B.Row(p).IsZero() {
		p++
	}

	r := s.gs.B.Submatrix(p, n, 0, m)
	h := s.h.Clone()
	gsTrim := s.gs.GS.Submatrix(p, n, 0, m)
	muTrim := s.gs.Mu.Submatrix(p, n, p, n)

	sizes := make([]rational.Rational, n-p)
	copy(sizes, s.gs.Sizes[p:n])

	return Result{
		p:  p,
		r:  r,
		h:  h,
		gs: gsTrim,
		mu: muTrim,
		s:  sizes,
	}
}
