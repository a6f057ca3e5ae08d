package lll

import (
	"github.com/lattice-labs/lllbkz/matrix"
	"github.com/lattice-labs/lllbkz/rational"
)

// Result is the output of a reduction, per spec.md §3/§6: the
// dependent-row count p, the reduced basis R with zero rows removed,
// the transformation H, and the truncated Gram-Schmidt data (rows
// p..n-1). Result owns every matrix it holds; none alias the caller's
// input (spec.md §5).
type Result struct {
	p  int
	r  *matrix.Matrix
	h  *matrix.Matrix
	gs *matrix.Matrix
	mu *matrix.Matrix
	s  []rational.Rational
}

// NumDependentVectors returns p, the count of linearly dependent
// (zero) rows removed from the input basis.
func (r Result) NumDependentVectors() int { return r.p }

// ReducedBasis returns R, the reduced basis with dependent rows
// dropped.
func (r Result) ReducedBasis() *matrix.Matrix { return r.r }

// Transformation returns H such that H·B_initial equals the internal
// basis before dependent-row trimming (spec.md invariant 1).
func (r Result) Transformation() *matrix.Matrix { return r.h }

// GramSchmidtBasis returns Bᴳˢ, truncated to rows p..n-1.
func (r Result) GramSchmidtBasis() *matrix.Matrix { return r.gs }

// GramSchmidtCoefficients returns μ, truncated to rows/cols p..n-1.
func (r Result) GramSchmidtCoefficients() *matrix.Matrix { return r.mu }

// GramSchmidtSizes returns S, truncated to indices p..n-1.
func (r Result) GramSchmidtSizes() []rational.Rational { return r.s }
