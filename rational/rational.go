// Package rational provides the exact-rational number type consumed by
// the reduction engine. It is the concrete default for the "external
// collaborator" role spec.md describes for rational arithmetic: field
// operations, round-to-nearest-integer, and total order, all exact.
package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact rational value backed by math/big.Rat.
type Rational struct {
	v *big.Rat
}

// Zero, One and Half are convenience constants. Each call returns a
// fresh value; Rational is treated as immutable by every operation
// below, so sharing the underlying *big.Rat across these helpers
// would be unsafe.
func Zero() Rational { return Rational{v: new(big.Rat)} }
func One() Rational  { return FromInt64(1) }
func Half() Rational { return Rational{v: big.NewRat(1, 2)} }

// FromInt64 builds a Rational equal to n.
func FromInt64(n int64) Rational {
	return Rational{v: new(big.Rat).SetInt64(n)}
}

// FromBigInt builds a Rational equal to n.
func FromBigInt(n *big.Int) Rational {
	return Rational{v: new(big.Rat).SetInt(n)}
}

// FromBigRat wraps an existing *big.Rat. The caller must not mutate r
// afterwards; FromBigRat does not copy.
func FromBigRat(r *big.Rat) Rational {
	return Rational{v: r}
}

// FromInts builds the Rational num/den.
func FromInts(num, den int64) Rational {
	return Rational{v: big.NewRat(num, den)}
}

func (a Rational) ensure() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

// Add returns a+b.
func (a Rational) Add(b Rational) Rational {
	return Rational{v: new(big.Rat).Add(a.ensure(), b.ensure())}
}

// Sub returns a-b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{v: new(big.Rat).Sub(a.ensure(), b.ensure())}
}

// Mul returns a*b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{v: new(big.Rat).Mul(a.ensure(), b.ensure())}
}

// Div returns a/b. Panics if b is zero, matching math/big.Rat.Quo.
func (a Rational) Div(b Rational) Rational {
	return Rational{v: new(big.Rat).Quo(a.ensure(), b.ensure())}
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(a.ensure())}
}

// Abs returns |a|.
func (a Rational) Abs() Rational {
	return Rational{v: new(big.Rat).Abs(a.ensure())}
}

// IsZero reports whether a equals zero.
func (a Rational) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

// Sign returns -1, 0 or 1.
func (a Rational) Sign() int {
	return a.ensure().Sign()
}

// Cmp returns -1, 0 or +1 as a<b, a==b, a>b.
func (a Rational) Cmp(b Rational) int {
	return a.ensure().Cmp(b.ensure())
}

// Less reports whether a<b.
func (a Rational) Less(b Rational) bool { return a.Cmp(b) < 0 }

// Equal reports whether a==b.
func (a Rational) Equal(b Rational) bool { return a.Cmp(b) == 0 }

// Round returns the nearest integer to a, as a Rational, rounding
// ties away from zero (e.g. 1/2 -> 1, -1/2 -> -1, 3/2 -> 2).
func (a Rational) Round() Rational {
	return FromBigInt(a.RoundInt())
}

// RoundInt is Round but returns the *big.Int directly; callers that
// need the integer quotient q (e.g. the LLL size-reduction step) use
// this to avoid an extra Rational round-trip.
func (a Rational) RoundInt() *big.Int {
	num := a.ensure().Num()
	den := a.ensure().Denom()

	q, r := new(big.Int), new(big.Int)
	q.QuoRem(num, den, r)
	if r.Sign() == 0 {
		return q
	}

	// r/den compared to 1/2 in absolute value, ties away from zero.
	twiceR := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	cmp := twiceR.Cmp(new(big.Int).Abs(den))
	if cmp > 0 || (cmp == 0) {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// Float64 returns a lossy float64 projection. The reduction kernel
// must never use this for the Lovász comparison (spec.md §9); it
// exists for diagnostic/debug logging and for the examples packages,
// which work in float64/big.Float by design.
func (a Rational) Float64() float64 {
	f, _ := a.ensure().Float64()
	return f
}

// BigRat exposes the underlying *big.Rat for collaborators (e.g. the
// examples packages) that need to hand values to big.Float-based
// numeric routines. The returned value must not be mutated.
func (a Rational) BigRat() *big.Rat {
	return a.ensure()
}

// String implements fmt.Stringer for debug logging.
func (a Rational) String() string {
	return a.ensure().RatString()
}

var _ fmt.Stringer = Rational{}
