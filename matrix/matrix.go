// Package matrix provides the exact-rational dense matrix/vector
// container consumed by the reduction engine. Its surface is modeled
// on gonum's mat.Dense/mat.VecDense (Dims, At, Set, row views, row
// swap) but holds rational.Rational entries instead of float64, since
// the reduction kernel requires exact arithmetic throughout.
package matrix

import "github.com/lattice-labs/lllbkz/rational"

// Vector is a row vector of exact rationals.
type Vector struct {
	data []rational.Rational
}

// NewVector returns a zero vector of the given length.
func NewVector(n int) Vector {
	return Vector{data: make([]rational.Rational, n)}
}

// VectorFromSlice wraps data directly; the caller must not alias it
// elsewhere afterwards.
func VectorFromSlice(data []rational.Rational) Vector {
	return Vector{data: data}
}

// Len returns the vector's dimension.
func (v Vector) Len() int { return len(v.data) }

// At returns the i-th entry.
func (v Vector) At(i int) rational.Rational { return v.data[i] }

// Set assigns the i-th entry.
func (v Vector) Set(i int, x rational.Rational) { v.data[i] = x }

// Copy returns an independent copy of v.
func (v Vector) Copy() Vector {
	out := make([]rational.Rational, len(v.data))
	copy(out, v.data)
	return Vector{data: out}
}

// IsZero reports whether every entry of v is zero.
func (v Vector) IsZero() bool {
	for _, x := range v.data {
		if !x.IsZero() {
			return false
		}
	}
	return true
}

// Dot returns the dot product of v and w. Panics if lengths differ.
func (v Vector) Dot(w Vector) rational.Rational {
	if len(v.data) != len(w.data) {
		panic("matrix: Dot: dimension mismatch")
	}
	sum := rational.Zero()
	for i := range v.data {
		sum = sum.Add(v.data[i].Mul(w.data[i]))
	}
	return sum
}

// SqNorm returns v's squared magnitude, ⟨v, v⟩.
func (v Vector) SqNorm() rational.Rational { return v.Dot(v) }

// SubEq subtracts w from v in place: v -= w. Panics if lengths differ.
func (v Vector) SubEq(w Vector) {
	if len(v.data) != len(w.data) {
		panic("matrix: SubEq: dimension mismatch")
	}
	for i := range v.data {
		v.data[i] = v.data[i].Sub(w.data[i])
	}
}

// AddEq adds w to v in place: v += w. Panics if lengths differ.
func (v Vector) AddEq(w Vector) {
	if len(v.data) != len(w.data) {
		panic("matrix: AddEq: dimension mismatch")
	}
	for i := range v.data {
		v.data[i] = v.data[i].Add(w.data[i])
	}
}

// Scale returns a new vector equal to c*v.
func (v Vector) Scale(c rational.Rational) Vector {
	out := make([]rational.Rational, len(v.data))
	for i, x := range v.data {
		out[i] = c.Mul(x)
	}
	return Vector{data: out}
}

// Matrix is a dense n x m matrix of exact rationals, row-major.
type Matrix struct {
	rows, cols int
	data       []Vector
}

// NewDense returns an n x m zero matrix.
func NewDense(rows, cols int) *Matrix {
	data := make([]Vector, rows)
	for i := range data {
		data[i] = NewVector(cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}
}

// NewDenseFromInts builds a matrix from a rectangular slice of int64
// values, convenient for tests and worked examples.
func NewDenseFromInts(rows [][]int64) *Matrix {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	m := NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, x := range row {
			m.Set(i, j, rational.FromInt64(x))
		}
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, rational.One())
	}
	return m
}

// Dims returns the row and column counts.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the entry at (i, j).
func (m *Matrix) At(i, j int) rational.Rational { return m.data[i].At(j) }

// Set assigns the entry at (i, j).
func (m *Matrix) Set(i, j int, x rational.Rational) { m.data[i].Set(j, x) }

// Row returns a borrowed, mutable view of row i. Mutating the
// returned Vector mutates the matrix, matching spec.md §6's "row
// accessor returning a mutable/borrowable vector view".
func (m *Matrix) Row(i int) Vector { return m.data[i] }

// SetRow replaces row i with v (copied).
func (m *Matrix) SetRow(i int, v Vector) { m.data[i] = v.Copy() }

// SwapRows exchanges rows i and j in place.
func (m *Matrix) SwapRows(i, j int) {
	m.data[i], m.data[j] = m.data[j], m.data[i]
}

// Submatrix returns an independent copy of the rectangular slice
// [rowStart:rowEnd) x [colStart:colEnd).
func (m *Matrix) Submatrix(rowStart, rowEnd, colStart, colEnd int) *Matrix {
	out := NewDense(rowEnd-rowStart, colEnd-colStart)
	for i := rowStart; i < rowEnd; i++ {
		for j := colStart; j < colEnd; j++ {
			out.Set(i-rowStart, j-colStart, m.At(i, j))
		}
	}
	return out
}

// Clone returns a deep, independent copy of m.
func (m *Matrix) Clone() *Matrix {
	return m.Submatrix(0, m.rows, 0, m.cols)
}
