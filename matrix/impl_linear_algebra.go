// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, integer powers and the symmetric Jacobi eigensolver.
// All functions perform strict fail-fast validation and return sentinel
// errors wrapped with an operation tag.
//
// Notes:
//   - Kernels run on *Dense flat buffers. Non-Dense operands are materialized
//     once through asDense (At-based copy) and then share the same loops.
//   - Inputs are never mutated; every result is freshly allocated.

package matrix

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opPow       = "Pow"
	opEigen     = "Eigen"
	opEigenSym  = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the cause for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// asDense returns m itself when it is a *Dense, otherwise an At-based copy.
// The copy disables NaN/Inf validation so that reading never fails on data
// the caller already holds.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1} on identical shapes.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for k := range res.data {
		res.data[k] = da.data[k] + sign*db.data[k]
	}

	return res, nil
}

// Add returns a + b (fresh Dense). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b (fresh Dense). Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: i-k-j loop over flat buffers (row of b streamed per a[i,k]).
//
// Determinism:
//   - Fixed i→k→j order; zero a[i,k] are skipped.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av         float64
		rowA, rowB int
		rowR       int
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense(c×r).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m. alpha must be finite (ErrNaNInf otherwise).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range d.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec returns y = m·x. len(x) must equal m.Cols().
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[i] += d.data[base+j] * x[j]
		}
	}

	return y, nil
}

// Pow returns the k-th integer power of a square matrix.
//
// Implementation:
//   - Stage 1: validate square, k ≥ 0.
//   - Stage 2: k == 0 → identity; k == 1 → copy of m.
//   - Stage 3: binary exponentiation (square-and-multiply), lowest bit first.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent.
//
// Complexity:
//   - Time O(n³·log k), Space O(n²).
//
// AI-Hints:
//   - For fractional or negative exponents go through the spectral route
//     (eigendecomposition + scalar map) instead.
func Pow(m Matrix, k int) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, errors.Wrapf(ErrNegativeExponent, "k=%d", k))
	}
	n := m.Rows()
	if k == 0 {
		id, err := NewIdentity(n)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}

		return id, nil
	}
	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k == 1 {
		return base.Clone(), nil
	}

	var (
		acc Matrix // nil until the first set bit
		sq  Matrix = base
	)
	for e := k; e > 0; e >>= 1 {
		if e&1 == 1 {
			if acc == nil {
				acc = sq.Clone()
			} else if acc, err = Mul(acc, sq); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		if e > 1 {
			if sq, err = Mul(sq, sq); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return acc, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol).
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and annihilate it with a plane rotation; accumulate Q ← Q·J.
//   - Stage 3: verify max off-diagonal < tol; return diag(A) and Q.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - Matrix: Q whose columns are the matching unit eigenvectors (A = Q·Λ·Qᵀ).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n²).
//
// AI-Hints:
//   - Use EigenSym for numpy-eigh ordering (ascending) and option-driven tolerances.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	vals, q, err := jacobi(m, math.Abs(tol), maxIter)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return vals, q, nil
}

// EigenSym is the option-driven eigensolver with ascending eigenvalue order.
// Symmetry is checked against WithEpsilon; convergence uses WithEigenTolerance
// and the rotation cap of Options.EigenMaxIterFor. Column i of the returned Q
// pairs with value i.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	vals, q, err := jacobi(m, o.eigenTol, o.EigenMaxIterFor(m.Rows()))
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	sortedVals, sortedQ := sortEigenPairs(vals, q)

	return sortedVals, sortedQ, nil
}

// jacobi runs the classical Jacobi method on a working copy of m.
// Assumes m is square and symmetric.
func jacobi(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	src, err := asDense(m)
	if err != nil {
		return nil, nil, err
	}
	n := src.r
	a := src.Clone().(*Dense)
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}

	var (
		iter                   int
		p, r                   int     // pivot (p,r), p<r
		app, arr, apr          float64 // pivot block
		theta, t, c, s         float64 // rotation parameters
		aip, air, qip, qir     float64
		i                      int
		maxOff                 float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, r = maxOffDiagonal(a)
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]

		// θ = (a_rr − a_pp)/(2·a_pr); t is the smaller root of t² + 2θt − 1 = 0.
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if maxOff, _, _ = maxOffDiagonal(a); maxOff >= tol {
		return nil, nil, errors.Wrapf(ErrMatrixEigenFailed, "max off-diagonal %.3g after %d rotations", maxOff, maxIter)
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}

// maxOffDiagonal scans the strict upper triangle in i→j order and returns
// the largest |A[i,j]| with its position. Ties keep the first occurrence.
func maxOffDiagonal(a *Dense) (float64, int, int) {
	var (
		n         = a.r
		best      float64
		bp, bq    int
		i, j, row int
		off       float64
	)
	for i = 0; i < n; i++ {
		row = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[row+j])
			if off > best {
				best, bp, bq = off, i, j
			}
		}
	}

	return best, bp, bq
}

// sortEigenPairs orders eigenvalues ascending and permutes Q's columns to match.
// Stable on ties so equal eigenvalues keep their Jacobi order.
func sortEigenPairs(vals []float64, q *Dense) ([]float64, *Dense) {
	n := len(vals)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(x, y int) bool { return vals[idx[x]] < vals[idx[y]] })

	outVals := make([]float64, n)
	outQ, _ := NewDense(n, n) // n ≥ 1 after symmetric validation
	var i, col int
	for col = 0; col < n; col++ {
		outVals[col] = vals[idx[col]]
		for i = 0; i < n; i++ {
			outQ.data[i*n+col] = q.data[i*n+idx[col]]
		}
	}

	return outVals, outQ
}
