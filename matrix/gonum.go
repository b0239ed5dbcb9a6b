// SPDX-License-Identifier: MIT
// Package matrix: gonum bridge.
//
// Purpose:
//   - Convert between *Dense and gonum's mat types without sharing storage.
//   - Expose gonum's symmetric eigensolver as a reference backend next to Jacobi.

package matrix

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum       = "ToGonum"
	opFromGonum     = "FromGonum"
	opEigenSymGonum = "EigenSymGonum"
)

// ErrGonumFactorize is returned when gonum's EigenSym fails to factorize.
var ErrGonumFactorize = errors.New("matrix: gonum factorization failed")

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	return mat.NewDense(d.r, d.c, d.Data()), nil
}

// FromGonum copies any gonum matrix into a new *Dense (default numeric policy).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// EigenSymGonum decomposes a symmetric matrix with gonum's mat.EigenSym.
// Eigenvalues come back ascending with matching eigenvector columns, the same
// contract as EigenSym. Symmetry is checked against WithEpsilon; the upper
// triangle is what gonum reads.
func EigenSymGonum(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSymGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSymGonum, err)
	}
	sym := mat.NewSymDense(d.r, d.Data())

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigenSymGonum, ErrGonumFactorize)
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	q, err := FromGonum(&vecs)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSymGonum, err)
	}

	return vals, q, nil
}
