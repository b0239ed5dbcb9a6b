// SPDX-License-Identifier: MIT

package spectral

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/qsvt/matrix"
)

// Func is a real scalar map applied to eigenvalues.
type Func func(float64) float64

// Spectral holds an orthonormal eigenbasis U (eigenvectors in columns) and
// the matching real eigenvalues λ. It is immutable; accessors return copies.
type Spectral struct {
	u      *matrix.Dense
	values []float64
}

// Rotation returns the 2×2 rotation [[cos θ, −sin θ], [sin θ, cos θ]].
func Rotation(theta float64) *matrix.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	r, _ := matrix.NewDenseFrom(2, 2, []float64{c, -s, s, c})

	return r
}

// New builds the 2×2 Spectral with U = Rotation(theta) and λ = (l1, l2).
func New(theta, l1, l2 float64) (*Spectral, error) {
	if isNonFinite(theta) {
		return nil, errors.Wrapf(ErrNonFinite, "theta=%g", theta)
	}
	if err := checkFinite([]float64{l1, l2}); err != nil {
		return nil, err
	}

	return &Spectral{u: Rotation(theta), values: []float64{l1, l2}}, nil
}

// Build returns A = R(θ)·diag(l1, l2)·R(θ)ᵀ, a symmetric matrix with
// eigenvalues l1, l2 and eigenvectors the columns of R(θ).
func Build(theta, l1, l2 float64) (*matrix.Dense, error) {
	s, err := New(theta, l1, l2)
	if err != nil {
		return nil, errors.Wrap(err, "Build")
	}

	return s.Matrix()
}

// FromBasis builds an n×n Spectral from U and n eigenvalues.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (U not square or
// len(values) ≠ n), ErrEmptySpectrum, ErrNonFinite, ErrNotOrthonormal.
func FromBasis(u matrix.Matrix, values []float64, opts ...Option) (*Spectral, error) {
	if err := matrix.ValidateSquareNonNil(u); err != nil {
		return nil, errors.Wrap(err, "FromBasis")
	}
	if len(values) == 0 {
		return nil, errors.Wrap(ErrEmptySpectrum, "FromBasis")
	}
	if n := u.Rows(); len(values) != n {
		return nil, errors.Wrapf(matrix.ErrDimensionMismatch, "FromBasis: %d values for %dx%d basis", len(values), n, n)
	}
	if err := checkFinite(values); err != nil {
		return nil, errors.Wrap(err, "FromBasis")
	}

	o := gatherOptions(opts...)
	ok, err := matrix.IsOrthogonal(u, o.orthoEps)
	if err != nil {
		return nil, errors.Wrap(err, "FromBasis")
	}
	if !ok {
		return nil, errors.Wrapf(ErrNotOrthonormal, "FromBasis: eps=%g", o.orthoEps)
	}

	d, err := toDense(u)
	if err != nil {
		return nil, errors.Wrap(err, "FromBasis")
	}

	return &Spectral{u: d, values: append([]float64(nil), values...)}, nil
}

// Dim returns n.
func (s *Spectral) Dim() int { return len(s.values) }

// Values returns a copy of λ.
func (s *Spectral) Values() []float64 { return append([]float64(nil), s.values...) }

// Vectors returns a copy of U.
func (s *Spectral) Vectors() *matrix.Dense {
	d, _ := toDense(s.u)

	return d
}

// Matrix reconstructs U·diag(λ)·Uᵀ.
//
// Complexity: O(n³).
func (s *Spectral) Matrix() (*matrix.Dense, error) {
	n := s.Dim()
	ud := s.u.Data()
	out := make([]float64, n*n)
	var sum float64
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < n; k++ {
				sum += ud[i*n+k] * s.values[k] * ud[j*n+k]
			}
			// exact symmetry regardless of summation order
			out[i*n+j] = sum
			out[j*n+i] = sum
		}
	}

	return matrix.NewDenseFrom(n, n, out)
}

// Map returns a new Spectral with λ_i replaced by f(λ_i) and the same basis.
// A non-finite f(λ_i) fails with ErrNonFinite.
func (s *Spectral) Map(f Func) (*Spectral, error) {
	mapped := make([]float64, len(s.values))
	for i, v := range s.values {
		mapped[i] = f(v)
		if isNonFinite(mapped[i]) {
			return nil, errors.Wrapf(ErrNonFinite, "f(%g)=%g at index %d", v, mapped[i], i)
		}
	}

	return &Spectral{u: s.u, values: mapped}, nil
}

// Decompose computes the eigendecomposition of a symmetric A with eigenvalues
// ascending. The solver is chosen with WithBackend.
func Decompose(a matrix.Matrix, opts ...Option) (*Spectral, error) {
	o := gatherOptions(opts...)

	var (
		vals []float64
		vecs *matrix.Dense
		err  error
	)
	switch o.backend {
	case BackendGonum:
		vals, vecs, err = matrix.EigenSymGonum(a, o.matrixOpts...)
	default:
		vals, vecs, err = matrix.EigenSym(a, o.matrixOpts...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Decompose[%s]", o.backend)
	}

	return &Spectral{u: vecs, values: vals}, nil
}

// Power returns A^k by repeated squaring; k=0 gives I and k=1 a copy of A.
func Power(a matrix.Matrix, k int) (matrix.Matrix, error) {
	p, err := matrix.Pow(a, k)
	if err != nil {
		return nil, errors.Wrapf(err, "Power(k=%d)", k)
	}

	return p, nil
}

// Apply returns f(A) = U·diag(f(λ))·Uᵀ for a symmetric A.
//
// Steps:
//  1. Decompose A (validates squareness and symmetry).
//  2. Map each eigenvalue through f; reject NaN/Inf.
//  3. Reconstruct with the original eigenvectors.
func Apply(a matrix.Matrix, f Func, opts ...Option) (*matrix.Dense, error) {
	s, err := Decompose(a, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "Apply")
	}
	m, err := s.Map(f)
	if err != nil {
		return nil, errors.Wrap(err, "Apply")
	}

	return m.Matrix()
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

func checkFinite(values []float64) error {
	for i, v := range values {
		if isNonFinite(v) {
			return errors.Wrapf(ErrNonFinite, "values[%d]=%g", i, v)
		}
	}

	return nil
}

// toDense returns a detached *matrix.Dense copy of m.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		r, c := d.Shape()
		return matrix.NewDenseFrom(r, c, d.Data())
	}
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}

	return matrix.NewDenseFrom(r, c, data)
}
