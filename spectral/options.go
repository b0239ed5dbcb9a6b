// SPDX-License-Identifier: MIT

package spectral

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/qsvt/matrix"
)

// Backend selects the symmetric eigensolver used by Decompose.
type Backend int

const (
	// BackendJacobi is the in-house cyclic Jacobi solver (matrix.EigenSym).
	BackendJacobi Backend = iota
	// BackendGonum delegates to gonum's mat.EigenSym.
	BackendGonum
)

// DefaultOrthoTolerance bounds max|UᵀU − I| in FromBasis.
const DefaultOrthoTolerance = 1e-9

const (
	panicBackendInvalid = "spectral: WithBackend: unknown backend"
	panicOrthoInvalid   = "spectral: WithOrthoTolerance: eps must be finite and > 0"
)

// String returns the config name of the backend.
func (b Backend) String() string {
	switch b {
	case BackendJacobi:
		return "jacobi"
	case BackendGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// ParseBackend maps "jacobi" or "gonum" (case-insensitive) to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "jacobi":
		return BackendJacobi, nil
	case "gonum":
		return BackendGonum, nil
	default:
		return 0, errors.Wrapf(ErrUnknownBackend, "%q", name)
	}
}

// Option configures Decompose, Apply and FromBasis.
type Option func(*options)

type options struct {
	backend    Backend
	orthoEps   float64
	matrixOpts []matrix.Option
}

// WithBackend picks the eigensolver. Panics on an unknown value.
func WithBackend(b Backend) Option {
	if b != BackendJacobi && b != BackendGonum {
		panic(panicBackendInvalid)
	}

	return func(o *options) { o.backend = b }
}

// WithOrthoTolerance sets the orthonormality tolerance of FromBasis.
func WithOrthoTolerance(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic(panicOrthoInvalid)
	}

	return func(o *options) { o.orthoEps = eps }
}

// WithMatrixOptions forwards options (eigen tolerance, sweep budget,
// symmetry epsilon) to the underlying matrix solvers.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{backend: BackendJacobi, orthoEps: DefaultOrthoTolerance}
	for _, set := range user {
		set(&o)
	}

	return o
}
