// SPDX-License-Identifier: MIT

package walkthrough

// Report is the full walkthrough output. Sections that were not run are nil.
type Report struct {
	Config     Config            `json:"config" yaml:"config"`
	Matrix     *MatrixReport     `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Powers     *PowersReport     `json:"powers,omitempty" yaml:"powers,omitempty"`
	Sqrt       *SqrtReport       `json:"sqrt,omitempty" yaml:"sqrt,omitempty"`
	SqrtMatrix *SqrtMatrixReport `json:"sqrt_matrix,omitempty" yaml:"sqrt_matrix,omitempty"`
	Fractional *FractionalReport `json:"fractional,omitempty" yaml:"fractional,omitempty"`
	Apply      *ApplyReport      `json:"apply,omitempty" yaml:"apply,omitempty"`
}

// MatrixReport describes the test matrix A = U·diag(λ)·Uᵀ.
type MatrixReport struct {
	Theta        float64     `json:"theta" yaml:"theta"`
	Eigenvalues  []float64   `json:"eigenvalues" yaml:"eigenvalues"`
	Basis        [][]float64 `json:"basis" yaml:"basis"`
	A            [][]float64 `json:"a" yaml:"a"`
	Recovered    []float64   `json:"recovered_eigenvalues" yaml:"recovered_eigenvalues"`
	Backend      string      `json:"backend" yaml:"backend"`
	MaxEigenDiff float64     `json:"max_eigen_diff" yaml:"max_eigen_diff"`
}

// PowersReport lists A^k for each configured k.
type PowersReport struct {
	Eigenvalues []float64    `json:"eigenvalues" yaml:"eigenvalues"`
	Entries     []PowerEntry `json:"entries" yaml:"entries"`
}

// PowerEntry is one A^k with its transformed spectrum λ^k.
type PowerEntry struct {
	K               int         `json:"k" yaml:"k"`
	Matrix          [][]float64 `json:"matrix" yaml:"matrix"`
	Transformed     []float64   `json:"transformed" yaml:"transformed"`
	SeparationRatio float64     `json:"separation_ratio" yaml:"separation_ratio"`
}

// CurvePoint is one sample of an exact function and its approximation.
type CurvePoint struct {
	X      float64 `json:"x" yaml:"x"`
	Exact  float64 `json:"exact" yaml:"exact"`
	Approx float64 `json:"approx" yaml:"approx"`
}

// SweepEntry is the max error of one fit in a parameter sweep, for the
// least-squares fit and for interpolation at Chebyshev nodes.
type SweepEntry struct {
	DomainLow      float64 `json:"domain_low" yaml:"domain_low"`
	Degree         int     `json:"degree" yaml:"degree"`
	MaxError       float64 `json:"max_error" yaml:"max_error"`
	InterpMaxError float64 `json:"interp_max_error" yaml:"interp_max_error"`
}

// SqrtReport covers the scalar √x approximation on [a, 1].
type SqrtReport struct {
	DomainLow    float64   `json:"domain_low" yaml:"domain_low"`
	Degree       int       `json:"degree" yaml:"degree"`
	Samples      int       `json:"samples" yaml:"samples"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	MaxError     float64   `json:"max_error" yaml:"max_error"`

	// Interpolation at degree+1 Chebyshev nodes, same degree and domain.
	InterpCoefficients []float64 `json:"interp_coefficients" yaml:"interp_coefficients"`
	InterpMaxError     float64   `json:"interp_max_error" yaml:"interp_max_error"`

	Curve       []CurvePoint `json:"curve" yaml:"curve"`
	DegreeSweep []SweepEntry `json:"degree_sweep" yaml:"degree_sweep"`
	DomainSweep []SweepEntry `json:"domain_sweep" yaml:"domain_sweep"`
}

// SqrtMatrixReport compares exact √A with the polynomial P(A).
type SqrtMatrixReport struct {
	Exact           [][]float64 `json:"exact" yaml:"exact"`
	Approx          [][]float64 `json:"approx" yaml:"approx"`
	MaxAbsError     float64     `json:"max_abs_error" yaml:"max_abs_error"`
	SquareResidual  float64     `json:"square_residual" yaml:"square_residual"` // max |√A·√A − A|
	Tolerance       float64     `json:"tolerance" yaml:"tolerance"`
	WithinTolerance bool        `json:"within_tolerance" yaml:"within_tolerance"`
}

// FractionalReport covers x^α on the spectrum for each α.
type FractionalReport struct {
	Eigenvalues []float64         `json:"eigenvalues" yaml:"eigenvalues"`
	Entries     []FractionalEntry `json:"entries" yaml:"entries"`
}

// FractionalEntry is A^α with the fit error of x^α on [a, 1].
type FractionalEntry struct {
	Alpha       float64     `json:"alpha" yaml:"alpha"`
	Transformed []float64   `json:"transformed" yaml:"transformed"`
	Matrix      [][]float64 `json:"matrix" yaml:"matrix"`
	FitMaxError float64     `json:"fit_max_error" yaml:"fit_max_error"`
}

// ApplyReport is f(A) for a catalog function, exact or via a fitted series.
type ApplyReport struct {
	Func        string      `json:"func" yaml:"func"`
	Approx      bool        `json:"approx" yaml:"approx"`
	Eigenvalues []float64   `json:"eigenvalues" yaml:"eigenvalues"`
	Transformed []float64   `json:"transformed" yaml:"transformed"`
	Matrix      [][]float64 `json:"matrix" yaml:"matrix"`
	MaxAbsError *float64    `json:"max_abs_error,omitempty" yaml:"max_abs_error,omitempty"` // vs exact, approx only
	// LUDiff is max |f(A) − A⁻¹| against the LU inverse, set for inv only.
	LUDiff *float64 `json:"lu_diff,omitempty" yaml:"lu_diff,omitempty"`
}
