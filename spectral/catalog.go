// SPDX-License-Identifier: MIT

package spectral

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Identity returns x.
func Identity(x float64) float64 { return x }

// Sqrt returns √x.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// Inverse returns 1/x, the matrix inverse when applied spectrally.
func Inverse(x float64) float64 { return 1 / x }

// Pow returns x ↦ x^α.
func Pow(alpha float64) Func {
	return func(x float64) float64 { return FractionalPower(x, alpha) }
}

// Step returns the projector filter x ↦ 1 for x ≥ threshold, 0 otherwise.
func Step(threshold float64) Func {
	return func(x float64) float64 {
		if x >= threshold {
			return 1
		}
		return 0
	}
}

// Resolvent returns x ↦ (x − z)⁻¹ for a real shift z.
func Resolvent(z float64) Func {
	return func(x float64) float64 { return 1 / (x - z) }
}

// EvolutionCos returns x ↦ cos(t·x), the real part of e^{-ixt}.
// Applied to a Hamiltonian A it gives Re e^{-iAt} = cos(At).
func EvolutionCos(t float64) Func {
	return func(x float64) float64 { return math.Cos(t * x) }
}

// EvolutionSin returns x ↦ sin(t·x); e^{-iAt} = cos(At) − i·sin(At).
func EvolutionSin(t float64) Func {
	return func(x float64) float64 { return math.Sin(t * x) }
}

// FuncNames lists the names ParseFunc accepts, in help order.
var FuncNames = []string{
	"id", "sqrt", "inv", "pow:<alpha>", "step:<threshold>", "resolvent:<z>", "cos:<t>", "sin:<t>",
}

// ParseFunc resolves a catalog spec such as "sqrt", "pow:0.25", "step:0.5",
// "resolvent:2" or "cos:1.5". Names are case-insensitive.
func ParseFunc(spec string) (Func, error) {
	name, param, hasParam := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")

	switch name {
	case "id", "identity":
		return noParam(spec, Identity, hasParam)
	case "sqrt":
		return noParam(spec, Sqrt, hasParam)
	case "inv", "inverse":
		return noParam(spec, Inverse, hasParam)
	}

	var ctor func(float64) Func
	switch name {
	case "pow":
		ctor = Pow
	case "step":
		ctor = Step
	case "resolvent":
		ctor = Resolvent
	case "cos":
		ctor = EvolutionCos
	case "sin":
		ctor = EvolutionSin
	default:
		return nil, errors.WithHint(
			errors.Wrapf(ErrUnknownFunc, "%q", spec),
			"known functions: "+strings.Join(FuncNames, ", "),
		)
	}
	if !hasParam {
		return nil, errors.Wrapf(ErrBadFuncParam, "%q: %s needs a parameter", spec, name)
	}
	p, err := strconv.ParseFloat(param, 64)
	if err != nil || isNonFinite(p) {
		return nil, errors.Wrapf(ErrBadFuncParam, "%q: parameter %q", spec, param)
	}

	return ctor(p), nil
}

// IsInverse reports whether spec names the reciprocal 1/x.
func IsInverse(spec string) bool {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "inv", "inverse":
		return true
	}

	return false
}

func noParam(spec string, f Func, hasParam bool) (Func, error) {
	if hasParam {
		return nil, errors.Wrapf(ErrBadFuncParam, "%q takes no parameter", spec)
	}

	return f, nil
}
