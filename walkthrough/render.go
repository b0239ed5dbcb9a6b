// SPDX-License-Identifier: MIT

package walkthrough

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding of Render.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat and Render.
var ErrUnknownFormat = errors.New("walkthrough: unknown output format")

// curveRows is how many evenly spaced curve samples the table view shows.
const curveRows = 9

// ParseFormat maps "table", "json" or "yaml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", errors.WithHint(errors.Wrapf(ErrUnknownFormat, "%q", s), "supported: table, json, yaml")
	}
}

// Render writes rep to w. JSON and YAML carry every field, including the
// full evaluation curve; the table view shows a thinned curve.
func Render(w io.Writer, rep *Report, format Format) error {
	if rep == nil {
		return errors.New("walkthrough: nil report")
	}
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal report to JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(rep)
		if err != nil {
			return errors.Wrap(err, "failed to marshal report to YAML")
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		return renderTables(w, rep)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func renderTables(w io.Writer, rep *Report) error {
	var b strings.Builder

	if m := rep.Matrix; m != nil {
		b.WriteString(pterm.DefaultSection.Sprint("Test matrix A = U·diag(λ)·Uᵀ"))
		if err := table(&b, pterm.TableData{
			{"quantity", "value"},
			{"θ", num(m.Theta)},
			{"λ", nums(m.Eigenvalues)},
			{"U", matrixCell(m.Basis)},
			{"A", matrixCell(m.A)},
			{"recovered λ (" + m.Backend + ")", nums(m.Recovered)},
			{"max |Δλ|", num(m.MaxEigenDiff)},
		}); err != nil {
			return err
		}
	}

	if p := rep.Powers; p != nil {
		b.WriteString(pterm.DefaultSection.Sprint("Integer powers A^k"))
		data := pterm.TableData{{"k", "λ^k", "λmin^k/λmax^k", "A^k"}}
		for _, e := range p.Entries {
			data = append(data, []string{strconv.Itoa(e.K), nums(e.Transformed), num(e.SeparationRatio), matrixCell(e.Matrix)})
		}
		if err := table(&b, data); err != nil {
			return err
		}
	}

	if s := rep.Sqrt; s != nil {
		b.WriteString(pterm.DefaultSection.Sprintf("√x on [%g, 1], degree %d", s.DomainLow, s.Degree))
		data := pterm.TableData{{"x", "√x", "P(x)", "|Δ|"}}
		for _, c := range thin(s.Curve, curveRows) {
			data = append(data, []string{num(c.X), num(c.Exact), num(c.Approx), num(math.Abs(c.Exact - c.Approx))})
		}
		if err := table(&b, data); err != nil {
			return err
		}
		fmt.Fprintf(&b, "max error %s; coefficients %s\n", num(s.MaxError), nums(s.Coefficients))
		fmt.Fprintf(&b, "node interpolation: max error %s\n", num(s.InterpMaxError))

		if len(s.DegreeSweep) > 0 || len(s.DomainSweep) > 0 {
			data = pterm.TableData{{"a", "degree", "max error", "interp error"}}
			for _, e := range append(append([]SweepEntry(nil), s.DegreeSweep...), s.DomainSweep...) {
				data = append(data, []string{num(e.DomainLow), strconv.Itoa(e.Degree), num(e.MaxError), num(e.InterpMaxError)})
			}
			if err := table(&b, data); err != nil {
				return err
			}
		}
	}

	if s := rep.SqrtMatrix; s != nil {
		b.WriteString(pterm.DefaultSection.Sprint("√A exact vs polynomial"))
		if err := table(&b, pterm.TableData{
			{"quantity", "value"},
			{"√A exact", matrixCell(s.Exact)},
			{"√A poly", matrixCell(s.Approx)},
			{"max |Δ|", num(s.MaxAbsError)},
			{"max |√A·√A − A|", num(s.SquareResidual)},
			{"tolerance", num(s.Tolerance)},
			{"within tolerance", strconv.FormatBool(s.WithinTolerance)},
		}); err != nil {
			return err
		}
	}

	if f := rep.Fractional; f != nil {
		b.WriteString(pterm.DefaultSection.Sprint("Fractional powers A^α"))
		data := pterm.TableData{{"α", "λ^α", "A^α", "fit max error"}}
		for _, e := range f.Entries {
			data = append(data, []string{num(e.Alpha), nums(e.Transformed), matrixCell(e.Matrix), num(e.FitMaxError)})
		}
		if err := table(&b, data); err != nil {
			return err
		}
	}

	if a := rep.Apply; a != nil {
		mode := "exact"
		if a.Approx {
			mode = "polynomial"
		}
		b.WriteString(pterm.DefaultSection.Sprintf("f(A) for %s (%s)", a.Func, mode))
		data := pterm.TableData{
			{"quantity", "value"},
			{"λ", nums(a.Eigenvalues)},
			{"f(λ)", nums(a.Transformed)},
			{"f(A)", matrixCell(a.Matrix)},
		}
		if a.LUDiff != nil {
			data = append(data, []string{"max |Δ| vs LU inverse", num(*a.LUDiff)})
		}
		if a.MaxAbsError != nil {
			data = append(data, []string{"max |Δ| vs exact", num(*a.MaxAbsError)})
		}
		if err := table(&b, data); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func table(b *strings.Builder, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	b.WriteString(s)
	b.WriteString("\n")

	return nil
}

// thin picks n evenly spaced points including both ends.
func thin(pts []CurvePoint, n int) []CurvePoint {
	if len(pts) <= n {
		return pts
	}
	out := make([]CurvePoint, n)
	for i := range out {
		out[i] = pts[i*(len(pts)-1)/(n-1)]
	}

	return out
}

func num(x float64) string { return strconv.FormatFloat(x, 'g', 6, 64) }

func nums(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = num(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func matrixCell(m [][]float64) string {
	parts := make([]string, len(m))
	for i, row := range m {
		parts[i] = nums(row)
	}

	return strings.Join(parts, " ")
}
