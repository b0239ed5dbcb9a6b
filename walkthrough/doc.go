// SPDX-License-Identifier: MIT

// Package walkthrough runs the powers-and-roots tour of matrix functions as
// a program: build a 2×2 symmetric A from an angle and two eigenvalues, take
// integer powers, approximate √x by a Chebyshev polynomial on [a, 1], compare
// the exact √A with P(A), and map the spectrum through x^α.
//
// Each section returns plain data; Render turns a Report into terminal
// tables, JSON or YAML.
package walkthrough
