// SPDX-License-Identifier: MIT

package logger

// Standard field names for structured logging.
const (
	FieldComponent  = "component"
	FieldSection    = "section"
	FieldFormat     = "format"
	FieldFile       = "file"
	FieldDurationMS = "duration_ms"

	// numerics
	FieldDegree    = "degree"
	FieldDomainLow = "domain_low"
	FieldMaxError  = "max_error"
	FieldTolerance = "tolerance"
	FieldBackend   = "backend"
	FieldPower     = "k"
	FieldAlpha     = "alpha"
	FieldFunc      = "func"
)
