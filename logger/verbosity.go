// SPDX-License-Identifier: MIT

package logger

import "go.uber.org/zap/zapcore"

// Verbosity levels for the repeated -v flag.
const (
	VerbosityUser  = 0 // results and warnings only
	VerbosityInfo  = 1 // -v: + section progress
	VerbosityDebug = 2 // -vv: + fit coefficients, timings
)

// VerbosityToLevel maps a -v count to a zap level.
//
//	0     -> WarnLevel
//	1     -> InfoLevel
//	2+    -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
