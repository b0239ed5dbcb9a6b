// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger and the field names used
// across the CLI and the walkthrough runner.
package logger
