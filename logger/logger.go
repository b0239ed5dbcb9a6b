// SPDX-License-Identifier: MIT

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger. It is a no-op until Initialize runs,
	// so packages may log before the CLI has parsed its flags.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected the JSON encoder.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. JSON output uses zap's production
// config; otherwise a compact console encoder writes to stderr so that
// report output on stdout stays clean.
func Initialize(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput
	level := VerbosityToLevel(verbosity)

	var (
		zapLogger *zap.Logger
		err       error
	)
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		zapLogger = zap.New(
			zapcore.NewCore(consoleEncoder(), zapcore.AddSync(os.Stderr), level),
		)
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()

	return nil
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewConsoleEncoder(cfg)
}
