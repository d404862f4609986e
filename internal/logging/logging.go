// Package logging configures the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init installs a console logger writing to stderr as the global zap logger.
// Verbose lowers the level from info to debug.
func Init(verbose bool) {
	zap.ReplaceGlobals(New(verbose, zapcore.Lock(os.Stderr)))
}

// New builds a console logger writing to w.
func New(verbose bool, w zapcore.WriteSyncer) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), w, level)
	if verbose {
		return zap.New(core, zap.AddCaller())
	}
	return zap.New(core)
}
