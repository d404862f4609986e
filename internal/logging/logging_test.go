package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitVerbose(t *testing.T) {
	// Smoke test: should not panic.
	Init(true)
	if !zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled when verbose")
	}
}

func TestInitQuiet(t *testing.T) {
	Init(false)
	if zap.L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be disabled by default")
	}
}

func TestNewWritesConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(false, zapcore.AddSync(&buf))
	logger.Info("simulation complete", zap.Int("providers", 2))
	logger.Debug("hidden")
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "simulation complete") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, `"providers": 2`) {
		t.Errorf("missing structured field: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
}
