package utils_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"content-service/internal/utils"
)

func TestNewLoggerLevel(t *testing.T) {
	logger, err := utils.NewLogger(false, "error")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	core := logger.Desugar().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info enabled despite error level")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Error("error level not enabled")
	}
}

func TestNewLoggerDefaultLevel(t *testing.T) {
	logger, err := utils.NewLogger(true, "")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("dev profile should enable debug")
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, err := utils.NewLogger(false, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
