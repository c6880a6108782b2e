package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/engine-maintenance-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestLoggingCapture_NamedWithCategory(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.WarnLevel)

	logger := GetLoggerWith(LoggerNameFleetCore, zap.String(LoggerFieldCategory, LoggerCategoryScoring))
	logger.Info("dropped below level")
	logger.Warn("Prediction skipped", zap.Uint("engine_id", 7))

	logOutput := buf.String()
	if strings.Contains(logOutput, "dropped below level") {
		t.Errorf("expected info line to be filtered, got: %s", logOutput)
	}
	for _, want := range []string{`"logger":"fleet_core"`, `"category":"scoring"`, `"engine_id":7`} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("expected log output to contain %s, got: %s", want, logOutput)
		}
	}
}

func TestLogsDir(t *testing.T) {
	t.Setenv(EnvKeyLogDir, "/var/log/ems")
	if got := logsDir(); got != "/var/log/ems" {
		t.Errorf("expected EMS_LOG_DIR to win, got: %s", got)
	}

	t.Setenv(EnvKeyLogDir, "")
	if got := logsDir(); !strings.HasSuffix(got, "logs") {
		t.Errorf("expected ./logs fallback, got: %s", got)
	}
}

func TestSyncLogger(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetLogger().Info("before sync")
	SyncLogger()

	if !strings.Contains(buf.String(), "before sync") {
		t.Errorf("expected flushed line, got: %s", buf.String())
	}
}
