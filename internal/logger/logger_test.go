package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/channeld/internal/config"
)

func TestNewLoggerServiceWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	svc, err := NewLoggerService(cfg)
	require.NoError(t, err)
	assert.Nil(t, svc.GetApplication())

	// no-op without an application
	svc.Shutdown()
}

func TestNilLoggerService(t *testing.T) {
	var svc *LoggerService
	assert.Nil(t, svc.GetApplication())
	svc.Shutdown()
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLogger(cfg)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	cfg.Logging.Level = ""
	cfg.Environment = "development"
	l = NewLogger(cfg)
	assert.Equal(t, zerolog.DebugLevel, l.GetLevel())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()
	got := WithTraceContext(base, nil)
	assert.Equal(t, base, got)
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, int(tt.want), GetPgxTraceLogLevel(tt.in))
		})
	}
}
