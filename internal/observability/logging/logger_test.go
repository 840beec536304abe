package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"catalog-api/internal/handler/http/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "default log level (info)", logLevel: ""},
		{name: "debug log level", logLevel: "debug"},
		{name: "invalid log level defaults to info", logLevel: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}
			assert.NotNil(t, NewLogger())
			assert.NotNil(t, NewTextLogger())
		})
	}
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := requestid.WithRequestID(context.Background(), "req-123")

	logger := WithRequestID(ctx, baseLogger)
	logger.Info("test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "req-123", logEntry["request_id"])
	assert.Equal(t, "test message", logEntry["msg"])
}

func TestWithRequestID_EmptyRequestID(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger := WithRequestID(context.Background(), baseLogger)
	logger.Info("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	baseLogger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger := WithFields(baseLogger, map[string]interface{}{
		"backend": "postgres",
		"count":   42,
	})
	logger.Info("test message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "postgres", logEntry["backend"])
	assert.Equal(t, float64(42), logEntry["count"])
}

func TestFromContext(t *testing.T) {
	t.Run("with logger in context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Info("via context")
		assert.Contains(t, buf.String(), "via context")
	})

	t.Run("without logger in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		assert.Equal(t, slog.Default(), logger)
	})

	t.Run("with invalid value in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), loggerContextKey, "not a logger")
		assert.Equal(t, slog.Default(), FromContext(ctx))
	})
}
