package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a pagination request with structured fields.
// This enables request tracing and debugging.
func LogRequest(logger *slog.Logger, requestID string, params Params) {
	logger.Info("Paginated request",
		"request_id", requestID,
		"page", params.Page,
		"size", params.Size)
}

// LogResponse logs a pagination response with duration and status.
// This enables performance monitoring and debugging.
func LogResponse(logger *slog.Logger, requestID string, params Params, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"request_id", requestID,
		"page", params.Page,
		"size", params.Size,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, requestID string, params Params, err error, errorType string) {
	logger.Error("Pagination error",
		"request_id", requestID,
		"page", params.Page,
		"size", params.Size,
		"error", err.Error(),
		"error_type", errorType)
}
