// Package respond provides utilities for sending HTTP responses in JSON
// format. It includes error handling with sanitization to prevent leaking
// internal details to clients.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent; the error can only be logged.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// safeErrorSubstrings marks validation-style messages that may be shown to
// clients verbatim.
var safeErrorSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"must not",
	"cannot be",
	"unavailable",
	"too long",
	"too short",
}

// SafeError sanitizes error messages before returning them to users.
// Validation-style errors are returned as-is; 503 carries a fixed
// unavailability message; every other error (and every other 5xx) is
// logged and replaced with a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	// 503 never exposes the wrapped chain (call sites, breaker state).
	if code == http.StatusServiceUnavailable {
		JSON(w, code, map[string]string{"error": "storage unavailable"})
		return
	}

	msg := err.Error()
	lowerMsg := strings.ToLower(msg)

	isSafe := false
	for _, safe := range safeErrorSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// Internal server errors never leak details.
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
