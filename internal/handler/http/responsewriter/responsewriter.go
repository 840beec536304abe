// Package responsewriter wraps http.ResponseWriter so the logging and
// metrics middleware can see the status code and body size after the
// handler has run.
package responsewriter

import (
	"net/http"
)

// ResponseWriter records the status code and the number of body bytes
// passing through the underlying http.ResponseWriter.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int
	headerWritten bool
}

// Wrap returns a recording wrapper around w. The status code reads as 200
// until a handler writes something else.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code written; later calls are
// ignored, matching net/http's superfluous-WriteHeader behavior.
func (w *ResponseWriter) WriteHeader(statusCode int) {
	if !w.headerWritten {
		w.statusCode = statusCode
		w.headerWritten = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// Write forwards the body bytes and adds them to the running total. A Write
// before any WriteHeader commits the implicit 200.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the status code the handler committed.
func (w *ResponseWriter) StatusCode() int {
	return w.statusCode
}

// BytesWritten returns the total body size written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytesWritten
}

// Unwrap exposes the wrapped writer so http.ResponseController keeps
// working through this type.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
