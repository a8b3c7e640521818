package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Only the path is
// logged: search queries may carry the very values the gate protects.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &accessLogWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.WithLevel(accessLogLevel(lw.statusOrOK())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Bool("has_query", r.URL.RawQuery != "").
			Int("status", lw.statusOrOK()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// accessLogLevel raises server failures above the regular access log noise.
func accessLogLevel(status int) zerolog.Level {
	if status >= http.StatusInternalServerError {
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// accessLogWriter records the status code and body size of a response.
// A handler that writes nothing is reported as 200, which is what
// net/http sends in that case.
type accessLogWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *accessLogWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *accessLogWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *accessLogWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *accessLogWriter) statusOrOK() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
