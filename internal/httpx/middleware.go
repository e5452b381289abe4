// Package httpx provides HTTP middleware shared by the serve mode.
package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sahil-d-patel/AggieAce/internal/telemetry"
)

// Logger returns middleware that logs each request and records request
// telemetry.
func Logger() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			telemetry.RecordRequest(r.Context(), r.Method, r.URL.Path, sw.status, duration)
			slog.InfoContext(r.Context(), "Handled request",
				"method", r.Method, "path", r.URL.Path, "status", sw.status, "duration", duration)
		})
	}
}

// Recovery returns middleware that converts panics into 500 responses.
func Recovery() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.ErrorContext(r.Context(), "Panic while handling request", "panic", rec, "path", r.URL.Path)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
