package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const (
	// requestIDKey is the context key under which the request identifier is stored.
	requestIDKey contextKey = "request_id"

	// RequestIDHeader is the response header carrying the request identifier.
	RequestIDHeader = "X-Request-ID"
)

// RequestIDFromContext retrieves the identifier the request logger assigned
// to the current request.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// requestLogger assigns every request a fresh UUID, exposed through the
// request context and the X-Request-ID response header, and emits exactly one
// structured record per request: an INFO record with the resulting status on
// completion, or an ERROR record with a fixed 500 status and the failure text
// when the handler chain panics. A panic is re-raised unchanged so the outer
// recoverer produces the actual error response.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set(RequestIDHeader, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			latency := round2(float64(time.Since(start)) / float64(time.Millisecond))

			if rec := recover(); rec != nil {
				s.log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status_code", http.StatusInternalServerError).
					Float64("latency_ms", latency).
					Str("request_id", requestID).
					Str("error", fmt.Sprint(rec)).
					Msg("http request")
				panic(rec)
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			s.log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status_code", status).
				Float64("latency_ms", latency).
				Str("request_id", requestID).
				Msg("http request")
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
