package api

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"todo-app/internal/logging"
)

// ContextKey is a custom type to avoid context key collisions
type ContextKey string

// RequestIDKey stores the request id in the request context
const RequestIDKey ContextKey = "requestId"

// RequestIDHeader carries the request id on requests and responses
const RequestIDHeader = "X-Request-ID"

// RequestIDFromContext returns the id assigned by RequestID, if any
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestID tags every request with an id, reusing one supplied by the caller
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, id)))
	})
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog logs one line per request
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Infof("%s %s %d %s [%s]\n", r.Method, r.URL.Path, rec.status,
			time.Since(start).Round(time.Microsecond), RequestIDFromContext(r.Context()))
	})
}

// Recover turns a panicking handler into a 500 response
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.Errorf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				respondWithJSON(w, http.StatusInternalServerError, errorEnvelope{
					Error:   "Internal server error",
					Message: fmt.Sprint(rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
