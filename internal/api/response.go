package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"todo-app/internal/errors"
	"todo-app/internal/logging"
)

// envelope is the JSON body of every todo response
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int64      `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Path    string      `json:"path,omitempty"`
}

// errorEnvelope carries the cause of a server-side failure
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondWithJSON formats and sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logging.Errorf("encode response: %v\n", err)
		code = http.StatusInternalServerError
		response = []byte(`{"success":false,"error":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func count(n int64) *int64 {
	return &n
}

// respondWithError maps an application error onto a status code and envelope.
// operation names the attempted action for unexpected failures, as in
// "Failed to fetch todos".
func respondWithError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch errors.HTTPStatus(err) {
	case http.StatusNotFound:
		respondWithJSON(w, http.StatusNotFound, envelope{Error: "Todo not found"})
	case http.StatusBadRequest:
		respondWithJSON(w, http.StatusBadRequest, envelope{Error: errors.GetUserMessage(err)})
	default:
		message := err.Error()
		if appErr, ok := errors.AsAppError(err); ok {
			message = appErr.CauseMessage()
			if id := RequestIDFromContext(r.Context()); id != "" {
				appErr.WithContext(requestIDContextKey, id)
			}
		}
		if errors.ShouldLogError(err) {
			logging.Errorf("%s [%s]%s: %v\n", operation, errors.GetErrorCode(err), requestTag(err), err)
		}
		respondWithJSON(w, http.StatusInternalServerError, errorEnvelope{
			Error:   "Failed to " + operation,
			Message: message,
		})
	}
}

// respondInvalidPayload reports a request body that is not a single JSON object
func respondInvalidPayload(w http.ResponseWriter, err error) {
	respondWithJSON(w, http.StatusBadRequest, errorEnvelope{
		Error:   "Invalid request payload",
		Message: err.Error(),
	})
}

const requestIDContextKey = "request_id"

// requestTag formats the request id attached to err for a log line
func requestTag(err error) string {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return ""
	}
	if id, ok := appErr.GetContext(requestIDContextKey); ok {
		return fmt.Sprintf(" request=%v", id)
	}
	return ""
}
