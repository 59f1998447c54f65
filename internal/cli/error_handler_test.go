package cli

import (
	"errors"
	"testing"

	"todo-app/internal/client"
	apperrors "todo-app/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "API error",
			operation: "create todo",
			err:       &client.APIError{Status: 400, Message: "Title is required"},
			expected:  "failed to create todo: Title is required",
		},
		{
			name:      "API error without message",
			operation: "list todos",
			err:       &client.APIError{Status: 502},
			expected:  "failed to list todos: Something went wrong",
		},
		{
			name:      "Connection failure",
			operation: "list todos",
			err:       &client.APIError{Message: client.ConnectionErrorMessage, Err: errors.New("dial tcp: refused")},
			expected:  "failed to list todos: Error connecting to server",
		},
		{
			name:      "Invalid input error",
			operation: "delete todo",
			err:       apperrors.NewInvalidInputError("id", "abc", "must be a positive integer"),
			expected:  "failed to delete todo: invalid input for id: must be a positive integer",
		},
		{
			name:      "Database error",
			operation: "save todo",
			err:       apperrors.NewDatabaseError("insert", errors.New("timeout")),
			expected:  "failed to save todo: A database error occurred. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorHandler().Handle("process", cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected %v to wrap %v", err, cause)
	}
}
