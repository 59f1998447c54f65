package cli

import (
	"fmt"

	"todo-app/internal/client"
	"todo-app/internal/errors"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle turns a failure into the short message a user should see
func (eh *ErrorHandler) Handle(operation string, err error) error {
	// API failures already carry the server's envelope text
	if apiErr, ok := err.(*client.APIError); ok {
		return fmt.Errorf("failed to %s: %s", operation, client.MessageFor(apiErr))
	}

	if errors.IsAppError(err) {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}
