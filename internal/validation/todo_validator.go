package validation

import (
	"todo-app/internal/domain"
)

// TodoValidator provides validation for Todo-related operations
type TodoValidator struct {
	validator *Validator
}

// NewTodoValidator creates a new todo validator
func NewTodoValidator() *TodoValidator {
	return &TodoValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a title for creation or update
func (tv *TodoValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()
	tv.checkTitle(validationError, title)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func (tv *TodoValidator) checkTitle(validationError *ValidationError, title string) {
	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return
	}

	if !tv.validator.IsValidStringLength(trimmed, 1, TitleMaxLength) {
		validationError.AddInvalidLengthError("title", trimmed, 0, TitleMaxLength)
	}
}

// ValidateTodoForCreation validates a new todo
func (tv *TodoValidator) ValidateTodoForCreation(todo domain.Todo) error {
	return tv.ValidateTitle(todo.Title)
}

// ValidateTodoUpdate validates a partial update. An update must name at least
// one field, and a title it carries must itself be valid.
func (tv *TodoValidator) ValidateTodoUpdate(update domain.TodoUpdate) error {
	validationError := NewValidationError()

	if update.IsEmpty() {
		validationError.AddNoFieldsError()
		return validationError
	}

	if update.Title != nil {
		tv.checkTitle(validationError, *update.Title)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTodoID validates a todo ID
func (tv *TodoValidator) ValidateTodoID(id int64) error {
	if !tv.validator.IsValidTodoID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("todo_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
