package services

import (
	"context"
	"strconv"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
	"todo-app/internal/repository"
	"todo-app/internal/validation"
)

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo          repository.Repository
	mapper        *domain.Mapper
	todoValidator *validation.TodoValidator
}

// NewTodoService creates a new TodoService instance
func NewTodoService(repo repository.Repository) TodoService {
	return &todoServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		todoValidator: validation.NewTodoValidator(),
	}
}

// toAppError lifts a validation failure into the application error taxonomy
func toAppError(err error) error {
	if !validation.IsValidationError(err) {
		return err
	}
	validationErr := err.(*validation.ValidationError)
	if validationErr.HasType(validation.ErrorTypeNoFields) {
		return errors.NewNoFieldsError()
	}
	return errors.NewValidationError(validationErr.GetUserFriendlyMessage(), validationErr)
}

// checkID rejects ids that can never exist as not found
func (s *todoServiceImpl) checkID(id int64) error {
	if s.todoValidator.ValidateTodoID(id) != nil {
		return errors.NewNotFoundError("todo", strconv.FormatInt(id, 10))
	}
	return nil
}

// ListTodos returns every todo, newest first
func (s *todoServiceImpl) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	dbTodos, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Todo.FromDatabaseSlice(dbTodos), nil
}

// GetTodo retrieves a todo by its ID
func (s *todoServiceImpl) GetTodo(ctx context.Context, id int64) (*domain.Todo, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}

	dbTodo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	todo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &todo, nil
}

// CreateTodo validates and stores a new todo. Nothing reaches the store when
// the title is invalid.
func (s *todoServiceImpl) CreateTodo(ctx context.Context, title, description string) (*domain.Todo, error) {
	newTodo := domain.NewTodo(title, description)
	if err := s.todoValidator.ValidateTodoForCreation(newTodo); err != nil {
		return nil, toAppError(err)
	}

	dbTodo := s.mapper.Todo.ToDatabase(newTodo)
	if err := s.repo.CreateTodo(ctx, &dbTodo); err != nil {
		return nil, err
	}

	created := s.mapper.Todo.FromDatabase(dbTodo)
	return &created, nil
}

// UpdateTodo applies a partial update. A missing todo is reported as not found
// even when the update itself is invalid.
func (s *todoServiceImpl) UpdateTodo(ctx context.Context, id int64, update domain.TodoUpdate) (*domain.Todo, error) {
	if err := s.checkID(id); err != nil {
		return nil, err
	}

	update = update.Trimmed()
	if err := s.todoValidator.ValidateTodoUpdate(update); err != nil {
		if _, getErr := s.repo.GetTodo(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, toAppError(err)
	}

	dbTodo, err := s.repo.UpdateTodo(ctx, id, s.mapper.Update.ToDatabase(update))
	if err != nil {
		return nil, err
	}

	todo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &todo, nil
}

// DeleteTodo removes a todo
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.checkID(id); err != nil {
		return err
	}
	return s.repo.DeleteTodo(ctx, id)
}

// DeleteCompletedTodos removes all completed todos and returns the count
func (s *todoServiceImpl) DeleteCompletedTodos(ctx context.Context) (int64, error) {
	return s.repo.DeleteCompletedTodos(ctx)
}
