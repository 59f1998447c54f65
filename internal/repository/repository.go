package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"todo-app/internal/errors"
	"todo-app/internal/store"
)

// Repository defines the interface for todo persistence
type Repository interface {
	// Create operations
	CreateTodo(ctx context.Context, todo *Todo) error

	// Read operations
	GetTodo(ctx context.Context, id int64) (*Todo, error)
	ListTodos(ctx context.Context) ([]*Todo, error)

	// Update operations
	UpdateTodo(ctx context.Context, id int64, changes TodoChanges) (*Todo, error)

	// Delete operations
	DeleteTodo(ctx context.Context, id int64) error
	DeleteCompletedTodos(ctx context.Context) (int64, error)
}

// SQLRepository implements Repository on top of a store
type SQLRepository struct {
	db  store.Store
	now func() time.Time
}

// New creates a repository that stamps rows with the system clock
func New(db store.Store) *SQLRepository {
	return NewWithClock(db, time.Now)
}

// NewWithClock creates a repository that stamps rows using now
func NewWithClock(db store.Store, now func() time.Time) *SQLRepository {
	return &SQLRepository{db: db, now: now}
}

// timestamp is stored at microsecond precision, the finest all backends keep
func (r *SQLRepository) timestamp() interface{} {
	return r.db.BindTime(r.now().UTC().Truncate(time.Microsecond))
}

// CreateTodo inserts the todo and refreshes it with the stored row
func (r *SQLRepository) CreateTodo(ctx context.Context, todo *Todo) error {
	query := `
	INSERT INTO todos (title, description, completed, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)`

	now := r.timestamp()
	id, err := r.db.Insert(ctx, query, todo.Title, todo.Description, false, now, now)
	if err != nil {
		return HandleDatabaseError("create todo", err)
	}

	created, err := r.GetTodo(ctx, id)
	if err != nil {
		return err
	}

	*todo = *created
	return nil
}

// GetTodo retrieves a todo by ID
func (r *SQLRepository) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTodo, "todo", strconv.FormatInt(id, 10), id)
}

// ListTodos retrieves every todo, newest first
func (r *SQLRepository) ListTodos(ctx context.Context) ([]*Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at DESC, id DESC`
	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos")
}

// UpdateTodo applies the non-nil changes and refreshes updated_at in a single
// statement. A missing row is reported as not found.
func (r *SQLRepository) UpdateTodo(ctx context.Context, id int64, changes TodoChanges) (*Todo, error) {
	if changes.IsEmpty() {
		return nil, errors.NewNoFieldsError()
	}

	var sets []string
	var args []interface{}
	if changes.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *changes.Title)
	}
	if changes.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *changes.Description)
	}
	if changes.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *changes.Completed)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, r.timestamp(), id)

	query := `UPDATE todos SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	idStr := strconv.FormatInt(id, 10)
	if err := ExecuteWithRowsAffected(ctx, r.db, "update todo", query, "todo", idStr, args...); err != nil {
		return nil, err
	}

	return r.GetTodo(ctx, id)
}

// DeleteTodo deletes a todo by ID
func (r *SQLRepository) DeleteTodo(ctx context.Context, id int64) error {
	query := `DELETE FROM todos WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, "delete todo", query, "todo", strconv.FormatInt(id, 10), id)
}

// DeleteCompletedTodos removes every completed todo and returns how many went
func (r *SQLRepository) DeleteCompletedTodos(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM todos WHERE completed = ?`, true)
	if err != nil {
		return 0, HandleDatabaseError("delete completed todos", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, HandleDatabaseError("get rows affected", err)
	}
	return count, nil
}
