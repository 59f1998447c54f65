package repository

import (
	"database/sql"

	"todo-app/internal/store"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// todoColumns is the column order ScanTodo expects
const todoColumns = "id, title, description, completed, created_at, updated_at"

// ScanTodo scans a single todo from a database row
func ScanTodo(scanner Scanner) (*Todo, error) {
	todo := &Todo{}
	var description sql.NullString
	var createdAt, updatedAt store.Timestamp

	err := scanner.Scan(
		&todo.ID,
		&todo.Title,
		&description,
		&todo.Completed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	todo.Description = description.String
	todo.CreatedAt = createdAt.Time
	todo.UpdatedAt = updatedAt.Time
	return todo, nil
}

// ScanTodos scans multiple todos from database rows
func ScanTodos(rows Rows) ([]*Todo, error) {
	todos := make([]*Todo, 0)
	for rows.Next() {
		todo, err := ScanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
