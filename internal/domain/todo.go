package domain

import (
	"strings"
	"time"
)

// Todo represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Todo struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTodo creates a new, not yet completed Todo.
func NewTodo(title, description string) Todo {
	return Todo{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
}

// String returns the title for display purposes.
func (t Todo) String() string {
	return t.Title
}

// TodoUpdate is a partial update. Only non-nil fields are applied.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}

// Trimmed returns a copy with surrounding whitespace removed from text fields.
func (u TodoUpdate) Trimmed() TodoUpdate {
	out := u
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		out.Title = &title
	}
	if u.Description != nil {
		description := strings.TrimSpace(*u.Description)
		out.Description = &description
	}
	return out
}
