package repository

import "time"

// Todo is a row of the todos table
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoChanges lists the columns a partial update may touch.
// A nil field is left unchanged.
type TodoChanges struct {
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether no column would be changed
func (c TodoChanges) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Completed == nil
}
