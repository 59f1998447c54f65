package domain

import (
	"todo-app/internal/repository"
)

// TodoMapper handles conversion between domain and database Todo models.
type TodoMapper struct{}

// NewTodoMapper creates a new TodoMapper instance.
func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

// ToDatabase converts a domain Todo to a database Todo.
func (m *TodoMapper) ToDatabase(domainTodo Todo) repository.Todo {
	return repository.Todo{
		ID:          domainTodo.ID,
		Title:       domainTodo.Title,
		Description: domainTodo.Description,
		Completed:   domainTodo.Completed,
		CreatedAt:   domainTodo.CreatedAt,
		UpdatedAt:   domainTodo.UpdatedAt,
	}
}

// FromDatabase converts a database Todo to a domain Todo.
func (m *TodoMapper) FromDatabase(dbTodo repository.Todo) Todo {
	return Todo{
		ID:          dbTodo.ID,
		Title:       dbTodo.Title,
		Description: dbTodo.Description,
		Completed:   dbTodo.Completed,
		CreatedAt:   dbTodo.CreatedAt,
		UpdatedAt:   dbTodo.UpdatedAt,
	}
}

// FromDatabaseSlice converts database Todos to domain Todos, keeping order.
func (m *TodoMapper) FromDatabaseSlice(dbTodos []*repository.Todo) []Todo {
	domainTodos := make([]Todo, len(dbTodos))
	for i, todo := range dbTodos {
		domainTodos[i] = m.FromDatabase(*todo)
	}
	return domainTodos
}

// UpdateMapper converts domain updates to repository column changes.
type UpdateMapper struct{}

// NewUpdateMapper creates a new UpdateMapper instance.
func NewUpdateMapper() *UpdateMapper {
	return &UpdateMapper{}
}

// ToDatabase converts a TodoUpdate to repository TodoChanges.
func (m *UpdateMapper) ToDatabase(update TodoUpdate) repository.TodoChanges {
	return repository.TodoChanges{
		Title:       update.Title,
		Description: update.Description,
		Completed:   update.Completed,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Todo   *TodoMapper
	Update *UpdateMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Todo:   NewTodoMapper(),
		Update: NewUpdateMapper(),
	}
}
