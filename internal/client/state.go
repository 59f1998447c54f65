package client

import "todo-app/internal/domain"

// State is the client's local copy of the server's todos plus the active
// filter. The server is the source of truth; State only merges what the API
// returns.
type State struct {
	todos  []domain.Todo
	filter domain.Filter
}

// NewState creates an empty state showing all todos
func NewState() *State {
	return &State{
		todos:  []domain.Todo{},
		filter: domain.FilterAll,
	}
}

// Replace discards the local list in favour of a full server listing
func (s *State) Replace(todos []domain.Todo) {
	s.todos = make([]domain.Todo, len(todos))
	copy(s.todos, todos)
}

// Prepend adds a newly created todo at the top
func (s *State) Prepend(todo domain.Todo) {
	s.todos = append([]domain.Todo{todo}, s.todos...)
}

// ReplaceByID replaces the todo with the same id. A todo that is no longer held
// locally is ignored; the next full fetch brings it back.
func (s *State) ReplaceByID(todo domain.Todo) bool {
	for i := range s.todos {
		if s.todos[i].ID == todo.ID {
			s.todos[i] = todo
			return true
		}
	}
	return false
}

// Remove drops the todo with the given id and reports whether it was present
func (s *State) Remove(id int64) bool {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the todo with the given id
func (s *State) Find(id int64) (domain.Todo, bool) {
	for _, t := range s.todos {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Todo{}, false
}

// Todos returns a copy of every todo in display order
func (s *State) Todos() []domain.Todo {
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// Visible returns the todos selected by the current filter
func (s *State) Visible() []domain.Todo {
	return s.filter.Apply(s.todos)
}

// Stats counts every todo regardless of the filter
func (s *State) Stats() domain.Stats {
	return domain.ComputeStats(s.todos)
}

func (s *State) Filter() domain.Filter {
	return s.filter
}

func (s *State) SetFilter(f domain.Filter) {
	s.filter = f
}
