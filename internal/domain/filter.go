package domain

import "fmt"

// Filter selects which todos a view shows
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter converts user input into a Filter. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q (use all, active or completed)", s)
	}
}

// Matches reports whether the todo belongs in the filtered view
func (f Filter) Matches(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Next cycles through Filters
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Apply returns the todos that match the filter, preserving order
func (f Filter) Apply(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes a list of todos
type Stats struct {
	Total     int
	Completed int
	Pending   int
}

// ComputeStats counts todos by completion
func ComputeStats(todos []Todo) Stats {
	var s Stats
	for _, t := range todos {
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}
