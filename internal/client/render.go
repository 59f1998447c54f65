package client

import (
	"fmt"
	"strings"

	"todo-app/internal/domain"
)

// createdLayout matches how the list shows creation dates
const createdLayout = "Jan 2, 2006, 03:04 PM"

// NotificationKind selects how a notification is styled
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

// Notification is a short message shown until it expires
type Notification struct {
	Text string
	Kind NotificationKind
}

// EmptyStateText is shown when the filtered view has nothing to list
func EmptyStateText(f domain.Filter) string {
	switch f {
	case domain.FilterActive:
		return "No active todos. Nice work!"
	case domain.FilterCompleted:
		return "No completed todos yet."
	default:
		return "No todos yet. Press a to add one."
	}
}

// RenderStats renders the total/completed/pending counters
func RenderStats(s domain.Stats) string {
	return fmt.Sprintf("%s  %s  %s",
		accentStyle.Render(fmt.Sprintf("Total: %d", s.Total)),
		successStyle.Render(fmt.Sprintf("Completed: %d", s.Completed)),
		pendingStyle.Render(fmt.Sprintf("Pending: %d", s.Pending)),
	)
}

// RenderFilters renders the filter tabs with the active one highlighted
func RenderFilters(active domain.Filter) string {
	tabs := make([]string, 0, len(domain.Filters))
	for _, f := range domain.Filters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == active {
			tabs = append(tabs, selectedStyle.Render(" "+label+" "))
		} else {
			tabs = append(tabs, mutedStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

// RenderTodo renders one todo line with its optional description and date
func RenderTodo(t domain.Todo, selected bool) string {
	box := boxUnchecked
	title := t.Title
	if t.Completed {
		box = boxChecked
		title = doneStyle.Render(title)
	}

	cursor := "  "
	if selected {
		cursor = accentStyle.Render("> ")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s%s %s %s", cursor, box, mutedStyle.Render(fmt.Sprintf("#%d", t.ID)), title))
	if t.Description != "" {
		b.WriteString("\n      " + mutedStyle.Render(t.Description))
	}
	b.WriteString("\n      " + mutedStyle.Render("Created: "+t.CreatedAt.Local().Format(createdLayout)))
	return b.String()
}

// RenderList renders the filtered todos, or the empty state
func RenderList(s *State, cursor int) string {
	visible := s.Visible()
	if len(visible) == 0 {
		return mutedStyle.Render(EmptyStateText(s.Filter()))
	}

	lines := make([]string, 0, len(visible))
	for i, t := range visible {
		lines = append(lines, RenderTodo(t, i == cursor))
	}
	return strings.Join(lines, "\n")
}

// RenderNotification renders a transient notification, or nothing
func RenderNotification(n *Notification) string {
	if n == nil {
		return ""
	}
	if n.Kind == NotifyError {
		return errorStyle.Render("✖ " + n.Text)
	}
	return successStyle.Render("✔ " + n.Text)
}

// RenderView renders the whole screen body for a state
func RenderView(s *State, cursor int, online bool) string {
	status := successStyle.Render("● online")
	if !online {
		status = errorStyle.Render("● offline")
	}

	header := titleStyle.Render("Todo List") + "  " + status
	body := []string{
		header,
		RenderStats(s.Stats()),
		RenderFilters(s.Filter()),
		"",
		RenderList(s, cursor),
	}
	return panelStyle.Render(strings.Join(body, "\n"))
}
