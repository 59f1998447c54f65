package client

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-app/internal/domain"
)

func TestEmptyStateText(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range domain.Filters {
		text := EmptyStateText(f)
		assert.NotEmpty(t, text)
		seen[text] = true
	}
	assert.Len(t, seen, len(domain.Filters))
}

func TestRenderList(t *testing.T) {
	s := NewState()
	assert.Contains(t, RenderList(s, 0), EmptyStateText(domain.FilterAll))

	s.Replace(sampleTodos())
	out := RenderList(s, 0)
	assert.Contains(t, out, "Walk dog")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "before Friday")
	assert.Contains(t, out, "Created: ")
	assert.Less(t, strings.Index(out, "Walk dog"), strings.Index(out, "Buy milk"))

	s.SetFilter(domain.FilterCompleted)
	out = RenderList(s, 0)
	assert.Contains(t, out, "Rent")
	assert.NotContains(t, out, "Walk dog")

	s.Replace([]domain.Todo{{ID: 1, Title: "open"}})
	assert.Contains(t, RenderList(s, 0), EmptyStateText(domain.FilterCompleted))
}

func TestRenderTodo(t *testing.T) {
	todo := sampleTodos()[0]

	plain := RenderTodo(todo, false)
	assert.Contains(t, plain, boxUnchecked)
	assert.NotContains(t, plain, "> ")

	selected := RenderTodo(todo, true)
	assert.Contains(t, selected, "> ")

	todo.Completed = true
	assert.Contains(t, RenderTodo(todo, false), boxChecked)
}

func TestRenderStats(t *testing.T) {
	out := RenderStats(domain.Stats{Total: 5, Completed: 2, Pending: 3})
	assert.Contains(t, out, "Total: 5")
	assert.Contains(t, out, "Completed: 2")
	assert.Contains(t, out, "Pending: 3")
}

func TestRenderNotification(t *testing.T) {
	assert.Empty(t, RenderNotification(nil))
	assert.Contains(t, RenderNotification(&Notification{Text: "Saved", Kind: NotifySuccess}), "Saved")
	assert.Contains(t, RenderNotification(&Notification{Text: "Broken", Kind: NotifyError}), "Broken")
}

func TestRenderView(t *testing.T) {
	s := NewState()
	s.Replace(sampleTodos())

	online := RenderView(s, 0, true)
	assert.Contains(t, online, "Todo List")
	assert.Contains(t, online, "online")
	assert.Contains(t, online, "Active")

	assert.Contains(t, RenderView(s, 0, false), "offline")
}
