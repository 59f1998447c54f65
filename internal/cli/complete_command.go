package cli

import (
	"context"

	"todo-app/internal/domain"
)

// CompleteCommand handles done and undone
type CompleteCommand struct {
	app       *App
	completed bool
}

// NewCompleteCommand creates a handler that sets completion to completed
func NewCompleteCommand(app *App, completed bool) *CompleteCommand {
	return &CompleteCommand{app: app, completed: completed}
}

// Execute runs the command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	usage := "usage: todo done <id>"
	if !c.completed {
		usage = "usage: todo undone <id>"
	}
	id, err := parseID(args, usage)
	if err != nil {
		return c.app.errorHandler.Handle("update todo", err)
	}

	completed := c.completed
	todo, err := c.app.api.UpdateTodo(ctx, id, domain.TodoUpdate{Completed: &completed})
	if err != nil {
		return c.app.errorHandler.Handle("update todo", err)
	}

	if todo.Completed {
		c.app.ok("Completed #%d %s", todo.ID, todo.Title)
	} else {
		c.app.ok("Reopened #%d %s", todo.ID, todo.Title)
	}
	return nil
}
