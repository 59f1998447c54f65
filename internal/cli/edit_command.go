package cli

import (
	"context"

	"todo-app/internal/domain"
)

// EditCommand handles the edit command. Nil fields are left untouched.
type EditCommand struct {
	app         *App
	Title       *string
	Description *string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args, "usage: todo edit <id> [--title text] [--description text]")
	if err != nil {
		return c.app.errorHandler.Handle("update todo", err)
	}

	update := domain.TodoUpdate{Title: c.Title, Description: c.Description}
	todo, err := c.app.api.UpdateTodo(ctx, id, update)
	if err != nil {
		return c.app.errorHandler.Handle("update todo", err)
	}

	c.app.ok("Todo updated successfully #%d %s", todo.ID, todo.Title)
	return nil
}
