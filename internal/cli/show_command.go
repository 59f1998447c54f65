package cli

import (
	"context"
	"time"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute prints every field of a single todo
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args, "usage: todo show <id>")
	if err != nil {
		return c.app.errorHandler.Handle("fetch todo", err)
	}

	todo, err := c.app.api.GetTodo(ctx, id)
	if err != nil {
		return c.app.errorHandler.Handle("fetch todo", err)
	}

	status := "active"
	if todo.Completed {
		status = "completed"
	}
	c.app.field("ID", todo.ID)
	c.app.field("Title", todo.Title)
	if todo.Description != "" {
		c.app.field("Description", todo.Description)
	}
	c.app.field("Status", status)
	c.app.field("Created", todo.CreatedAt.Local().Format(time.DateTime))
	c.app.field("Updated", todo.UpdatedAt.Local().Format(time.DateTime))
	return nil
}
