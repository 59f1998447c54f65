package cli

import (
	"context"
)

// DeleteCommand handles the rm command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := parseID(args, "usage: todo rm <id>")
	if err != nil {
		return c.app.errorHandler.Handle("delete todo", err)
	}

	if err := c.app.api.DeleteTodo(ctx, id); err != nil {
		return c.app.errorHandler.Handle("delete todo", err)
	}

	c.app.ok("Todo deleted successfully! #%d", id)
	return nil
}

// ClearCommand handles the clear command
type ClearCommand struct {
	app *App
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{app: app}
}

// Execute removes every completed todo
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	result, err := c.app.api.ClearCompleted(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("clear completed todos", err)
	}

	c.app.ok("%s", result.Message)
	return nil
}
