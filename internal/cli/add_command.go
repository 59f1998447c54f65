package cli

import (
	"context"
	"strings"

	"todo-app/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app         *App
	Description string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command. Every argument is joined into the title.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("title", "", "usage: todo add \"your title\" [-d description]")
	}
	title := strings.Join(args, " ")

	todo, err := c.app.api.CreateTodo(ctx, title, c.Description)
	if err != nil {
		return c.app.errorHandler.Handle("create todo", err)
	}

	c.app.ok("Todo created successfully! #%d %s", todo.ID, todo.Title)
	return nil
}
