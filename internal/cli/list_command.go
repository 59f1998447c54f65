package cli

import (
	"context"
	"fmt"

	"todo-app/internal/client"
	"todo-app/internal/domain"
)

// ListCommand handles the ls command
type ListCommand struct {
	app    *App
	Filter string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	filter, err := domain.ParseFilter(c.Filter)
	if err != nil {
		return c.app.errorHandler.Handle("list todos", err)
	}

	todos, err := c.app.api.ListTodos(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list todos", err)
	}

	state := client.NewState()
	state.Replace(todos)
	state.SetFilter(filter)

	// -1 leaves every row unselected
	fmt.Fprintln(c.app.out, client.RenderList(state, -1))
	fmt.Fprintln(c.app.out)
	fmt.Fprintln(c.app.out, client.RenderStats(state.Stats()))
	return nil
}
