package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"todo-app/internal/client"
	"todo-app/internal/domain"
	"todo-app/internal/errors"
)

// TodoAPI is the remote todo API as seen by the one-shot commands
type TodoAPI interface {
	client.API
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)
	Info(ctx context.Context) (*client.Info, error)
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// App carries what every command needs: the API and where to print
type App struct {
	api          TodoAPI
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(api TodoAPI, out io.Writer) *App {
	return &App{
		api:          api,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

func (a *App) ok(format string, args ...interface{}) {
	fmt.Fprintln(a.out, successStyle.Render("✔ "+fmt.Sprintf(format, args...)))
}

func (a *App) field(label string, value interface{}) {
	fmt.Fprintf(a.out, "%s %v\n", labelStyle.Render(label+":"), value)
}

// parseID parses a todo id argument
func parseID(args []string, usage string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.NewInvalidInputError("id", args, usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewInvalidInputError("id", args[0], "must be a positive integer")
	}
	return id, nil
}
