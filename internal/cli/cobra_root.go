package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"todo-app/internal/client"
	"todo-app/internal/config"
)

// APIFactory builds the API client once configuration is known
type APIFactory func(cfg *config.Config) TodoAPI

// DefaultAPIFactory talks HTTP to cfg.Client.APIURL
func DefaultAPIFactory(cfg *config.Config) TodoAPI {
	return client.New(cfg.Client.APIURL, cfg.Client.Timeout)
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	config     *config.Config
	app        *App
	newAPI     APIFactory
	out        io.Writer
	runUI      func(api client.API, pollInterval time.Duration) error
	loadConfig func(overrides *config.ConfigOverrides) (*config.Config, error)
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(newAPI APIFactory, out io.Writer) *RootCommand {
	root := &RootCommand{
		newAPI: newAPI,
		out:    out,
		runUI:  client.Run,
		loadConfig: func(overrides *config.ConfigOverrides) (*config.Config, error) {
			return config.NewLoader().LoadWithOverrides(overrides)
		},
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A terminal client for the todo API",
		Long: `todo is a terminal client for the todo HTTP API.

Run without a command to open the interactive list. The one-shot commands
below print their result and exit.

EXAMPLES:
  todo                                   # Interactive list
  todo ls --filter active                # List pending todos
  todo add "Buy milk" -d "2 litres"      # Create a todo
  todo show 3                            # Print #3 in full
  todo done 3                            # Mark #3 as completed
  todo edit 3 --title "Buy oat milk"     # Rename #3
  todo rm 3                              # Delete #3
  todo clear                             # Delete every completed todo

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    TODO_API_URL                           API base URL (default: http://localhost:3000)
    TODO_CLIENT_TIMEOUT                    One-shot command timeout (default: 30s)
    TODO_CLIENT_POLL_INTERVAL              Connectivity probe interval (default: 5s)
    TODO_DEBUG                             Log every request to stderr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.configure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// the interactive list runs without a request timeout
			ui := *root.config
			ui.Client.Timeout = 0
			return root.runUI(root.newAPI(&ui), root.config.Client.PollInterval)
		},
	}
	root.cmd.SetOut(out)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs replaces os.Args for the next Execute
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved by the last Execute
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.String("api-url", "", "API base URL (overrides TODO_API_URL)")
	flags.Duration("timeout", 0, "One-shot command timeout (overrides TODO_CLIENT_TIMEOUT)")
	flags.Duration("poll-interval", 0, "Connectivity probe interval (overrides TODO_CLIENT_POLL_INTERVAL)")
}

// configure resolves configuration and builds the App
func (r *RootCommand) configure() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("api-url") {
		apiURL, _ := flags.GetString("api-url")
		overrides.APIURL = &apiURL
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		overrides.ClientTimeout = &timeout
	}
	if flags.Changed("poll-interval") {
		interval, _ := flags.GetDuration("poll-interval")
		overrides.PollInterval = &interval
	}

	cfg, err := r.loadConfig(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.config = cfg
	r.app = NewApp(r.newAPI(cfg), r.out)
	return nil
}

// runner adapts a command handler to cobra with a per-command timeout
func (r *RootCommand) runner(handler func(app *App) Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), r.config.Client.Timeout)
		defer cancel()

		return handler(r.app).Execute(ctx, args)
	}
}

// Command is a one-shot CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	var filter string
	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos, newest first",
		Args:    cobra.NoArgs,
		RunE: r.runner(func(app *App) Command {
			c := NewListCommand(app)
			c.Filter = filter
			return c
		}),
	}
	listCmd.Flags().StringVarP(&filter, "filter", "f", "all", "Show all, active or completed todos")

	var description string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: r.runner(func(app *App) Command {
			c := NewAddCommand(app)
			c.Description = description
			return c
		}),
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Optional description")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a single todo",
		Args:  cobra.ExactArgs(1),
		RunE: r.runner(func(app *App) Command {
			return NewShowCommand(app)
		}),
	}

	doneCmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: r.runner(func(app *App) Command {
			return NewCompleteCommand(app, true)
		}),
	}

	undoneCmd := &cobra.Command{
		Use:   "undone <id>",
		Short: "Mark a todo as not completed",
		Args:  cobra.ExactArgs(1),
		RunE: r.runner(func(app *App) Command {
			return NewCompleteCommand(app, false)
		}),
	}

	var editTitle, editDescription string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a todo's title or description",
		Long: `Change a todo's title or description. Only the flags you pass are sent,
so "todo edit 3 --description ''" clears the description and keeps the title.`,
		Args: cobra.ExactArgs(1),
	}
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.RunE = r.runner(func(app *App) Command {
		c := NewEditCommand(app)
		if editCmd.Flags().Changed("title") {
			c.Title = &editTitle
		}
		if editCmd.Flags().Changed("description") {
			c.Description = &editDescription
		}
		return c
	})

	rmCmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a todo",
		Args:    cobra.ExactArgs(1),
		RunE: r.runner(func(app *App) Command {
			return NewDeleteCommand(app)
		}),
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed todo",
		Args:  cobra.NoArgs,
		RunE: r.runner(func(app *App) Command {
			return NewClearCommand(app)
		}),
	}

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check the API server and its database",
		Args:  cobra.NoArgs,
		RunE: r.runner(func(app *App) Command {
			return NewHealthCommand(app)
		}),
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show API server metadata",
		Args:  cobra.NoArgs,
		RunE: r.runner(func(app *App) Command {
			return NewInfoCommand(app)
		}),
	}

	r.cmd.AddCommand(
		listCmd,
		addCmd,
		showCmd,
		doneCmd,
		undoneCmd,
		editCmd,
		rmCmd,
		clearCmd,
		healthCmd,
		infoCmd,
	)
}
