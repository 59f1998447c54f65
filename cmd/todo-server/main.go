package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-app/internal/api"
	"todo-app/internal/config"
	"todo-app/internal/logging"
	"todo-app/internal/repository"
	"todo-app/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// newRootCommand creates the server command with configuration flags
func newRootCommand() *cobra.Command {
	overrides := &config.ConfigOverrides{}

	cmd := &cobra.Command{
		Use:   "todo-server",
		Short: "Serve the todo HTTP API",
		Long: `todo-server serves the todo JSON API backed by MySQL, PostgreSQL or SQLite.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    DB_TYPE                                mysql, postgresql or sqlite (default: mysql)
    DB_HOST                                Database host (default: localhost)
    DB_PORT                                Database port (default: 3306 mysql, 5432 postgresql)
    DB_USER                                Database user (default: root mysql, postgres postgresql)
    DB_PASSWORD                            Database password (default: empty)
    DB_NAME                                Database name (default: tododb)
    DB_PATH                                SQLite file (default: todo.db)
    DB_POOL_SIZE                           Maximum open connections (default: 10)
    PORT                                   HTTP listen port (default: 3000)
    SHUTDOWN_TIMEOUT                       Grace period for in-flight requests (default: 10s)
    APP_ENV                                Environment label (default: development)
    TODO_DEBUG                             Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collectOverrides(cmd, overrides)
			cfg, err := config.NewLoader().LoadWithOverrides(overrides)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.ListenAddr())
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.ListenAddr(), err)
			}
			return serve(ctx, cfg, ln)
		},
	}

	flags := cmd.Flags()
	flags.String("db-type", "", "Database backend (overrides DB_TYPE)")
	flags.String("db-host", "", "Database host (overrides DB_HOST)")
	flags.Int("db-port", 0, "Database port (overrides DB_PORT)")
	flags.String("db-user", "", "Database user (overrides DB_USER)")
	flags.String("db-password", "", "Database password (overrides DB_PASSWORD)")
	flags.String("db-name", "", "Database name (overrides DB_NAME)")
	flags.String("db-path", "", "SQLite database file (overrides DB_PATH)")
	flags.Int("pool-size", 0, "Maximum open database connections (overrides DB_POOL_SIZE)")
	flags.Int("port", 0, "HTTP listen port (overrides PORT)")
	flags.Duration("shutdown-timeout", 0, "Grace period for in-flight requests (overrides SHUTDOWN_TIMEOUT)")
	flags.String("env", "", "Environment label (overrides APP_ENV)")

	return cmd
}

// collectOverrides copies every flag the user set into overrides
func collectOverrides(cmd *cobra.Command, overrides *config.ConfigOverrides) {
	flags := cmd.Flags()
	str := func(name string, dst **string) {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = &v
		}
	}
	num := func(name string, dst **int) {
		if flags.Changed(name) {
			v, _ := flags.GetInt(name)
			*dst = &v
		}
	}

	str("db-type", &overrides.DBType)
	str("db-host", &overrides.DBHost)
	num("db-port", &overrides.DBPort)
	str("db-user", &overrides.DBUser)
	str("db-password", &overrides.DBPassword)
	str("db-name", &overrides.DBName)
	str("db-path", &overrides.DBPath)
	num("pool-size", &overrides.PoolSize)
	num("port", &overrides.Port)
	str("env", &overrides.Environment)
	if flags.Changed("shutdown-timeout") {
		v, _ := flags.GetDuration("shutdown-timeout")
		overrides.ShutdownTimeout = &v
	}
}

// serve opens the store, serves HTTP on ln until ctx is cancelled, then
// drains in-flight requests and closes the store. A store that cannot be
// reached at startup is fatal.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	db, err := config.OpenStore(ctx, cfg)
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Errorf("closing database: %v", err)
		}
		logging.Infof("database connections closed")
	}()
	logging.Infof("connected to %s database", db.Kind())

	container := services.NewServiceContainer(db, repository.New(db), cfg)
	httpServer := &http.Server{
		Handler:           api.NewServer(container).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Infof("server listening on %s (%s)", ln.Addr(), cfg.Application.Environment)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Infof("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
