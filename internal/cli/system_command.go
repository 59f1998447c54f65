package cli

import (
	"context"
	"fmt"
	"time"
)

// HealthCommand handles the health command
type HealthCommand struct {
	app *App
}

// NewHealthCommand creates a new health command handler
func NewHealthCommand(app *App) *HealthCommand {
	return &HealthCommand{app: app}
}

// Execute prints the server's health and fails when the server is unhealthy
func (c *HealthCommand) Execute(ctx context.Context, args []string) error {
	health, err := c.app.api.Health(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("check health", err)
	}

	c.app.field("Status", health.Status)
	c.app.field("Database", fmt.Sprintf("%s (%s)", health.Database, health.DBType))
	c.app.field("Host", health.Hostname)
	if health.Healthy() {
		c.app.field("Uptime", (time.Duration(health.Uptime * float64(time.Second))).Round(time.Second))
		return nil
	}

	c.app.field("Error", health.Error)
	return fmt.Errorf("server is unhealthy: %s", health.Error)
}

// InfoCommand handles the info command
type InfoCommand struct {
	app *App
}

// NewInfoCommand creates a new info command handler
func NewInfoCommand(app *App) *InfoCommand {
	return &InfoCommand{app: app}
}

// Execute prints server metadata
func (c *InfoCommand) Execute(ctx context.Context, args []string) error {
	info, err := c.app.api.Info(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("fetch server info", err)
	}

	c.app.field("Application", info.Application)
	c.app.field("Version", info.Version)
	c.app.field("Environment", info.Environment)
	c.app.field("Host", info.Hostname)
	c.app.field("Platform", info.Platform)
	c.app.field("Go", info.GoVersion)
	c.app.field("Database", fmt.Sprintf("%s @ %s", info.Database.Type, info.Database.Host))
	return nil
}
