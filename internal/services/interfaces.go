package services

import (
	"context"
	"time"

	"todo-app/internal/domain"
)

// HealthReport describes the outcome of a connectivity probe
type HealthReport struct {
	Healthy   bool
	DBType    string
	Error     string
	Timestamp time.Time
	Hostname  string
	Uptime    time.Duration
}

// DatabaseInfo names the backend the server is attached to
type DatabaseInfo struct {
	Type string `json:"type"`
	Host string `json:"host"`
}

// AppInfo is static metadata about the running server
type AppInfo struct {
	Application string       `json:"application"`
	Version     string       `json:"version"`
	Hostname    string       `json:"hostname"`
	Platform    string       `json:"platform"`
	GoVersion   string       `json:"goVersion"`
	Environment string       `json:"environment"`
	Database    DatabaseInfo `json:"database"`
}

// TodoService handles todo lifecycle operations
type TodoService interface {
	// Todo CRUD operations
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id int64) (*domain.Todo, error)
	CreateTodo(ctx context.Context, title, description string) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, id int64, update domain.TodoUpdate) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, id int64) error

	// Bulk operations
	DeleteCompletedTodos(ctx context.Context) (int64, error)
}

// SystemService reports on the server process and its store
type SystemService interface {
	Health(ctx context.Context) *HealthReport
	Info() *AppInfo
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TodoService   TodoService
	SystemService SystemService
}
