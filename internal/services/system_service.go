package services

import (
	"context"
	"os"
	"runtime"
	"time"

	"todo-app/internal/config"
	"todo-app/internal/errors"
	"todo-app/internal/repository"
	"todo-app/internal/store"
)

// systemServiceImpl implements the SystemService interface
type systemServiceImpl struct {
	store     store.Store
	config    *config.Config
	startedAt time.Time
	now       func() time.Time
}

// NewSystemService creates a SystemService whose uptime counts from now
func NewSystemService(db store.Store, cfg *config.Config) SystemService {
	return &systemServiceImpl{
		store:     db,
		config:    cfg,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

// Health probes the store with a trivial round trip
func (s *systemServiceImpl) Health(ctx context.Context) *HealthReport {
	now := s.now()
	report := &HealthReport{
		DBType:    string(s.store.Kind()),
		Timestamp: now.UTC(),
		Hostname:  hostname(),
	}

	if err := s.store.TestConnection(ctx); err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			report.Error = appErr.CauseMessage()
		} else {
			report.Error = err.Error()
		}
		return report
	}

	report.Healthy = true
	report.Uptime = now.Sub(s.startedAt)
	return report
}

// Info describes the running server
func (s *systemServiceImpl) Info() *AppInfo {
	host := s.config.Database.Host
	if s.store.Kind() == store.KindSQLite {
		host = s.config.Database.Path
	}

	return &AppInfo{
		Application: s.config.Application.Name,
		Version:     s.config.Application.Version,
		Hostname:    hostname(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion:   runtime.Version(),
		Environment: s.config.Application.Environment,
		Database: DatabaseInfo{
			Type: string(s.store.Kind()),
			Host: host,
		},
	}
}

// NewServiceContainer wires every service against one store
func NewServiceContainer(db store.Store, repo repository.Repository, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		TodoService:   NewTodoService(repo),
		SystemService: NewSystemService(db, cfg),
	}
}
