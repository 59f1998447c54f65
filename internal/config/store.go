package config

import (
	"context"
	"fmt"

	"todo-app/internal/store"
)

// OpenStore opens the configured backend, verifies it is reachable and
// bootstraps the schema. The returned store must be closed by the caller.
func OpenStore(ctx context.Context, config *Config) (*store.DB, error) {
	opts, err := config.StoreOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	db, err := store.Open(opts)
	if err != nil {
		return nil, err
	}

	if err := db.TestConnection(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := db.InitializeTables(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// OpenTestStore opens an initialized in-memory store
func OpenTestStore(ctx context.Context) (*store.DB, error) {
	config := NewConfig()
	config.Database.Type = string(store.KindSQLite)
	config.Database.Path = ":memory:"
	return OpenStore(ctx, config)
}
