package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Dialect captures everything that differs between backends
type Dialect interface {
	Kind() Kind
	DriverName() string
	DSN(opts Options) string
	ConfigurePool(db *sql.DB, opts Options)

	// Rebind rewrites '?' placeholders into the backend's positional syntax
	Rebind(query string) string
	InsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error)
	BindTime(t time.Time) interface{}
	SchemaStatements() []string
}

// Querier is the subset of *sql.DB and *sql.Tx used by dialects
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DialectFor returns the dialect for the given backend kind
func DialectFor(kind Kind) (Dialect, error) {
	switch kind {
	case KindMySQL:
		return mysqlDialect{}, nil
	case KindPostgres:
		return postgresDialect{}, nil
	case KindSQLite:
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %q", kind)
	}
}

// configureNetworkPool sizes the pool for a client/server backend. Excess
// callers wait for a free connection rather than failing.
func configureNetworkPool(db *sql.DB, opts Options) {
	size := opts.PoolSize
	if size <= 0 {
		size = DefaultPoolSize
	}
	db.SetMaxOpenConns(size)
	db.SetMaxIdleConns(size)
	db.SetConnMaxIdleTime(30 * time.Second)
}

// insertWithLastInsertID is used by backends whose drivers report generated ids
func insertWithLastInsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error) {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
