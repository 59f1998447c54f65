// Package store wraps a pooled connection to one relational backend behind a
// uniform query interface. The backend is chosen once, when the store is opened.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"todo-app/internal/errors"
	"todo-app/internal/logging"
)

// Kind identifies a supported relational backend
type Kind string

const (
	KindMySQL    Kind = "mysql"
	KindPostgres Kind = "postgresql"
	KindSQLite   Kind = "sqlite"
)

// DefaultPoolSize is the maximum number of open connections per store
const DefaultPoolSize = 10

// ParseKind maps a configuration value onto a backend kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mysql":
		return KindMySQL, nil
	case "postgresql", "postgres":
		return KindPostgres, nil
	case "sqlite", "sqlite3":
		return KindSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database type: %q (use 'mysql' or 'postgresql')", s)
	}
}

// DefaultPort returns the conventional port for the backend
func (k Kind) DefaultPort() int {
	switch k {
	case KindMySQL:
		return 3306
	case KindPostgres:
		return 5432
	default:
		return 0
	}
}

// DefaultUser returns the conventional administrative user for the backend
func (k Kind) DefaultUser() string {
	switch k {
	case KindMySQL:
		return "root"
	case KindPostgres:
		return "postgres"
	default:
		return ""
	}
}

// Options describes how to reach the backend
type Options struct {
	Kind     Kind
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Path     string // sqlite only
	PoolSize int
}

// Store is the query surface the repository layer depends on.
// Statements are written with '?' placeholders regardless of backend.
type Store interface {
	Kind() Kind
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Insert(ctx context.Context, query string, args ...interface{}) (int64, error)
	BindTime(t time.Time) interface{}
	TestConnection(ctx context.Context) error
	InitializeTables(ctx context.Context) error
	Close() error
}

// DB is the database/sql backed Store
type DB struct {
	db      *sql.DB
	dialect Dialect
}

// Open creates the connection pool for the configured backend. It does not
// contact the backend; call TestConnection for that.
func Open(opts Options) (*DB, error) {
	dialect, err := DialectFor(opts.Kind)
	if err != nil {
		return nil, errors.NewInvalidInputError("database type", opts.Kind, err.Error())
	}

	db, err := sql.Open(dialect.DriverName(), dialect.DSN(opts))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	dialect.ConfigurePool(db, opts)

	logging.Debugf("opened %s connection pool\n", dialect.Kind())
	return &DB{db: db, dialect: dialect}, nil
}

// New wraps an existing pool with the given dialect
func New(db *sql.DB, dialect Dialect) *DB {
	return &DB{db: db, dialect: dialect}
}

// Kind returns the active backend kind
func (d *DB) Kind() Kind {
	return d.dialect.Kind()
}

// Query runs a statement that returns rows
func (d *DB) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, d.dialect.Rebind(query), args...)
}

// QueryRow runs a statement that returns at most one row
func (d *DB) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.db.QueryRowContext(ctx, d.dialect.Rebind(query), args...)
}

// Exec runs a statement that returns no rows
func (d *DB) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.db.ExecContext(ctx, d.dialect.Rebind(query), args...)
}

// Insert runs an INSERT into a table with an auto-assigned "id" column and
// returns the generated id
func (d *DB) Insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	return d.dialect.InsertID(ctx, d.db, query, args...)
}

// BindTime converts t into the value the backend stores for timestamp columns
func (d *DB) BindTime(t time.Time) interface{} {
	return d.dialect.BindTime(t)
}

// TestConnection performs a trivial round trip against the backend
func (d *DB) TestConnection(ctx context.Context) error {
	var one int
	if err := d.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return errors.NewConnectionError(string(d.dialect.Kind()), err)
	}
	return nil
}

// InitializeTables creates the todos table, its indexes and the updated_at
// refresh hook when they are absent. Existing structures are left untouched.
func (d *DB) InitializeTables(ctx context.Context) error {
	for _, stmt := range d.dialect.SchemaStatements() {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return errors.NewDatabaseError("initialize tables", err)
		}
	}
	logging.Debugln(d.dialect.Kind(), "tables initialized")
	return nil
}

// Close releases every pooled connection
func (d *DB) Close() error {
	return d.db.Close()
}
