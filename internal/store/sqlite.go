package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTimeLayout is fixed width so that text ordering matches time ordering
const sqliteTimeLayout = "2006-01-02 15:04:05.000000"

// sqliteDialect backs local development and the test suite
type sqliteDialect struct{}

func (sqliteDialect) Kind() Kind         { return KindSQLite }
func (sqliteDialect) DriverName() string { return "sqlite" }

func (sqliteDialect) DSN(opts Options) string {
	return opts.Path
}

// SQLite allows a single writer, and an in-memory database lives only as long
// as its one connection, so the pool is pinned to one connection.
func (sqliteDialect) ConfigurePool(db *sql.DB, _ Options) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)
}

func (sqliteDialect) Rebind(query string) string { return query }

func (sqliteDialect) InsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error) {
	return insertWithLastInsertID(ctx, q, query, args...)
}

func (sqliteDialect) BindTime(t time.Time) interface{} {
	return FormatTime(t)
}

func (sqliteDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f000', 'now')),
			updated_at TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f000', 'now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_completed ON todos(completed)`,
		`CREATE INDEX IF NOT EXISTS idx_created ON todos(created_at)`,
		`CREATE TRIGGER IF NOT EXISTS update_todos_updated_at
		AFTER UPDATE ON todos
		FOR EACH ROW WHEN NEW.updated_at = OLD.updated_at
		BEGIN
			UPDATE todos SET updated_at = strftime('%Y-%m-%d %H:%M:%f000', 'now') WHERE id = NEW.id;
		END`,
	}
}
