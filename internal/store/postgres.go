package store

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

type postgresDialect struct{}

func (postgresDialect) Kind() Kind         { return KindPostgres }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) DSN(opts Options) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opts.User, opts.Password),
		Host:     net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		Path:     "/" + opts.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (postgresDialect) ConfigurePool(db *sql.DB, opts Options) {
	configureNetworkPool(db, opts)
}

// Rebind numbers each '?' outside of quoted literals and identifiers as $1, $2, ...
// in order of appearance.
func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	var quote rune
	for _, r := range query {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			b.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			b.WriteRune(r)
		case r == '?':
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lib/pq does not implement LastInsertId
func (d postgresDialect) InsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, d.Rebind(strings.TrimSpace(query))+" RETURNING id", args...).Scan(&id)
	return id, err
}

func (postgresDialect) BindTime(t time.Time) interface{} {
	return t.UTC()
}

// PostgreSQL has no ON UPDATE clause, so a trigger refreshes updated_at for
// writes that do not set it themselves.
func (postgresDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS todos (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP(6) NOT NULL DEFAULT (now() AT TIME ZONE 'utc'),
			updated_at TIMESTAMP(6) NOT NULL DEFAULT (now() AT TIME ZONE 'utc')
		)`,
		`CREATE INDEX IF NOT EXISTS idx_completed ON todos(completed)`,
		`CREATE INDEX IF NOT EXISTS idx_created ON todos(created_at)`,
		`CREATE OR REPLACE FUNCTION update_updated_at_column()
		RETURNS TRIGGER AS $$
		BEGIN
			IF NEW.updated_at IS NOT DISTINCT FROM OLD.updated_at THEN
				NEW.updated_at = now() AT TIME ZONE 'utc';
			END IF;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'update_todos_updated_at') THEN
				CREATE TRIGGER update_todos_updated_at
				BEFORE UPDATE ON todos
				FOR EACH ROW
				EXECUTE FUNCTION update_updated_at_column();
			END IF;
		END
		$$`,
	}
}
