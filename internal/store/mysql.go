package store

import (
	"context"
	"database/sql"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

type mysqlDialect struct{}

func (mysqlDialect) Kind() Kind         { return KindMySQL }
func (mysqlDialect) DriverName() string { return "mysql" }

// DSN reports matched rather than changed rows so that an UPDATE writing
// identical values is still distinguishable from a missing id.
func (mysqlDialect) DSN(opts Options) string {
	cfg := mysql.NewConfig()
	cfg.User = opts.User
	cfg.Passwd = opts.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
	cfg.DBName = opts.Database
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

func (mysqlDialect) ConfigurePool(db *sql.DB, opts Options) {
	configureNetworkPool(db, opts)
}

func (mysqlDialect) Rebind(query string) string { return query }

func (mysqlDialect) InsertID(ctx context.Context, q Querier, query string, args ...interface{}) (int64, error) {
	return insertWithLastInsertID(ctx, q, query, args...)
}

func (mysqlDialect) BindTime(t time.Time) interface{} {
	return t.UTC()
}

// MySQL refreshes updated_at natively through ON UPDATE
func (mysqlDialect) SchemaStatements() []string {
	return []string{`
		CREATE TABLE IF NOT EXISTS todos (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			updated_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6) ON UPDATE CURRENT_TIMESTAMP(6),
			INDEX idx_completed (completed),
			INDEX idx_created (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}
}
