package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/daehong-lab/gonggo-pipeline/gen/ent"
	"github.com/daehong-lab/gonggo-pipeline/internal/common"
)

// sqliteDriver adapts modernc's cgo-free driver to the "sqlite3" name
// Ent's SQLite dialect expects, with foreign keys switched on per
// connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	if c, ok := conn.(driver.ExecerContext); ok {
		if _, err := c.ExecContext(context.Background(), "PRAGMA foreign_keys = ON;", nil); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

// OpenInMem opens an in-memory SQLite database and creates the schema.
// Used for local runs and batch dry-runs without a Postgres instance.
func OpenInMem(ctx context.Context, logger *slog.Logger) (*ent.Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite3", "file:gonggo?mode=memory&cache=shared")
	if err != nil {
		return nil, err
	}
	// In-memory DBs vanish when the last connection closes.
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, common.WrapError(err, "creating in-memory schema")
	}
	logger.Info("opened in-memory database")
	return client, nil
}
