package pgdb

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/storage/document"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// DB keeps each document in one row of the documents table.
type DB struct {
	db *sqlx.DB
}

var _ document.Backend = (*DB)(nil)

type documentRow struct {
	Key  string `db:"key"`
	Data string `db:"data"`
}

func dataSourceName(dbName string, conf core.DatabaseConfig) string {
	sslMode := "require"
	if conf.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Engine,
		User:     url.UserPassword(conf.User, conf.Password),
		Host:     conf.Address(),
		Path:     dbName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open connects to the configured database, waits for it and creates the documents table.
func Open(ctx context.Context, conf core.DatabaseConfig) (*DB, error) {
	db, err := sqlx.Open(conf.Engine, dataSourceName(conf.Name, conf))
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating documents table")
	}
	return &DB{db: db}, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(ctx context.Context, db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "DB ping")
		case <-time.After(time.Duration(attempts) * 100 * time.Millisecond):
		}
	}
	return errors.Wrap(err, "DB ping timeout")
}

// CreateIfNotExist creates the configured database, connecting to the default one.
func CreateIfNotExist(ctx context.Context, conf core.DatabaseConfig) error {
	db, err := sqlx.Open(conf.Engine, dataSourceName("postgres", conf))
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer func() { _ = db.Close() }()

	if err = ping(ctx, db); err != nil {
		return err
	}

	var exists bool
	err = db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", conf.Name)
	if err != nil {
		return errors.Wrap(err, "checking DB")
	}
	if !exists {
		if _, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(conf.Name)); err != nil {
			return errors.Wrap(err, "creating database")
		}
	}
	return nil
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var row documentRow
	err := db.db.GetContext(ctx, &row, "SELECT key, data FROM documents WHERE key = $1", key)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, document.ErrNotFound
		}
		return nil, errors.Wrapf(err, "selecting document %s", key)
	}
	return []byte(row.Data), nil
}

func (db *DB) Set(ctx context.Context, key string, data []byte) error {
	const q = `
INSERT INTO documents (key, data) VALUES (:key, :data)
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	_, err := db.db.NamedExecContext(ctx, q, documentRow{Key: key, Data: string(data)})
	return errors.Wrapf(err, "upserting document %s", key)
}

func (db *DB) Close() error {
	return db.db.Close()
}
