package database

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/storage/database/badger"
	"github.com/trezcool/gradebook/storage/database/file"
	"github.com/trezcool/gradebook/storage/database/memory"
	"github.com/trezcool/gradebook/storage/database/postgres"
	"github.com/trezcool/gradebook/storage/database/redis"
	"github.com/trezcool/gradebook/storage/document"
)

// Backends
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the backend selected by conf.Storage.Backend and a closer releasing it.
func Open(ctx context.Context, conf *core.Config) (document.Backend, io.Closer, error) {
	switch conf.Storage.Backend {
	case BackendMemory:
		return memdb.Open(), nopCloser{}, nil

	case BackendFile:
		db, err := filedb.Open(conf.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, nopCloser{}, nil

	case BackendRedis:
		db, err := redisdb.Open(ctx, conf.Redis)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil

	case BackendBadger:
		db, err := badgerdb.Open(conf.Badger.Dir)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil

	case BackendPostgres:
		if err := pgdb.CreateIfNotExist(ctx, conf.Database); err != nil {
			return nil, nil, errors.Wrap(err, "creating database")
		}
		db, err := pgdb.Open(ctx, conf.Database)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
	return nil, nil, errors.Wrapf(ErrUnknownBackend, "%q", conf.Storage.Backend)
}
