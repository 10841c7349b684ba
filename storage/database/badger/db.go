package badgerdb

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/storage/document"
)

// DB keeps documents in an embedded Badger key-value store.
type DB struct {
	db *badger.DB
}

var _ document.Backend = (*DB)(nil)

// Open opens (or creates) the Badger directory at `dir`. An empty dir keeps everything in memory.
func Open(dir string) (*DB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening badger at %q", dir)
	}
	return &DB{db: db}, nil
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	var data []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, document.ErrNotFound
		}
		return nil, errors.Wrapf(err, "badger get %s", key)
	}
	return data, nil
}

func (db *DB) Set(_ context.Context, key string, data []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	return errors.Wrapf(err, "badger set %s", key)
}

func (db *DB) Close() error {
	return db.db.Close()
}
