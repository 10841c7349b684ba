package memdb

import (
	"context"
	"sync"

	"github.com/trezcool/gradebook/storage/document"
)

// DB keeps documents in process memory.
type DB struct {
	sync.RWMutex
	table map[string][]byte
}

var _ document.Backend = (*DB)(nil)

func Open() *DB {
	return &DB{table: make(map[string][]byte)}
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	db.RLock()
	defer db.RUnlock()

	data, ok := db.table[key]
	if !ok {
		return nil, document.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (db *DB) Set(_ context.Context, key string, data []byte) error {
	db.Lock()
	defer db.Unlock()

	db.table[key] = append([]byte(nil), data...)
	return nil
}

// Delete drops the document stored under key.
func (db *DB) Delete(key string) {
	db.Lock()
	defer db.Unlock()
	delete(db.table, key)
}
