package filedb

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/storage/document"
)

// DB keeps each document in a JSON file named after its key.
type DB struct {
	dir string
}

var _ document.Backend = (*DB)(nil)

var errInvalidKey = errors.New("invalid document key")

// Open uses `dir`, creating it if needed.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}
	return &DB{dir: dir}, nil
}

func (db *DB) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errors.Wrapf(errInvalidKey, "%q", key)
	}
	return filepath.Join(db.dir, key+".json"), nil
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	fp, err := db.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, document.ErrNotFound
		}
		return nil, errors.Wrapf(err, "reading %s", fp)
	}
	return data, nil
}

// Set writes to a temporary file then renames it over the previous version.
func (db *DB) Set(_ context.Context, key string, data []byte) error {
	fp, err := db.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(db.dir, key+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "syncing %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), fp), "replacing %s", fp)
}
