package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		storage core.StorageConfig
		badger  core.BadgerConfig
		wantErr error
	}{
		{name: "memory", storage: core.StorageConfig{Backend: BackendMemory}},
		{name: "file", storage: core.StorageConfig{Backend: BackendFile, Path: filepath.Join(dir, "data")}},
		{name: "badger", storage: core.StorageConfig{Backend: BackendBadger}, badger: core.BadgerConfig{Dir: filepath.Join(dir, "badger")}},
		{name: "unknown", storage: core.StorageConfig{Backend: "localstorage"}, wantErr: ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := &core.Config{Storage: tt.storage, Badger: tt.badger}
			backend, closer, err := Open(context.Background(), conf)
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if backend == nil {
				t.Errorf("Open() backend = nil")
			}
			if err := closer.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}
}
