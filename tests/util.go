package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
	"github.com/trezcool/gradebook/storage/database/memory"
	"github.com/trezcool/gradebook/storage/document"
)

// ErrDiskFull is returned by FailingBackend writes.
var ErrDiskFull = errors.New("quota exceeded")

type (
	LogEntry struct {
		Level string
		Msg   string
		Args  []interface{}
	}

	// Logger records log entries in memory.
	Logger struct {
		mu      sync.Mutex
		Entries []LogEntry
	}

	// FailingBackend serves reads from an in-memory DB and rejects every write.
	FailingBackend struct {
		*memdb.DB
	}
)

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, LogEntry{Level: level, Msg: msg, Args: args})
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *Logger) Fatal(msg string, args ...interface{}) {
	panic(fmt.Sprintf("fatal: %s %v", msg, args))
}

// Count returns the number of entries logged at `level`.
func (l *Logger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

func (b FailingBackend) Set(context.Context, string, []byte) error {
	return ErrDiskFull
}

// NewStore returns a store over a fresh in-memory DB, holding `doc` if provided.
// Calendar dates are compared in UTC.
func NewStore(t *testing.T, doc ...school.Document) (*document.Store, *memdb.DB, *Logger) {
	db := memdb.Open()
	log := new(Logger)
	store := document.NewStore(db, log, document.WithLocation(time.UTC))
	if len(doc) > 0 {
		if err := store.Replace(context.Background(), doc[0]); err != nil {
			t.Fatalf("NewStore() failed: %v", err)
		}
	}
	return store, db, log
}
