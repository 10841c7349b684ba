package document

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by a Backend when nothing is stored under a key.
var ErrNotFound = errors.New("document not found")

// Backend is a byte store holding whole serialized documents.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// IOError reports a write the backend rejected.
type IOError struct {
	Key string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing document %q: %v", e.Key, e.Err)
}

func (e *IOError) Cause() error  { return e.Err }
func (e *IOError) Unwrap() error { return e.Err }

// IsIOError reports whether err was caused by a rejected write.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
