package core

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// FieldError is a problem with one entry of the input, keyed by what identifies it
// to the caller (eg: a student ID in an attendance sheet).
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned by services for input that only fails against stored data.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

// NewValidationError returns a *ValidationError with `flds` ordered by field.
func NewValidationError(err error, flds ...FieldError) error {
	sort.SliceStable(flds, func(i, j int) bool { return flds[i].Field < flds[j].Field })
	return &ValidationError{Err: err, Fields: flds}
}

func (err *ValidationError) Error() string {
	var msg string
	if err.Err != nil {
		msg = err.Err.Error()
	}
	if len(err.Fields) == 0 {
		return msg
	}
	names := make([]string, len(err.Fields))
	for i, f := range err.Fields {
		names[i] = f.Field
	}
	return msg + ": " + strings.Join(names, ", ")
}

// FieldMap returns the errors as {field: message}, nil if there are none.
func (err *ValidationError) FieldMap() map[string]string {
	if len(err.Fields) == 0 {
		return nil
	}
	fldErrs := make(map[string]string, len(err.Fields))
	for _, f := range err.Fields {
		fldErrs[f.Field] = f.Error
	}
	return fldErrs
}

// AsValidationError unwraps `err` down to a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	vErr, ok := errors.Cause(err).(*ValidationError)
	return vErr, ok
}
