package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var errBadSheet = errors.New("invalid attendance status")

func TestValidationError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantMsg    string
		wantFields map[string]string
	}{
		{name: "no fields", err: NewValidationError(errBadSheet), wantMsg: "invalid attendance status"},
		{
			name:       "fields ordered",
			err:        NewValidationError(errBadSheet, FieldError{"S2024003", "bad"}, FieldError{"S2024001", "worse"}),
			wantMsg:    "invalid attendance status: S2024001, S2024003",
			wantFields: map[string]string{"S2024001": "worse", "S2024003": "bad"},
		},
		{
			name:       "wrapped",
			err:        errors.Wrap(NewValidationError(errBadSheet, FieldError{"S2024002", "bad"}), "marking attendance"),
			wantMsg:    "invalid attendance status: S2024002",
			wantFields: map[string]string{"S2024002": "bad"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vErr, ok := AsValidationError(tt.err)
			if !ok {
				t.Fatalf("AsValidationError(%v) = false", tt.err)
			}
			assert.Equal(t, tt.wantMsg, vErr.Error())
			assert.Equal(t, tt.wantFields, vErr.FieldMap())
			assert.Equal(t, errBadSheet, vErr.Err)
		})
	}

	_, ok := AsValidationError(errBadSheet)
	assert.False(t, ok)
}
