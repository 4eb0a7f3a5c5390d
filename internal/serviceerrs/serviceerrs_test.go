package serviceerrs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_Status(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInternal, http.StatusInternalServerError},
		{KindValidation, http.StatusUnprocessableEntity},
		{KindConflict, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{Kind(42), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
		{"coded", ErrAlreadyLiked, KindForbidden},
		{"wrapped coded", fmt.Errorf("like: %w", ErrLikeNotFound), KindUnauthorized},
		{"storage sentinel", fmt.Errorf("find: %w", ErrNotFound), KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestCredentialErrorsLookTheSame(t *testing.T) {
	assert.Equal(t, ErrUnknownUsername.Message, ErrWrongPassword.Message)
	assert.Equal(t, ErrUnknownUsername.Kind.Status(), ErrWrongPassword.Kind.Status())
	assert.NotErrorIs(t, ErrUnknownUsername, ErrWrongPassword)
}

func TestValidation(t *testing.T) {
	err := Validation(errors.Join(errors.New("first"), errors.New("second")))
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "first; second", err.Message)
	assert.Equal(t, "validation: first; second", err.Error())
}
