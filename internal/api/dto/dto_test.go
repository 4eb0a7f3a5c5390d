package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/likeboard/internal/model/user"
)

func TestUserRequest_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		req      UserRequest
		wantErrs []error
	}{
		{"ok", UserRequest{"alice", "Passw0rd"}, nil},
		{"empty username", UserRequest{"", "Passw0rd"}, []error{user.ErrUsernameEmpty}},
		{"blank username", UserRequest{"   ", "Passw0rd"}, []error{user.ErrUsernameEmpty}},
		{"weak password", UserRequest{"alice", "passw0rd"}, []error{user.ErrPasswordNoUpper}},
		{
			"everything wrong",
			UserRequest{"", ""},
			[]error{user.ErrUsernameEmpty, user.ErrPasswordTooShort},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.IsValid()
			if tt.wantErrs == nil {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestUpdatePasswordRequest_IsValid(t *testing.T) {
	require.NoError(t, (&UpdatePasswordRequest{"Passw0rd", "Other1X"}).IsValid())

	err := (&UpdatePasswordRequest{"Passw0rd", "other"}).IsValid()
	require.ErrorIs(t, err, user.ErrPasswordNoDigit)
	assert.Contains(t, err.Error(), "newPassword")
	assert.NotContains(t, err.Error(), "oldPassword")

	err = (&UpdatePasswordRequest{"", "Other1X"}).IsValid()
	require.ErrorIs(t, err, user.ErrPasswordTooShort)
	assert.Contains(t, err.Error(), "oldPassword")
}
