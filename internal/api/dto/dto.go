package dto

import (
	"errors"
	"fmt"

	"github.com/talx-hub/likeboard/internal/model/user"
)

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *UserRequest) IsValid() error {
	return errors.Join(
		user.ValidateUsername(r.Username),
		user.ValidatePassword(r.Password),
	)
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r *UpdatePasswordRequest) IsValid() error {
	var oldErr, newErr error
	if err := user.ValidatePassword(r.OldPassword); err != nil {
		oldErr = fmt.Errorf("oldPassword: %w", err)
	}
	if err := user.ValidatePassword(r.NewPassword); err != nil {
		newErr = fmt.Errorf("newPassword: %w", err)
	}
	return errors.Join(oldErr, newErr)
}

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
