package handlers

import (
	"context"
	"net/http"

	"github.com/talx-hub/likeboard/internal/api/dto"
	"github.com/talx-hub/likeboard/internal/api/middlewares"
	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model/user"
	"github.com/talx-hub/likeboard/internal/utils/auth"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (user.Public, error)
	Login(ctx context.Context, username, password string) (string, error)
	UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	CurrentUser(claims auth.Claims) user.Public
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}
	if err := req.IsValid(); err != nil {
		writeValidationError(w, r, err)
		return
	}

	created, err := h.service.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, created)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}
	if err := req.IsValid(); err != nil {
		writeValidationError(w, r, err)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, token)
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	var req dto.UpdatePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeValidationError(w, r, err)
		return
	}
	if err := req.IsValid(); err != nil {
		writeValidationError(w, r, err)
		return
	}

	err := h.service.UpdatePassword(
		r.Context(), claims.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, msgMissingIdentity)
		return
	}
	response.JSON(w, r, http.StatusOK, h.service.CurrentUser(claims))
}
