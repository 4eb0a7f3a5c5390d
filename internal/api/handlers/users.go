package handlers

import (
	"context"
	"net/http"

	"github.com/talx-hub/likeboard/internal/api/middlewares"
	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model/like"
)

type SocialService interface {
	Like(ctx context.Context, userID, currentUserID int64) error
	Unlike(ctx context.Context, userID, currentUserID int64) error
	GetUsernameAndLikes(ctx context.Context, userID int64) (like.UserLikes, error)
	MostLiked(ctx context.Context) ([]like.Stat, error)
}

type UserHandler struct {
	service SocialService
}

func NewUserHandler(service SocialService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := middlewares.PathIDFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	info, err := h.service.GetUsernameAndLikes(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, info)
}

func (h *UserHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.likeAction(w, r, h.service.Like)
}

func (h *UserHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.likeAction(w, r, h.service.Unlike)
}

func (h *UserHandler) MostLiked(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.MostLiked(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, stats)
}

func (h *UserHandler) likeAction(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, userID, currentUserID int64) error,
) {
	id, ok := middlewares.PathIDFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}
	claims, ok := middlewares.ClaimsFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, msgMissingIdentity)
		return
	}

	if err := action(r.Context(), id, claims.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
