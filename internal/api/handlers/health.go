package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/utils/logger"
)

type HealthChecker interface {
	Healthy(ctx context.Context) error
}

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), model.DefaultTimeout)
	defer cancel()

	if err := h.db.Healthy(ctx); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"health check failed",
			slog.Any(model.KeyLoggerError, err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
