// Package response writes JSON bodies and error envelopes.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talx-hub/likeboard/internal/api/dto"
	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/utils/logger"
)

func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set(model.HeaderContentType, model.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, dto.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
