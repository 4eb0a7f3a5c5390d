package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/serviceerrs"
	"github.com/talx-hub/likeboard/internal/utils/logger"
)

const (
	maxBodyBytes       = 1 << 16
	msgInternalError   = "internal server error"
	msgMalformedBody   = "malformed request body"
	msgMissingIdentity = "authentication failed"
)

// decodeJSON reads exactly one JSON object with known fields only.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	if dec.More() {
		return errors.New("failed to decode body: trailing data")
	}
	return nil
}

// writeServiceError maps an error from the service layer onto the response.
// Internal errors are logged and never shown to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var coded *serviceerrs.CodedError
	if errors.As(err, &coded) && coded.Kind != serviceerrs.KindInternal {
		response.Error(w, r, coded.Kind.Status(), coded.Message)
		return
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(),
		slog.LevelError,
		"request failed",
		slog.Any(model.KeyLoggerError, err),
	)
	response.Error(w, r, http.StatusInternalServerError, msgInternalError)
}

func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(w, r, serviceerrs.Validation(err))
}
