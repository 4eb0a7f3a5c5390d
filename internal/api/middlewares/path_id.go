package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model"
)

// PathID parses the named URL parameter as an integer user id.
// Requests with a malformed id are rejected with 422 before any
// handler or later middleware runs.
func PathID(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil {
				response.Error(w, r, http.StatusUnprocessableEntity,
					param+" must be an integer")
				return
			}

			idCtx := context.WithValue(r.Context(), model.KeyContextPathID, id)
			next.ServeHTTP(w, r.WithContext(idCtx))
		})
	}
}

func PathIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(model.KeyContextPathID).(int64)
	return id, ok
}
