package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/likeboard/internal/api/response"
	"github.com/talx-hub/likeboard/internal/model"
	"github.com/talx-hub/likeboard/internal/utils/auth"
	"github.com/talx-hub/likeboard/internal/utils/logger"
)

const msgAuthFailed = "authentication failed"

type TokenVerifier interface {
	Check(token string) (auth.Claims, error)
}

func Authentication(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authFunc := func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tokenStr, err := auth.BearerToken(r)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelDebug,
					"failed to find token in request",
					slog.Any(model.KeyLoggerError, err),
				)
				response.Error(w, r, http.StatusUnauthorized, msgAuthFailed)
				return
			}

			claims, err := verifier.Check(tokenStr)
			if err != nil {
				log.LogAttrs(r.Context(),
					slog.LevelDebug,
					msgAuthFailed,
					slog.Any(model.KeyLoggerError, err),
				)
				response.Error(w, r, http.StatusUnauthorized, msgAuthFailed)
				return
			}

			claimsCtx := context.WithValue(
				r.Context(), model.KeyContextClaims, claims)
			next.ServeHTTP(w, r.WithContext(claimsCtx))
		}
		return http.HandlerFunc(authFunc)
	}
}

func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(model.KeyContextClaims).(auth.Claims)
	return claims, ok
}
