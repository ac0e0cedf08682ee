package middleware

import (
	"net/http"

	"trek-insurance/internal/data/repository"
	"trek-insurance/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Session resolves the {id} URL param to a live wizard session and puts its id in the context.
func Session(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := chi.URLParam(r, "id")

			id, err := utils.ParseUUID(rawID)
			if err != nil {
				utils.ResponseBadRequest(w, "Invalid session ID", nil)
				return
			}

			session, err := sessionRepo.FindByID(r.Context(), id)
			if err != nil {
				logger.Error("Failed to load session",
					zap.String("session_id", rawID),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Unknown or expired session", zap.String("session_id", rawID))
				utils.ResponseNotFound(w, "Session not found or expired")
				return
			}

			ctx := utils.SetSessionContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
