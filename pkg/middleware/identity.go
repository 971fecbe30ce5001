package middleware

import (
	"net/http"

	"coaching-booking/internal/data/entity"
	"coaching-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderUserID = "X-User-Id"
	HeaderRole   = "X-User-Role"
)

// Identity reads the caller identity injected by the upstream gateway.
// Session issuance and token verification happen before requests reach
// this service, so the headers are trusted as-is.
func Identity(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userIDStr := r.Header.Get(HeaderUserID)
			if userIDStr == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				log.Warn("Invalid user ID header",
					zap.String("user_id", userIDStr),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Invalid identity")
				return
			}

			role := r.Header.Get(HeaderRole)
			if role == "" {
				role = string(entity.RoleUser)
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Coach allows only callers with the COACH role
func Coach(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != string(entity.RoleCoach) {
				log.Warn("Coach access denied",
					zap.String("role", role),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Coach role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
