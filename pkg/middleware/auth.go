package middleware

import (
	"net/http"
	"strings"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenCookieName is the cookie the guard falls back to when no bearer
// header is present. The Authorization header wins if both are set.
const TokenCookieName = "token"

// extractToken pulls the candidate token from the request. Returns "" when
// neither transport carries one.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AuthToken validates the session token on protected routes: extract,
// verify signature and expiry, resolve the subject to a live user record
// (password column excluded), attach identity and role to the context.
func AuthToken(userRepo repository.UserRepository, tokenConfig utils.TokenConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	secret := []byte(tokenConfig.Secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "token missing")
				return
			}

			// Bad signature, malformed and expired all collapse into the
			// same rejection
			subject, err := utils.VerifySessionToken(token, secret)
			if err != nil {
				logger.Warn("Rejected session token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "token invalid")
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("Token subject is not a user ID", zap.String("subject", subject))
				utils.ResponseUnauthorized(w, "token invalid")
				return
			}

			// The record can be gone even though the token still verifies
			user, err := userRepo.FindPublicByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve token subject",
					zap.Error(err),
					zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				logger.Warn("Token subject no longer exists", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "user missing")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize is the second-stage guard, composed after AuthToken: it passes
// the request through only when the attached role is in the allowed set.
func Authorize(logger *zap.Logger, allowedRoles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Guard ordering violated if no identity was attached
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range allowedRoles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role not permitted",
				zap.String("role", role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient role")
		})
	}
}
