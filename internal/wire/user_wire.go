package wire

import (
	"account-service/internal/adaptor"
	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/middleware"
	"account-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures profile and admin routes behind the token guard
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	authToken := middleware.AuthToken(repo.User, config.Token, log)

	// Profile routes - require a valid token
	r.With(authToken).Get("/profile", userHandler.GetProfile)
	r.With(authToken).Put("/profile", userHandler.UpdateProfile)

	// Admin routes - require a valid token AND the admin role
	r.With(
		authToken,
		middleware.Authorize(log, entity.RoleAdmin),
	).Route("/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
