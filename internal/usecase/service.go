package usecase

import (
	"account-service/internal/data/repository"
	"account-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo, config, log),
		User: NewUserService(repo.User, log),
	}
}
