package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Normalize email before any lookup or storage
	email := utils.NormalizeEmail(req.Email)

	// 2. Check email is not taken yet. Not transactional with the insert
	// below; the unique index on users.email backstops the window.
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrDuplicateEmail
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create user entity with defaults
	role := entity.RoleCustomer
	if req.Role != nil {
		role = entity.UserRole(*req.Role)
	}

	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        &phone,
		Role:         role,
		Addresses:    []entity.Address{},
	}

	// 5. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// 6. Issue session token scoped to the new identity
	return s.issueAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Unknown email and wrong password return the same error so the
	// response never discloses whether the email is registered
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login attempt with wrong password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// Stateless: a fresh token, no server-side session record
	return s.issueAuthResponse(user)
}

// ForgotPassword acknowledges every request identically whether or not the
// email is registered. No delivery mechanism is attached; the request is
// only logged.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = utils.NormalizeEmail(email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up email for password reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}

	if user != nil {
		s.log.Info("Password reset requested", zap.String("user_id", user.ID.String()))
	} else {
		s.log.Info("Password reset requested for unknown email", zap.String("email", email))
	}

	return nil
}

// ResetPassword is not implemented: no reset token is ever issued, so
// accepting one here would imply a guarantee that does not exist.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	return ErrNotImplemented
}

func (s *authService) issueAuthResponse(user *entity.User) (*response.AuthResponse, error) {
	ttl := time.Duration(s.config.Token.TTLDays) * 24 * time.Hour

	token, expiresAt, err := utils.GenerateSessionToken(user.ID.String(), []byte(s.config.Token.Secret), ttl)
	if err != nil {
		s.log.Error("Failed to sign session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user),
	}, nil
}
