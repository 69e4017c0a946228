package usecase

import (
	"context"
	"testing"
	"time"

	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Token: utils.TokenConfig{
			Secret:  "test-signing-secret",
			TTLDays: 7,
		},
	}
}

func newTestAuthService(repo *memoryUserRepo) AuthService {
	return NewAuthService(&repository.Repository{User: repo}, testConfig(), zap.NewNop())
}

func strptr(s string) *string { return &s }

func TestRegister_ThenLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Ann",
		Email:    "Ann@X.com ",
		Password: "secret1",
	})
	require.NoError(t, err)

	// Email stored normalized, defaults applied, hash never exposed
	assert.Equal(t, "ann@x.com", resp.User.Email)
	assert.Equal(t, "customer", string(resp.User.Role))
	assert.Empty(t, resp.User.Addresses)
	assert.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), resp.ExpiresAt, time.Minute)

	// Token subject resolves back to the new identity
	subject, err := utils.VerifySessionToken(resp.Token, []byte("test-signing-secret"))
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)

	// Same credentials log in afterwards
	loginResp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ann@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, loginResp.User.ID)
	assert.NotEmpty(t, loginResp.Token)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &request.RegisterRequest{
		Name: "Bob", Email: "ANN@X.COM", Password: "other12",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_ExplicitRoleAndPhone(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Root",
		Email:    "root@x.com",
		Password: "secret1",
		Phone:    strptr("5551234567"),
		Role:     strptr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", string(resp.User.Role))
	require.NotNil(t, resp.User.Phone)
	assert.Equal(t, "5551234567", *resp.User.Phone)
}

// The duplicate check and the insert are two separate steps, so two
// concurrent registrations for the same email can both pass the check.
// This is a known gap; the unique index turns the losing insert into
// ErrEmailTaken, which must still surface as the duplicate error rather
// than a 500.
func TestRegister_LostRaceMapsToDuplicate(t *testing.T) {
	repo := newMemoryUserRepo()
	repo.failCreate = repository.ErrEmailTaken
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(ctx, &request.LoginRequest{
		Email: "ann@x.com", Password: "wrong",
	})
	_, unknownEmailErr := svc.Login(ctx, &request.LoginRequest{
		Email: "nobody@x.com", Password: "wrong",
	})

	// Both failure modes must be indistinguishable to the caller
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestForgotPassword_SameAckForAnyEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	require.NoError(t, err)

	assert.NoError(t, svc.ForgotPassword(ctx, "ann@x.com"))
	assert.NoError(t, svc.ForgotPassword(ctx, "nobody@x.com"))
}

func TestResetPassword_NotImplemented(t *testing.T) {
	svc := newTestAuthService(newMemoryUserRepo())

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       "whatever",
		NewPassword: "secret2",
	})
	assert.ErrorIs(t, err, ErrNotImplemented)
}
