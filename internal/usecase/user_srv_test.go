package usecase

import (
	"context"
	"testing"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUser(t *testing.T, repo *memoryUserRepo) *entity.User {
	t.Helper()

	now := time.Now()
	phone := "5550001111"
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "hash",
		Phone:        &phone,
		Role:         entity.RoleCustomer,
		Addresses: []entity.Address{
			{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"},
		},
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetProfile(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := seedUser(t, repo)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), profile.ID)
	assert.Equal(t, "ann@x.com", profile.Email)
	assert.Len(t, profile.Addresses, 1)
}

func TestGetProfile_RecordGone(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	// Token may outlive the record it was issued for
	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PartialLeavesOtherFields(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := seedUser(t, repo)

	newPhone := "5551234567"
	profile, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Phone: &newPhone,
	})
	require.NoError(t, err)

	// Only phone changed, name and addresses keep their prior values
	assert.Equal(t, "5551234567", *profile.Phone)
	assert.Equal(t, "Ann", profile.Name)
	require.Len(t, profile.Addresses, 1)
	assert.Equal(t, "1 Main St", profile.Addresses[0].Street)
}

func TestUpdateProfile_AddressesReplaced(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := seedUser(t, repo)

	addresses := []entity.Address{
		{Street: "2 Oak Ave", City: "Portland", State: "OR", PostalCode: "97201", Country: "US"},
		{Street: "3 Pine Rd", City: "Portland", State: "OR", PostalCode: "97202", Country: "US"},
	}
	profile, err := svc.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Addresses: &addresses,
	})
	require.NoError(t, err)

	require.Len(t, profile.Addresses, 2)
	assert.Equal(t, "2 Oak Ave", profile.Addresses[0].Street)
	assert.Equal(t, "Ann", profile.Name)
}

func TestUpdateProfile_RecordGone(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &request.UpdateProfileRequest{
		Name: &name,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllUsers_Pagination(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())

	for i := 0; i < 15; i++ {
		now := time.Now()
		require.NoError(t, repo.Create(context.Background(), &entity.User{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:         "User",
			Email:        uuid.NewString() + "@x.com",
			PasswordHash: "hash",
			Role:         entity.RoleCustomer,
		}))
	}

	page, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, int64(15), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := NewUserService(repo, zap.NewNop())
	user := seedUser(t, repo)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))

	// Soft-deleted records no longer resolve
	_, err := svc.GetProfile(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), uuid.NewString()), ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "not-a-uuid"), ErrUserNotFound)
}
