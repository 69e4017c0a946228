package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"

	"github.com/google/uuid"
)

// memoryUserRepo is an in-memory stand-in for the Postgres repository.
// It mirrors the store's behavior the services rely on: nil for missing
// records, ErrEmailTaken on duplicate insert, soft delete.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User

	failCreate error // when set, Create fails with this error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (m *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failCreate != nil {
		return m.failCreate
	}
	for _, u := range m.users {
		if u.Email == user.Email && u.DeletedAt == nil {
			return repository.ErrEmailTaken
		}
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUserRepo) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := m.FindByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	u.PasswordHash = ""
	return u, nil
}

func (m *memoryUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email && u.DeletedAt == nil {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var all []*entity.User
	for _, u := range m.users {
		if u.DeletedAt != nil {
			continue
		}
		u := u
		all = append(all, &u)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memoryUserRepo) CountAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, u := range m.users {
		if u.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

func (m *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.users[user.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("user %s not found or already deleted", user.ID.String())
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memoryUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok || u.DeletedAt != nil {
		return fmt.Errorf("user %s not found", id.String())
	}
	now := time.Now()
	u.DeletedAt = &now
	m.users[id] = u
	return nil
}
