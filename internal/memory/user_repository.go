// Package memory provides in-memory implementations of the domain
// repositories. They back the unit tests and can run the service without a
// database; writes are serialized by the package's TransactionManager.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// UserRepository implements domain.UserRepository backed by a map.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]domain.User),
	}
}

// Create persists a new user, rejecting duplicate emails.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = *user
	return nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Lock returns the user. There is no per-row lock to take: mutual exclusion
// for the validate-then-append sequence comes from the TransactionManager
// mutex that the caller already holds.
func (r *UserRepository) Lock(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}
