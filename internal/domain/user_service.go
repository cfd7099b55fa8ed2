package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PasswordHasher hashes and verifies user credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer issues an authentication token for a user.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// Session is the result of a successful authentication.
type Session struct {
	User  *User
	Token string
}

// UserService handles registration, authentication and profile lookup.
// The ledger engine never depends on it; it only shares the UserRepository.
type UserService struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewUserService creates a new instance of UserService.
func NewUserService(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new user with a hashed password.
// Returns ErrEmailTaken if the email is already registered.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*User, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := NewUser(name, email, hash)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and issues a token. An unknown email
// and a wrong password both produce ErrIncorrectCredentials so that callers
// can't probe which emails are registered.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrIncorrectCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Compare(user.Password, password) {
		return nil, ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{User: user, Token: token}, nil
}

// GetProfile returns the user with the given id.
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}
