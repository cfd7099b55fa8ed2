package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. The ledger core treats users as
// read-only: they are created once by registration and never deleted.
type User struct {
	ID        uuid.UUID // Unique identifier of the user
	Name      string    // Display name
	Email     string    // Contact identifier, unique across users
	Password  string    // Credential hash, opaque to the ledger core
	CreatedAt time.Time // Timestamp when the user registered
	UpdatedAt time.Time // Timestamp of the last profile update
}

// NewUser creates a new User with a fresh identifier.
// The password must already be hashed by the caller.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
