package domain

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data access operations.
// This follows the Repository pattern to abstract data persistence logic.
type UserRepository interface {
	// Create persists a new user.
	// Returns ErrEmailTaken if the email is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its unique identifier.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no user is registered with the email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Lock acquires an exclusive lock on the user for the duration of the
	// surrounding transaction and returns the user. Must be called within a
	// transaction context. Returns ErrUserNotFound if the user doesn't exist.
	Lock(ctx context.Context, id uuid.UUID) (*User, error)
}

// StatementRepository defines the interface for the append-only ledger store.
// No update or delete operations exist: statements are immutable.
type StatementRepository interface {
	// Create appends a new statement.
	Create(ctx context.Context, statement *Statement) error

	// GetByID retrieves a statement by its unique identifier.
	// Returns ErrStatementNotFound if the statement doesn't exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Statement, error)

	// ListByUser returns every statement in which the user appears as owner
	// or as transfer sender, in insertion order. One listing is sufficient
	// to fold the user's balance.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Statement, error)
}

// TransactionManager defines the interface for managing the critical section
// around a validate-then-append sequence. Implementations guarantee that two
// concurrent writers against the same account cannot both observe a stale
// balance: the SQL implementation uses a database transaction with row locks,
// the in-memory implementation serializes writers behind a mutex.
type TransactionManager interface {
	// WithTransaction executes the given function within a transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher publishes domain events to external systems (e.g. RabbitMQ).
type EventPublisher interface {
	PublishStatementRecorded(ctx context.Context, statement *Statement) error
}
