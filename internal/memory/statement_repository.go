package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// StatementRepository implements domain.StatementRepository backed by an
// append-only slice, preserving insertion order for display.
type StatementRepository struct {
	mu         sync.RWMutex
	statements []domain.Statement
}

// NewStatementRepository creates an empty in-memory statement repository.
func NewStatementRepository() *StatementRepository {
	return &StatementRepository{}
}

// Create appends a new statement.
func (r *StatementRepository) Create(ctx context.Context, statement *domain.Statement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.statements = append(r.statements, *statement)
	return nil
}

// GetByID retrieves a statement by id.
func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.statements {
		if s.ID == id {
			statement := s
			return &statement, nil
		}
	}
	return nil, domain.ErrStatementNotFound
}

// ListByUser returns every statement where the user is owner or sender.
func (r *StatementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Statement
	for _, s := range r.statements {
		if s.UserID == userID || (s.SenderID != nil && *s.SenderID == userID) {
			result = append(result, s)
		}
	}
	return result, nil
}
