package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// StatementRepository implements domain.StatementRepository using PostgreSQL.
// The statements table is append-only: the repository exposes no update or
// delete, and the schema grants none.
type StatementRepository struct {
	pool *pgxpool.Pool
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(pool *pgxpool.Pool) *StatementRepository {
	return &StatementRepository{
		pool: pool,
	}
}

// Create appends a new statement.
func (r *StatementRepository) Create(ctx context.Context, statement *domain.Statement) error {
	query := `
		INSERT INTO statements (id, user_id, sender_id, type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var err error
	if tx := getTx(ctx); tx != nil {
		_, err = tx.Exec(ctx, query,
			statement.ID,
			statement.UserID,
			statement.SenderID,
			string(statement.Type),
			statement.Amount.String(),
			statement.Description,
			statement.CreatedAt,
		)
	} else {
		_, err = r.pool.Exec(ctx, query,
			statement.ID,
			statement.UserID,
			statement.SenderID,
			string(statement.Type),
			statement.Amount.String(),
			statement.Description,
			statement.CreatedAt,
		)
	}

	if err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}

	return nil
}

// GetByID retrieves a statement by its unique identifier.
func (r *StatementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Statement, error) {
	query := `
		SELECT id, user_id, sender_id, type, amount::text, description, created_at
		FROM statements
		WHERE id = $1
	`

	var row pgx.Row
	if tx := getTx(ctx); tx != nil {
		row = tx.QueryRow(ctx, query, id)
	} else {
		row = r.pool.QueryRow(ctx, query, id)
	}

	statement, err := scanStatement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	return statement, nil
}

// ListByUser returns every statement where the user appears as owner or as
// transfer sender, in insertion order.
func (r *StatementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error) {
	query := `
		SELECT id, user_id, sender_id, type, amount::text, description, created_at
		FROM statements
		WHERE user_id = $1 OR sender_id = $1
		ORDER BY created_at, id
	`

	var rows pgx.Rows
	var err error
	if tx := getTx(ctx); tx != nil {
		rows, err = tx.Query(ctx, query, userID)
	} else {
		rows, err = r.pool.Query(ctx, query, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	defer rows.Close()

	var statements []domain.Statement
	for rows.Next() {
		statement, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, *statement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read statements: %w", err)
	}

	return statements, nil
}

// scanStatement reads one statement from a row. The amount column is NUMERIC
// and scans through a string to keep the decimal exact.
func scanStatement(row pgx.Row) (*domain.Statement, error) {
	var statement domain.Statement
	var opType string
	var amount string

	err := row.Scan(
		&statement.ID,
		&statement.UserID,
		&statement.SenderID,
		&opType,
		&amount,
		&statement.Description,
		&statement.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	statement.Type = domain.OperationType(opType)
	statement.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return &statement, nil
}
