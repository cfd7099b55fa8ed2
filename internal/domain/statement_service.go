package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateStatementInput carries a request to record one ledger operation.
type CreateStatementInput struct {
	UserID      uuid.UUID       // Owning account (recipient for transfers)
	SenderID    *uuid.UUID      // Payer, required for transfers
	Type        OperationType   // Operation kind
	Amount      decimal.Decimal // Requested amount
	Description string          // Free-text description
}

// Balance is the result of a balance query: the computed balance together
// with the full statement history used to derive it.
type Balance struct {
	Balance   decimal.Decimal
	Statement []Statement
}

// StatementService is the ledger engine. It composes the user directory, the
// statement store, the balance fold and the per-operation validation rules to
// process one operation end-to-end, and answers balance and history queries.
type StatementService struct {
	users      UserRepository
	statements StatementRepository
	txManager  TransactionManager
	// Optional event publisher to emit domain events after a statement commits
	publisher EventPublisher
}

// NewStatementService creates a new instance of StatementService.
// Pass nil for publisher if no events should be emitted.
func NewStatementService(
	users UserRepository,
	statements StatementRepository,
	txManager TransactionManager,
	publisher EventPublisher,
) *StatementService {
	return &StatementService{
		users:      users,
		statements: statements,
		txManager:  txManager,
		publisher:  publisher,
	}
}

// CreateStatement validates and records one ledger operation. This is the
// only write path. The call is deliberately not idempotent: identical
// requests create distinct statements.
//
// The validate-then-append sequence runs inside a single transaction:
// 1. Lock the involved accounts in deterministic order
// 2. Recompute the balance under the lock
// 3. Check per-kind business rules
// 4. Append the statement
// 5. Commit
//
// Two concurrent withdrawals can therefore never both observe a stale,
// sufficient balance.
func (s *StatementService) CreateStatement(ctx context.Context, in CreateStatementInput) (*Statement, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("unsupported operation type %q", in.Type)
	}
	if err := ValidateAmount(in.Amount); err != nil {
		return nil, err
	}
	if in.Type == OperationTransfer && in.SenderID == nil {
		// A transfer without a sender can't reference an existing payer.
		return nil, ErrUserNotFound
	}

	var created *Statement
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, id := range lockOrder(in) {
			if _, err := s.users.Lock(txCtx, id); err != nil {
				return err
			}
		}

		switch in.Type {
		case OperationWithdraw:
			if err := s.checkFunds(txCtx, in.UserID, in.Amount); err != nil {
				return err
			}
		case OperationTransfer:
			if err := s.checkFunds(txCtx, *in.SenderID, in.Amount); err != nil {
				return err
			}
		}

		created = NewStatement(in.UserID, in.SenderID, in.Type, in.Amount, in.Description)
		if err := s.statements.Create(txCtx, created); err != nil {
			return fmt.Errorf("failed to append statement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// After commit, publish the recorded statement (best-effort). Transient
	// broker failures must not make an already-committed statement appear to
	// fail, so the publish happens asynchronously and errors are swallowed
	// by the publisher implementation.
	if s.publisher != nil {
		go func(st *Statement) {
			_ = s.publisher.PublishStatementRecorded(context.Background(), st)
		}(created)
	}

	return created, nil
}

// GetBalance returns the computed balance and the full statement history of
// the user. Returns ErrUserNotFound if the user doesn't exist.
func (s *StatementService) GetBalance(ctx context.Context, userID uuid.UUID) (*Balance, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	statements, err := s.statements.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	return &Balance{
		Balance:   SumBalance(userID, statements),
		Statement: statements,
	}, nil
}

// GetStatement returns a single statement owned by the user. Returns
// ErrUserNotFound if the user doesn't exist and ErrStatementNotFound if the
// statement doesn't exist or belongs to another account.
func (s *StatementService) GetStatement(ctx context.Context, userID, statementID uuid.UUID) (*Statement, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	statement, err := s.statements.GetByID(ctx, statementID)
	if err != nil {
		return nil, err
	}
	if statement.UserID != userID {
		return nil, ErrStatementNotFound
	}
	return statement, nil
}

// checkFunds recomputes the account balance and verifies it covers amount.
// Must run under the account lock.
func (s *StatementService) checkFunds(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) error {
	statements, err := s.statements.ListByUser(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to list statements: %w", err)
	}
	if SumBalance(accountID, statements).LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// lockOrder returns the accounts involved in the operation, sorted so that
// two concurrent transfers between the same pair always lock in the same
// order and can't deadlock.
func lockOrder(in CreateStatementInput) []uuid.UUID {
	if in.Type != OperationTransfer || in.SenderID == nil {
		return []uuid.UUID{in.UserID}
	}
	sender := *in.SenderID
	if sender == in.UserID {
		return []uuid.UUID{in.UserID}
	}
	if sender.String() < in.UserID.String() {
		return []uuid.UUID{sender, in.UserID}
	}
	return []uuid.UUID{in.UserID, sender}
}
