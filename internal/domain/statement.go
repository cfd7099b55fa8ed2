package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType classifies a statement entry.
type OperationType string

const (
	// OperationDeposit credits the owning account
	OperationDeposit OperationType = "deposit"

	// OperationWithdraw debits the owning account
	OperationWithdraw OperationType = "withdraw"

	// OperationTransfer moves funds from the sender to the owning account.
	// A transfer is recorded as a single statement attributed to the
	// recipient, with SenderID identifying the payer.
	OperationTransfer OperationType = "transfer"
)

// Valid reports whether t is one of the known operation types.
func (t OperationType) Valid() bool {
	switch t {
	case OperationDeposit, OperationWithdraw, OperationTransfer:
		return true
	}
	return false
}

// Statement is a single immutable ledger entry. Statements are append-only:
// once recorded they are never updated or deleted, and the account balance is
// always recomputed from the full statement history.
type Statement struct {
	ID          uuid.UUID       // Unique identifier, assigned at creation
	UserID      uuid.UUID       // Owning account
	SenderID    *uuid.UUID      // Payer, set only for transfers
	Type        OperationType   // Operation kind
	Amount      decimal.Decimal // Exact decimal amount, always positive
	Description string          // Free-text description
	CreatedAt   time.Time       // Timestamp when the statement was recorded
}

// NewStatement creates a new Statement with a fresh identifier and timestamp.
func NewStatement(userID uuid.UUID, senderID *uuid.UUID, opType OperationType, amount decimal.Decimal, description string) *Statement {
	return &Statement{
		ID:          uuid.New(),
		UserID:      userID,
		SenderID:    senderID,
		Type:        opType,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// ValidateAmount rejects non-positive amounts. The check runs on every write
// path, including deposits.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
