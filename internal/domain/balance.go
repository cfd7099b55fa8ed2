package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SumBalance folds a statement history into the balance of the given user.
// Relative to that user, deposits and received transfers are credits,
// withdrawals and sent transfers are debits. A transfer to oneself nets to
// zero. The fold is pure: it has no side effects and is safe to run
// concurrently over the same slice.
func SumBalance(userID uuid.UUID, statements []Statement) decimal.Decimal {
	balance := decimal.Zero
	for _, s := range statements {
		switch s.Type {
		case OperationDeposit:
			if s.UserID == userID {
				balance = balance.Add(s.Amount)
			}
		case OperationWithdraw:
			if s.UserID == userID {
				balance = balance.Sub(s.Amount)
			}
		case OperationTransfer:
			if s.SenderID != nil && *s.SenderID == userID {
				balance = balance.Sub(s.Amount)
			}
			if s.UserID == userID {
				balance = balance.Add(s.Amount)
			}
		}
	}
	return balance
}
