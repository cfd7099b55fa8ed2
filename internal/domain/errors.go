package domain

import "errors"

var (
	// ErrUserNotFound is returned when the target or sender account doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInsufficientFunds is returned when the balance doesn't cover a withdraw or transfer
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when the operation amount is not strictly positive
	ErrInvalidAmount = errors.New("invalid amount: must be positive")

	// ErrStatementNotFound is returned when a statement doesn't exist or isn't owned by the requester
	ErrStatementNotFound = errors.New("statement not found")

	// ErrEmailTaken is returned when registering with an email that is already in use
	ErrEmailTaken = errors.New("email already in use")

	// ErrIncorrectCredentials is returned on authentication failure.
	// The same error covers both an unknown email and a wrong password.
	ErrIncorrectCredentials = errors.New("incorrect email or password")
)
