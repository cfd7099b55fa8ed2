package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Message string `json:"message"`
}

// userResponse is the public view of a user, without the credential hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// statementResponse is the public view of a ledger entry.
type statementResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	SenderID    *string         `json:"sender_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// balanceResponse is the body of the balance query.
type balanceResponse struct {
	Balance   decimal.Decimal     `json:"balance"`
	Statement []statementResponse `json:"statement"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func newStatementResponse(statement *domain.Statement) statementResponse {
	resp := statementResponse{
		ID:          statement.ID.String(),
		UserID:      statement.UserID.String(),
		Amount:      statement.Amount,
		Description: statement.Description,
		Type:        string(statement.Type),
		CreatedAt:   statement.CreatedAt,
	}
	if statement.SenderID != nil {
		sender := statement.SenderID.String()
		resp.SenderID = &sender
	}
	return resp
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeDomainError maps a domain error to an HTTP status code.
// Validation outcomes are client errors; everything else is infrastructure
// and surfaces as a 500 without leaking details.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStatementNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrIncorrectCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
