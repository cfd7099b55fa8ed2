package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// StatementHandler serves deposits, withdrawals, transfers, balance and
// statement lookups for the authenticated user.
type StatementHandler struct {
	statements *domain.StatementService
	logger     *zap.Logger
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statements *domain.StatementService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		statements: statements,
		logger:     logger,
	}
}

type createStatementRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// Deposit handles POST /api/v1/statements/deposit.
func (h *StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createOwnStatement(w, r, domain.OperationDeposit)
}

// Withdraw handles POST /api/v1/statements/withdraw.
func (h *StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createOwnStatement(w, r, domain.OperationWithdraw)
}

// Transfer handles POST /api/v1/statements/transfers/{recipient_id}.
// The authenticated user is the sender; the statement is attributed to the
// recipient with the sender recorded as payer.
func (h *StatementHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	senderID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing authentication"})
		return
	}

	recipientID, err := uuid.Parse(chi.URLParam(r, "recipient_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid recipient_id"})
		return
	}

	req, ok := decodeStatementRequest(w, r)
	if !ok {
		return
	}

	statement, err := h.statements.CreateStatement(r.Context(), domain.CreateStatementInput{
		UserID:      recipientID,
		SenderID:    &senderID,
		Type:        domain.OperationTransfer,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.logger.Info("transfer recorded",
		zap.String("statement_id", statement.ID.String()),
		zap.String("sender_id", senderID.String()),
		zap.String("recipient_id", recipientID.String()))
	writeJSON(w, http.StatusCreated, newStatementResponse(statement))
}

// Balance handles GET /api/v1/statements/balance.
func (h *StatementHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing authentication"})
		return
	}

	balance, err := h.statements.GetBalance(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := balanceResponse{
		Balance:   balance.Balance,
		Statement: make([]statementResponse, 0, len(balance.Statement)),
	}
	for i := range balance.Statement {
		resp.Statement = append(resp.Statement, newStatementResponse(&balance.Statement[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/statements/{statement_id}.
func (h *StatementHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing authentication"})
		return
	}

	statementID, err := uuid.Parse(chi.URLParam(r, "statement_id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid statement_id"})
		return
	}

	statement, err := h.statements.GetStatement(r.Context(), userID, statementID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newStatementResponse(statement))
}

// createOwnStatement records a deposit or withdrawal for the authenticated user.
func (h *StatementHandler) createOwnStatement(w http.ResponseWriter, r *http.Request, opType domain.OperationType) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing authentication"})
		return
	}

	req, ok := decodeStatementRequest(w, r)
	if !ok {
		return
	}

	statement, err := h.statements.CreateStatement(r.Context(), domain.CreateStatementInput{
		UserID:      userID,
		Type:        opType,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.logger.Info("statement recorded",
		zap.String("statement_id", statement.ID.String()),
		zap.String("type", string(opType)))
	writeJSON(w, http.StatusCreated, newStatementResponse(statement))
}

// decodeStatementRequest parses the shared deposit/withdraw/transfer body.
// On failure it writes the error response and returns ok=false.
func decodeStatementRequest(w http.ResponseWriter, r *http.Request) (createStatementRequest, bool) {
	var req createStatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return req, false
	}
	return req, true
}
