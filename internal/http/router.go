// Package http exposes the service over a JSON API. Everything here is a thin
// adapter: requests are decoded, handed to the domain services, and domain
// errors are mapped onto status codes.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rubensjunqueira/fin-api/internal/auth"
	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// NewRouter wires every route of the v1 API.
func NewRouter(
	users *domain.UserService,
	statements *domain.StatementService,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) chi.Router {
	userHandler := NewUserHandler(users, logger)
	statementHandler := NewStatementHandler(statements, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.Create)
		r.Post("/sessions", userHandler.CreateSession)

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(tokens))

			r.Get("/profile", userHandler.Profile)
			r.Route("/statements", func(r chi.Router) {
				r.Get("/balance", statementHandler.Balance)
				r.Post("/deposit", statementHandler.Deposit)
				r.Post("/withdraw", statementHandler.Withdraw)
				r.Post("/transfers/{recipient_id}", statementHandler.Transfer)
				r.Get("/{statement_id}", statementHandler.Get)
			})
		})
	})

	return r
}
