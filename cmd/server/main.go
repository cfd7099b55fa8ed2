package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rubensjunqueira/fin-api/internal/auth"
	"github.com/rubensjunqueira/fin-api/internal/config"
	"github.com/rubensjunqueira/fin-api/internal/db"
	"github.com/rubensjunqueira/fin-api/internal/domain"
	"github.com/rubensjunqueira/fin-api/internal/events"
	httpapi "github.com/rubensjunqueira/fin-api/internal/http"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("database connection pool initialized")

	userRepo := db.NewUserRepository(pool.Pool)
	statementRepo := db.NewStatementRepository(pool.Pool)
	txManager := db.NewTransactionManager(pool.Pool)

	// Event publishing is optional; an empty URL disables it
	var publisher domain.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQ, logger)
		if err != nil {
			logger.Fatal("failed to connect to RabbitMQ", zap.Error(err))
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		logger.Info("RABBITMQ_URL not set, event publishing disabled")
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWT.Secret), cfg.JWT.Issuer, cfg.JWT.TTL)
	hasher := auth.NewBcryptHasher(0)

	userService := domain.NewUserService(userRepo, hasher, tokens)
	statementService := domain.NewStatementService(userRepo, statementRepo, txManager, publisher)
	logger.Info("domain services initialized")

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(userService, statementService, tokens, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("fin-api server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
