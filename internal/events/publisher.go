// Package events publishes ledger domain events to RabbitMQ. Publishing is
// best-effort: a statement that already committed must never look failed to
// the caller because the broker was unavailable.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/rubensjunqueira/fin-api/internal/config"
	"github.com/rubensjunqueira/fin-api/internal/domain"
)

// StatementRecordedEvent is the wire format of a statement.recorded event.
type StatementRecordedEvent struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SenderID    *string   `json:"sender_id,omitempty"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RabbitMQPublisher implements domain.EventPublisher using a topic exchange.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  config.RabbitMQConfig
	logger  *zap.Logger
}

// NewRabbitMQPublisher connects to RabbitMQ and declares the exchange.
func NewRabbitMQPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info("rabbitmq publisher initialized",
		zap.String("exchange", cfg.Exchange),
		zap.String("routing_key", cfg.RoutingKey))

	return &RabbitMQPublisher{
		conn:    conn,
		channel: channel,
		config:  cfg,
		logger:  logger,
	}, nil
}

// PublishStatementRecorded publishes a statement.recorded event. Errors are
// logged and returned, but callers treat the publish as best-effort.
func (p *RabbitMQPublisher) PublishStatementRecorded(ctx context.Context, statement *domain.Statement) error {
	event := StatementRecordedEvent{
		ID:          statement.ID.String(),
		UserID:      statement.UserID.String(),
		Type:        string(statement.Type),
		Amount:      statement.Amount.String(),
		Description: statement.Description,
		CreatedAt:   statement.CreatedAt,
	}
	if statement.SenderID != nil {
		sender := statement.SenderID.String()
		event.SenderID = &sender
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.config.Exchange,
		p.config.RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Warn("failed to publish statement.recorded event",
			zap.String("statement_id", event.ID),
			zap.Error(err))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the channel and the connection.
func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
