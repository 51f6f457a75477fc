package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Eursukkul/events-portal/internal/models"
	"github.com/Eursukkul/events-portal/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

const (
	KeyUserUpserted = "user.upserted"
	KeyUserDeleted  = "user.deleted"
)

var errMalformed = errors.New("malformed user message")

type userMessage struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsStaff   bool   `json:"is_staff"`
}

// UserConsumer keeps the local users table in sync with the identity
// provider.
type UserConsumer struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserConsumer(users repository.UserRepository, logger *slog.Logger) *UserConsumer {
	return &UserConsumer{users: users, logger: logger}
}

// Start processes deliveries until msgs is closed.
func (uc *UserConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			uc.handleMessage(ctx, msg)
		}
		uc.logger.Info("user consumer channel closed, stopping")
	}()
}

func (uc *UserConsumer) handleMessage(ctx context.Context, msg amqp.Delivery) {
	err := uc.Handle(ctx, msg.RoutingKey, msg.Body)
	switch {
	case err == nil:
		msg.Ack(false)
	case errors.Is(err, errMalformed), errors.Is(err, gorm.ErrDuplicatedKey):
		// Redelivery cannot succeed: the payload is bad or the username
		// belongs to another account.
		uc.logger.Warn("dropping user message", "routing_key", msg.RoutingKey, "error", err)
		msg.Nack(false, false)
	default:
		uc.logger.Error("user sync failed, requeueing", "routing_key", msg.RoutingKey, "error", err)
		msg.Nack(false, true)
	}
}

func (uc *UserConsumer) Handle(ctx context.Context, routingKey string, body []byte) error {
	var m userMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if m.ID == 0 {
		return fmt.Errorf("%w: missing id", errMalformed)
	}

	switch routingKey {
	case KeyUserUpserted:
		if m.Username == "" {
			return fmt.Errorf("%w: missing username", errMalformed)
		}
		user := &models.User{
			ID:        m.ID,
			Username:  m.Username,
			FirstName: m.FirstName,
			LastName:  m.LastName,
			IsStaff:   m.IsStaff,
		}
		if err := uc.users.Upsert(ctx, user); err != nil {
			return fmt.Errorf("upsert user %d: %w", m.ID, err)
		}
		uc.logger.Info("synced user", "user_id", m.ID, "username", m.Username)
	case KeyUserDeleted:
		err := uc.users.Delete(ctx, m.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("delete user %d: %w", m.ID, err)
		}
		uc.logger.Info("removed user", "user_id", m.ID)
	default:
		return fmt.Errorf("%w: unexpected routing key %q", errMalformed, routingKey)
	}
	return nil
}
