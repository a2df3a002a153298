package analytics

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AnalyticsQueueMessage is the payload stored in RabbitMQ.
type AnalyticsQueueMessage struct {
	ID            string    `json:"id"`
	EventName     string    `json:"event_name"`
	DestinationID string    `json:"destination_id"`
	AccountID     string    `json:"account_id,omitempty"`
	RequestID     string    `json:"request_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// confirmation resolves once the broker acks or nacks a single publishing.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishChannel interface {
	publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

// amqpChannel ties each publishing to its own deferred confirmation.
type amqpChannel struct {
	ch *amqp.Channel
}

func (c *amqpChannel) publish(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if deferred == nil {
		return nil, fmt.Errorf("channel is not in confirm mode")
	}
	return deferred, nil
}

func (c *amqpChannel) Close() error {
	return c.ch.Close()
}

// Service publishes analytics events to a durable queue with publisher confirms.
type Service struct {
	ch        publishChannel
	queueName string
	log       *zap.Logger
}

func NewService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        &amqpChannel{ch: ch},
		queueName: queueName,
		log:       log,
	}, nil
}

func (s *Service) Publish(ctx context.Context, event *models.AnalyticsEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("AnalyticsQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAnalyticsEventKey, event.EventName),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	message := AnalyticsQueueMessage{
		ID:            uuid.NewString(),
		EventName:     event.EventName,
		DestinationID: event.DestinationID,
		RequestID:     requestID,
		OccurredAt:    time.Now().UTC(),
	}
	if account, ok := models.AccountFromContext(ctx); ok {
		message.AccountID = account.AccountID
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    message.ID,
		Timestamp:    message.OccurredAt,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	confirm, err := s.ch.publish(ctx, s.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
	}
	return nil
}

func (s *Service) Close() {
	if err := s.ch.Close(); err != nil {
		s.log.Warn("AnalyticsQueue.Close error closing channel", zap.Error(err))
	}
}
