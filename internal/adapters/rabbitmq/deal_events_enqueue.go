package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"brokerage-service/internal/contextkeys"
	"brokerage-service/internal/contracts"
	"brokerage-service/internal/core/domain"
	"brokerage-service/internal/core/port"
	"brokerage-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	dealCreatedEventType    = "DealCreatedEvent"
	dealCreatedEventVersion = "1.0.0"

	publishTimeout = 10 * time.Second
)

// DealCreatedDTO - тело события deal.created.
type DealCreatedDTO struct {
	DealID    uuid.UUID `json:"deal_id"`
	NeedID    uuid.UUID `json:"need_id"`
	OfferID   uuid.UUID `json:"offer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// DealEventsAdapter публикует события о сделках в обменник брокера.
type DealEventsAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewDealEventsAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*DealEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &DealEventsAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

// PublishDealCreated реализует port.DealEventsPort.
// Тело события проверяется по той же схеме, по которой его будут
// валидировать потребители, чтобы поймать расхождение контракта на публикации.
func (a *DealEventsAdapter) PublishDealCreated(ctx context.Context, deal domain.Deal) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "DealEventsAdapter",
		"routing_key": a.routingKey,
		"deal_id":     deal.ID.String(),
	})

	dto := DealCreatedDTO{
		DealID:    deal.ID,
		NeedID:    deal.NeedID,
		OfferID:   deal.OfferID,
		CreatedAt: deal.CreatedAt,
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal deal.created event: %w", err)
	}

	if err := contracts.ValidateEvent(dealCreatedEventType, dealCreatedEventVersion, body); err != nil {
		adapterLogger.Error("Deal created event failed schema validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: deal.created event failed schema validation: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    dealCreatedEventType,
			"event-version": dealCreatedEventVersion,
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на публикацию, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Info("Publishing deal.created event", nil)
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish deal.created event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish deal.created for deal %s: %w", deal.ID, err)
	}

	adapterLogger.Info("Successfully published deal.created event", nil)
	return nil
}
