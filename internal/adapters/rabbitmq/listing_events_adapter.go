package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// messagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// PropertyCreatedMessage - тело сообщения о новом объявлении
type PropertyCreatedMessage struct {
	PropertyID   uuid.UUID  `json:"propertyId"`
	Title        string     `json:"title"`
	Price        string     `json:"price"`
	PriceType    string     `json:"priceType"`
	PropertyType string     `json:"propertyType"`
	IsFeatured   bool       `json:"isFeatured"`
	LocationID   *uuid.UUID `json:"locationId"`
	AgencyID     *uuid.UUID `json:"agencyId"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ListingEventsAdapter struct {
	producer   messagePublisher
	routingKey string
}

func NewListingEventsAdapter(producer messagePublisher, routingKey string) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		routingKey = constants.RoutingKeyPropertyCreated
	}
	return &ListingEventsAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

func (a *ListingEventsAdapter) PublishPropertyCreated(ctx context.Context, event domain.PropertyCreatedEvent) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ListingEventsAdapter",
		"routing_key": a.routingKey,
		"property_id": event.PropertyID.String(),
	})

	body, err := json.Marshal(PropertyCreatedMessage{
		PropertyID:   event.PropertyID,
		Title:        event.Title,
		Price:        event.Price,
		PriceType:    string(event.PriceType),
		PropertyType: string(event.PropertyType),
		IsFeatured:   event.IsFeatured,
		LocationID:   event.LocationID,
		AgencyID:     event.AgencyID,
		CreatedAt:    event.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    uuid.NewString(),
		Headers: amqp.Table{
			constants.HeaderEventType: a.routingKey,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		logger.Error("Failed to publish property created event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event for property %s: %w", event.PropertyID, err)
	}

	logger.Debug("Property created event published", nil)
	return nil
}
