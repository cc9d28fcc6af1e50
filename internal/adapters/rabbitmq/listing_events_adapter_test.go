package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedMessage struct {
	routingKey string
	msg        amqp.Publishing
	deadline   bool
}

type fakePublisher struct {
	published []publishedMessage
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	_, hasDeadline := ctx.Deadline()
	f.published = append(f.published, publishedMessage{routingKey: routingKey, msg: msg, deadline: hasDeadline})
	return f.err
}

func TestPublishPropertyCreated(t *testing.T) {
	publisher := &fakePublisher{}
	adapter, err := NewListingEventsAdapter(publisher, "")
	require.NoError(t, err)

	agencyID := uuid.New()
	event := domain.PropertyCreatedEvent{
		PropertyID:   uuid.New(),
		Title:        "Palm villa",
		Price:        "2500000.00",
		PriceType:    domain.PriceTypeSale,
		PropertyType: domain.PropertyTypeVilla,
		IsFeatured:   true,
		AgencyID:     &agencyID,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	require.NoError(t, adapter.PublishPropertyCreated(ctx, event))

	require.Len(t, publisher.published, 1)
	got := publisher.published[0]
	assert.Equal(t, constants.RoutingKeyPropertyCreated, got.routingKey)
	assert.True(t, got.deadline)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "trace-42", got.msg.Headers[constants.HeaderTraceID])
	assert.NotEmpty(t, got.msg.MessageId)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, event.PropertyID.String(), body["propertyId"])
	assert.Equal(t, "2500000.00", body["price"])
	assert.Equal(t, "villa", body["propertyType"])
	assert.Equal(t, true, body["isFeatured"])
	assert.Nil(t, body["locationId"])
	assert.Equal(t, agencyID.String(), body["agencyId"])
}

func TestPublishPropertyCreatedWithoutTraceID(t *testing.T) {
	publisher := &fakePublisher{}
	adapter, err := NewListingEventsAdapter(publisher, "custom.key")
	require.NoError(t, err)

	require.NoError(t, adapter.PublishPropertyCreated(context.Background(), domain.PropertyCreatedEvent{PropertyID: uuid.New()}))

	require.Len(t, publisher.published, 1)
	assert.Equal(t, "custom.key", publisher.published[0].routingKey)
	_, has := publisher.published[0].msg.Headers[constants.HeaderTraceID]
	assert.False(t, has)
}

func TestPublishPropertyCreatedError(t *testing.T) {
	adapter, err := NewListingEventsAdapter(&fakePublisher{err: errors.New("channel closed")}, "")
	require.NoError(t, err)

	err = adapter.PublishPropertyCreated(context.Background(), domain.PropertyCreatedEvent{PropertyID: uuid.New()})
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewListingEventsAdapterRequiresProducer(t *testing.T) {
	_, err := NewListingEventsAdapter(nil, "")
	assert.Error(t, err)
}

type capturingLogger struct {
	fields []port.Fields
}

func (c *capturingLogger) Debug(_ string, f port.Fields)          { c.fields = append(c.fields, f) }
func (c *capturingLogger) Info(_ string, f port.Fields)           { c.fields = append(c.fields, f) }
func (c *capturingLogger) Warn(_ string, f port.Fields)           { c.fields = append(c.fields, f) }
func (c *capturingLogger) Error(_ string, _ error, f port.Fields) { c.fields = append(c.fields, f) }
func (c *capturingLogger) WithFields(port.Fields) port.LoggerPort { return c }

func TestPkgLoggerBridgeConvertsPairs(t *testing.T) {
	logger := &capturingLogger{}
	bridge := NewPkgLoggerBridge(logger)

	bridge.Info("declared", "name", "listing.events", "type", "topic")
	bridge.Warn("odd", "orphan")
	bridge.Debug("empty")

	require.Len(t, logger.fields, 3)
	assert.Equal(t, port.Fields{"name": "listing.events", "type": "topic"}, logger.fields[0])
	assert.Equal(t, port.Fields{"orphan": "(MISSING)"}, logger.fields[1])
	assert.Nil(t, logger.fields[2])
}
