package constants

// Exchange по умолчанию для событий каталога (topic)
const ExchangeListingEvents = "listing.events"

// Ключи маршрутизации
const (
	RoutingKeyPropertyCreated = "listing.property.created"
)

// Заголовки AMQP
const (
	HeaderTraceID   = "x-trace-id"
	HeaderEventType = "x-event-type"
)
