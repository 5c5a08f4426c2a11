package constants

// Обменник, в который сервис публикует доменные события.
const (
	EventsExchange     = "brokerage.events"
	EventsExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyDealCreated = "deal.created"
)
