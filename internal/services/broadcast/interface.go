package broadcast

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/driftcase/rainpot/internal/services/broadcast Service

import "context"

// Service is the interface for fanning out state-change events to
// connected clients
type Service interface {
	// Publish delivers an event to every registered sink
	Publish(ctx context.Context, input *PublishInput) error
}

// Sink is a delivery target for published events (websocket hub,
// chat announcer, ...)
type Sink interface {
	// Deliver hands one event to the sink. Implementations must not
	// block; slow consumers drop rather than stall the engine.
	Deliver(event string, payload interface{})
}
