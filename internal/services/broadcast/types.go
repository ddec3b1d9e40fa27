package broadcast

// Event names are part of the client protocol and must stay stable
const (
	EventRainStatus            = "rain-status"
	EventRainStarted           = "rain-started"
	EventRainParticipantJoined = "rain-participant-joined"
	EventRainEnded             = "rain-ended"
	EventRainDistributed       = "rain-distributed"
	EventRainResponse          = "rain-response"
)

// Config holds configuration for the broadcast service
type Config struct {
	// Sinks receive every published event
	Sinks []Sink
}

// PublishInput contains parameters for publishing an event
type PublishInput struct {
	// Event is the stable event name
	Event string

	// Payload is the event body, marshalled by each sink as needed
	Payload interface{}
}
