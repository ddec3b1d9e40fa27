package broadcast

import (
	"context"
	"errors"

	"github.com/driftcase/rainpot/internal/logger"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	sinks []Sink
}

// New creates a new broadcast service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &service{
		sinks: cfg.Sinks,
	}, nil
}

// SetSinks replaces the sink list. Call before any publisher starts;
// the list is not guarded for concurrent replacement.
func (s *service) SetSinks(sinks []Sink) {
	s.sinks = sinks
}

// Publish delivers the event to every sink
func (s *service) Publish(ctx context.Context, input *PublishInput) error {
	if input == nil || input.Event == "" {
		return errors.New("input and event cannot be empty")
	}

	logger.Debug("publishing event",
		zap.String("event", input.Event),
		zap.Int("sinks", len(s.sinks)))

	for _, sink := range s.sinks {
		sink.Deliver(input.Event, input.Payload)
	}

	return nil
}
