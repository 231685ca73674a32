package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"schedule-service/internal/config"
	"schedule-service/internal/metrics"
)

// Emitter is what services use to announce committed writes. The write has
// already happened when Emit runs, so publish failures are logged and counted
// but never returned. A nil *Emitter is valid and drops everything.
type Emitter struct {
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewEmitter(publisher Publisher, logger *slog.Logger, m *metrics.Metrics) *Emitter {
	return &Emitter{
		publisher: publisher,
		logger:    logger,
		metrics:   m,
	}
}

func (e *Emitter) Emit(ctx context.Context, eventType string, key interface{}, payload interface{}) {
	if e == nil || e.publisher == nil {
		return
	}

	event := New(eventType, fmt.Sprint(key), payload)

	start := time.Now()
	err := e.publisher.Publish(ctx, event)
	if e.metrics != nil {
		e.metrics.Messaging.RecordPublish(ctx, e.publisher.Destination(), eventType, time.Since(start), err)
	}
	if err != nil {
		e.logger.WarnContext(ctx, "failed to publish event",
			"type", eventType,
			"key", event.Key,
			"destination", e.publisher.Destination(),
			"error", err,
		)
	}
}

func (e *Emitter) Close() error {
	if e == nil || e.publisher == nil {
		return nil
	}
	return e.publisher.Close()
}

// NewPublisher builds the publisher selected by cfg.Driver.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Driver {
	case "", "none":
		return Noop{}, nil
	case "nats":
		return NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject, logger)
	case "kafka":
		return NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}
