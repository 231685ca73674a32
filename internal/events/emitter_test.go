package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"schedule-service/internal/config"
	"schedule-service/internal/events"
	"schedule-service/internal/logger"
	"schedule-service/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
	closed bool
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Destination() string { return "memory" }

func (p *recordingPublisher) Close() error {
	p.closed = true
	return nil
}

func TestEmitter(t *testing.T) {
	ctx := context.Background()

	t.Run("Emit", func(t *testing.T) {
		pub := &recordingPublisher{}
		emitter := events.NewEmitter(pub, logger.Discard(), metrics.NewMock())

		emitter.Emit(ctx, "class.deleted", 42, map[string]int{"enrollmentsRemoved": 3})

		require.Len(t, pub.events, 1)
		e := pub.events[0]
		assert.Equal(t, "class.deleted", e.Type)
		assert.Equal(t, "42", e.Key)
		assert.NotEmpty(t, e.ID.String())
		assert.False(t, e.OccurredAt.IsZero())
	})

	t.Run("PublishErrorIsSwallowed", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("broker down")}
		emitter := events.NewEmitter(pub, logger.Discard(), metrics.NewMock())

		assert.NotPanics(t, func() { emitter.Emit(ctx, "activity.created", 1, nil) })
		assert.Len(t, pub.events, 1)
	})

	t.Run("NilEmitter", func(t *testing.T) {
		var emitter *events.Emitter
		assert.NotPanics(t, func() { emitter.Emit(ctx, "activity.created", 1, nil) })
		assert.NoError(t, emitter.Close())
	})

	t.Run("Close", func(t *testing.T) {
		pub := &recordingPublisher{}
		emitter := events.NewEmitter(pub, logger.Discard(), nil)
		require.NoError(t, emitter.Close())
		assert.True(t, pub.closed)
	})
}

func TestNewPublisher(t *testing.T) {
	pub, err := events.NewPublisher(config.EventsConfig{Driver: "none"}, logger.Discard())
	require.NoError(t, err)
	assert.Equal(t, "none", pub.Destination())

	_, err = events.NewPublisher(config.EventsConfig{Driver: "carrier-pigeon"}, logger.Discard())
	assert.Error(t, err)
}
