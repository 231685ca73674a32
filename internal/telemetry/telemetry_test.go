package telemetry_test

import (
	"context"
	"testing"

	"schedule-service/internal/config"
	"schedule-service/internal/logger"
	"schedule-service/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()
	log := logger.Discard()

	tel, err := telemetry.Init(ctx, config.TelemetryConfig{Enabled: false}, "schedule-service", "test", log)
	require.NoError(t, err)

	assert.Nil(t, tel.MeterProvider)
	require.NotNil(t, tel.Metrics)
	assert.NotPanics(t, func() { tel.Metrics.Schedule.RecordLogin(ctx, false) })
	assert.NoError(t, tel.Shutdown(ctx, log))
}
