package log_test

import (
	"errors"
	"testing"

	log_internal "limo-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWatermillAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := log_internal.NewWatermillAdapter(zap.New(core))

	adapter.With(watermill.LogFields{"topic": "send_email"}).
		Error("handler failed", errors.New("smtp down"), watermill.LogFields{"message_uuid": "1"})
	adapter.Info("router started", nil)

	entries := logs.AllUntimed()
	assert.Len(t, entries, 2)
	assert.Equal(t, "handler failed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "send_email", fields["topic"])
	assert.Equal(t, "1", fields["message_uuid"])
	assert.Equal(t, "smtp down", fields["error"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
}
