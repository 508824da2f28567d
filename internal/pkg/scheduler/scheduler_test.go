package scheduler_test

import (
	"context"
	"testing"

	"limo-booking-service/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestNewServeMux(t *testing.T) {
	var handled []string
	handlerFor := func(name string) func(ctx context.Context, t *asynq.Task) error {
		return func(ctx context.Context, t *asynq.Task) error {
			handled = append(handled, name+":"+string(t.Payload()))
			return nil
		}
	}

	mux := scheduler.NewServeMux(
		[]string{"expire_payment_session", "other"},
		[]func(ctx context.Context, t *asynq.Task) error{handlerFor("expire"), handlerFor("other")},
	)

	assert.NoError(t, mux.ProcessTask(context.Background(), asynq.NewTask("expire_payment_session", []byte("a"))))
	assert.NoError(t, mux.ProcessTask(context.Background(), asynq.NewTask("other", []byte("b"))))
	assert.Error(t, mux.ProcessTask(context.Background(), asynq.NewTask("unknown", nil)))

	assert.Equal(t, []string{"expire:a", "other:b"}, handled)
}
