package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"limo-booking-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		kind      errors.Kind
		retryable bool
		status    int
	}{
		{"validation", errors.ValidationError("amount must be positive"), errors.KindValidation, false, http.StatusBadRequest},
		{"bad request", errors.BadRequest("error parse request"), errors.KindValidation, false, http.StatusBadRequest},
		{"invalid state", errors.InvalidStateError("booking already paid"), errors.KindInvalidState, false, http.StatusConflict},
		{"store", errors.StoreError("error update booking", stderrors.New("conn reset")), errors.KindStore, true, http.StatusInternalServerError},
		{"gateway", errors.GatewayError("error create payment session", stderrors.New("timeout")), errors.KindGateway, true, http.StatusBadGateway},
		{"unverified", errors.UnverifiedEventError("bad signature", nil), errors.KindUnverified, false, http.StatusBadRequest},
		{"cache", errors.CacheError("error check processed event", stderrors.New("connection refused")), errors.KindInternal, true, http.StatusInternalServerError},
		{"orphaned", errors.OrphanedEventError("no booking"), errors.KindOrphanedEvent, false, http.StatusOK},
		{"wrapped store", fmt.Errorf("apply: %w", errors.StoreError("error update booking", nil)), errors.KindStore, true, http.StatusInternalServerError},
		{"foreign", stderrors.New("boom"), errors.KindInternal, true, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, errors.KindOf(tc.err))
			assert.True(t, errors.IsKind(tc.err, tc.kind))
			assert.Equal(t, tc.retryable, errors.Retryable(tc.err))
			assert.Equal(t, tc.status, errors.StatusCode(tc.err))
		})
	}
}

func TestNilIsNotRetryable(t *testing.T) {
	assert.False(t, errors.Retryable(nil))
	assert.False(t, errors.IsKind(nil, errors.KindInternal))
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := errors.StoreError("error insert booking", stderrors.New("duplicate key"))
	assert.Equal(t, "error insert booking: duplicate key", err.Error())
	assert.True(t, stderrors.Is(err, err.Err))
}
