package usecases

import (
	"testing"

	"limo-booking-service/internal/module/booking/models/entity"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	testCases := []struct {
		from entity.PaymentStatus
		ev   lifecycleEvent
		to   entity.PaymentStatus
		ok   bool
	}{
		{entity.PaymentUnpaid, eventStartPayment, entity.PaymentAwaitingPayment, true},
		{entity.PaymentAwaitingPayment, eventPaymentConfirmed, entity.PaymentPaid, true},
		{entity.PaymentAwaitingPayment, eventPaymentFailed, entity.PaymentFailed, true},
		{entity.PaymentAwaitingPayment, eventSessionExpired, entity.PaymentUnpaid, true},
		{entity.PaymentFailed, eventStartPayment, entity.PaymentAwaitingPayment, true},
		{entity.PaymentAwaitingPayment, eventStartPayment, "", false},
		{entity.PaymentPaid, eventPaymentFailed, "", false},
		{entity.PaymentPaid, eventPaymentConfirmed, "", false},
		{entity.PaymentPaid, eventStartPayment, "", false},
		{entity.PaymentPaid, eventCancel, "", false},
		{entity.PaymentCanceled, eventPaymentConfirmed, "", false},
		{entity.PaymentCanceled, eventStartPayment, "", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"/"+string(tc.ev), func(t *testing.T) {
			to, ok := nextStatus(tc.from, tc.ev)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.to, to)
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, isTerminal(entity.PaymentPaid))
	assert.True(t, isTerminal(entity.PaymentCanceled))
	assert.False(t, isTerminal(entity.PaymentFailed))
	assert.False(t, isTerminal(entity.PaymentUnpaid))
	assert.False(t, isTerminal(entity.PaymentAwaitingPayment))
}

func TestSourcesOfNeverIncludeTerminal(t *testing.T) {
	for _, ev := range []lifecycleEvent{eventStartPayment, eventPaymentConfirmed, eventPaymentFailed, eventSessionExpired, eventCancel} {
		for _, from := range sourcesOf(ev) {
			assert.False(t, isTerminal(from), "%s leaves terminal %s", ev, from)
		}
	}
	assert.Equal(t, []entity.PaymentStatus{entity.PaymentUnpaid, entity.PaymentFailed}, sourcesOf(eventStartPayment))
	assert.Equal(t, []entity.PaymentStatus{entity.PaymentAwaitingPayment}, sourcesOf(eventPaymentFailed))
}
