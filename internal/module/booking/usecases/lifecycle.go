package usecases

import (
	"limo-booking-service/internal/module/booking/models/entity"
)

type lifecycleEvent string

const (
	eventStartPayment     lifecycleEvent = "start_payment"
	eventPaymentConfirmed lifecycleEvent = "payment_confirmed"
	eventPaymentFailed    lifecycleEvent = "payment_failed"
	eventSessionExpired   lifecycleEvent = "session_expired"
	eventCancel           lifecycleEvent = "cancel"
)

// transitions is the payment status state machine. paid and canceled have
// no outgoing edges, so every event applied to them is a no-op.
//
// unpaid accepts payment_confirmed for the window where the gateway reports
// a completed session before the session id was written to the booking.
var transitions = map[entity.PaymentStatus]map[lifecycleEvent]entity.PaymentStatus{
	entity.PaymentUnpaid: {
		eventStartPayment:     entity.PaymentAwaitingPayment,
		eventPaymentConfirmed: entity.PaymentPaid,
		eventCancel:           entity.PaymentCanceled,
	},
	entity.PaymentAwaitingPayment: {
		eventPaymentConfirmed: entity.PaymentPaid,
		eventPaymentFailed:    entity.PaymentFailed,
		eventSessionExpired:   entity.PaymentUnpaid,
		eventCancel:           entity.PaymentCanceled,
	},
	entity.PaymentFailed: {
		eventStartPayment:     entity.PaymentAwaitingPayment,
		eventPaymentConfirmed: entity.PaymentPaid,
		eventSessionExpired:   entity.PaymentUnpaid,
		eventCancel:           entity.PaymentCanceled,
	},
	entity.PaymentPaid:     {},
	entity.PaymentCanceled: {},
}

func nextStatus(from entity.PaymentStatus, ev lifecycleEvent) (entity.PaymentStatus, bool) {
	to, ok := transitions[from][ev]
	return to, ok
}

// sourcesOf lists every status ev may leave from. It becomes the status
// predicate of the conditional write, so a concurrent writer that already
// moved the booking elsewhere makes the write a no-op.
func sourcesOf(ev lifecycleEvent) []entity.PaymentStatus {
	var from []entity.PaymentStatus
	for _, status := range []entity.PaymentStatus{
		entity.PaymentUnpaid,
		entity.PaymentAwaitingPayment,
		entity.PaymentFailed,
		entity.PaymentPaid,
		entity.PaymentCanceled,
	} {
		if _, ok := transitions[status][ev]; ok {
			from = append(from, status)
		}
	}
	return from
}

func isTerminal(status entity.PaymentStatus) bool {
	return len(transitions[status]) == 0
}
