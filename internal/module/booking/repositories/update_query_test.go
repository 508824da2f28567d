package repositories

import (
	"testing"

	"limo-booking-service/internal/module/booking/models/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildConditionalUpdate(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name      string
		guard     entity.UpdateGuard
		patch     entity.BookingPatch
		wantQuery string
		wantArgs  int
	}{
		{
			name: "start payment from unpaid",
			guard: entity.UpdateGuard{
				PaymentStatusIn: []entity.PaymentStatus{entity.PaymentUnpaid, entity.PaymentFailed},
				SessionCheck:    entity.SessionUnset,
			},
			patch: entity.BookingPatch{
				PaymentStatus: entity.PaymentAwaitingPayment,
				SetSession:    true,
				SessionID:     "sess_1",
				SessionURL:    "https://pay/sess_1",
			},
			wantQuery: "UPDATE bookings SET payment_status = $2, payment_session_id = $3, payment_session_url = $4, updated_at = NOW() " +
				"WHERE id = $1 AND payment_status = ANY($5) AND payment_session_id IS NULL",
			wantArgs: 5,
		},
		{
			name: "session expired",
			guard: entity.UpdateGuard{
				PaymentStatusIn: []entity.PaymentStatus{entity.PaymentAwaitingPayment},
				SessionCheck:    entity.SessionEquals,
				SessionID:       "sess_1",
			},
			patch: entity.BookingPatch{PaymentStatus: entity.PaymentUnpaid, ClearSession: true},
			wantQuery: "UPDATE bookings SET payment_status = $2, payment_session_id = NULL, payment_session_url = NULL, updated_at = NOW() " +
				"WHERE id = $1 AND payment_status = ANY($3) AND payment_session_id = $4",
			wantArgs: 4,
		},
		{
			name: "payment confirmed before session was recorded",
			guard: entity.UpdateGuard{
				PaymentStatusIn: []entity.PaymentStatus{entity.PaymentUnpaid, entity.PaymentAwaitingPayment, entity.PaymentFailed},
				SessionCheck:    entity.SessionEqualsOrUnset,
				SessionID:       "sess_1",
			},
			patch: entity.BookingPatch{
				PaymentStatus:  entity.PaymentPaid,
				SetSession:     true,
				SessionID:      "sess_1",
				ConfirmationID: ptr("pi_1"),
				PaidAmount:     ptr(120.0),
				PaidCurrency:   ptr("CAD"),
				ConfirmPending: true,
			},
			wantQuery: "UPDATE bookings SET payment_status = $2, payment_session_id = $3, payment_session_url = NULL, " +
				"payment_confirmation_id = $4, paid_amount = $5, paid_currency = $6, " +
				"status = CASE WHEN status = 'pending' THEN 'confirmed' ELSE status END, updated_at = NOW() " +
				"WHERE id = $1 AND payment_status = ANY($7) AND (payment_session_id = $8 OR payment_session_id IS NULL)",
			wantArgs: 8,
		},
		{
			name:  "cancel",
			guard: entity.UpdateGuard{PaymentStatusIn: []entity.PaymentStatus{entity.PaymentUnpaid}},
			patch: entity.BookingPatch{PaymentStatus: entity.PaymentCanceled, Cancel: true},
			wantQuery: "UPDATE bookings SET payment_status = $2, status = 'canceled', updated_at = NOW() " +
				"WHERE id = $1 AND payment_status = ANY($3)",
			wantArgs: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildConditionalUpdate(id, tc.guard, tc.patch)
			assert.Equal(t, tc.wantQuery, query)
			assert.Len(t, args, tc.wantArgs)
			assert.Equal(t, id, args[0])
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
