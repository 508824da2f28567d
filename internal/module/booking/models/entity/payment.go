package entity

import (
	"slices"
	"time"
)

type PaymentStatus string

const (
	PaymentUnpaid          PaymentStatus = "unpaid"
	PaymentAwaitingPayment PaymentStatus = "awaiting_payment"
	PaymentPaid            PaymentStatus = "paid"
	PaymentFailed          PaymentStatus = "payment_failed"
	PaymentCanceled        PaymentStatus = "canceled"
)

type PaymentEventType string

const (
	EventSessionCompleted PaymentEventType = "session_completed"
	EventPaymentFailed    PaymentEventType = "payment_failed"
	EventSessionExpired   PaymentEventType = "session_expired"
	EventIgnored          PaymentEventType = "ignored"
)

// PaymentEvent is a verified, gateway-neutral payment notification.
type PaymentEvent struct {
	ID          string
	GatewayType string
	Type        PaymentEventType
	// BookingID is the correlation token attached when the session was
	// created. It may be empty.
	BookingID      string
	SessionID      string
	ConfirmationID string
	// AmountPaid is in minor units of Currency.
	AmountPaid int64
	Currency   string
}

type PaymentSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	// ExpiresAt is when the gateway stops accepting payment for the session.
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionRequest struct {
	BookingID     string
	Amount        float64
	Currency      string
	CustomerEmail string
}

type SessionCheck int

const (
	SessionAny SessionCheck = iota
	SessionEquals
	SessionEqualsOrUnset
	SessionUnset
)

// UpdateGuard is the predicate a conditional store write must satisfy.
type UpdateGuard struct {
	PaymentStatusIn []PaymentStatus
	SessionCheck    SessionCheck
	SessionID       string
}

// Matches evaluates the guard against an already loaded booking.
func (g UpdateGuard) Matches(b Booking) bool {
	if len(g.PaymentStatusIn) > 0 && !slices.Contains(g.PaymentStatusIn, b.PaymentStatus) {
		return false
	}

	switch g.SessionCheck {
	case SessionEquals:
		return b.SessionIs(g.SessionID)
	case SessionEqualsOrUnset:
		return b.PaymentSessionID == nil || b.SessionIs(g.SessionID)
	case SessionUnset:
		return b.PaymentSessionID == nil
	default:
		return true
	}
}

// BookingPatch is the set of columns a lifecycle transition writes.
type BookingPatch struct {
	PaymentStatus PaymentStatus

	// SessionID and SessionURL are written when SetSession is true, an empty
	// SessionURL as NULL. ClearSession nulls both columns.
	SetSession   bool
	SessionID    string
	SessionURL   string
	ClearSession bool

	ConfirmationID *string
	PaidAmount     *float64
	PaidCurrency   *string

	// ConfirmPending moves a pending booking to confirmed.
	ConfirmPending bool
	Cancel         bool
}

// Apply returns b as it looks after the patch was written.
func (p BookingPatch) Apply(b Booking, now time.Time) Booking {
	b.PaymentStatus = p.PaymentStatus
	if p.SetSession {
		id := p.SessionID
		b.PaymentSessionID = &id
		b.PaymentSessionURL = nil
		if p.SessionURL != "" {
			url := p.SessionURL
			b.PaymentSessionURL = &url
		}
	}
	if p.ClearSession {
		b.PaymentSessionID = nil
		b.PaymentSessionURL = nil
	}
	if p.ConfirmationID != nil {
		b.PaymentConfirmationID = p.ConfirmationID
	}
	if p.PaidAmount != nil {
		b.PaidAmount = p.PaidAmount
	}
	if p.PaidCurrency != nil {
		b.PaidCurrency = p.PaidCurrency
	}
	if p.ConfirmPending && b.Status == BookingPending {
		b.Status = BookingConfirmed
	}
	if p.Cancel {
		b.Status = BookingCanceled
	}
	b.UpdatedAt = now
	return b
}
