package response

import "time"

type Booking struct {
	ID            string    `json:"id"`
	Mode          string    `json:"mode"`
	PickupText    string    `json:"pickup_text"`
	DropoffText   *string   `json:"dropoff_text"`
	PickupAt      time.Time `json:"pickup_at"`
	Hours         *int      `json:"hours"`
	Vehicle       string    `json:"vehicle"`
	Passengers    *int      `json:"passengers"`
	Luggage       *int      `json:"luggage"`
	Notes         *string   `json:"notes"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	PriceEstimate float64   `json:"price_estimate"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	Source        string    `json:"source"`

	PaymentStatus         string   `json:"payment_status"`
	PaymentSessionID      *string  `json:"payment_session_id"`
	PaymentConfirmationID *string  `json:"payment_confirmation_id"`
	PaidAmount            *float64 `json:"paid_amount"`
	PaidCurrency          *string  `json:"paid_currency"`

	AssignedDriver *string  `json:"assigned_driver,omitempty"`
	InternalNotes  *string  `json:"internal_notes,omitempty"`
	PriceFinal     *float64 `json:"price_final,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingCreated struct {
	ID       string   `json:"id"`
	Booking  Booking  `json:"booking"`
	Warnings []string `json:"warnings,omitempty"`
}

type BookingStatus struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	PaidAmount    *float64 `json:"paid_amount"`
	PaidCurrency  *string  `json:"paid_currency"`
}

type PaymentSession struct {
	BookingID string `json:"booking_id"`
	SessionID string `json:"id"`
	URL       string `json:"url"`
}

type EventOutcome string

const (
	OutcomeApplied   EventOutcome = "applied"
	OutcomeDuplicate EventOutcome = "duplicate"
	OutcomeIgnored   EventOutcome = "ignored"
	OutcomeOrphaned  EventOutcome = "orphaned"
	// OutcomeRejected is reported for events that failed verification.
	OutcomeRejected  EventOutcome = "rejected"
)

type PaymentEventResult struct {
	EventID   string       `json:"event_id"`
	BookingID string       `json:"booking_id,omitempty"`
	Outcome   EventOutcome `json:"outcome"`
	Reason    string       `json:"reason,omitempty"`
}
