package entity

import (
	"time"

	"github.com/google/uuid"
)

type Mode string

const (
	ModeOneWay Mode = "one_way"
	ModeHourly Mode = "hourly"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingAssigned  BookingStatus = "assigned"
	BookingCompleted BookingStatus = "completed"
	BookingCanceled  BookingStatus = "canceled"
)

var bookingStatuses = map[BookingStatus]bool{
	BookingPending:   true,
	BookingConfirmed: true,
	BookingAssigned:  true,
	BookingCompleted: true,
	BookingCanceled:  true,
}

func (s BookingStatus) IsValid() bool {
	return bookingStatuses[s]
}

const DefaultCurrency = "CAD"

var currencies = map[string]bool{
	"CAD": true,
	"USD": true,
	"EUR": true,
}

func IsSupportedCurrency(c string) bool {
	return currencies[c]
}

type Booking struct {
	ID          uuid.UUID `db:"id"`
	Mode        Mode      `db:"mode"`
	PickupText  string    `db:"pickup_text"`
	DropoffText *string   `db:"dropoff_text"`
	PickupAt    time.Time `db:"pickup_at"`
	Hours       *int      `db:"hours"`
	Vehicle     string    `db:"vehicle"`
	Passengers  *int      `db:"passengers"`
	Luggage     *int      `db:"luggage"`
	Notes       *string   `db:"notes"`

	Name  string  `db:"name"`
	Email string  `db:"email"`
	Phone *string `db:"phone"`

	PriceEstimate float64       `db:"price_estimate"`
	Currency      string        `db:"currency"`
	Status        BookingStatus `db:"status"`
	Source        string        `db:"source"`

	PaymentStatus         PaymentStatus `db:"payment_status"`
	PaymentSessionID      *string       `db:"payment_session_id"`
	PaymentSessionURL     *string       `db:"payment_session_url"`
	PaymentConfirmationID *string       `db:"payment_confirmation_id"`
	PaidAmount            *float64      `db:"paid_amount"`
	PaidCurrency          *string       `db:"paid_currency"`

	AssignedDriver *string  `db:"assigned_driver"`
	InternalNotes  *string  `db:"internal_notes"`
	PriceFinal     *float64 `db:"price_final"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SessionIs reports whether id is the booking's recorded payment session.
func (b Booking) SessionIs(id string) bool {
	return b.PaymentSessionID != nil && *b.PaymentSessionID == id
}

type AdminPatch struct {
	Status         *BookingStatus
	AssignedDriver *string
	InternalNotes  *string
	PriceFinal     *float64
}

func (p AdminPatch) IsEmpty() bool {
	return p.Status == nil && p.AssignedDriver == nil && p.InternalNotes == nil && p.PriceFinal == nil
}

type BookingFilter struct {
	Status *BookingStatus
	Limit  int
}

type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
