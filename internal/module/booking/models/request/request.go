package request

import "time"

type CreateBooking struct {
	Mode          string    `json:"mode" validate:"omitempty,oneof=one_way hourly"`
	PickupText    string    `json:"pickup_text" validate:"required,max=500"`
	DropoffText   *string   `json:"dropoff_text" validate:"omitempty,max=500"`
	PickupAt      time.Time `json:"pickup_at" validate:"required"`
	Hours         *int      `json:"hours" validate:"omitempty,min=1,max=24"`
	Vehicle       string    `json:"vehicle" validate:"required,max=100"`
	Passengers    *int      `json:"passengers" validate:"omitempty,min=1,max=60"`
	Luggage       *int      `json:"luggage" validate:"omitempty,min=0,max=100"`
	Notes         *string   `json:"notes" validate:"omitempty,max=2000"`
	Name          string    `json:"name" validate:"required,max=200"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         *string   `json:"phone" validate:"omitempty,max=50"`
	PriceEstimate float64   `json:"price_estimate" validate:"gte=0"`
	Currency      string    `json:"currency" validate:"omitempty,len=3"`
	Source        string    `json:"source" validate:"omitempty,max=50"`
}

type StartPayment struct {
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency" validate:"omitempty,len=3"`
}

type PaymentExpiration struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	SessionID string `json:"session_id" validate:"required"`
}

type ListBookings struct {
	Status string `query:"status"`
	Limit  int    `query:"limit"`
}

type PatchBooking struct {
	ID             string   `json:"id" validate:"required,uuid"`
	Status         *string  `json:"status"`
	AssignedDriver *string  `json:"assigned_driver"`
	InternalNotes  *string  `json:"internal_notes"`
	PriceFinal     *float64 `json:"price_final" validate:"omitempty,gte=0"`
}

type AdminLogin struct {
	Password string `form:"password" json:"password"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

type NotificationMessage struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}
