package usecases

import (
	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/response"
)

func toBookingResponse(b entity.Booking) response.Booking {
	return response.Booking{
		ID:                    b.ID.String(),
		Mode:                  string(b.Mode),
		PickupText:            b.PickupText,
		DropoffText:           b.DropoffText,
		PickupAt:              b.PickupAt,
		Hours:                 b.Hours,
		Vehicle:               b.Vehicle,
		Passengers:            b.Passengers,
		Luggage:               b.Luggage,
		Notes:                 b.Notes,
		Name:                  b.Name,
		Email:                 b.Email,
		Phone:                 b.Phone,
		PriceEstimate:         b.PriceEstimate,
		Currency:              b.Currency,
		Status:                string(b.Status),
		Source:                b.Source,
		PaymentStatus:         string(b.PaymentStatus),
		PaymentSessionID:      b.PaymentSessionID,
		PaymentConfirmationID: b.PaymentConfirmationID,
		PaidAmount:            b.PaidAmount,
		PaidCurrency:          b.PaidCurrency,
		AssignedDriver:        b.AssignedDriver,
		InternalNotes:         b.InternalNotes,
		PriceFinal:            b.PriceFinal,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}
}

func toBookingStatus(b entity.Booking) response.BookingStatus {
	return response.BookingStatus{
		ID:            b.ID.String(),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		PaidAmount:    b.PaidAmount,
		PaidCurrency:  b.PaidCurrency,
	}
}
