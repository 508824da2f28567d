package usecases

import (
	"context"
	"strings"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/module/booking/models/response"
	"limo-booking-service/internal/pkg/errors"

	"github.com/google/uuid"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

func (u *usecase) CancelBooking(ctx context.Context, id string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.CancelBooking", "app")
	defer span.End()

	bookingID, err := uuid.Parse(id)
	if err != nil {
		return response.Booking{}, errors.ValidationError("invalid booking id")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	updated, applied, err := u.transition(ctx, booking, eventCancel, entity.SessionAny, "", entity.BookingPatch{Cancel: true})
	if err != nil {
		return response.Booking{}, err
	}

	if !applied {
		switch updated.PaymentStatus {
		case entity.PaymentCanceled:
			return toBookingResponse(updated), nil
		case entity.PaymentPaid:
			return response.Booking{}, errors.InvalidStateError("paid booking cannot be canceled")
		default:
			return response.Booking{}, errors.InvalidStateError("booking changed while canceling")
		}
	}

	if updated.PaymentSessionID != nil {
		taskID := expiryTaskID(updated.ID.String(), *updated.PaymentSessionID)
		if err := u.repo.DeleteTaskScheduler(ctx, taskID); err != nil {
			u.log.Ctx(ctx).Warn("payment session expiry not removed", zap.String("task_id", taskID), zap.Error(err))
		}
	}

	return toBookingResponse(updated), nil
}

func (u *usecase) ListBookings(ctx context.Context, payload *request.ListBookings) ([]response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.ListBookings", "app")
	defer span.End()

	filter := entity.BookingFilter{Limit: defaultListLimit}
	if payload != nil {
		if payload.Limit > 0 {
			filter.Limit = min(payload.Limit, maxListLimit)
		}
		if s := strings.TrimSpace(payload.Status); s != "" {
			status := entity.BookingStatus(s)
			if !status.IsValid() {
				return nil, errors.ValidationError("invalid status filter")
			}
			filter.Status = &status
		}
	}

	bookings, err := u.repo.ListBookings(ctx, filter)
	if err != nil {
		u.log.Ctx(ctx).Error("error list bookings", zap.Error(err))
		return nil, err
	}

	result := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, toBookingResponse(b))
	}
	return result, nil
}

// PatchBooking applies operator edits. Payment columns are never written
// here; canceling goes through CancelBooking so the payment status follows.
func (u *usecase) PatchBooking(ctx context.Context, payload *request.PatchBooking) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.PatchBooking", "app")
	defer span.End()

	if payload == nil {
		return response.Booking{}, errors.ValidationError("patch is required")
	}
	if err := u.validator.Struct(payload); err != nil {
		return response.Booking{}, errors.ValidationError(validationMessage(err))
	}

	bookingID, err := uuid.Parse(payload.ID)
	if err != nil {
		return response.Booking{}, errors.ValidationError("invalid booking id")
	}

	patch := entity.AdminPatch{
		AssignedDriver: payload.AssignedDriver,
		InternalNotes:  payload.InternalNotes,
		PriceFinal:     payload.PriceFinal,
	}

	var status *entity.BookingStatus
	if payload.Status != nil {
		s := entity.BookingStatus(strings.TrimSpace(*payload.Status))
		if !s.IsValid() {
			return response.Booking{}, errors.ValidationError("invalid status")
		}
		status = &s
	}

	if status == nil && patch.IsEmpty() {
		return response.Booking{}, errors.ValidationError("nothing to update")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if status != nil {
		switch {
		case booking.Status == entity.BookingCanceled && *status != entity.BookingCanceled:
			return response.Booking{}, errors.InvalidStateError("canceled booking cannot be reopened")
		case *status == entity.BookingCanceled && booking.Status != entity.BookingCanceled:
			canceled, err := u.CancelBooking(ctx, payload.ID)
			if err != nil {
				return response.Booking{}, err
			}
			if patch.IsEmpty() {
				return canceled, nil
			}
		case *status != booking.Status:
			patch.Status = status
		}
	}

	if patch.IsEmpty() {
		return toBookingResponse(booking), nil
	}

	updated, err := u.repo.PatchBookingAdmin(ctx, bookingID, patch)
	if err != nil {
		u.log.Ctx(ctx).Error("error patch booking", zap.String("booking_id", payload.ID), zap.Error(err))
		return response.Booking{}, err
	}

	u.log.Ctx(ctx).Info("booking updated by admin", zap.String("booking_id", payload.ID))
	return toBookingResponse(updated), nil
}
