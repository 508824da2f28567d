package usecases

import (
	"context"
	"math"
	"strings"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/module/booking/models/response"
	"limo-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const gatewayScheduler = "scheduler"

func (u *usecase) StartPayment(ctx context.Context, payload *request.StartPayment) (response.PaymentSession, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.StartPayment", "app")
	defer span.End()

	if payload == nil || payload.Amount <= 0 || math.IsNaN(payload.Amount) || math.IsInf(payload.Amount, 0) {
		return response.PaymentSession{}, errors.ValidationError("amount must be greater than zero")
	}

	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return response.PaymentSession{}, errors.ValidationError("invalid booking id")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.PaymentSession{}, err
	}

	currency, err := normalizeCurrency(payload.Currency, booking.Currency)
	if err != nil {
		return response.PaymentSession{}, err
	}

	switch booking.PaymentStatus {
	case entity.PaymentPaid:
		return response.PaymentSession{}, errors.InvalidStateError("booking is already paid")
	case entity.PaymentCanceled:
		return response.PaymentSession{}, errors.InvalidStateError("booking is canceled")
	case entity.PaymentAwaitingPayment:
		return resumeSession(booking)
	}

	if payload.Amount != booking.PriceEstimate {
		u.log.Ctx(ctx).Info("payment amount differs from price estimate",
			zap.String("booking_id", booking.ID.String()),
			zap.Float64("amount", payload.Amount),
			zap.Float64("price_estimate", booking.PriceEstimate))
	}

	session, err := u.gateway.CreateSession(ctx, entity.SessionRequest{
		BookingID:     booking.ID.String(),
		Amount:        payload.Amount,
		Currency:      currency,
		CustomerEmail: booking.Email,
	})
	if err != nil {
		u.log.Ctx(ctx).Error("error create payment session",
			zap.String("booking_id", booking.ID.String()),
			zap.Error(err))
		return response.PaymentSession{}, err
	}

	check, current := entity.SessionUnset, ""
	if booking.PaymentSessionID != nil {
		check, current = entity.SessionEquals, *booking.PaymentSessionID
	}

	updated, applied, err := u.transition(ctx, booking, eventStartPayment, check, current, entity.BookingPatch{
		SetSession: true,
		SessionID:  session.SessionID,
		SessionURL: session.URL,
	})
	if err != nil {
		return response.PaymentSession{}, err
	}
	if !applied {
		// a concurrent call recorded its own session first; the one created
		// here is left to expire at the gateway
		u.log.Ctx(ctx).Warn("payment session superseded",
			zap.String("booking_id", booking.ID.String()),
			zap.String("session_id", session.SessionID))
		if updated.PaymentStatus == entity.PaymentAwaitingPayment {
			return resumeSession(updated)
		}
		return response.PaymentSession{}, errors.InvalidStateError("booking changed while starting payment")
	}

	u.scheduleExpiry(ctx, booking.ID.String(), session)

	return response.PaymentSession{
		BookingID: booking.ID.String(),
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}

func resumeSession(booking entity.Booking) (response.PaymentSession, error) {
	if booking.PaymentSessionID == nil || booking.PaymentSessionURL == nil {
		return response.PaymentSession{}, errors.InvalidStateError("payment is already in progress")
	}
	return response.PaymentSession{
		BookingID: booking.ID.String(),
		SessionID: *booking.PaymentSessionID,
		URL:       *booking.PaymentSessionURL,
	}, nil
}

func expiryTaskID(bookingID, sessionID string) string {
	return "expire:" + bookingID + ":" + sessionID
}

// scheduleExpiry releases the session when the gateway stops accepting
// payment for it, falling back to the configured TTL when the gateway did not
// report an expiry.
func (u *usecase) scheduleExpiry(ctx context.Context, bookingID string, session entity.PaymentSession) {
	processAt := session.ExpiresAt
	if processAt.IsZero() {
		if u.cfg.SessionTTL <= 0 {
			return
		}
		processAt = u.now().Add(u.cfg.SessionTTL)
	}
	sessionID := session.SessionID

	payload, err := json.Marshal(request.PaymentExpiration{BookingID: bookingID, SessionID: sessionID})
	if err != nil {
		u.log.Ctx(ctx).Error("error marshal payment expiration", zap.Error(err))
		return
	}

	if _, err := u.repo.SetTaskScheduler(ctx, processAt, expiryTaskID(bookingID, sessionID), payload); err != nil {
		u.log.Ctx(ctx).Warn("payment session expiry not scheduled",
			zap.String("booking_id", bookingID),
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}

func (u *usecase) ApplyPaymentEvent(ctx context.Context, payload []byte, signature string) (response.PaymentEventResult, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.ApplyPaymentEvent", "app")
	defer span.End()

	event, err := u.gateway.VerifyEvent(payload, signature)
	if err != nil {
		u.log.Ctx(ctx).Warn("rejected unverified payment event", zap.Error(err))
		if !errors.IsKind(err, errors.KindUnverified) {
			err = errors.UnverifiedEventError("payment event could not be verified", err)
		}
		return response.PaymentEventResult{}, err
	}

	return u.applyEvent(ctx, event)
}

func (u *usecase) ExpirePaymentSession(ctx context.Context, payload *request.PaymentExpiration) (response.PaymentEventResult, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.ExpirePaymentSession", "app")
	defer span.End()

	if payload == nil || payload.BookingID == "" || payload.SessionID == "" {
		return response.PaymentEventResult{}, errors.ValidationError("booking id and session id are required")
	}

	return u.applyEvent(ctx, entity.PaymentEvent{
		ID:          expiryTaskID(payload.BookingID, payload.SessionID),
		GatewayType: gatewayScheduler,
		Type:        entity.EventSessionExpired,
		BookingID:   payload.BookingID,
		SessionID:   payload.SessionID,
	})
}

// applyEvent is safe to run any number of times, in any order, for the same
// or different events of one booking. Only StoreError escapes it.
func (u *usecase) applyEvent(ctx context.Context, event entity.PaymentEvent) (response.PaymentEventResult, error) {
	result := response.PaymentEventResult{EventID: event.ID}

	if event.Type == entity.EventIgnored {
		u.log.Ctx(ctx).Info("ignored payment event",
			zap.String("event_id", event.ID),
			zap.String("gateway_type", event.GatewayType))
		result.Outcome, result.Reason = response.OutcomeIgnored, "event type not handled: "+event.GatewayType
		return result, nil
	}

	if u.eventProcessed(ctx, event.ID) {
		result.Outcome, result.Reason = response.OutcomeDuplicate, "event already processed"
		return result, nil
	}

	booking, err := u.resolveBooking(ctx, event)
	if errors.IsKind(err, errors.KindOrphanedEvent) {
		u.log.Ctx(ctx).Warn("orphaned payment event",
			zap.String("event_id", event.ID),
			zap.String("gateway_type", event.GatewayType),
			zap.String("booking_id", event.BookingID),
			zap.String("session_id", event.SessionID))
		result.Outcome, result.Reason = response.OutcomeOrphaned, err.Error()
		return result, nil
	}
	if err != nil {
		return result, err
	}
	result.BookingID = booking.ID.String()

	var outcome response.EventOutcome
	var reason string
	switch event.Type {
	case entity.EventSessionCompleted:
		outcome, reason, err = u.confirmPayment(ctx, booking, event)
	case entity.EventPaymentFailed:
		outcome, reason, err = u.failPayment(ctx, booking, event)
	case entity.EventSessionExpired:
		outcome, reason, err = u.expireSession(ctx, booking, event)
	default:
		outcome, reason = response.OutcomeIgnored, "unknown event type"
	}
	if err != nil {
		return result, err
	}

	u.markProcessed(ctx, event.ID)

	result.Outcome, result.Reason = outcome, reason
	return result, nil
}

// resolveBooking prefers the correlation token and falls back to the
// session id. Not finding either is an OrphanedEventError.
func (u *usecase) resolveBooking(ctx context.Context, event entity.PaymentEvent) (entity.Booking, error) {
	if id, err := uuid.Parse(event.BookingID); err == nil {
		booking, err := u.repo.FindBookingByID(ctx, id)
		if err == nil {
			return booking, nil
		}
		if !errors.IsKind(err, errors.KindNotFound) {
			return entity.Booking{}, err
		}
	}

	if event.SessionID != "" {
		booking, err := u.repo.FindBookingBySessionID(ctx, event.SessionID)
		if err == nil {
			return booking, nil
		}
		if !errors.IsKind(err, errors.KindNotFound) {
			return entity.Booking{}, err
		}
	}

	return entity.Booking{}, errors.OrphanedEventError("no booking matches the event")
}

func (u *usecase) confirmPayment(ctx context.Context, booking entity.Booking, event entity.PaymentEvent) (response.EventOutcome, string, error) {
	amount := minorToMajor(event.AmountPaid)
	currency := strings.ToUpper(event.Currency)
	confirmation := event.ConfirmationID
	if confirmation == "" {
		confirmation = event.SessionID
	}

	patch := entity.BookingPatch{
		ConfirmationID: &confirmation,
		PaidAmount:     &amount,
		PaidCurrency:   &currency,
		ConfirmPending: true,
	}
	if booking.PaymentSessionID == nil && event.SessionID != "" {
		patch.SetSession = true
		patch.SessionID = event.SessionID
	}

	updated, applied, err := u.transition(ctx, booking, eventPaymentConfirmed, entity.SessionEqualsOrUnset, event.SessionID, patch)
	if err != nil {
		return "", "", err
	}

	if !applied {
		switch updated.PaymentStatus {
		case entity.PaymentPaid:
			return response.OutcomeDuplicate, "booking already paid", nil
		case entity.PaymentCanceled:
			u.log.Ctx(ctx).Warn("payment confirmed for canceled booking",
				zap.String("booking_id", updated.ID.String()),
				zap.String("session_id", event.SessionID),
				zap.String("confirmation_id", confirmation))
			return response.OutcomeIgnored, "booking is canceled", nil
		default:
			u.log.Ctx(ctx).Warn("payment confirmed for a session the booking does not hold",
				zap.String("booking_id", updated.ID.String()),
				zap.String("session_id", event.SessionID),
				zap.String("confirmation_id", confirmation))
			return response.OutcomeIgnored, "session does not match booking", nil
		}
	}

	if currency != updated.Currency || amount != updated.PriceEstimate {
		u.log.Ctx(ctx).Info("paid amount differs from booking estimate",
			zap.String("booking_id", updated.ID.String()),
			zap.Float64("paid_amount", amount),
			zap.String("paid_currency", currency))
	}

	u.afterPaymentConfirmed(ctx, updated)
	return response.OutcomeApplied, "", nil
}

func (u *usecase) afterPaymentConfirmed(ctx context.Context, booking entity.Booking) {
	_ = u.notify(ctx, booking.Email, subjectPaymentConfirmed, tmplPaymentConfirmed, booking)
	_ = u.notify(ctx, u.cfg.OperatorEmail, subjectPaymentReceived, tmplPaymentReceived, booking)

	if booking.PaymentSessionID == nil {
		return
	}
	taskID := expiryTaskID(booking.ID.String(), *booking.PaymentSessionID)
	if err := u.repo.DeleteTaskScheduler(ctx, taskID); err != nil {
		u.log.Ctx(ctx).Warn("payment session expiry not removed",
			zap.String("task_id", taskID),
			zap.Error(err))
	}
}

func (u *usecase) failPayment(ctx context.Context, booking entity.Booking, event entity.PaymentEvent) (response.EventOutcome, string, error) {
	updated, applied, err := u.transition(ctx, booking, eventPaymentFailed, entity.SessionEquals, event.SessionID, entity.BookingPatch{})
	if err != nil {
		return "", "", err
	}
	if applied {
		return response.OutcomeApplied, "", nil
	}
	if updated.PaymentStatus == entity.PaymentFailed && updated.SessionIs(event.SessionID) {
		return response.OutcomeDuplicate, "payment already marked failed", nil
	}
	return response.OutcomeIgnored, "payment status is " + string(updated.PaymentStatus), nil
}

func (u *usecase) expireSession(ctx context.Context, booking entity.Booking, event entity.PaymentEvent) (response.EventOutcome, string, error) {
	updated, applied, err := u.transition(ctx, booking, eventSessionExpired, entity.SessionEquals, event.SessionID, entity.BookingPatch{
		ClearSession: true,
	})
	if err != nil {
		return "", "", err
	}
	if applied {
		return response.OutcomeApplied, "", nil
	}
	if updated.PaymentStatus == entity.PaymentUnpaid && updated.PaymentSessionID == nil {
		return response.OutcomeDuplicate, "session already released", nil
	}
	return response.OutcomeIgnored, "payment status is " + string(updated.PaymentStatus), nil
}

func (u *usecase) eventProcessed(ctx context.Context, eventID string) bool {
	if eventID == "" {
		return false
	}
	processed, err := u.repo.IsEventProcessed(ctx, eventID)
	if err != nil {
		u.log.Ctx(ctx).Warn("error check processed event", zap.String("event_id", eventID), zap.Error(err))
		return false
	}
	return processed
}

func (u *usecase) markProcessed(ctx context.Context, eventID string) {
	if eventID == "" {
		return
	}
	if err := u.repo.MarkEventProcessed(ctx, eventID, u.cfg.EventMarkerTTL); err != nil {
		u.log.Ctx(ctx).Warn("error mark processed event", zap.String("event_id", eventID), zap.Error(err))
	}
}

// minorToMajor converts gateway minor units (cents) to the major unit the
// booking stores.
func minorToMajor(amount int64) float64 {
	return float64(amount) / 100
}
