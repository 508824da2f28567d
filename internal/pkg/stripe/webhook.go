package stripe

import (
	"time"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// VerifyEvent authenticates payload against the Stripe-Signature header and
// maps it to a gateway-neutral event. Nothing is decoded before the
// signature checks out.
func (c *Client) VerifyEvent(payload []byte, signatureHeader string) (entity.PaymentEvent, error) {
	if c.cfg.WebhookSecret == "" {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("webhook secret not configured", nil)
	}

	tolerance := c.cfg.SignatureTolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, c.cfg.WebhookSecret, webhook.ConstructEventOptions{
		Tolerance: tolerance,
		// events are read field by field, so the account API version does
		// not have to match the SDK's
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("payment event could not be verified", err)
	}
	if evt.ID == "" || evt.Type == "" {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("event id or type missing", nil)
	}

	return toPaymentEvent(evt)
}

func toPaymentEvent(evt stripeapi.Event) (entity.PaymentEvent, error) {
	out := entity.PaymentEvent{
		ID:          evt.ID,
		GatewayType: string(evt.Type),
		Type:        entity.EventIgnored,
	}

	switch evt.Type {
	case stripeapi.EventTypeCheckoutSessionCompleted,
		stripeapi.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripeapi.EventTypeCheckoutSessionAsyncPaymentFailed,
		stripeapi.EventTypeCheckoutSessionExpired:
	default:
		return out, nil
	}

	if evt.Data == nil {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("event data missing", nil)
	}
	var session stripeapi.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
		return entity.PaymentEvent{}, errors.UnverifiedEventError("malformed checkout session", err)
	}

	out.BookingID = session.ClientReferenceID
	if out.BookingID == "" {
		out.BookingID = session.Metadata["booking_id"]
	}
	out.SessionID = session.ID
	out.AmountPaid = session.AmountTotal
	out.Currency = string(session.Currency)
	if session.PaymentIntent != nil {
		out.ConfirmationID = session.PaymentIntent.ID
	}

	switch evt.Type {
	case stripeapi.EventTypeCheckoutSessionCompleted:
		// delayed payment methods complete the session unpaid and report
		// the outcome later through the async events
		if session.PaymentStatus == stripeapi.CheckoutSessionPaymentStatusPaid {
			out.Type = entity.EventSessionCompleted
		}
	case stripeapi.EventTypeCheckoutSessionAsyncPaymentSucceeded:
		out.Type = entity.EventSessionCompleted
	case stripeapi.EventTypeCheckoutSessionAsyncPaymentFailed:
		out.Type = entity.EventPaymentFailed
	case stripeapi.EventTypeCheckoutSessionExpired:
		out.Type = entity.EventSessionExpired
	}

	return out, nil
}

// SignatureHeader builds a Stripe-Signature value for payload. It is used by
// tests and local tooling that replay events.
func SignatureHeader(payload []byte, secret string, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}
