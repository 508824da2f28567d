package stripe

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"limo-booking-service/config"
	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/pkg/errors"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

const (
	// checkout sessions may expire between 30 minutes and 24 hours after
	// creation
	minSessionTTL = 30 * time.Minute
	maxSessionTTL = 24 * time.Hour

	// expiryMargin keeps expires_at above the gateway minimum after request
	// latency and clock skew
	expiryMargin = 2 * time.Minute
)

// SessionTTL clamps ttl to the lifetime the gateway accepts. The expiry job
// uses the same value so both sides release the session together.
func SessionTTL(ttl time.Duration) time.Duration {
	if ttl < minSessionTTL+expiryMargin {
		return minSessionTTL + expiryMargin
	}
	if ttl > maxSessionTTL {
		return maxSessionTTL
	}
	return ttl
}

type Client struct {
	api     *client.API
	cfg     *config.StripeConfig
	siteURL string
	ttl     time.Duration
	now     func() time.Time
}

// New builds the adapter on httpClient, which carries the payment breaker.
// The SDK's own retries are disabled; the breaker and the event redelivery
// of the gateway cover transient failures.
func New(httpClient *http.Client, cfg *config.StripeConfig, siteURL string, log *zap.Logger) *Client {
	backendCfg := &stripeapi.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripeapi.Int64(0),
		LeveledLogger:     log.Sugar(),
	}
	if cfg.BaseURL != "" {
		backendCfg.URL = stripeapi.String(strings.TrimRight(cfg.BaseURL, "/"))
	}
	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, backendCfg)

	api := &client.API{}
	api.Init(cfg.SecretKey, &stripeapi.Backends{API: backend, Connect: backend, Uploads: backend})

	return &Client{
		api:     api,
		cfg:     cfg,
		siteURL: strings.TrimRight(siteURL, "/"),
		ttl:     SessionTTL(cfg.SessionTTL),
		now:     time.Now,
	}
}

// CreateSession opens a hosted checkout session. The booking id travels as
// client_reference_id and metadata so every session event carries it back.
func (c *Client) CreateSession(ctx context.Context, req entity.SessionRequest) (entity.PaymentSession, error) {
	expiresAt := c.now().Add(c.ttl)
	params := c.sessionParams(req, expiresAt)
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return entity.PaymentSession{}, errors.GatewayError("error create payment session", err)
	}
	if session.ID == "" || session.URL == "" {
		return entity.PaymentSession{}, errors.GatewayError("payment session response incomplete", nil)
	}

	if session.ExpiresAt > 0 {
		expiresAt = time.Unix(session.ExpiresAt, 0)
	}
	return entity.PaymentSession{SessionID: session.ID, URL: session.URL, ExpiresAt: expiresAt}, nil
}

func (c *Client) sessionParams(req entity.SessionRequest, expiresAt time.Time) *stripeapi.CheckoutSessionParams {
	params := &stripeapi.CheckoutSessionParams{
		Mode:              stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		ClientReferenceID: stripeapi.String(req.BookingID),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				Quantity: stripeapi.Int64(1),
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeapi.String(strings.ToLower(req.Currency)),
					UnitAmount: stripeapi.Int64(ToMinor(req.Amount)),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(c.cfg.ProductName),
					},
				},
			},
		},
		PaymentIntentData: &stripeapi.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"booking_id": req.BookingID},
		},
		SuccessURL: stripeapi.String(fmt.Sprintf("%s/?paid=1&bookingId=%s", c.siteURL, url.QueryEscape(req.BookingID))),
		CancelURL:  stripeapi.String(fmt.Sprintf("%s/?canceled=1&bookingId=%s", c.siteURL, url.QueryEscape(req.BookingID))),
		ExpiresAt:  stripeapi.Int64(expiresAt.Unix()),
	}
	params.AddMetadata("booking_id", req.BookingID)
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripeapi.String(req.CustomerEmail)
	}
	return params
}

// ToMinor converts a major unit amount to cents.
func ToMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
