package mailer

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"limo-booking-service/config"
	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/pkg/errors"

	"github.com/resend/resend-go/v2"
)

// Resend sends email through the Resend API.
type Resend struct {
	client *resend.Client
	cfg    *config.MailConfig
}

// NewResend builds the sender on httpClient, which carries the mail breaker.
func NewResend(httpClient *http.Client, cfg *config.MailConfig) *Resend {
	client := resend.NewCustomClient(httpClient, cfg.APIKey)
	if cfg.BaseURL != "" {
		// the client resolves "emails" against the base, which needs the
		// trailing slash
		if base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/"); err == nil {
			client.BaseURL = base
		}
	}
	return &Resend{client: client, cfg: cfg}
}

func (r *Resend) Send(ctx context.Context, email entity.Email) error {
	if r.cfg.APIKey == "" || r.cfg.From == "" {
		return errors.InternalServerError("mail provider not configured")
	}

	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.cfg.From,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return errors.GatewayError("error send email", err)
	}
	return nil
}
