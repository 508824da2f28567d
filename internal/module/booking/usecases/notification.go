package usecases

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"limo-booking-service/internal/module/booking/models/entity"

	"go.uber.org/zap"
)

const (
	tmplBookingReceived  = "booking_received"
	tmplNewBooking       = "new_booking"
	tmplPaymentConfirmed = "payment_confirmed"
	tmplPaymentReceived  = "payment_received"

	subjectBookingReceived  = "We received your booking request"
	subjectNewBooking       = "New booking request"
	subjectPaymentConfirmed = "Your payment is confirmed"
	subjectPaymentReceived  = "Payment received"

	pickupLayout = "Mon Jan 2, 2006 15:04 MST"
)

var emailTemplates = template.Must(template.New("emails").Parse(`
{{define "details"}}
<table cellpadding="4">
<tr><td><b>Booking</b></td><td>{{.ID}}</td></tr>
<tr><td><b>Service</b></td><td>{{.Mode}}{{if .Hours}} ({{.Hours}} h){{end}}</td></tr>
<tr><td><b>Pickup</b></td><td>{{.Pickup}}</td></tr>
{{if .Dropoff}}<tr><td><b>Drop-off</b></td><td>{{.Dropoff}}</td></tr>{{end}}
<tr><td><b>Date</b></td><td>{{.PickupAt}}</td></tr>
<tr><td><b>Vehicle</b></td><td>{{.Vehicle}}</td></tr>
{{if .Passengers}}<tr><td><b>Passengers</b></td><td>{{.Passengers}}</td></tr>{{end}}
{{if .Luggage}}<tr><td><b>Luggage</b></td><td>{{.Luggage}}</td></tr>{{end}}
<tr><td><b>Estimate</b></td><td>{{.Price}}</td></tr>
</table>
{{end}}

{{define "booking_received"}}
<p>Hello {{.Name}},</p>
<p>Thank you, we received your booking request and will confirm it shortly.</p>
{{template "details" .}}
{{end}}

{{define "new_booking"}}
<p>New booking request from {{.Name}} &lt;{{.Email}}&gt;{{if .Phone}}, {{.Phone}}{{end}}.</p>
{{template "details" .}}
{{if .Notes}}<p><b>Notes:</b> {{.Notes}}</p>{{end}}
{{end}}

{{define "payment_confirmed"}}
<p>Hello {{.Name}},</p>
<p>We received your payment of {{.Paid}}. Your booking is confirmed.</p>
{{template "details" .}}
{{end}}

{{define "payment_received"}}
<p>Payment of {{.Paid}} received for booking {{.ID}} ({{.Name}}).</p>
{{template "details" .}}
{{end}}
`))

type emailView struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Mode       string
	Hours      int
	Pickup     string
	Dropoff    string
	PickupAt   string
	Vehicle    string
	Passengers int
	Luggage    int
	Notes      string
	Price      string
	Paid       string
}

func newEmailView(b entity.Booking) emailView {
	v := emailView{
		ID:       b.ID.String(),
		Name:     b.Name,
		Email:    b.Email,
		Phone:    deref(b.Phone),
		Mode:     "One way",
		Pickup:   b.PickupText,
		Dropoff:  deref(b.DropoffText),
		PickupAt: b.PickupAt.Format(pickupLayout),
		Vehicle:  b.Vehicle,
		Notes:    deref(b.Notes),
		Price:    formatMoney(b.PriceEstimate, b.Currency),
	}
	if b.Mode == entity.ModeHourly {
		v.Mode = "Hourly"
	}
	if b.Hours != nil {
		v.Hours = *b.Hours
	}
	if b.Passengers != nil {
		v.Passengers = *b.Passengers
	}
	if b.Luggage != nil {
		v.Luggage = *b.Luggage
	}
	if b.PaidAmount != nil {
		currency := b.Currency
		if b.PaidCurrency != nil {
			currency = *b.PaidCurrency
		}
		v.Paid = formatMoney(*b.PaidAmount, currency)
	}
	return v
}

func renderEmail(name string, b entity.Booking) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, newEmailView(b)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// notify renders and sends one email. Errors are logged and returned for
// callers that report warnings; they never fail the operation.
func (u *usecase) notify(ctx context.Context, to, subject, tmpl string, b entity.Booking) error {
	if to == "" {
		return nil
	}

	html, err := renderEmail(tmpl, b)
	if err != nil {
		u.log.Ctx(ctx).Error("error render email", zap.String("template", tmpl), zap.Error(err))
		return err
	}

	err = u.notifier.Send(ctx, entity.Email{To: to, Subject: subject, HTML: html})
	if err != nil {
		u.log.Ctx(ctx).Warn("notification not sent",
			zap.String("booking_id", b.ID.String()),
			zap.String("template", tmpl),
			zap.Error(err))
		return err
	}
	return nil
}

func formatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
