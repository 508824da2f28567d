package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/module/booking/models/response"
	"limo-booking-service/internal/module/booking/repositories"
	"limo-booking-service/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	defaultEventMarkerTTL = 72 * time.Hour
	defaultListLimit      = 200
	maxListLimit          = 500
)

// PaymentGateway creates checkout sessions and authenticates the events the
// gateway posts back.
type PaymentGateway interface {
	CreateSession(ctx context.Context, req entity.SessionRequest) (entity.PaymentSession, error)
	VerifyEvent(payload []byte, signatureHeader string) (entity.PaymentEvent, error)
}

// Notifier delivers transactional email. Callers treat every failure as
// non-fatal.
type Notifier interface {
	Send(ctx context.Context, email entity.Email) error
}

type Config struct {
	OperatorEmail  string
	SessionTTL     time.Duration
	EventMarkerTTL time.Duration
}

type usecase struct {
	repo      repositories.Repositories
	gateway   PaymentGateway
	notifier  Notifier
	log       *otelzap.Logger
	validator *validator.Validate
	cfg       Config
	now       func() time.Time
}

type Usecase interface {
	// customer
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.BookingCreated, error)
	GetBooking(ctx context.Context, id string) (response.BookingStatus, error)
	StartPayment(ctx context.Context, payload *request.StartPayment) (response.PaymentSession, error)
	// gateway and scheduler
	ApplyPaymentEvent(ctx context.Context, payload []byte, signature string) (response.PaymentEventResult, error)
	ExpirePaymentSession(ctx context.Context, payload *request.PaymentExpiration) (response.PaymentEventResult, error)
	// admin
	CancelBooking(ctx context.Context, id string) (response.Booking, error)
	ListBookings(ctx context.Context, payload *request.ListBookings) ([]response.Booking, error)
	PatchBooking(ctx context.Context, payload *request.PatchBooking) (response.Booking, error)
}

func New(repo repositories.Repositories, gateway PaymentGateway, notifier Notifier, log *otelzap.Logger, cfg Config) Usecase {
	if cfg.EventMarkerTTL == 0 {
		cfg.EventMarkerTTL = defaultEventMarkerTTL
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &usecase{
		repo:      repo,
		gateway:   gateway,
		notifier:  notifier,
		log:       log,
		validator: v,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.BookingCreated, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.CreateBooking", "app")
	defer span.End()

	booking, err := u.newBooking(payload)
	if err != nil {
		return response.BookingCreated{}, err
	}

	booking, err = u.repo.InsertBooking(ctx, booking)
	if err != nil {
		u.log.Ctx(ctx).Error("error insert booking", zap.Error(err))
		return response.BookingCreated{}, err
	}

	u.log.Ctx(ctx).Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("mode", string(booking.Mode)))

	var warnings []string
	if err := u.notify(ctx, booking.Email, subjectBookingReceived, tmplBookingReceived, booking); err != nil {
		warnings = append(warnings, "booking confirmation email could not be sent")
	}
	if err := u.notify(ctx, u.cfg.OperatorEmail, subjectNewBooking, tmplNewBooking, booking); err != nil {
		warnings = append(warnings, "operator notification could not be sent")
	}

	return response.BookingCreated{
		ID:       booking.ID.String(),
		Booking:  toBookingResponse(booking),
		Warnings: warnings,
	}, nil
}

// newBooking re-checks the draft even though handlers validate it: nothing
// incomplete may reach the store.
func (u *usecase) newBooking(payload *request.CreateBooking) (entity.Booking, error) {
	if payload == nil {
		return entity.Booking{}, errors.ValidationError("booking draft is required")
	}
	if err := u.validator.Struct(payload); err != nil {
		return entity.Booking{}, errors.ValidationError(validationMessage(err))
	}

	mode := entity.Mode(payload.Mode)
	if mode == "" {
		mode = entity.ModeOneWay
	}
	if mode == entity.ModeHourly && payload.Hours == nil {
		return entity.Booking{}, errors.ValidationError("hours is required for hourly bookings")
	}
	if mode != entity.ModeHourly && payload.Hours != nil {
		return entity.Booking{}, errors.ValidationError("hours is only allowed for hourly bookings")
	}

	currency, err := normalizeCurrency(payload.Currency, entity.DefaultCurrency)
	if err != nil {
		return entity.Booking{}, err
	}

	source := strings.TrimSpace(payload.Source)
	if source == "" {
		source = "website"
	}

	return entity.Booking{
		ID:            uuid.New(),
		Mode:          mode,
		PickupText:    strings.TrimSpace(payload.PickupText),
		DropoffText:   optional(payload.DropoffText),
		PickupAt:      payload.PickupAt.UTC(),
		Hours:         payload.Hours,
		Vehicle:       strings.TrimSpace(payload.Vehicle),
		Passengers:    payload.Passengers,
		Luggage:       payload.Luggage,
		Notes:         optional(payload.Notes),
		Name:          strings.TrimSpace(payload.Name),
		Email:         strings.ToLower(strings.TrimSpace(payload.Email)),
		Phone:         optional(payload.Phone),
		PriceEstimate: payload.PriceEstimate,
		Currency:      currency,
		Status:        entity.BookingPending,
		Source:        source,
		PaymentStatus: entity.PaymentUnpaid,
	}, nil
}

func (u *usecase) GetBooking(ctx context.Context, id string) (response.BookingStatus, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return response.BookingStatus{}, errors.ValidationError("invalid booking id")
	}

	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingStatus{}, err
	}

	return toBookingStatus(booking), nil
}

// transition moves booking along ev if the state machine allows it, writing
// patch under a guard built from the same table. A false result means the
// guard did not hold; the returned booking is then the latest known state.
func (u *usecase) transition(
	ctx context.Context,
	booking entity.Booking,
	ev lifecycleEvent,
	check entity.SessionCheck,
	sessionID string,
	patch entity.BookingPatch,
) (entity.Booking, bool, error) {
	to, ok := nextStatus(booking.PaymentStatus, ev)
	if !ok {
		return booking, false, nil
	}

	guard := entity.UpdateGuard{
		PaymentStatusIn: sourcesOf(ev),
		SessionCheck:    check,
		SessionID:       sessionID,
	}
	if !guard.Matches(booking) {
		return booking, false, nil
	}

	patch.PaymentStatus = to
	affected, err := u.repo.UpdateBookingWhere(ctx, booking.ID, guard, patch)
	if err != nil {
		u.log.Ctx(ctx).Error("error conditional update booking",
			zap.String("booking_id", booking.ID.String()),
			zap.String("event", string(ev)),
			zap.Error(err))
		return booking, false, err
	}

	if affected == 0 {
		// lost a race with a concurrent writer
		current, err := u.repo.FindBookingByID(ctx, booking.ID)
		if err != nil {
			return booking, false, err
		}
		return current, false, nil
	}

	u.log.Ctx(ctx).Info("booking payment status changed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", string(booking.PaymentStatus)),
		zap.String("to", string(to)))

	return patch.Apply(booking, u.now()), true, nil
}

func normalizeCurrency(currency, fallback string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(currency))
	if c == "" {
		c = fallback
	}
	if !entity.IsSupportedCurrency(c) {
		return "", errors.ValidationError(fmt.Sprintf("unsupported currency %q", currency))
	}
	return c, nil
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
