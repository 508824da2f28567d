package handler

import (
	"context"
	"fmt"

	"limo-booking-service/internal/module/booking/models/entity"
	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/module/booking/models/response"
	"limo-booking-service/internal/module/booking/usecases"
	"limo-booking-service/internal/pkg/errors"
	"limo-booking-service/internal/pkg/helpers"
	"limo-booking-service/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const signatureHeader = "Stripe-Signature"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
	// Mailer delivers the email consumed from the send_email queue.
	Mailer usecases.Notifier
	Auth   AdminAuthenticator

	CookieSecure bool
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.ValidationError(err.Error()))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBooking(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) StartPayment(ctx *fiber.Ctx) error {
	var req request.StartPayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.ValidationError(err.Error()))
	}

	resp, err := h.Usecase.StartPayment(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error start payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create payment session")
}

// PaymentWebhook acknowledges every event that was processed or can never be
// processed. Only retryable failures answer 5xx so the gateway redelivers.
func (h *BookingHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	// fasthttp reuses the body buffer after the handler returns
	payload := append([]byte(nil), ctx.Body()...)

	resp, err := h.Usecase.ApplyPaymentEvent(ctx.UserContext(), payload, ctx.Get(signatureHeader))
	if errors.IsKind(err, errors.KindUnverified) {
		h.Log.Ctx(ctx.UserContext()).Warn("payment webhook rejected",
			zap.String("request_id", fmt.Sprint(ctx.Locals("requestid"))),
			zap.String("remote_addr", ctx.IP()),
			zap.Error(err))
		return helpers.RespSuccess(ctx, h.Log, response.PaymentEventResult{
			Outcome: response.OutcomeRejected,
			Reason:  "event could not be verified",
		}, "event rejected")
	}
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error apply payment event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "event received")
}

// ExpirePaymentSession handles the scheduled session expiry task. Only
// retryable errors are returned, so asynq retries store outages and drops
// malformed tasks.
func (h *BookingHandler) ExpirePaymentSession(ctx context.Context, t *asynq.Task) error {
	var req request.PaymentExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return nil
	}

	resp, err := h.Usecase.ExpirePaymentSession(ctx, &req)
	if err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error expire payment session: %v", err))
		if errors.Retryable(err) {
			return err
		}
		return nil
	}

	h.Log.Ctx(ctx).Info("payment session expiry handled",
		zap.String("booking_id", req.BookingID),
		zap.String("outcome", string(resp.Outcome)))
	return nil
}

// ConsumeEmailQueue delivers one queued email. Malformed messages go straight
// to the poison queue; delivery errors are returned so the router retries
// them before poisoning.
func (h *BookingHandler) ConsumeEmailQueue(msg *message.Message) error {
	var req request.NotificationMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return nil
	}

	err := h.Mailer.Send(msg.Context(), toEmail(req))
	if err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error send email: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: mailer.TopicSendEmail,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(mailer.TopicSendEmailPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func toEmail(req request.NotificationMessage) entity.Email {
	return entity.Email{To: req.To, Subject: req.Subject, HTML: req.HTML}
}
