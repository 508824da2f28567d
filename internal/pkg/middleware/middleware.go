package middleware

import (
	"fmt"

	"limo-booking-service/internal/pkg/adminauth"
	"limo-booking-service/internal/pkg/errors"
	"limo-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.elastic.co/apm/module/apmfiber"
)

type SessionValidator interface {
	Validate(token string) error
}

type Middleware struct {
	Log    *otelzap.Logger
	Auth   SessionValidator
	Tracer *apm.Tracer
}

// ValidateAdminSession lets the request through only with a valid admin
// session cookie.
func (m *Middleware) ValidateAdminSession(ctx *fiber.Ctx) error {
	token := ctx.Cookies(adminauth.CookieName)
	if token == "" {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("unauthorized"))
	}

	if err := m.Auth.Validate(token); err != nil {
		m.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("error validate admin session: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("unauthorized"))
	}

	return ctx.Next()
}

// Trace opens an APM transaction per request and stores it in the user
// context, so usecase spans attach to it.
func (m *Middleware) Trace() fiber.Handler {
	if m.Tracer == nil {
		return apmfiber.Middleware()
	}
	return apmfiber.Middleware(apmfiber.WithTracer(m.Tracer))
}
