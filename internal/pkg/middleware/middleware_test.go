package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"limo-booking-service/internal/pkg/errors"
	log_internal "limo-booking-service/internal/pkg/log"
	"limo-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.elastic.co/apm"
	"go.elastic.co/apm/apmtest"
)

type tokenValidator string

func (v tokenValidator) Validate(token string) error {
	if token != string(v) {
		return errors.UnauthorizedError("unauthorized")
	}
	return nil
}

func TestValidateAdminSession(t *testing.T) {
	m := &middleware.Middleware{Log: log_internal.Setup(), Auth: tokenValidator("good")}
	app := fiber.New()
	app.Get("/admin/bookings", m.ValidateAdminSession, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	testCases := []struct {
		name   string
		cookie string
		status int
	}{
		{"valid session", "admin_session=good", http.StatusOK},
		{"wrong token", "admin_session=bad", http.StatusUnauthorized},
		{"no cookie", "", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			if tc.cookie != "" {
				req.Header.Set("Cookie", tc.cookie)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestTrace(t *testing.T) {
	tracer := apmtest.NewRecordingTracer()
	defer tracer.Close()

	m := &middleware.Middleware{Log: log_internal.Setup(), Tracer: tracer.Tracer}
	app := fiber.New()
	app.Use(m.Trace())
	app.Get("/api/v1/bookings/:id", func(c *fiber.Ctx) error {
		assert.NotNil(t, apm.TransactionFromContext(c.UserContext()))
		return c.SendStatus(http.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/bookings/b-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	tracer.Flush(nil)
	payloads := tracer.Payloads()
	require.Len(t, payloads.Transactions, 1)
	assert.Contains(t, payloads.Transactions[0].Name, "GET")
	assert.Equal(t, "HTTP 4xx", payloads.Transactions[0].Result)
}
