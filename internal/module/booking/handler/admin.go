package handler

import (
	"fmt"
	"time"

	"limo-booking-service/internal/module/booking/models/request"
	"limo-booking-service/internal/pkg/adminauth"
	"limo-booking-service/internal/pkg/errors"
	"limo-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
)

type AdminAuthenticator interface {
	Login(password string) (string, time.Time, error)
	Validate(token string) error
}

func (h *BookingHandler) AdminLogin(ctx *fiber.Ctx) error {
	var req request.AdminLogin
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	token, expiresAt, err := h.Auth.Login(req.Password)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Warn(fmt.Sprintf("admin login failed from %s", ctx.IP()))
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     adminauth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, nil, "success login")
}

func (h *BookingHandler) AdminLogout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     adminauth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return helpers.RespSuccess(ctx, h.Log, nil, "success logout")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	var req request.ListBookings
	if err := ctx.QueryParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	resp, err := h.Usecase.ListBookings(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list bookings")
}

func (h *BookingHandler) PatchBooking(ctx *fiber.Ctx) error {
	var req request.PatchBooking
	if err := ctx.BodyParser(&req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.ValidationError(err.Error()))
	}

	resp, err := h.Usecase.PatchBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error patch booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking")
}
