package handler

import (
	"fmt"
	"time"

	"limo-booking-service/internal/module/places/usecases"
	"limo-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PlacesHandler struct {
	Log             *otelzap.Logger
	Usecase         usecases.Usecase
	AutocompleteTTL time.Duration
	DetailsTTL      time.Duration
}

func (h *PlacesHandler) Autocomplete(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Autocomplete(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	setCacheControl(ctx, h.AutocompleteTTL)
	return helpers.RespSuccess(ctx, h.Log, resp, "success autocomplete")
}

func (h *PlacesHandler) Details(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.Details(ctx.UserContext(), ctx.Query("placeId"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	setCacheControl(ctx, h.DetailsTTL)
	return helpers.RespSuccess(ctx, h.Log, resp, "success place details")
}

func setCacheControl(ctx *fiber.Ctx, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ctx.Set(fiber.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
}
