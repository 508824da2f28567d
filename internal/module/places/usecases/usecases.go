package usecases

import (
	"context"
	"strings"
	"time"

	"limo-booking-service/internal/module/places/models/response"
	"limo-booking-service/internal/module/places/repositories"
	"limo-booking-service/internal/pkg/errors"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	minQueryLength = 2

	autocompleteKeyPrefix = "places:autocomplete:"
	detailsKeyPrefix      = "places:details:"
)

type usecase struct {
	repo            repositories.Repositories
	log             *otelzap.Logger
	autocompleteTTL time.Duration
	detailsTTL      time.Duration
}

type Usecase interface {
	Autocomplete(ctx context.Context, query string) (response.Autocomplete, error)
	Details(ctx context.Context, placeID string) (response.PlaceDetails, error)
}

func New(repo repositories.Repositories, log *otelzap.Logger, autocompleteTTL, detailsTTL time.Duration) Usecase {
	return &usecase{
		repo:            repo,
		log:             log,
		autocompleteTTL: autocompleteTTL,
		detailsTTL:      detailsTTL,
	}
}

// Autocomplete returns address predictions for query. Queries shorter than
// two characters yield no predictions without calling the API.
func (u *usecase) Autocomplete(ctx context.Context, query string) (response.Autocomplete, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.Autocomplete", "app")
	defer span.End()

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLength {
		return response.Autocomplete{Predictions: []response.Prediction{}}, nil
	}

	key := autocompleteKeyPrefix + strings.ToLower(query)
	var cached response.Autocomplete
	if u.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	result, err := u.repo.FetchAutocomplete(ctx, query)
	if err != nil {
		u.log.Ctx(ctx).Error("error fetch autocomplete", zap.Error(err))
		return response.Autocomplete{}, err
	}

	u.toCache(ctx, key, result, u.autocompleteTTL)
	return result, nil
}

func (u *usecase) Details(ctx context.Context, placeID string) (response.PlaceDetails, error) {
	span, ctx := apm.StartSpan(ctx, "usecase.Details", "app")
	defer span.End()

	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return response.PlaceDetails{}, errors.ValidationError("placeId required")
	}

	key := detailsKeyPrefix + placeID
	var cached response.PlaceDetails
	if u.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	result, err := u.repo.FetchDetails(ctx, placeID)
	if err != nil {
		u.log.Ctx(ctx).Error("error fetch place details", zap.String("place_id", placeID), zap.Error(err))
		return response.PlaceDetails{}, err
	}

	u.toCache(ctx, key, result, u.detailsTTL)
	return result, nil
}

func (u *usecase) fromCache(ctx context.Context, key string, dest interface{}) bool {
	hit, err := u.repo.GetCache(ctx, key, dest)
	if err != nil {
		u.log.Ctx(ctx).Warn("places cache unavailable", zap.Error(err))
		return false
	}
	return hit
}

func (u *usecase) toCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := u.repo.SetCache(ctx, key, value, ttl); err != nil {
		u.log.Ctx(ctx).Warn("error set places cache", zap.Error(err))
	}
}
