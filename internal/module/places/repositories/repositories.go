package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"limo-booking-service/config"
	"limo-booking-service/internal/module/places/models/response"
	"limo-booking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	// searches are biased to the Montreal area and limited to Canada
	components = "country:ca"
	location   = "45.5017,-73.5673"
	radius     = "80000"

	detailsFields = "name,formatted_address,geometry"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type repositories struct {
	httpClient  *circuit.HTTPClient
	redisClient *redis.Client
	cfg         *config.PlacesConfig
	log         *otelzap.Logger
}

type Repositories interface {
	// http
	FetchAutocomplete(ctx context.Context, query string) (response.Autocomplete, error)
	FetchDetails(ctx context.Context, placeID string) (response.PlaceDetails, error)
	// redis
	GetCache(ctx context.Context, key string, dest interface{}) (bool, error)
	SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

func New(httpClient *circuit.HTTPClient, redisClient *redis.Client, cfg *config.PlacesConfig, log *otelzap.Logger) Repositories {
	return &repositories{
		httpClient:  httpClient,
		redisClient: redisClient,
		cfg:         cfg,
		log:         log,
	}
}

type autocompleteResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}

type detailsResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// FetchAutocomplete implements Repositories.
func (r *repositories) FetchAutocomplete(ctx context.Context, query string) (response.Autocomplete, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("components", components)
	params.Set("location", location)
	params.Set("radius", radius)

	var result autocompleteResult
	if err := r.get(ctx, "/autocomplete/json", params, &result); err != nil {
		return response.Autocomplete{}, err
	}
	if result.Status != statusOK && result.Status != statusZeroResults {
		return response.Autocomplete{}, errors.GatewayError("places autocomplete failed",
			fmt.Errorf("%s: %s", result.Status, result.ErrorMessage))
	}

	out := response.Autocomplete{Predictions: make([]response.Prediction, 0, len(result.Predictions))}
	for _, p := range result.Predictions {
		out.Predictions = append(out.Predictions, response.Prediction{PlaceID: p.PlaceID, Description: p.Description})
	}
	return out, nil
}

// FetchDetails implements Repositories.
func (r *repositories) FetchDetails(ctx context.Context, placeID string) (response.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var result detailsResult
	if err := r.get(ctx, "/details/json", params, &result); err != nil {
		return response.PlaceDetails{}, err
	}
	switch result.Status {
	case statusOK:
	case statusZeroResults, "NOT_FOUND", "INVALID_REQUEST":
		return response.PlaceDetails{}, errors.NotFound("place not found")
	default:
		return response.PlaceDetails{}, errors.GatewayError("places details failed",
			fmt.Errorf("%s: %s", result.Status, result.ErrorMessage))
	}

	return response.PlaceDetails{
		PlaceID:          placeID,
		Name:             result.Result.Name,
		FormattedAddress: result.Result.FormattedAddress,
		Lat:              result.Result.Geometry.Location.Lat,
		Lng:              result.Result.Geometry.Location.Lng,
	}, nil
}

func (r *repositories) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	if r.cfg.APIKey == "" {
		return errors.InternalServerError("places api key not configured")
	}
	params.Set("key", r.cfg.APIKey)

	endpoint := strings.TrimRight(r.cfg.BaseURL, "/") + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.GatewayError("error build places request", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return errors.GatewayError("error call places api", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.GatewayError("places api error", fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.GatewayError("error decode places response", err)
	}
	return nil
}

// GetCache implements Repositories. A miss is (false, nil).
func (r *repositories) GetCache(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.CacheError("error get places cache", err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		r.log.Ctx(ctx).Warn("error unmarshal places cache", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// SetCache implements Repositories.
func (r *repositories) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return errors.CacheError("error marshal places cache", err)
	}

	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return errors.CacheError("error set places cache", err)
	}
	return nil
}
