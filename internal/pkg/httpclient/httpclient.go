package httpclient

import (
	"net/http"

	"limo-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerThreshold   = "threshold"
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
)

// Upstreams holds one client per outbound service. Each client has its own
// breaker, so an outage of one upstream never opens the others.
type Upstreams struct {
	// Payment and Mail are handed to SDKs that take a plain *http.Client.
	Payment *http.Client
	Mail    *http.Client
	Places  *circuit.HTTPClient
}

func InitUpstreams(cfg *config.HttpClientConfig) Upstreams {
	return Upstreams{
		Payment: InitSDKClient(cfg, InitCircuitBreaker(cfg, cfg.Type)),
		Mail:    InitSDKClient(cfg, InitCircuitBreaker(cfg, cfg.Type)),
		Places:  InitHttpClient(cfg, InitCircuitBreaker(cfg, cfg.Type)),
	}
}

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}

// InitSDKClient returns an *http.Client whose round trips run through cb.
func InitSDKClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &breakerTransport{breaker: cb, next: http.DefaultTransport},
	}
}

type breakerTransport struct {
	breaker *circuit.Breaker
	next    http.RoundTripper
}

func (t *breakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	err := t.breaker.Call(func() error {
		r, err := t.next.RoundTrip(req)
		if err != nil {
			return err
		}
		resp = r
		return nil
	}, 0)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
