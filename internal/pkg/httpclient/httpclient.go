package httpclient

import (
	"net/http"

	"marketplace-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case "rate":
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveErr)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
