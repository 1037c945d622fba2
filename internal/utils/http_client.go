package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000", 5*time.Second)
//	resp, err := client.R().Get("/countries")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL that sends and accepts
// JSON. A zero timeout leaves requests without a deadline.
//
// Each call returns an independent client instance with its own
// configuration, connection pool and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
