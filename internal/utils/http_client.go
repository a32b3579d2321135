package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. Every request carries
// the bearer apiKey (when set) and JSON content headers.
func NewHTTPClient(baseURL string, timeout time.Duration, apiKey string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}

	return &HTTPClient{Client: client}
}
