package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "nrsync"

// HTTPClient is the resty client used for calls to the production targets.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own connection pool. A positive
// timeout bounds every request.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
