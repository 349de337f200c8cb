package httpx

import (
	"net"
	"net/http"
	"time"
)

// Client returns a pooled HTTP client for gateway→server calls.
// The gateway holds one connection pool for the lifetime of the
// process; per-request timeouts come from the request context.
func Client() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
