package core

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Rate-limit usage headers the exchange attaches to every response.
// They are propagated to callers unmodified.
const (
	HeaderUsedWeight = "X-MBX-USED-WEIGHT-1M"
	HeaderOrderCount = "X-MBX-ORDER-COUNT-1M"
)

// HeaderAPIKey carries the API key on authenticated requests.
const HeaderAPIKey = "X-MBX-APIKEY"

// Response is a successful (2xx) HTTP exchange: status, headers, and
// raw body. It is owned transiently by the caller; nothing is cached.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers holds the response headers exactly as received.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
}

// UsedWeight returns the request-weight usage reported by the exchange
// for the current minute window.
func (r *Response) UsedWeight() string {
	return r.Headers.Get(HeaderUsedWeight)
}

// OrderCount returns the order-count usage reported by the exchange
// for the current minute window.
func (r *Response) OrderCount() string {
	return r.Headers.Get(HeaderOrderCount)
}

// Unmarshal decodes the response body into v.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
