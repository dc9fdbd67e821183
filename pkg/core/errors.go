package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind categorizes a failed call for programmatic handling.
type ErrorKind int

// Error kind constants.
const (
	// KindUnknown indicates an unclassified error.
	KindUnknown ErrorKind = iota
	// KindNetwork indicates a connectivity failure (DNS, connection reset).
	KindNetwork
	// KindTimeout indicates the call exceeded its deadline.
	KindTimeout
	// KindClient indicates the server rejected the request (4xx).
	KindClient
	// KindServer indicates a server-side failure (5xx).
	KindServer
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	return [...]string{
		"UNKNOWN",
		"NETWORK",
		"TIMEOUT",
		"CLIENT",
		"SERVER",
	}[k]
}

// MissingParameterError reports every required parameter that was
// absent or empty. It is raised before any request is constructed, so
// a call failing with it never reached the network.
type MissingParameterError struct {
	// Operation is the name of the endpoint operation that was invoked.
	Operation string
	// Params lists all missing parameter names, in declaration order.
	Params []string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameters: %s",
		e.Operation, strings.Join(e.Params, ", "))
}

// SigningError reports that an authenticated call could not be signed,
// typically because no API secret is configured.
type SigningError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *SigningError) Error() string {
	return fmt.Sprintf("%s: cannot sign request: %s", e.Operation, e.Reason)
}

// APIError represents a failed dispatch. For 4xx responses it carries
// the decoded exchange error code and message plus the full response;
// for 5xx, timeout, and network failures it carries whatever partial
// information is available.
type APIError struct {
	// Kind categorizes the failure.
	Kind ErrorKind `json:"kind"`
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int `json:"status_code"`
	// Code is the exchange-specific error code, zero when absent.
	Code int `json:"code"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Headers holds the response headers, including rate-limit usage.
	Headers http.Header `json:"headers,omitempty"`
	// Body is the raw response body.
	Body []byte `json:"body,omitempty"`
	// Err is the underlying transport error, if any.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (%d/%d): %s", e.Kind, e.StatusCode, e.Code, e.Message)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport error for errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// UsedWeight returns the request-weight usage header reported by the
// exchange alongside the error response.
func (e *APIError) UsedWeight() string {
	return e.Headers.Get(HeaderUsedWeight)
}

// IsMissingParameter returns true if the error is a pre-flight
// missing-parameter failure.
func IsMissingParameter(err error) bool {
	var mpe *MissingParameterError
	return errors.As(err, &mpe)
}

// IsSigningError returns true if the error is a signing failure.
func IsSigningError(err error) bool {
	var se *SigningError
	return errors.As(err, &se)
}

func kindIs(err error, kind ErrorKind) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// IsClientError returns true if the server rejected the request (4xx).
func IsClientError(err error) bool {
	return kindIs(err, KindClient)
}

// IsServerError returns true if the server failed (5xx).
func IsServerError(err error) bool {
	return kindIs(err, KindServer)
}

// IsNetworkError returns true for connectivity failures.
func IsNetworkError(err error) bool {
	return kindIs(err, KindNetwork)
}

// IsTimeoutError returns true if the call exceeded its deadline.
func IsTimeoutError(err error) bool {
	return kindIs(err, KindTimeout)
}

// CodeOf extracts the exchange error code from an error, or zero when
// the error carries none.
func CodeOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 0
}
