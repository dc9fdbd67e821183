package core

import "errors"

// Exchange error codes returned in 4xx response bodies. The list
// covers the codes callers most commonly branch on; the full table is
// in the exchange API documentation.
const (
	// CodeUnknown is a generic failure during request processing.
	CodeUnknown = -1000
	// CodeDisconnected means an internal backend lookup failed.
	CodeDisconnected = -1001
	// CodeUnauthorized means the request lacks valid authentication.
	CodeUnauthorized = -1002
	// CodeTooManyRequests means the request rate limit was exceeded.
	CodeTooManyRequests = -1003
	// CodeTimeout means the backend timed out; execution status unknown.
	CodeTimeout = -1007
	// CodeInvalidTimestamp means the timestamp fell outside recvWindow.
	CodeInvalidTimestamp = -1021
	// CodeInvalidSignature means the signature did not verify.
	CodeInvalidSignature = -1022
	// CodeIllegalChars means a parameter contained illegal characters.
	CodeIllegalChars = -1100
	// CodeTooManyParameters means too many parameters were sent.
	CodeTooManyParameters = -1101
	// CodeMandatoryParamEmpty means a required parameter was missing or empty.
	CodeMandatoryParamEmpty = -1102
	// CodeUnknownParam means an unknown parameter was sent.
	CodeUnknownParam = -1103
	// CodeBadSymbol means the trading symbol is invalid.
	CodeBadSymbol = -1121
	// CodeNewOrderRejected means the order was rejected.
	CodeNewOrderRejected = -2010
	// CodeCancelRejected means the cancel request was rejected.
	CodeCancelRejected = -2011
	// CodeNoSuchOrder means the order does not exist.
	CodeNoSuchOrder = -2013
	// CodeBadAPIKeyFormat means the API key format is invalid.
	CodeBadAPIKeyFormat = -2014
	// CodeRejectedAPIKey means the key is invalid for this action.
	CodeRejectedAPIKey = -2015
	// CodeBalanceInsufficient means the account lacks required margin.
	CodeBalanceInsufficient = -2018
	// CodeMarginInsufficient means available margin is insufficient.
	CodeMarginInsufficient = -2019
	// CodeOrderWouldImmediatelyTrigger rejects trigger orders that
	// would fire on placement.
	CodeOrderWouldImmediatelyTrigger = -2021
	// CodeReduceOnlyRejected rejects reduce-only orders that would
	// increase the position.
	CodeReduceOnlyRejected = -2022
)

// CodeCategory groups exchange error codes by how callers should react.
type CodeCategory int

// Code categories.
const (
	// CategoryGeneral covers server-side and unclassified failures.
	CategoryGeneral CodeCategory = iota
	// CategoryRateLimit covers request-rate violations.
	CategoryRateLimit
	// CategoryAuth covers authentication and signature failures.
	CategoryAuth
	// CategoryRequest covers malformed or invalid parameters.
	CategoryRequest
	// CategoryOrder covers order placement and cancellation rejections.
	CategoryOrder
)

// String returns the string representation of the category.
func (c CodeCategory) String() string {
	return [...]string{
		"GENERAL",
		"RATE_LIMIT",
		"AUTH",
		"REQUEST",
		"ORDER",
	}[c]
}

// CategorizeCode maps an exchange error code to its category.
func CategorizeCode(code int) CodeCategory {
	switch code {
	case CodeTooManyRequests:
		return CategoryRateLimit
	case CodeUnauthorized, CodeInvalidTimestamp, CodeInvalidSignature,
		CodeBadAPIKeyFormat, CodeRejectedAPIKey:
		return CategoryAuth
	}
	switch {
	case code <= -2010 && code > -3000:
		return CategoryOrder
	case code <= -1100 && code > -2000:
		return CategoryRequest
	default:
		return CategoryGeneral
	}
}

// IsCode checks whether the error carries the given exchange code.
func IsCode(err error, code int) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
