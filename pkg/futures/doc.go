// Package futures is a client for the Binance USDⓈ-M futures REST
// API. Endpoint operations are declared as contracts (verb, path,
// required and optional parameters, signed flag) in three groups
// (market, account, trade) and merged into one client at construction.
// Signed operations carry an HMAC-SHA256 signature computed over the
// canonical parameter string; the same bytes are signed and sent.
//
// The client performs exactly one HTTP attempt per call and never
// retries, caches, or rate-limits; the exchange's rate-limit usage
// headers are surfaced unmodified for callers that implement their own
// pacing.
package futures
