// Package signer computes HMAC-SHA256 request signatures over the
// canonical parameter string.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"nakula/pkg/core"
)

// Signer signs requests with a fixed credential set. It holds no
// per-call state and is safe for concurrent use.
type Signer struct {
	creds      core.Credentials
	recvWindow time.Duration
	now        func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the timestamp source. Used in tests to produce
// deterministic signatures.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// New creates a Signer. recvWindow of zero omits the parameter.
func New(creds core.Credentials, recvWindow time.Duration, opts ...Option) *Signer {
	s := &Signer{
		creds:      creds,
		recvWindow: recvWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign returns the hex HMAC-SHA256 of the canonical parameter string.
// The server recomputes the same string from the received request, so
// the bytes signed here must be the bytes transmitted.
func (s *Signer) Sign(params *core.Params) string {
	mac := hmac.New(sha256.New, []byte(s.creds.APISecret))
	mac.Write([]byte(params.Encode()))
	return hex.EncodeToString(mac.Sum(nil))
}

// SignRequest authenticates a request in place: it appends timestamp
// and recvWindow, computes the signature over the canonical string,
// and appends signature as the final parameter. It fails with a
// SigningError when no secret is configured.
func (s *Signer) SignRequest(req *core.Request) error {
	if !s.creds.HasSecret() {
		return &core.SigningError{
			Operation: req.Method + " " + req.Path,
			Reason:    "no API secret configured",
		}
	}

	req.Params.SetInt("timestamp", s.now().UnixMilli())
	if s.recvWindow > 0 {
		req.Params.SetInt("recvWindow", s.recvWindow.Milliseconds())
	}

	// Everything after this point must not touch the parameters: the
	// signature covers the exact serialization above.
	req.Params.Set("signature", s.Sign(req.Params))
	return nil
}
