package core

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// API base URLs for USDⓈ-M futures.
const (
	ProductionURL = "https://fapi.binance.com"
	TestnetURL    = "https://testnet.binancefuture.com"
)

// MaxRecvWindow is the largest tolerance window the exchange accepts.
const MaxRecvWindow = 60000 * time.Millisecond

// Credentials holds API authentication credentials. The secret is used
// only for signing and is never transmitted.
type Credentials struct {
	// APIKey is the public API key identifier, sent as a header.
	APIKey string `json:"api_key"`
	// APISecret is the private key used for request signing.
	APISecret string `json:"api_secret"`
}

// HasSecret reports whether a signing secret is configured.
func (c Credentials) HasSecret() bool {
	return c.APISecret != ""
}

// String masks the key and hides the secret so credentials are safe to
// log.
func (c Credentials) String() string {
	return "Credentials{APIKey:" + maskKey(c.APIKey) + "}"
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// Config contains the client configuration. It is validated at client
// construction and immutable afterwards.
type Config struct {
	// BaseURL is the REST endpoint all paths are resolved against.
	BaseURL string `json:"base_url" validate:"required,url"`

	// Timeout is the maximum duration for a single HTTP call.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// RecvWindow is the tolerance window sent with signed requests.
	// The server rejects requests whose timestamp drifted further than
	// this from server time. Zero omits the parameter. Max 60000ms.
	RecvWindow time.Duration `json:"recv_window" validate:"min=0"`

	// Proxy is an optional proxy URL for outbound requests.
	Proxy string `json:"proxy,omitempty" validate:"omitempty,url"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config with production defaults: 10s timeout
// and a 5000ms recvWindow.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    ProductionURL,
		Timeout:    10 * time.Second,
		RecvWindow: 5000 * time.Millisecond,
		LogLevel:   "info",
	}
}

// TestnetConfig returns a DefaultConfig pointed at the futures testnet.
func TestnetConfig() *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = TestnetURL
	return cfg
}

var validate = validator.New()

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.RecvWindow > MaxRecvWindow {
		return errors.New("RecvWindow must not exceed 60000ms")
	}
	return nil
}

// WithBaseURL sets the base URL and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithRecvWindow sets the signed-request tolerance window and returns
// the config for chaining.
func (c *Config) WithRecvWindow(window time.Duration) *Config {
	c.RecvWindow = window
	return c
}

// WithProxy sets the outbound proxy URL and returns the config for chaining.
func (c *Config) WithProxy(proxy string) *Config {
	c.Proxy = proxy
	return c
}
