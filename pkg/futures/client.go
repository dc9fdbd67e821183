package futures

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"nakula/internal/signer"
	"nakula/internal/transport"
	"nakula/pkg/core"
)

// Transport dispatches finalized requests. It is an interface so tests
// can count or fake network calls.
type Transport interface {
	Do(ctx context.Context, req *core.Request) (*core.Response, error)
	Close() error
}

// Client is the façade over all endpoint groups. Construction is the
// only mutation point: after New returns, configuration, credentials,
// and the contract registry are immutable, so any number of calls may
// run concurrently without coordination.
type Client struct {
	config    *core.Config
	creds     core.Credentials
	transport Transport
	signer    *signer.Signer
	registry  *core.Registry
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*options)

type options struct {
	creds     core.Credentials
	logger    zerolog.Logger
	transport Transport
	clock     func() time.Time
}

// WithCredentials sets the API key and secret.
func WithCredentials(creds core.Credentials) Option {
	return func(o *options) {
		o.creds = creds
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTransport replaces the HTTP transport. Used in tests.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithClock overrides the timestamp source for signed requests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// New creates a Client. It validates the configuration and registers
// the Market, Account, and Trade contract tables; a duplicate
// operation name across groups fails construction.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(o)
	}

	registry := core.NewRegistry()
	for _, table := range [][]*core.Contract{
		marketContracts(),
		accountContracts(),
		tradeContracts(),
	} {
		if err := registry.Register(table...); err != nil {
			return nil, fmt.Errorf("register contracts: %w", err)
		}
	}

	t := o.transport
	if t == nil {
		var err error
		t, err = transport.NewClient(&transport.Config{
			BaseURL: config.BaseURL,
			Timeout: config.Timeout,
			Proxy:   config.Proxy,
		}, o.logger)
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
	}

	var signerOpts []signer.Option
	if o.clock != nil {
		signerOpts = append(signerOpts, signer.WithClock(o.clock))
	}

	return &Client{
		config:    config,
		creds:     o.creds,
		transport: t,
		signer:    signer.New(o.creds, config.RecvWindow, signerOpts...),
		registry:  registry,
		logger:    o.logger,
	}, nil
}

// Close releases the transport resources.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Operations returns the names of all registered operations.
func (c *Client) Operations() []string {
	return c.registry.Names()
}

// Do executes a registered operation with raw parameters and returns
// the full response, including the rate-limit usage headers. Typed
// methods are thin wrappers over this.
func (c *Client) Do(ctx context.Context, op string, params *core.Params) (*core.Response, error) {
	contract, err := c.registry.Get(op)
	if err != nil {
		return nil, err
	}

	req, err := contract.Build(params)
	if err != nil {
		return nil, err
	}

	if c.creds.APIKey != "" {
		req.SetHeader(core.HeaderAPIKey, c.creds.APIKey)
	}
	if req.Signed {
		if err := c.signer.SignRequest(req); err != nil {
			return nil, err
		}
	}

	return c.transport.Do(ctx, req)
}

func (c *Client) do(ctx context.Context, op string, params *core.Params, out any) error {
	resp, err := c.Do(ctx, op, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := resp.Unmarshal(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
