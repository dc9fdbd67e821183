// Package transport dispatches finalized requests over HTTPS and
// classifies failures into the client error taxonomy.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"nakula/pkg/core"
)

// Config holds the transport configuration.
type Config struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"min=1ms"`
	Proxy   string        `validate:"omitempty,url"`
}

// Client dispatches requests against a configured base endpoint. Each
// call is a single attempt: retry policy belongs to the caller.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient creates a transport client. The underlying HTTP client is
// configured once and never mutated afterwards.
func NewClient(config *Config, logger zerolog.Logger) (*Client, error) {
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid transport config: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)
	if config.Proxy != "" {
		client.SetProxy(config.Proxy)
	}
	client.AddContentTypeEncoder("application/json", func(w io.Writer, v any) error {
		data, err := sonic.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	})
	client.AddContentTypeDecoder("application/json", func(r io.Reader, v any) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		return sonic.Unmarshal(data, v)
	})

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})
	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{http: client, logger: logger}, nil
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// Do dispatches a finalized request. GET and DELETE carry the
// canonical parameter string as the raw query; POST and PUT carry the
// same string as a form-encoded body. The string is attached verbatim:
// re-encoding it here would invalidate the signature.
func (c *Client) Do(ctx context.Context, req *core.Request) (*core.Response, error) {
	r := c.http.R().SetContext(ctx)

	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}

	url := req.Path
	encoded := ""
	if req.Params != nil {
		encoded = req.Params.Encode()
	}

	switch req.Method {
	case http.MethodGet, http.MethodDelete:
		if encoded != "" {
			url += "?" + encoded
		}
	case http.MethodPost, http.MethodPut:
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		r.SetBody(encoded)
	default:
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		resp, err = r.Get(url)
	case http.MethodPost:
		resp, err = r.Post(url)
	case http.MethodPut:
		resp, err = r.Put(url)
	case http.MethodDelete:
		resp, err = r.Delete(url)
	}

	if err != nil {
		return nil, c.classifyTransportError(req, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, c.buildAPIError(req, resp)
	}

	return &core.Response{
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		Body:       resp.Bytes(),
	}, nil
}

func (c *Client) classifyTransportError(req *core.Request, err error) error {
	kind := core.KindNetwork
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		kind = core.KindTimeout
	}

	c.logger.Error().Err(err).
		Str("method", req.Method).
		Str("path", req.Path).
		Str("kind", kind.String()).
		Msg("http request failed")

	return &core.APIError{
		Kind:    kind,
		Message: err.Error(),
		Err:     err,
	}
}

func (c *Client) buildAPIError(req *core.Request, resp *resty.Response) error {
	kind := core.KindClient
	if resp.StatusCode() >= http.StatusInternalServerError {
		kind = core.KindServer
	}

	apiErr := &core.APIError{
		Kind:       kind,
		StatusCode: resp.StatusCode(),
		Message:    resp.Status(),
		Headers:    resp.Header(),
		Body:       resp.Bytes(),
	}

	var body struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := sonic.Unmarshal(resp.Bytes(), &body); err == nil && body.Code != 0 {
		apiErr.Code = body.Code
		apiErr.Message = body.Msg
	}

	c.logger.Warn().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Int("code", apiErr.Code).
		Msg("http request rejected")

	return apiErr
}
