package futures

import (
	"context"
	"net/http"

	"nakula/pkg/core"
)

// Market operation names.
const (
	OpPing             = "PING"
	OpServerTime       = "SERVER_TIME"
	OpExchangeInfo     = "EXCHANGE_INFO"
	OpDepth            = "DEPTH"
	OpRecentTrades     = "RECENT_TRADES"
	OpHistoricalTrades = "HISTORICAL_TRADES"
	OpAggTrades        = "AGG_TRADES"
	OpKlines           = "KLINES"
	OpContinuousKlines = "CONTINUOUS_KLINES"
	OpIndexPriceKlines = "INDEX_PRICE_KLINES"
	OpMarkPriceKlines  = "MARK_PRICE_KLINES"
	OpMarkPrice        = "MARK_PRICE"
	OpFundingRate      = "FUNDING_RATE"
	OpTicker24h        = "TICKER_24H"
	OpTickerPrice      = "TICKER_PRICE"
	OpBookTicker       = "BOOK_TICKER"
	OpOpenInterest     = "OPEN_INTEREST"
)

// marketContracts declares the public market-data endpoints. None of
// them is signed; historicalTrades additionally needs the API key
// header, which the client attaches whenever a key is configured.
func marketContracts() []*core.Contract {
	return []*core.Contract{
		{Name: OpPing, Method: http.MethodGet, Path: "/fapi/v1/ping", Weight: 1},
		{Name: OpServerTime, Method: http.MethodGet, Path: "/fapi/v1/time", Weight: 1},
		{Name: OpExchangeInfo, Method: http.MethodGet, Path: "/fapi/v1/exchangeInfo", Weight: 1},
		{
			Name: OpDepth, Method: http.MethodGet, Path: "/fapi/v1/depth", Weight: 10,
			Required: []string{"symbol"}, Optional: []string{"limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpRecentTrades, Method: http.MethodGet, Path: "/fapi/v1/trades", Weight: 5,
			Required: []string{"symbol"}, Optional: []string{"limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpHistoricalTrades, Method: http.MethodGet, Path: "/fapi/v1/historicalTrades", Weight: 20,
			Required: []string{"symbol"}, Optional: []string{"limit", "fromId"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpAggTrades, Method: http.MethodGet, Path: "/fapi/v1/aggTrades", Weight: 20,
			Required: []string{"symbol"},
			Optional: []string{"fromId", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpKlines, Method: http.MethodGet, Path: "/fapi/v1/klines", Weight: 5,
			Required: []string{"symbol", "interval"},
			Optional: []string{"startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpContinuousKlines, Method: http.MethodGet, Path: "/fapi/v1/continuousKlines", Weight: 5,
			Required: []string{"pair", "contractType", "interval"},
			Optional: []string{"startTime", "endTime", "limit"},
			Uppercase: []string{"pair", "contractType"},
		},
		{
			Name: OpIndexPriceKlines, Method: http.MethodGet, Path: "/fapi/v1/indexPriceKlines", Weight: 5,
			Required: []string{"pair", "interval"},
			Optional: []string{"startTime", "endTime", "limit"},
			Uppercase: []string{"pair"},
		},
		{
			Name: OpMarkPriceKlines, Method: http.MethodGet, Path: "/fapi/v1/markPriceKlines", Weight: 5,
			Required: []string{"symbol", "interval"},
			Optional: []string{"startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpMarkPrice, Method: http.MethodGet, Path: "/fapi/v1/premiumIndex", Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpFundingRate, Method: http.MethodGet, Path: "/fapi/v1/fundingRate", Weight: 1,
			Optional: []string{"symbol", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpTicker24h, Method: http.MethodGet, Path: "/fapi/v1/ticker/24hr", Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpTickerPrice, Method: http.MethodGet, Path: "/fapi/v1/ticker/price", Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpBookTicker, Method: http.MethodGet, Path: "/fapi/v1/ticker/bookTicker", Weight: 2,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpOpenInterest, Method: http.MethodGet, Path: "/fapi/v1/openInterest", Weight: 1,
			Required: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
	}
}

// Ping tests connectivity to the REST API.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, OpPing, nil, nil)
}

// ServerTime returns the exchange server time.
func (c *Client) ServerTime(ctx context.Context) (*ServerTime, error) {
	var out ServerTime
	if err := c.do(ctx, OpServerTime, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExchangeInfo returns current exchange trading rules and symbol metadata.
func (c *Client) ExchangeInfo(ctx context.Context) (*ExchangeInfo, error) {
	var out ExchangeInfo
	if err := c.do(ctx, OpExchangeInfo, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DepthParams configures an order book request.
type DepthParams struct {
	Symbol string
	// Limit is the number of levels per side. Valid: 5, 10, 20, 50,
	// 100, 500, 1000. Zero lets the server default to 500.
	Limit int
}

func (p DepthParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// Depth returns the order book for a symbol.
func (c *Client) Depth(ctx context.Context, params DepthParams) (*Depth, error) {
	var out Depth
	if err := c.do(ctx, OpDepth, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TradesParams configures a recent- or historical-trades request.
type TradesParams struct {
	Symbol string
	// Limit caps the number of trades returned, max 1000.
	Limit int
	// FromID returns trades starting from this trade ID. Only used by
	// HistoricalTrades; zero starts from the most recent trades.
	FromID int64
}

func (p TradesParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	if p.FromID > 0 {
		q.SetInt("fromId", p.FromID)
	}
	return q
}

// RecentTrades returns the most recent public trades for a symbol.
func (c *Client) RecentTrades(ctx context.Context, params TradesParams) ([]Trade, error) {
	var out []Trade
	if err := c.do(ctx, OpRecentTrades, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HistoricalTrades returns older public trades. Requires an API key.
func (c *Client) HistoricalTrades(ctx context.Context, params TradesParams) ([]Trade, error) {
	var out []Trade
	if err := c.do(ctx, OpHistoricalTrades, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AggTradesParams configures a compressed-trades request.
type AggTradesParams struct {
	Symbol string
	// FromID returns trades from this aggregate trade ID onwards.
	FromID int64
	// StartTime and EndTime bound the window in epoch milliseconds.
	StartTime int64
	EndTime   int64
	// Limit caps the number of trades returned, max 1000.
	Limit int
}

func (p AggTradesParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.FromID > 0 {
		q.SetInt("fromId", p.FromID)
	}
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// AggTrades returns compressed, aggregate public trades.
func (c *Client) AggTrades(ctx context.Context, params AggTradesParams) ([]AggTrade, error) {
	var out []AggTrade
	if err := c.do(ctx, OpAggTrades, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// KlinesParams configures a candlestick request.
type KlinesParams struct {
	Symbol string
	// Interval is the kline interval, e.g. "1m", "1h", "1d".
	Interval string
	// StartTime and EndTime bound the window in epoch milliseconds.
	StartTime int64
	EndTime   int64
	// Limit caps the number of klines returned, max 1500.
	Limit int
}

func (p KlinesParams) params() *core.Params {
	q := core.NewParams().
		Set("symbol", p.Symbol).
		Set("interval", p.Interval)
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// Klines returns candlestick data for a symbol.
func (c *Client) Klines(ctx context.Context, params KlinesParams) ([]Kline, error) {
	var out []Kline
	if err := c.do(ctx, OpKlines, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContinuousKlinesParams configures a continuous-contract candlestick
// request.
type ContinuousKlinesParams struct {
	// Pair is the underlying pair, e.g. "BTCUSDT".
	Pair string
	// ContractType is "PERPETUAL", "CURRENT_QUARTER", or "NEXT_QUARTER".
	ContractType string
	Interval     string
	StartTime    int64
	EndTime      int64
	Limit        int
}

func (p ContinuousKlinesParams) params() *core.Params {
	q := core.NewParams().
		Set("pair", p.Pair).
		Set("contractType", p.ContractType).
		Set("interval", p.Interval)
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// ContinuousKlines returns candlestick data for a continuous contract.
func (c *Client) ContinuousKlines(ctx context.Context, params ContinuousKlinesParams) ([]Kline, error) {
	var out []Kline
	if err := c.do(ctx, OpContinuousKlines, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IndexKlinesParams configures an index- or mark-price candlestick
// request.
type IndexKlinesParams struct {
	// Pair is used by IndexPriceKlines, Symbol by MarkPriceKlines.
	Pair      string
	Symbol    string
	Interval  string
	StartTime int64
	EndTime   int64
	Limit     int
}

func (p IndexKlinesParams) params(keyed string) *core.Params {
	q := core.NewParams()
	switch keyed {
	case "pair":
		q.Set("pair", p.Pair)
	case "symbol":
		q.Set("symbol", p.Symbol)
	}
	q.Set("interval", p.Interval)
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// IndexPriceKlines returns index price candlesticks for a pair.
func (c *Client) IndexPriceKlines(ctx context.Context, params IndexKlinesParams) ([]Kline, error) {
	var out []Kline
	if err := c.do(ctx, OpIndexPriceKlines, params.params("pair"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPriceKlines returns mark price candlesticks for a symbol.
func (c *Client) MarkPriceKlines(ctx context.Context, params IndexKlinesParams) ([]Kline, error) {
	var out []Kline
	if err := c.do(ctx, OpMarkPriceKlines, params.params("symbol"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func symbolParams(symbol string) *core.Params {
	q := core.NewParams()
	if symbol != "" {
		q.Set("symbol", symbol)
	}
	return q
}

// MarkPrice returns mark price and funding data for a symbol.
func (c *Client) MarkPrice(ctx context.Context, symbol string) (*MarkPrice, error) {
	var out MarkPrice
	if err := c.do(ctx, OpMarkPrice, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkPrices returns mark price and funding data for all symbols.
func (c *Client) MarkPrices(ctx context.Context) ([]MarkPrice, error) {
	var out []MarkPrice
	if err := c.do(ctx, OpMarkPrice, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FundingRateParams configures a funding rate history request.
type FundingRateParams struct {
	Symbol    string
	StartTime int64
	EndTime   int64
	// Limit caps the number of entries returned, max 1000.
	Limit int
}

func (p FundingRateParams) params() *core.Params {
	q := symbolParams(p.Symbol)
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// FundingRateHistory returns historical funding rates.
func (c *Client) FundingRateHistory(ctx context.Context, params FundingRateParams) ([]FundingRate, error) {
	var out []FundingRate
	if err := c.do(ctx, OpFundingRate, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ticker24h returns 24-hour rolling window price statistics for a symbol.
func (c *Client) Ticker24h(ctx context.Context, symbol string) (*Ticker24h, error) {
	var out Ticker24h
	if err := c.do(ctx, OpTicker24h, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TickerPrice returns the latest price for a symbol.
func (c *Client) TickerPrice(ctx context.Context, symbol string) (*PriceTicker, error) {
	var out PriceTicker
	if err := c.do(ctx, OpTickerPrice, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BookTicker returns the best bid/ask for a symbol.
func (c *Client) BookTicker(ctx context.Context, symbol string) (*BookTicker, error) {
	var out BookTicker
	if err := c.do(ctx, OpBookTicker, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenInterest returns the current open interest for a symbol.
func (c *Client) OpenInterest(ctx context.Context, symbol string) (*OpenInterest, error) {
	var out OpenInterest
	if err := c.do(ctx, OpOpenInterest, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
