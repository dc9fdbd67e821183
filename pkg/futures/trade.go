package futures

import (
	"context"
	"net/http"

	"github.com/cockroachdb/apd/v3"

	"nakula/pkg/core"
)

// Trade operation names.
const (
	OpNewOrder            = "NEW_ORDER"
	OpQueryOrder          = "QUERY_ORDER"
	OpCancelOrder         = "CANCEL_ORDER"
	OpCancelAllOpenOrders = "CANCEL_ALL_OPEN_ORDERS"
	OpCountdownCancelAll  = "COUNTDOWN_CANCEL_ALL"
	OpQueryOpenOrder      = "QUERY_OPEN_ORDER"
	OpOpenOrders          = "OPEN_ORDERS"
	OpAllOrders           = "ALL_ORDERS"
)

// Order sides, types, and related enumerations accepted by the
// exchange. Values are normalized to upper case by the contracts, so
// lower-case input is accepted too.
const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeLimit              = "LIMIT"
	OrderTypeMarket             = "MARKET"
	OrderTypeStop               = "STOP"
	OrderTypeStopMarket         = "STOP_MARKET"
	OrderTypeTakeProfit         = "TAKE_PROFIT"
	OrderTypeTakeProfitMarket   = "TAKE_PROFIT_MARKET"
	OrderTypeTrailingStopMarket = "TRAILING_STOP_MARKET"

	TimeInForceGTC = "GTC"
	TimeInForceIOC = "IOC"
	TimeInForceFOK = "FOK"
	TimeInForceGTX = "GTX"

	PositionSideBoth  = "BOTH"
	PositionSideLong  = "LONG"
	PositionSideShort = "SHORT"

	WorkingTypeMarkPrice     = "MARK_PRICE"
	WorkingTypeContractPrice = "CONTRACT_PRICE"
)

// tradeContracts declares the signed order endpoints.
func tradeContracts() []*core.Contract {
	orderOptional := []string{
		"positionSide", "timeInForce", "quantity", "reduceOnly", "price",
		"newClientOrderId", "stopPrice", "closePosition", "activationPrice",
		"callbackRate", "workingType", "priceProtect", "newOrderRespType",
	}
	orderUppercase := []string{
		"symbol", "side", "type", "positionSide", "timeInForce",
		"workingType", "newOrderRespType",
	}

	return []*core.Contract{
		{
			Name: OpNewOrder, Method: http.MethodPost, Path: "/fapi/v1/order", Signed: true, Weight: 1,
			Required:  []string{"symbol", "side", "type"},
			Optional:  orderOptional,
			Uppercase: orderUppercase,
		},
		{
			Name: OpQueryOrder, Method: http.MethodGet, Path: "/fapi/v1/order", Signed: true, Weight: 1,
			Required:  []string{"symbol"},
			Optional:  []string{"orderId", "origClientOrderId"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpCancelOrder, Method: http.MethodDelete, Path: "/fapi/v1/order", Signed: true, Weight: 1,
			Required:  []string{"symbol"},
			Optional:  []string{"orderId", "origClientOrderId"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpCancelAllOpenOrders, Method: http.MethodDelete, Path: "/fapi/v1/allOpenOrders", Signed: true, Weight: 1,
			Required: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpCountdownCancelAll, Method: http.MethodPost, Path: "/fapi/v1/countdownCancelAll", Signed: true, Weight: 10,
			Required: []string{"symbol", "countdownTime"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpQueryOpenOrder, Method: http.MethodGet, Path: "/fapi/v1/openOrder", Signed: true, Weight: 1,
			Required:  []string{"symbol"},
			Optional:  []string{"orderId", "origClientOrderId"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpOpenOrders, Method: http.MethodGet, Path: "/fapi/v1/openOrders", Signed: true, Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpAllOrders, Method: http.MethodGet, Path: "/fapi/v1/allOrders", Signed: true, Weight: 5,
			Required:  []string{"symbol"},
			Optional:  []string{"orderId", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
	}
}

// NewOrderParams configures an order placement. Zero-valued optional
// fields are omitted from the request.
type NewOrderParams struct {
	Symbol string
	// Side is "BUY" or "SELL".
	Side string
	// Type is one of the OrderType constants.
	Type string
	// PositionSide is required in hedge mode: "LONG" or "SHORT".
	PositionSide string
	// TimeInForce is required for LIMIT orders, e.g. "GTC".
	TimeInForce string
	// Quantity is the order quantity. Cannot be combined with
	// ClosePosition.
	Quantity *apd.Decimal
	// ReduceOnly limits the order to reducing the position. Not valid
	// in hedge mode.
	ReduceOnly bool
	// Price is the limit price, required for LIMIT and STOP orders.
	Price *apd.Decimal
	// ClientOrderID is a caller-chosen unique order identifier.
	ClientOrderID string
	// StopPrice is the trigger price for STOP and TAKE_PROFIT orders.
	StopPrice *apd.Decimal
	// ClosePosition closes the whole position on trigger; only valid
	// with STOP_MARKET and TAKE_PROFIT_MARKET.
	ClosePosition bool
	// ActivationPrice activates a TRAILING_STOP_MARKET order; defaults
	// to the latest price.
	ActivationPrice *apd.Decimal
	// CallbackRate is the trailing delta in percent, 0.1 to 5, for
	// TRAILING_STOP_MARKET orders.
	CallbackRate *apd.Decimal
	// WorkingType selects the trigger price source: "MARK_PRICE" or
	// "CONTRACT_PRICE" (default).
	WorkingType string
	// PriceProtect enables the trigger price protection threshold.
	PriceProtect bool
	// ResponseType is "ACK" or "RESULT"; MARKET orders default to
	// "RESULT".
	ResponseType string
}

func (p NewOrderParams) params() *core.Params {
	q := core.NewParams().
		Set("symbol", p.Symbol).
		Set("side", p.Side).
		Set("type", p.Type)
	if p.PositionSide != "" {
		q.Set("positionSide", p.PositionSide)
	}
	if p.TimeInForce != "" {
		q.Set("timeInForce", p.TimeInForce)
	}
	if p.Quantity != nil {
		q.SetDecimal("quantity", p.Quantity)
	}
	if p.ReduceOnly {
		q.SetBool("reduceOnly", true)
	}
	if p.Price != nil {
		q.SetDecimal("price", p.Price)
	}
	if p.ClientOrderID != "" {
		q.Set("newClientOrderId", p.ClientOrderID)
	}
	if p.StopPrice != nil {
		q.SetDecimal("stopPrice", p.StopPrice)
	}
	if p.ClosePosition {
		q.SetBool("closePosition", true)
	}
	if p.ActivationPrice != nil {
		q.SetDecimal("activationPrice", p.ActivationPrice)
	}
	if p.CallbackRate != nil {
		q.SetDecimal("callbackRate", p.CallbackRate)
	}
	if p.WorkingType != "" {
		q.Set("workingType", p.WorkingType)
	}
	if p.PriceProtect {
		q.SetBool("priceProtect", true)
	}
	if p.ResponseType != "" {
		q.Set("newOrderRespType", p.ResponseType)
	}
	return q
}

// NewOrder places an order.
func (c *Client) NewOrder(ctx context.Context, params NewOrderParams) (*Order, error) {
	var out Order
	if err := c.do(ctx, OpNewOrder, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OrderQueryParams identifies an order by exchange ID or client ID.
// Exactly one of OrderID and ClientOrderID should be set.
type OrderQueryParams struct {
	Symbol        string
	OrderID       int64
	ClientOrderID string
}

func (p OrderQueryParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.OrderID > 0 {
		q.SetInt("orderId", p.OrderID)
	}
	if p.ClientOrderID != "" {
		q.Set("origClientOrderId", p.ClientOrderID)
	}
	return q
}

// QueryOrder returns the current state of an order.
func (c *Client) QueryOrder(ctx context.Context, params OrderQueryParams) (*Order, error) {
	var out Order
	if err := c.do(ctx, OpQueryOrder, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder cancels an active order.
func (c *Client) CancelOrder(ctx context.Context, params OrderQueryParams) (*Order, error) {
	var out Order
	if err := c.do(ctx, OpCancelOrder, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelAllOpenOrders cancels every open order on a symbol.
func (c *Client) CancelAllOpenOrders(ctx context.Context, symbol string) error {
	return c.do(ctx, OpCancelAllOpenOrders, symbolParams(symbol), nil)
}

// CountdownCancelAll arms a dead-man's switch: all open orders on the
// symbol are cancelled unless the countdown is re-armed within
// countdownTime milliseconds. Zero disarms it.
func (c *Client) CountdownCancelAll(ctx context.Context, symbol string, countdownTime int64) (*CountdownCancel, error) {
	q := core.NewParams().Set("symbol", symbol)
	q.SetInt("countdownTime", countdownTime)
	var out CountdownCancel
	if err := c.do(ctx, OpCountdownCancelAll, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryOpenOrder returns an order only if it is still open.
func (c *Client) QueryOpenOrder(ctx context.Context, params OrderQueryParams) (*Order, error) {
	var out Order
	if err := c.do(ctx, OpQueryOpenOrder, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenOrders returns all open orders, optionally filtered by symbol.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, OpOpenOrders, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllOrdersParams configures an order history request.
type AllOrdersParams struct {
	Symbol string
	// OrderID returns orders from this order ID onwards.
	OrderID   int64
	StartTime int64
	EndTime   int64
	// Limit caps the number of orders, max 1000.
	Limit int
}

func (p AllOrdersParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.OrderID > 0 {
		q.SetInt("orderId", p.OrderID)
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

// AllOrders returns all orders on a symbol: active, cancelled, filled.
func (c *Client) AllOrders(ctx context.Context, params AllOrdersParams) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, OpAllOrders, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
