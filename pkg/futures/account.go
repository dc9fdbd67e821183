package futures

import (
	"context"
	"net/http"

	"github.com/cockroachdb/apd/v3"

	"nakula/pkg/core"
)

// Account operation names.
const (
	OpBalance               = "BALANCE"
	OpAccount               = "ACCOUNT"
	OpPositionRisk          = "POSITION_RISK"
	OpChangeLeverage        = "CHANGE_LEVERAGE"
	OpChangeMarginType      = "CHANGE_MARGIN_TYPE"
	OpModifyPositionMargin  = "MODIFY_POSITION_MARGIN"
	OpPositionMarginHistory = "POSITION_MARGIN_HISTORY"
	OpIncomeHistory         = "INCOME_HISTORY"
	OpLeverageBracket       = "LEVERAGE_BRACKET"
	OpADLQuantile           = "ADL_QUANTILE"
	OpCommissionRate        = "COMMISSION_RATE"
	OpChangePositionMode    = "CHANGE_POSITION_MODE"
	OpGetPositionMode       = "GET_POSITION_MODE"
	OpChangeMultiAssetsMode = "CHANGE_MULTI_ASSETS_MODE"
	OpGetMultiAssetsMode    = "GET_MULTI_ASSETS_MODE"
	OpUserTrades            = "USER_TRADES"
	OpAPITradingStatus      = "API_TRADING_STATUS"
	OpForceOrders           = "FORCE_ORDERS"
)

// accountContracts declares the signed account and position endpoints.
func accountContracts() []*core.Contract {
	return []*core.Contract{
		{Name: OpBalance, Method: http.MethodGet, Path: "/fapi/v2/balance", Signed: true, Weight: 5},
		{Name: OpAccount, Method: http.MethodGet, Path: "/fapi/v2/account", Signed: true, Weight: 5},
		{
			Name: OpPositionRisk, Method: http.MethodGet, Path: "/fapi/v2/positionRisk", Signed: true, Weight: 5,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpChangeLeverage, Method: http.MethodPost, Path: "/fapi/v1/leverage", Signed: true, Weight: 1,
			Required: []string{"symbol", "leverage"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpChangeMarginType, Method: http.MethodPost, Path: "/fapi/v1/marginType", Signed: true, Weight: 1,
			Required: []string{"symbol", "marginType"}, Uppercase: []string{"symbol", "marginType"},
		},
		{
			Name: OpModifyPositionMargin, Method: http.MethodPost, Path: "/fapi/v1/positionMargin", Signed: true, Weight: 1,
			Required: []string{"symbol", "amount", "type"},
			Optional: []string{"positionSide"},
			Uppercase: []string{"symbol", "positionSide"},
		},
		{
			Name: OpPositionMarginHistory, Method: http.MethodGet, Path: "/fapi/v1/positionMargin/history", Signed: true, Weight: 1,
			Required: []string{"symbol"},
			Optional: []string{"type", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpIncomeHistory, Method: http.MethodGet, Path: "/fapi/v1/income", Signed: true, Weight: 30,
			Optional: []string{"symbol", "incomeType", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol", "incomeType"},
		},
		{
			Name: OpLeverageBracket, Method: http.MethodGet, Path: "/fapi/v1/leverageBracket", Signed: true, Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpADLQuantile, Method: http.MethodGet, Path: "/fapi/v1/adlQuantile", Signed: true, Weight: 5,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpCommissionRate, Method: http.MethodGet, Path: "/fapi/v1/commissionRate", Signed: true, Weight: 20,
			Required: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpChangePositionMode, Method: http.MethodPost, Path: "/fapi/v1/positionSide/dual", Signed: true, Weight: 1,
			Required: []string{"dualSidePosition"},
		},
		{Name: OpGetPositionMode, Method: http.MethodGet, Path: "/fapi/v1/positionSide/dual", Signed: true, Weight: 30},
		{
			Name: OpChangeMultiAssetsMode, Method: http.MethodPost, Path: "/fapi/v1/multiAssetsMargin", Signed: true, Weight: 1,
			Required: []string{"multiAssetsMargin"},
		},
		{Name: OpGetMultiAssetsMode, Method: http.MethodGet, Path: "/fapi/v1/multiAssetsMargin", Signed: true, Weight: 30},
		{
			Name: OpUserTrades, Method: http.MethodGet, Path: "/fapi/v1/userTrades", Signed: true, Weight: 5,
			Required: []string{"symbol"},
			Optional: []string{"startTime", "endTime", "fromId", "limit"},
			Uppercase: []string{"symbol"},
		},
		{
			Name: OpAPITradingStatus, Method: http.MethodGet, Path: "/fapi/v1/apiTradingStatus", Signed: true, Weight: 1,
			Optional: []string{"symbol"}, Uppercase: []string{"symbol"},
		},
		{
			Name: OpForceOrders, Method: http.MethodGet, Path: "/fapi/v1/forceOrders", Signed: true, Weight: 20,
			Optional: []string{"symbol", "autoCloseType", "startTime", "endTime", "limit"},
			Uppercase: []string{"symbol", "autoCloseType"},
		},
	}
}

// Balances returns the account balance per asset.
func (c *Client) Balances(ctx context.Context) ([]Balance, error) {
	var out []Balance
	if err := c.do(ctx, OpBalance, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Account returns account information including assets and positions.
func (c *Client) Account(ctx context.Context) (*Account, error) {
	var out Account
	if err := c.do(ctx, OpAccount, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PositionRisk returns position risk information, optionally filtered
// by symbol. An empty symbol returns all positions.
func (c *Client) PositionRisk(ctx context.Context, symbol string) ([]PositionRisk, error) {
	var out []PositionRisk
	if err := c.do(ctx, OpPositionRisk, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeLeverage sets the initial leverage for a symbol, 1 to 125.
func (c *Client) ChangeLeverage(ctx context.Context, symbol string, leverage int) (*LeverageChange, error) {
	q := core.NewParams().Set("symbol", symbol).SetInt("leverage", int64(leverage))
	var out LeverageChange
	if err := c.do(ctx, OpChangeLeverage, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeMarginType switches a symbol between "ISOLATED" and "CROSSED"
// margin.
func (c *Client) ChangeMarginType(ctx context.Context, symbol, marginType string) error {
	q := core.NewParams().Set("symbol", symbol).Set("marginType", marginType)
	return c.do(ctx, OpChangeMarginType, q, nil)
}

// PositionMarginParams configures an isolated-margin adjustment.
type PositionMarginParams struct {
	Symbol string
	// Amount is the margin to add or remove.
	Amount *apd.Decimal
	// Type is 1 to add margin, 2 to reduce it.
	Type int
	// PositionSide is "LONG" or "SHORT" in hedge mode, "BOTH" otherwise.
	// Empty omits the parameter.
	PositionSide string
}

func (p PositionMarginParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.Amount != nil {
		q.SetDecimal("amount", p.Amount)
	}
	q.SetInt("type", int64(p.Type))
	if p.PositionSide != "" {
		q.Set("positionSide", p.PositionSide)
	}
	return q
}

// ModifyPositionMargin adjusts isolated position margin.
func (c *Client) ModifyPositionMargin(ctx context.Context, params PositionMarginParams) (*PositionMarginChange, error) {
	var out PositionMarginChange
	if err := c.do(ctx, OpModifyPositionMargin, params.params(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarginHistoryParams configures a position margin history request.
type MarginHistoryParams struct {
	Symbol string
	// Type filters by adjustment direction: 1 add, 2 reduce. Zero
	// returns both.
	Type      int
	StartTime int64
	EndTime   int64
	Limit     int
}

func (p MarginHistoryParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.Type > 0 {
		q.SetInt("type", int64(p.Type))
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

// PositionMarginHistory returns past isolated-margin adjustments.
func (c *Client) PositionMarginHistory(ctx context.Context, params MarginHistoryParams) ([]PositionMarginRecord, error) {
	var out []PositionMarginRecord
	if err := c.do(ctx, OpPositionMarginHistory, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IncomeParams configures an income history request.
type IncomeParams struct {
	Symbol string
	// IncomeType filters by type, e.g. "REALIZED_PNL", "FUNDING_FEE",
	// "COMMISSION". Empty returns all types.
	IncomeType string
	StartTime  int64
	EndTime    int64
	// Limit caps the number of entries, max 1000.
	Limit int
}

func (p IncomeParams) params() *core.Params {
	q := core.NewParams()
	if p.Symbol != "" {
		q.Set("symbol", p.Symbol)
	}
	if p.IncomeType != "" {
		q.Set("incomeType", p.IncomeType)
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

// IncomeHistory returns the account income flow.
func (c *Client) IncomeHistory(ctx context.Context, params IncomeParams) ([]Income, error) {
	var out []Income
	if err := c.do(ctx, OpIncomeHistory, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LeverageBrackets returns the notional brackets, optionally for one
// symbol.
func (c *Client) LeverageBrackets(ctx context.Context, symbol string) ([]LeverageBracket, error) {
	var out []LeverageBracket
	if err := c.do(ctx, OpLeverageBracket, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ADLQuantile returns the position auto-deleverage quantile estimates.
func (c *Client) ADLQuantile(ctx context.Context, symbol string) ([]ADLQuantile, error) {
	var out []ADLQuantile
	if err := c.do(ctx, OpADLQuantile, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CommissionRate returns the account commission rates for a symbol.
func (c *Client) CommissionRate(ctx context.Context, symbol string) (*CommissionRate, error) {
	var out CommissionRate
	if err := c.do(ctx, OpCommissionRate, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePositionMode switches the account between hedge mode (true)
// and one-way mode (false).
func (c *Client) ChangePositionMode(ctx context.Context, dualSide bool) error {
	q := core.NewParams().SetBool("dualSidePosition", dualSide)
	return c.do(ctx, OpChangePositionMode, q, nil)
}

// PositionMode reports whether the account is in hedge mode.
func (c *Client) PositionMode(ctx context.Context) (*PositionMode, error) {
	var out PositionMode
	if err := c.do(ctx, OpGetPositionMode, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeMultiAssetsMode switches the account between multi-assets mode
// (true) and single-asset mode (false).
func (c *Client) ChangeMultiAssetsMode(ctx context.Context, multiAssets bool) error {
	q := core.NewParams().SetBool("multiAssetsMargin", multiAssets)
	return c.do(ctx, OpChangeMultiAssetsMode, q, nil)
}

// MultiAssetsMode reports whether the account is in multi-assets mode.
func (c *Client) MultiAssetsMode(ctx context.Context) (*MultiAssetsMode, error) {
	var out MultiAssetsMode
	if err := c.do(ctx, OpGetMultiAssetsMode, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserTradesParams configures an account trade list request.
type UserTradesParams struct {
	Symbol    string
	StartTime int64
	EndTime   int64
	// FromID returns trades from this trade ID onwards.
	FromID int64
	// Limit caps the number of trades, max 1000.
	Limit int
}

func (p UserTradesParams) params() *core.Params {
	q := core.NewParams().Set("symbol", p.Symbol)
	if p.StartTime > 0 {
		q.SetInt("startTime", p.StartTime)
	}
	if p.EndTime > 0 {
		q.SetInt("endTime", p.EndTime)
	}
	if p.FromID > 0 {
		q.SetInt("fromId", p.FromID)
	}
	if p.Limit > 0 {
		q.SetInt("limit", int64(p.Limit))
	}
	return q
}

// UserTrades returns the account's trades for a symbol.
func (c *Client) UserTrades(ctx context.Context, params UserTradesParams) ([]UserTrade, error) {
	var out []UserTrade
	if err := c.do(ctx, OpUserTrades, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// APITradingStatus returns the futures API trading quantitative rules
// indicators.
func (c *Client) APITradingStatus(ctx context.Context, symbol string) (*TradingStatus, error) {
	var out TradingStatus
	if err := c.do(ctx, OpAPITradingStatus, symbolParams(symbol), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForceOrdersParams configures a liquidation order history request.
type ForceOrdersParams struct {
	Symbol string
	// AutoCloseType is "LIQUIDATION" or "ADL". Empty returns both.
	AutoCloseType string
	StartTime     int64
	EndTime       int64
	Limit         int
}

func (p ForceOrdersParams) params() *core.Params {
	q := core.NewParams()
	if p.Symbol != "" {
		q.Set("symbol", p.Symbol)
	}
	if p.AutoCloseType != "" {
		q.Set("autoCloseType", p.AutoCloseType)
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

// ForceOrders returns the account's liquidation and ADL orders.
func (c *Client) ForceOrders(ctx context.Context, params ForceOrdersParams) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, OpForceOrders, params.params(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
