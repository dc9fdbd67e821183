package futures

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// ServerTime is the exchange server clock reading.
type ServerTime struct {
	ServerTime int64 `json:"serverTime"`
}

// RateLimit describes one of the exchange's declared limits.
type RateLimit struct {
	RateLimitType string `json:"rateLimitType"`
	Interval      string `json:"interval"`
	IntervalNum   int    `json:"intervalNum"`
	Limit         int    `json:"limit"`
}

// SymbolFilter is one trading rule attached to a symbol. Only the
// fields relevant to the filter's type are populated.
type SymbolFilter struct {
	FilterType        string      `json:"filterType"`
	MinPrice          apd.Decimal `json:"minPrice"`
	MaxPrice          apd.Decimal `json:"maxPrice"`
	TickSize          apd.Decimal `json:"tickSize"`
	MinQty            apd.Decimal `json:"minQty"`
	MaxQty            apd.Decimal `json:"maxQty"`
	StepSize          apd.Decimal `json:"stepSize"`
	Notional          apd.Decimal `json:"notional"`
	MultiplierUp      apd.Decimal `json:"multiplierUp"`
	MultiplierDown    apd.Decimal `json:"multiplierDown"`
	MultiplierDecimal apd.Decimal `json:"multiplierDecimal"`
	Limit             int         `json:"limit"`
}

// SymbolInfo is the exchange metadata for one trading symbol.
type SymbolInfo struct {
	Symbol                string         `json:"symbol"`
	Pair                  string         `json:"pair"`
	ContractType          string         `json:"contractType"`
	DeliveryDate          int64          `json:"deliveryDate"`
	OnboardDate           int64          `json:"onboardDate"`
	Status                string         `json:"status"`
	BaseAsset             string         `json:"baseAsset"`
	QuoteAsset            string         `json:"quoteAsset"`
	MarginAsset           string         `json:"marginAsset"`
	PricePrecision        int            `json:"pricePrecision"`
	QuantityPrecision     int            `json:"quantityPrecision"`
	BaseAssetPrecision    int            `json:"baseAssetPrecision"`
	QuotePrecision        int            `json:"quotePrecision"`
	UnderlyingType        string         `json:"underlyingType"`
	TriggerProtect        apd.Decimal    `json:"triggerProtect"`
	LiquidationFee        apd.Decimal    `json:"liquidationFee"`
	MarketTakeBound       apd.Decimal    `json:"marketTakeBound"`
	Filters               []SymbolFilter `json:"filters"`
	OrderTypes            []string       `json:"orderTypes"`
	TimeInForce           []string       `json:"timeInForce"`
}

// ExchangeInfo is the exchange-wide trading rule set.
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	RateLimits []RateLimit  `json:"rateLimits"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// PriceLevel is one order book level.
type PriceLevel struct {
	Price    apd.Decimal
	Quantity apd.Decimal
}

// UnmarshalJSON decodes the ["price","qty"] pair form.
func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw [2]string
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal price level: %w", err)
	}
	if _, _, err := l.Price.SetString(raw[0]); err != nil {
		return fmt.Errorf("parse price %q: %w", raw[0], err)
	}
	if _, _, err := l.Quantity.SetString(raw[1]); err != nil {
		return fmt.Errorf("parse quantity %q: %w", raw[1], err)
	}
	return nil
}

// Depth is an order book snapshot.
type Depth struct {
	LastUpdateID int64        `json:"lastUpdateId"`
	EventTime    int64        `json:"E"`
	TransactTime int64        `json:"T"`
	Bids         []PriceLevel `json:"bids"`
	Asks         []PriceLevel `json:"asks"`
}

// Trade is a single public trade.
type Trade struct {
	ID           int64       `json:"id"`
	Price        apd.Decimal `json:"price"`
	Qty          apd.Decimal `json:"qty"`
	QuoteQty     apd.Decimal `json:"quoteQty"`
	Time         int64       `json:"time"`
	IsBuyerMaker bool        `json:"isBuyerMaker"`
}

// AggTrade is a compressed trade: fills of the same taker order at the
// same price are aggregated.
type AggTrade struct {
	ID           int64       `json:"a"`
	Price        apd.Decimal `json:"p"`
	Qty          apd.Decimal `json:"q"`
	FirstTradeID int64       `json:"f"`
	LastTradeID  int64       `json:"l"`
	Time         int64       `json:"T"`
	IsBuyerMaker bool        `json:"m"`
}

// Kline is one candlestick.
type Kline struct {
	OpenTime         int64
	Open             apd.Decimal
	High             apd.Decimal
	Low              apd.Decimal
	Close            apd.Decimal
	Volume           apd.Decimal
	CloseTime        int64
	QuoteVolume      apd.Decimal
	Trades           int64
	TakerBuyVolume   apd.Decimal
	TakerBuyQuoteVol apd.Decimal
}

// UnmarshalJSON decodes the positional array form the exchange uses
// for candlesticks.
func (k *Kline) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal kline: %w", err)
	}
	if len(raw) < 11 {
		return fmt.Errorf("kline has %d fields, want at least 11", len(raw))
	}

	var err error
	if k.OpenTime, err = klineInt(raw[0]); err != nil {
		return err
	}
	decimals := []struct {
		dst *apd.Decimal
		idx int
	}{
		{&k.Open, 1}, {&k.High, 2}, {&k.Low, 3}, {&k.Close, 4},
		{&k.Volume, 5}, {&k.QuoteVolume, 7},
		{&k.TakerBuyVolume, 9}, {&k.TakerBuyQuoteVol, 10},
	}
	for _, d := range decimals {
		if err := klineDecimal(raw[d.idx], d.dst); err != nil {
			return err
		}
	}
	if k.CloseTime, err = klineInt(raw[6]); err != nil {
		return err
	}
	if k.Trades, err = klineInt(raw[8]); err != nil {
		return err
	}
	return nil
}

func klineInt(v any) (int64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("kline field %v is not a number", v)
	}
	return int64(f), nil
}

func klineDecimal(v any, dst *apd.Decimal) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("kline field %v is not a string", v)
	}
	if _, _, err := dst.SetString(s); err != nil {
		return fmt.Errorf("parse kline decimal %q: %w", s, err)
	}
	return nil
}

// MarkPrice is the mark price and funding state for a symbol.
type MarkPrice struct {
	Symbol          string      `json:"symbol"`
	MarkPrice       apd.Decimal `json:"markPrice"`
	IndexPrice      apd.Decimal `json:"indexPrice"`
	EstSettlePrice  apd.Decimal `json:"estimatedSettlePrice"`
	LastFundingRate apd.Decimal `json:"lastFundingRate"`
	InterestRate    apd.Decimal `json:"interestRate"`
	NextFundingTime int64       `json:"nextFundingTime"`
	Time            int64       `json:"time"`
}

// FundingRate is one historical funding settlement.
type FundingRate struct {
	Symbol      string      `json:"symbol"`
	FundingRate apd.Decimal `json:"fundingRate"`
	FundingTime int64       `json:"fundingTime"`
	MarkPrice   apd.Decimal `json:"markPrice"`
}

// Ticker24h is the 24-hour rolling window statistics for a symbol.
type Ticker24h struct {
	Symbol             string      `json:"symbol"`
	PriceChange        apd.Decimal `json:"priceChange"`
	PriceChangePercent apd.Decimal `json:"priceChangePercent"`
	WeightedAvgPrice   apd.Decimal `json:"weightedAvgPrice"`
	LastPrice          apd.Decimal `json:"lastPrice"`
	LastQty            apd.Decimal `json:"lastQty"`
	OpenPrice          apd.Decimal `json:"openPrice"`
	HighPrice          apd.Decimal `json:"highPrice"`
	LowPrice           apd.Decimal `json:"lowPrice"`
	Volume             apd.Decimal `json:"volume"`
	QuoteVolume        apd.Decimal `json:"quoteVolume"`
	OpenTime           int64       `json:"openTime"`
	CloseTime          int64       `json:"closeTime"`
	FirstTradeID       int64       `json:"firstId"`
	LastTradeID        int64       `json:"lastId"`
	TradeCount         int64       `json:"count"`
}

// PriceTicker is the latest price for a symbol.
type PriceTicker struct {
	Symbol string      `json:"symbol"`
	Price  apd.Decimal `json:"price"`
	Time   int64       `json:"time"`
}

// BookTicker is the best bid/ask for a symbol.
type BookTicker struct {
	Symbol   string      `json:"symbol"`
	BidPrice apd.Decimal `json:"bidPrice"`
	BidQty   apd.Decimal `json:"bidQty"`
	AskPrice apd.Decimal `json:"askPrice"`
	AskQty   apd.Decimal `json:"askQty"`
	Time     int64       `json:"time"`
}

// OpenInterest is the open interest of a symbol.
type OpenInterest struct {
	Symbol       string      `json:"symbol"`
	OpenInterest apd.Decimal `json:"openInterest"`
	Time         int64       `json:"time"`
}

// Balance is a single-asset futures balance.
type Balance struct {
	AccountAlias       string      `json:"accountAlias"`
	Asset              string      `json:"asset"`
	Balance            apd.Decimal `json:"balance"`
	CrossWalletBalance apd.Decimal `json:"crossWalletBalance"`
	CrossUnPnl         apd.Decimal `json:"crossUnPnl"`
	AvailableBalance   apd.Decimal `json:"availableBalance"`
	MaxWithdrawAmount  apd.Decimal `json:"maxWithdrawAmount"`
	MarginAvailable    bool        `json:"marginAvailable"`
	UpdateTime         int64       `json:"updateTime"`
}

// AccountAsset is one asset's margin state inside the account.
type AccountAsset struct {
	Asset                  string      `json:"asset"`
	WalletBalance          apd.Decimal `json:"walletBalance"`
	UnrealizedProfit       apd.Decimal `json:"unrealizedProfit"`
	MarginBalance          apd.Decimal `json:"marginBalance"`
	MaintMargin            apd.Decimal `json:"maintMargin"`
	InitialMargin          apd.Decimal `json:"initialMargin"`
	PositionInitialMargin  apd.Decimal `json:"positionInitialMargin"`
	OpenOrderInitialMargin apd.Decimal `json:"openOrderInitialMargin"`
	CrossWalletBalance     apd.Decimal `json:"crossWalletBalance"`
	CrossUnPnl             apd.Decimal `json:"crossUnPnl"`
	AvailableBalance       apd.Decimal `json:"availableBalance"`
	MaxWithdrawAmount      apd.Decimal `json:"maxWithdrawAmount"`
	MarginAvailable        bool        `json:"marginAvailable"`
	UpdateTime             int64       `json:"updateTime"`
}

// AccountPosition is one position inside the account snapshot.
type AccountPosition struct {
	Symbol                 string      `json:"symbol"`
	InitialMargin          apd.Decimal `json:"initialMargin"`
	MaintMargin            apd.Decimal `json:"maintMargin"`
	UnrealizedProfit       apd.Decimal `json:"unrealizedProfit"`
	PositionInitialMargin  apd.Decimal `json:"positionInitialMargin"`
	OpenOrderInitialMargin apd.Decimal `json:"openOrderInitialMargin"`
	Leverage               apd.Decimal `json:"leverage"`
	Isolated               bool        `json:"isolated"`
	EntryPrice             apd.Decimal `json:"entryPrice"`
	MaxNotional            apd.Decimal `json:"maxNotional"`
	PositionSide           string      `json:"positionSide"`
	PositionAmt            apd.Decimal `json:"positionAmt"`
	UpdateTime             int64       `json:"updateTime"`
}

// Account is the full account snapshot.
type Account struct {
	FeeTier                     int               `json:"feeTier"`
	CanTrade                    bool              `json:"canTrade"`
	CanDeposit                  bool              `json:"canDeposit"`
	CanWithdraw                 bool              `json:"canWithdraw"`
	MultiAssetsMargin           bool              `json:"multiAssetsMargin"`
	TotalInitialMargin          apd.Decimal       `json:"totalInitialMargin"`
	TotalMaintMargin            apd.Decimal       `json:"totalMaintMargin"`
	TotalWalletBalance          apd.Decimal       `json:"totalWalletBalance"`
	TotalUnrealizedProfit       apd.Decimal       `json:"totalUnrealizedProfit"`
	TotalMarginBalance          apd.Decimal       `json:"totalMarginBalance"`
	TotalPositionInitialMargin  apd.Decimal       `json:"totalPositionInitialMargin"`
	TotalOpenOrderInitialMargin apd.Decimal       `json:"totalOpenOrderInitialMargin"`
	TotalCrossWalletBalance     apd.Decimal       `json:"totalCrossWalletBalance"`
	TotalCrossUnPnl             apd.Decimal       `json:"totalCrossUnPnl"`
	AvailableBalance            apd.Decimal       `json:"availableBalance"`
	MaxWithdrawAmount           apd.Decimal       `json:"maxWithdrawAmount"`
	Assets                      []AccountAsset    `json:"assets"`
	Positions                   []AccountPosition `json:"positions"`
	UpdateTime                  int64             `json:"updateTime"`
}

// PositionRisk is the risk state of one position.
type PositionRisk struct {
	Symbol           string      `json:"symbol"`
	PositionAmt      apd.Decimal `json:"positionAmt"`
	EntryPrice       apd.Decimal `json:"entryPrice"`
	MarkPrice        apd.Decimal `json:"markPrice"`
	UnRealizedProfit apd.Decimal `json:"unRealizedProfit"`
	LiquidationPrice apd.Decimal `json:"liquidationPrice"`
	Leverage         apd.Decimal `json:"leverage"`
	MaxNotionalValue apd.Decimal `json:"maxNotionalValue"`
	MarginType       string      `json:"marginType"`
	IsolatedMargin   apd.Decimal `json:"isolatedMargin"`
	IsAutoAddMargin  bool        `json:"isAutoAddMargin,string"`
	PositionSide     string      `json:"positionSide"`
	Notional         apd.Decimal `json:"notional"`
	UpdateTime       int64       `json:"updateTime"`
}

// LeverageChange confirms a leverage adjustment.
type LeverageChange struct {
	Symbol           string      `json:"symbol"`
	Leverage         int         `json:"leverage"`
	MaxNotionalValue apd.Decimal `json:"maxNotionalValue"`
}

// PositionMarginChange confirms an isolated-margin adjustment. Amount
// is the one decimal the exchange sends as a bare number rather than a
// string.
type PositionMarginChange struct {
	Amount float64 `json:"amount"`
	Code   int     `json:"code"`
	Msg    string  `json:"msg"`
	Type   int     `json:"type"`
}

// PositionMarginRecord is one historical margin adjustment.
type PositionMarginRecord struct {
	Symbol       string      `json:"symbol"`
	Amount       apd.Decimal `json:"amount"`
	Asset        string      `json:"asset"`
	Time         int64       `json:"time"`
	Type         int         `json:"type"`
	PositionSide string      `json:"positionSide"`
}

// Income is one account income entry.
type Income struct {
	Symbol     string      `json:"symbol"`
	IncomeType string      `json:"incomeType"`
	Income     apd.Decimal `json:"income"`
	Asset      string      `json:"asset"`
	Info       string      `json:"info"`
	Time       int64       `json:"time"`
	TranID     int64       `json:"tranId"`
	TradeID    string      `json:"tradeId"`
}

// Bracket is one notional bracket step.
type Bracket struct {
	Bracket          int         `json:"bracket"`
	InitialLeverage  int         `json:"initialLeverage"`
	NotionalCap      int64       `json:"notionalCap"`
	NotionalFloor    int64       `json:"notionalFloor"`
	MaintMarginRatio apd.Decimal `json:"maintMarginRatio"`
	Cum              apd.Decimal `json:"cum"`
}

// LeverageBracket is the bracket ladder for one symbol.
type LeverageBracket struct {
	Symbol   string    `json:"symbol"`
	Brackets []Bracket `json:"brackets"`
}

// ADLQuantile is the auto-deleverage quantile estimate for one symbol.
type ADLQuantile struct {
	Symbol      string `json:"symbol"`
	ADLQuantile struct {
		Long  int `json:"LONG"`
		Short int `json:"SHORT"`
		Hedge int `json:"HEDGE"`
		Both  int `json:"BOTH"`
	} `json:"adlQuantile"`
}

// CommissionRate is the account's commission rates for a symbol.
type CommissionRate struct {
	Symbol              string      `json:"symbol"`
	MakerCommissionRate apd.Decimal `json:"makerCommissionRate"`
	TakerCommissionRate apd.Decimal `json:"takerCommissionRate"`
}

// PositionMode reports the account position mode.
type PositionMode struct {
	DualSidePosition bool `json:"dualSidePosition"`
}

// MultiAssetsMode reports the account margin asset mode.
type MultiAssetsMode struct {
	MultiAssetsMargin bool `json:"multiAssetsMargin"`
}

// UserTrade is one of the account's own executions.
type UserTrade struct {
	Symbol          string      `json:"symbol"`
	ID              int64       `json:"id"`
	OrderID         int64       `json:"orderId"`
	Side            string      `json:"side"`
	Price           apd.Decimal `json:"price"`
	Qty             apd.Decimal `json:"qty"`
	RealizedPnl     apd.Decimal `json:"realizedPnl"`
	QuoteQty        apd.Decimal `json:"quoteQty"`
	Commission      apd.Decimal `json:"commission"`
	CommissionAsset string      `json:"commissionAsset"`
	Time            int64       `json:"time"`
	PositionSide    string      `json:"positionSide"`
	Buyer           bool        `json:"buyer"`
	Maker           bool        `json:"maker"`
}

// Indicator is one quantitative-rules indicator reading.
type Indicator struct {
	IsLocked           bool        `json:"isLocked"`
	PlannedRecoverTime int64       `json:"plannedRecoverTime"`
	Indicator          string      `json:"indicator"`
	Value              apd.Decimal `json:"value"`
	TriggerValue       apd.Decimal `json:"triggerValue"`
}

// TradingStatus is the API trading quantitative rules state.
type TradingStatus struct {
	Indicators map[string][]Indicator `json:"indicators"`
	UpdateTime int64                  `json:"updateTime"`
}

// Order is the exchange's view of an order.
type Order struct {
	Symbol        string      `json:"symbol"`
	OrderID       int64       `json:"orderId"`
	ClientOrderID string      `json:"clientOrderId"`
	Status        string      `json:"status"`
	Price         apd.Decimal `json:"price"`
	AvgPrice      apd.Decimal `json:"avgPrice"`
	OrigQty       apd.Decimal `json:"origQty"`
	ExecutedQty   apd.Decimal `json:"executedQty"`
	CumQuote      apd.Decimal `json:"cumQuote"`
	TimeInForce   string      `json:"timeInForce"`
	Type          string      `json:"type"`
	OrigType      string      `json:"origType"`
	ReduceOnly    bool        `json:"reduceOnly"`
	ClosePosition bool        `json:"closePosition"`
	Side          string      `json:"side"`
	PositionSide  string      `json:"positionSide"`
	StopPrice     apd.Decimal `json:"stopPrice"`
	WorkingType   string      `json:"workingType"`
	PriceProtect  bool        `json:"priceProtect"`
	ActivatePrice apd.Decimal `json:"activatePrice"`
	PriceRate     apd.Decimal `json:"priceRate"`
	Time          int64       `json:"time"`
	UpdateTime    int64       `json:"updateTime"`
}

// CountdownCancel confirms a dead-man's-switch arm or disarm.
type CountdownCancel struct {
	Symbol        string `json:"symbol"`
	CountdownTime int64  `json:"countdownTime,string"`
}
