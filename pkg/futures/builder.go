package futures

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// OrderBuilder provides a fluent interface for constructing order
// parameters. It accumulates parse errors and reports them on Build.
//
// Example:
//
//	params, err := futures.NewOrderBuilder("BTCUSDT").
//	    Buy().
//	    Limit().
//	    Price("50000").
//	    Quantity("0.001").
//	    GTC().
//	    Build()
type OrderBuilder struct {
	params NewOrderParams
	err    error
}

// NewOrderBuilder creates a new order builder for the given symbol.
func NewOrderBuilder(symbol string) *OrderBuilder {
	return &OrderBuilder{params: NewOrderParams{Symbol: symbol}}
}

// Side sets the order side, "BUY" or "SELL".
func (b *OrderBuilder) Side(side string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.Side = side
	return b
}

// Buy sets the order side to buy.
func (b *OrderBuilder) Buy() *OrderBuilder {
	return b.Side(SideBuy)
}

// Sell sets the order side to sell.
func (b *OrderBuilder) Sell() *OrderBuilder {
	return b.Side(SideSell)
}

// Type sets the order type.
func (b *OrderBuilder) Type(orderType string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.Type = orderType
	return b
}

// Market sets the order type to market.
func (b *OrderBuilder) Market() *OrderBuilder {
	return b.Type(OrderTypeMarket)
}

// Limit sets the order type to limit.
func (b *OrderBuilder) Limit() *OrderBuilder {
	return b.Type(OrderTypeLimit)
}

// StopMarket sets the order type to stop-market with the given trigger
// price.
func (b *OrderBuilder) StopMarket(stopPrice string) *OrderBuilder {
	return b.Type(OrderTypeStopMarket).StopPrice(stopPrice)
}

func (b *OrderBuilder) decimal(field, value string) *apd.Decimal {
	if b.err != nil {
		return nil
	}
	d, _, err := new(apd.Decimal).SetString(value)
	if err != nil {
		b.err = fmt.Errorf("parse %s: %w", field, err)
		return nil
	}
	return d
}

// Price sets the limit price from a string representation.
func (b *OrderBuilder) Price(price string) *OrderBuilder {
	if d := b.decimal("price", price); d != nil {
		b.params.Price = d
	}
	return b
}

// PriceDecimal sets the limit price from an apd.Decimal value.
func (b *OrderBuilder) PriceDecimal(price *apd.Decimal) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.Price = price
	return b
}

// Quantity sets the order quantity from a string representation.
func (b *OrderBuilder) Quantity(qty string) *OrderBuilder {
	if d := b.decimal("quantity", qty); d != nil {
		b.params.Quantity = d
	}
	return b
}

// QuantityDecimal sets the order quantity from an apd.Decimal value.
func (b *OrderBuilder) QuantityDecimal(qty *apd.Decimal) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.Quantity = qty
	return b
}

// StopPrice sets the trigger price from a string representation.
func (b *OrderBuilder) StopPrice(price string) *OrderBuilder {
	if d := b.decimal("stopPrice", price); d != nil {
		b.params.StopPrice = d
	}
	return b
}

// TimeInForce sets the time-in-force policy for the order.
func (b *OrderBuilder) TimeInForce(tif string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.TimeInForce = tif
	return b
}

// GTC sets the time-in-force to Good-Till-Cancelled.
func (b *OrderBuilder) GTC() *OrderBuilder {
	return b.TimeInForce(TimeInForceGTC)
}

// IOC sets the time-in-force to Immediate-Or-Cancel.
func (b *OrderBuilder) IOC() *OrderBuilder {
	return b.TimeInForce(TimeInForceIOC)
}

// FOK sets the time-in-force to Fill-Or-Kill.
func (b *OrderBuilder) FOK() *OrderBuilder {
	return b.TimeInForce(TimeInForceFOK)
}

// PositionSide sets the position side for hedge-mode accounts.
func (b *OrderBuilder) PositionSide(side string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.PositionSide = side
	return b
}

// ReduceOnly limits the order to reducing the position.
func (b *OrderBuilder) ReduceOnly() *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.ReduceOnly = true
	return b
}

// ClientOrderID sets a caller-chosen identifier for order tracking.
func (b *OrderBuilder) ClientOrderID(id string) *OrderBuilder {
	if b.err != nil {
		return b
	}
	b.params.ClientOrderID = id
	return b
}

// Build validates and returns the accumulated order parameters.
func (b *OrderBuilder) Build() (NewOrderParams, error) {
	if b.err != nil {
		return NewOrderParams{}, b.err
	}
	if b.params.Type == OrderTypeLimit {
		if b.params.Price == nil {
			return NewOrderParams{}, fmt.Errorf("limit order requires a price")
		}
		if b.params.TimeInForce == "" {
			b.params.TimeInForce = TimeInForceGTC
		}
	}
	return b.params, nil
}
