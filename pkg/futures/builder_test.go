package futures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBuilder_Limit(t *testing.T) {
	params, err := NewOrderBuilder("BTCUSDT").
		Buy().
		Limit().
		Price("50000").
		Quantity("0.001").
		GTC().
		Build()

	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", params.Symbol)
	assert.Equal(t, SideBuy, params.Side)
	assert.Equal(t, OrderTypeLimit, params.Type)
	assert.Equal(t, TimeInForceGTC, params.TimeInForce)
	assert.Equal(t, "50000", params.Price.String())
	assert.Equal(t, "0.001", params.Quantity.String())
}

func TestOrderBuilder_LimitDefaultsToGTC(t *testing.T) {
	params, err := NewOrderBuilder("BTCUSDT").
		Sell().
		Limit().
		Price("50000").
		Quantity("1").
		Build()

	require.NoError(t, err)
	assert.Equal(t, TimeInForceGTC, params.TimeInForce)
}

func TestOrderBuilder_Market(t *testing.T) {
	params, err := NewOrderBuilder("ETHUSDT").
		Sell().
		Market().
		Quantity("2.5").
		ReduceOnly().
		Build()

	require.NoError(t, err)
	assert.Equal(t, OrderTypeMarket, params.Type)
	assert.Nil(t, params.Price)
	assert.True(t, params.ReduceOnly)
}

func TestOrderBuilder_StopMarket(t *testing.T) {
	params, err := NewOrderBuilder("BTCUSDT").
		Sell().
		StopMarket("41000").
		Quantity("0.01").
		PositionSide(PositionSideLong).
		Build()

	require.NoError(t, err)
	assert.Equal(t, OrderTypeStopMarket, params.Type)
	assert.Equal(t, "41000", params.StopPrice.String())
	assert.Equal(t, PositionSideLong, params.PositionSide)
}

func TestOrderBuilder_BadPrice(t *testing.T) {
	_, err := NewOrderBuilder("BTCUSDT").
		Buy().
		Limit().
		Price("not-a-number").
		Quantity("1").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse price")
}

func TestOrderBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewOrderBuilder("BTCUSDT").
		Buy().
		Limit().
		Price("bad-price").
		Quantity("also-bad").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse price")
}

func TestOrderBuilder_LimitRequiresPrice(t *testing.T) {
	_, err := NewOrderBuilder("BTCUSDT").
		Buy().
		Limit().
		Quantity("1").
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a price")
}

func TestOrderBuilder_FeedsNewOrder(t *testing.T) {
	ss := newSignedServer(t, map[string]string{"/fapi/v1/order": orderFixture})

	params, err := NewOrderBuilder("btcusdt").
		Buy().
		Limit().
		Price("43000.50").
		Quantity("0.010").
		ClientOrderID("testOrder").
		Build()
	require.NoError(t, err)

	_, err = ss.client.NewOrder(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", ss.params.Get("symbol"))
	assert.Equal(t, "43000.50", ss.params.Get("price"))
	assert.Equal(t, "GTC", ss.params.Get("timeInForce"))
}
