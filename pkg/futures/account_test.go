package futures

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nakula/pkg/core"
)

// signedServer serves canned fixtures for signed endpoints and records
// the decoded parameters of the last request, whether they arrived in
// the query string or the form body.
type signedServer struct {
	client *Client
	params url.Values
	path   string
	method string
}

func newSignedServer(t *testing.T, fixtures map[string]string) *signedServer {
	t.Helper()
	ss := &signedServer{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ss.path = r.URL.Path
		ss.method = r.Method
		if r.Method == http.MethodGet || r.Method == http.MethodDelete {
			ss.params, _ = url.ParseQuery(r.URL.RawQuery)
		} else {
			body, _ := io.ReadAll(r.Body)
			ss.params, _ = url.ParseQuery(string(body))
		}
		fixture, ok := fixtures[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":-1121,"msg":"Invalid symbol."}`))
			return
		}
		w.Write([]byte(fixture))
	}))
	t.Cleanup(server.Close)

	client, err := New(core.DefaultConfig().WithBaseURL(server.URL), WithCredentials(testCreds))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	ss.client = client
	return ss
}

func (s *signedServer) assertSigned(t *testing.T) {
	t.Helper()
	assert.NotEmpty(t, s.params.Get("timestamp"))
	assert.NotEmpty(t, s.params.Get("signature"))
}

func TestBalances(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v2/balance": `[
			{
				"accountAlias": "SgsR",
				"asset": "USDT",
				"balance": "122607.35137903",
				"crossWalletBalance": "23.72469206",
				"crossUnPnl": "0.00000000",
				"availableBalance": "23.72469206",
				"maxWithdrawAmount": "23.72469206",
				"marginAvailable": true,
				"updateTime": 1617939110373
			}
		]`,
	})

	balances, err := ss.client.Balances(context.Background())

	require.NoError(t, err)
	ss.assertSigned(t)
	require.Len(t, balances, 1)
	assert.Equal(t, "USDT", balances[0].Asset)
	assert.Equal(t, "122607.35137903", balances[0].Balance.String())
	assert.True(t, balances[0].MarginAvailable)
}

func TestAccount(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v2/account": `{
			"feeTier": 0,
			"canTrade": true,
			"canDeposit": true,
			"canWithdraw": true,
			"multiAssetsMargin": false,
			"totalInitialMargin": "0.00000000",
			"totalMaintMargin": "0.00000000",
			"totalWalletBalance": "23.72469206",
			"totalUnrealizedProfit": "0.00000000",
			"totalMarginBalance": "23.72469206",
			"availableBalance": "23.72469206",
			"maxWithdrawAmount": "23.72469206",
			"assets": [
				{
					"asset": "USDT",
					"walletBalance": "23.72469206",
					"unrealizedProfit": "0.00000000",
					"marginBalance": "23.72469206",
					"availableBalance": "23.72469206",
					"marginAvailable": true,
					"updateTime": 1625474304765
				}
			],
			"positions": [
				{
					"symbol": "BTCUSDT",
					"initialMargin": "0",
					"maintMargin": "0",
					"unrealizedProfit": "0.00000000",
					"leverage": "100",
					"isolated": true,
					"entryPrice": "0.00000",
					"maxNotional": "250000",
					"positionSide": "BOTH",
					"positionAmt": "0.000",
					"updateTime": 0
				}
			],
			"updateTime": 1625474304765
		}`,
	})

	account, err := ss.client.Account(context.Background())

	require.NoError(t, err)
	assert.True(t, account.CanTrade)
	assert.Equal(t, "23.72469206", account.TotalWalletBalance.String())
	require.Len(t, account.Assets, 1)
	require.Len(t, account.Positions, 1)
	assert.Equal(t, "100", account.Positions[0].Leverage.String())
	assert.True(t, account.Positions[0].Isolated)
}

func TestPositionRisk(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v2/positionRisk": `[
			{
				"symbol": "BTCUSDT",
				"positionAmt": "0.001",
				"entryPrice": "22185.2",
				"markPrice": "22933.50000000",
				"unRealizedProfit": "0.74830000",
				"liquidationPrice": "0",
				"leverage": "2",
				"maxNotionalValue": "300000000",
				"marginType": "cross",
				"isolatedMargin": "0.00000000",
				"isAutoAddMargin": "false",
				"positionSide": "BOTH",
				"notional": "22.93350000",
				"updateTime": 1655217461579
			}
		]`,
	})

	positions, err := ss.client.PositionRisk(context.Background(), "btcusdt")

	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", ss.params.Get("symbol"))
	require.Len(t, positions, 1)
	assert.Equal(t, "0.001", positions[0].PositionAmt.String())
	assert.Equal(t, "cross", positions[0].MarginType)
	assert.False(t, positions[0].IsAutoAddMargin)
}

func TestChangeLeverage(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/leverage": `{"leverage": 21, "maxNotionalValue": "1000000", "symbol": "BTCUSDT"}`,
	})

	change, err := ss.client.ChangeLeverage(context.Background(), "btcusdt", 21)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, ss.method)
	assert.Equal(t, "BTCUSDT", ss.params.Get("symbol"))
	assert.Equal(t, "21", ss.params.Get("leverage"))
	ss.assertSigned(t)
	assert.Equal(t, 21, change.Leverage)
	assert.Equal(t, "1000000", change.MaxNotionalValue.String())
}

func TestChangeMarginType(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/marginType": `{"code": 200, "msg": "success"}`,
	})

	err := ss.client.ChangeMarginType(context.Background(), "BTCUSDT", "isolated")

	require.NoError(t, err)
	assert.Equal(t, "ISOLATED", ss.params.Get("marginType"))
}

func TestModifyPositionMargin(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/positionMargin": `{"amount": 100.0, "code": 200, "msg": "Successfully modify position margin.", "type": 1}`,
	})

	amount := apd.New(100, 0)
	change, err := ss.client.ModifyPositionMargin(context.Background(), PositionMarginParams{
		Symbol:       "BTCUSDT",
		Amount:       amount,
		Type:         1,
		PositionSide: "long",
	})

	require.NoError(t, err)
	assert.Equal(t, "100", ss.params.Get("amount"))
	assert.Equal(t, "1", ss.params.Get("type"))
	assert.Equal(t, "LONG", ss.params.Get("positionSide"))
	assert.Equal(t, 200, change.Code)
	assert.Equal(t, 1, change.Type)
	assert.Equal(t, 100.0, change.Amount)
}

func TestPositionMarginHistory(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/positionMargin/history": `[
			{"symbol": "BTCUSDT", "amount": "23.36332311", "asset": "USDT", "time": 1578047897183, "type": 1, "positionSide": "BOTH"}
		]`,
	})

	records, err := ss.client.PositionMarginHistory(context.Background(), MarginHistoryParams{
		Symbol: "BTCUSDT",
		Type:   1,
		Limit:  10,
	})

	require.NoError(t, err)
	assert.Equal(t, "1", ss.params.Get("type"))
	assert.Equal(t, "10", ss.params.Get("limit"))
	require.Len(t, records, 1)
	assert.Equal(t, "23.36332311", records[0].Amount.String())
}

func TestIncomeHistory(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/income": `[
			{
				"symbol": "BTCUSDT",
				"incomeType": "COMMISSION",
				"income": "-0.01000000",
				"asset": "USDT",
				"info": "COMMISSION",
				"time": 1570636800000,
				"tranId": 9689322392,
				"tradeId": "2059192"
			}
		]`,
	})

	income, err := ss.client.IncomeHistory(context.Background(), IncomeParams{
		Symbol:     "btcusdt",
		IncomeType: "commission",
	})

	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", ss.params.Get("symbol"))
	assert.Equal(t, "COMMISSION", ss.params.Get("incomeType"))
	require.Len(t, income, 1)
	assert.Equal(t, "-0.01000000", income[0].Income.String())
	assert.Equal(t, int64(9689322392), income[0].TranID)
}

func TestLeverageBrackets(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/leverageBracket": `[
			{
				"symbol": "ETHUSDT",
				"brackets": [
					{"bracket": 1, "initialLeverage": 75, "notionalCap": 10000, "notionalFloor": 0, "maintMarginRatio": "0.0065", "cum": "0"}
				]
			}
		]`,
	})

	brackets, err := ss.client.LeverageBrackets(context.Background(), "ETHUSDT")

	require.NoError(t, err)
	require.Len(t, brackets, 1)
	require.Len(t, brackets[0].Brackets, 1)
	assert.Equal(t, 75, brackets[0].Brackets[0].InitialLeverage)
	assert.Equal(t, "0.0065", brackets[0].Brackets[0].MaintMarginRatio.String())
}

func TestADLQuantile(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/adlQuantile": `[
			{"symbol": "BTCUSDT", "adlQuantile": {"LONG": 1, "SHORT": 2, "BOTH": 0}}
		]`,
	})

	quantiles, err := ss.client.ADLQuantile(context.Background(), "BTCUSDT")

	require.NoError(t, err)
	require.Len(t, quantiles, 1)
	assert.Equal(t, 1, quantiles[0].ADLQuantile.Long)
	assert.Equal(t, 2, quantiles[0].ADLQuantile.Short)
}

func TestCommissionRate(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/commissionRate": `{
			"symbol": "BTCUSDT",
			"makerCommissionRate": "0.0002",
			"takerCommissionRate": "0.0004"
		}`,
	})

	rate, err := ss.client.CommissionRate(context.Background(), "BTCUSDT")

	require.NoError(t, err)
	assert.Equal(t, "0.0002", rate.MakerCommissionRate.String())
	assert.Equal(t, "0.0004", rate.TakerCommissionRate.String())
}

func TestPositionModeRoundTrip(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/positionSide/dual": `{"dualSidePosition": true}`,
	})

	require.NoError(t, ss.client.ChangePositionMode(context.Background(), true))
	assert.Equal(t, http.MethodPost, ss.method)
	assert.Equal(t, "true", ss.params.Get("dualSidePosition"))

	mode, err := ss.client.PositionMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, ss.method)
	assert.True(t, mode.DualSidePosition)
}

func TestMultiAssetsModeRoundTrip(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/multiAssetsMargin": `{"multiAssetsMargin": false}`,
	})

	require.NoError(t, ss.client.ChangeMultiAssetsMode(context.Background(), false))
	assert.Equal(t, "false", ss.params.Get("multiAssetsMargin"))

	mode, err := ss.client.MultiAssetsMode(context.Background())
	require.NoError(t, err)
	assert.False(t, mode.MultiAssetsMargin)
}

func TestUserTrades(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/userTrades": `[
			{
				"symbol": "BTCUSDT",
				"id": 67880589,
				"orderId": 2722627247,
				"side": "SELL",
				"price": "8668.3",
				"qty": "0.001",
				"realizedPnl": "-0.07862500",
				"quoteQty": "8.6683",
				"commission": "-0.00346788",
				"commissionAsset": "USDT",
				"time": 1569514978020,
				"positionSide": "BOTH",
				"buyer": false,
				"maker": false
			}
		]`,
	})

	trades, err := ss.client.UserTrades(context.Background(), UserTradesParams{
		Symbol: "BTCUSDT",
		FromID: 67880588,
		Limit:  100,
	})

	require.NoError(t, err)
	assert.Equal(t, "67880588", ss.params.Get("fromId"))
	require.Len(t, trades, 1)
	assert.Equal(t, "SELL", trades[0].Side)
	assert.Equal(t, "-0.07862500", trades[0].RealizedPnl.String())
	assert.False(t, trades[0].Maker)
}

func TestAPITradingStatus(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/apiTradingStatus": `{
			"indicators": {
				"BTCUSDT": [
					{"isLocked": true, "plannedRecoverTime": 1545741270000, "indicator": "UFR", "value": "0.05", "triggerValue": "0.995"}
				]
			},
			"updateTime": 1545741270000
		}`,
	})

	status, err := ss.client.APITradingStatus(context.Background(), "BTCUSDT")

	require.NoError(t, err)
	require.Contains(t, status.Indicators, "BTCUSDT")
	ind := status.Indicators["BTCUSDT"][0]
	assert.True(t, ind.IsLocked)
	assert.Equal(t, "UFR", ind.Indicator)
	assert.Equal(t, "0.995", ind.TriggerValue.String())
}

func TestForceOrders(t *testing.T) {
	ss := newSignedServer(t, map[string]string{
		"/fapi/v1/forceOrders": `[
			{
				"orderId": 6071832819,
				"symbol": "BTCUSDT",
				"status": "FILLED",
				"clientOrderId": "autoclose-1596107620040000020",
				"price": "10871.09",
				"avgPrice": "10913.21000",
				"origQty": "0.001",
				"executedQty": "0.001",
				"cumQuote": "10.91321",
				"timeInForce": "IOC",
				"type": "LIMIT",
				"side": "SELL",
				"time": 1596107620044
			}
		]`,
	})

	orders, err := ss.client.ForceOrders(context.Background(), ForceOrdersParams{
		Symbol:        "BTCUSDT",
		AutoCloseType: "liquidation",
	})

	require.NoError(t, err)
	assert.Equal(t, "LIQUIDATION", ss.params.Get("autoCloseType"))
	require.Len(t, orders, 1)
	assert.Equal(t, "FILLED", orders[0].Status)
	assert.Equal(t, "10913.21000", orders[0].AvgPrice.String())
}
