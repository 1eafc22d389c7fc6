package ledger

import (
	"testing"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestExecuteTrade_BuySuccess(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")

	updated, err := ExecuteTrade(p, "RELIANCE", dec(100), 50, models.TradeBuy)
	require.NoError(t, err)

	assert.True(t, updated.Balance.Equal(dec(95000)), "balance = %s", updated.Balance)
	require.Len(t, updated.Portfolio, 1)
	assert.Equal(t, "RELIANCE", updated.Portfolio[0].Symbol)
	assert.Equal(t, 50, updated.Portfolio[0].Quantity)
	assert.True(t, updated.Portfolio[0].AveragePrice.Equal(dec(100)))

	require.Len(t, updated.Transactions, 1)
	txn := updated.Transactions[0]
	assert.Equal(t, models.TradeBuy, txn.Type)
	assert.Equal(t, models.StatusSuccess, txn.Status)
	assert.True(t, txn.Total.Equal(dec(5000)))
	assert.NotEmpty(t, txn.ID)
}

func TestExecuteTrade_AverageCost(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")

	p, err := ExecuteTrade(p, "TCS", dec(100), 10, models.TradeBuy)
	require.NoError(t, err)
	p, err = ExecuteTrade(p, "TCS", dec(200), 10, models.TradeBuy)
	require.NoError(t, err)

	require.Len(t, p.Portfolio, 1)
	assert.Equal(t, 20, p.Portfolio[0].Quantity)
	assert.True(t, p.Portfolio[0].AveragePrice.Equal(dec(150)),
		"average price = %s", p.Portfolio[0].AveragePrice)
}

func TestExecuteTrade_InsufficientFunds(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")
	before := p.Clone()

	_, err := ExecuteTrade(p, "MSFT", dec(50000), 3, models.TradeBuy)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Rejection must not touch the caller's profile.
	assert.True(t, p.Balance.Equal(before.Balance))
	assert.Len(t, p.Portfolio, 0)
	assert.Len(t, p.Transactions, 0)
}

func TestExecuteTrade_SellRejections(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")

	_, err := ExecuteTrade(p, "INFY", dec(100), 5, models.TradeSell)
	assert.ErrorIs(t, err, ErrInsufficientHoldings, "selling a symbol never held")

	p, err = ExecuteTrade(p, "INFY", dec(100), 5, models.TradeBuy)
	require.NoError(t, err)
	balanceBefore := p.Balance
	txnsBefore := len(p.Transactions)

	_, err = ExecuteTrade(p, "INFY", dec(100), 6, models.TradeSell)
	assert.ErrorIs(t, err, ErrInsufficientHoldings, "selling more than held")
	assert.True(t, p.Balance.Equal(balanceBefore))
	assert.Equal(t, 5, p.Portfolio[0].Quantity)
	assert.Len(t, p.Transactions, txnsBefore)
}

func TestExecuteTrade_SellExhaustsHolding(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")

	p, err := ExecuteTrade(p, "ITC", dec(400), 10, models.TradeBuy)
	require.NoError(t, err)
	p, err = ExecuteTrade(p, "ITC", dec(450), 10, models.TradeSell)
	require.NoError(t, err)

	assert.Len(t, p.Portfolio, 0, "zero-quantity holdings must not persist")
	assert.True(t, p.Balance.Equal(dec(100500)), "balance = %s", p.Balance)
}

func TestExecuteTrade_SellKeepsAveragePrice(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")

	p, err := ExecuteTrade(p, "X", dec(100), 50, models.TradeBuy)
	require.NoError(t, err)
	assert.True(t, p.Balance.Equal(dec(95000)))

	p, err = ExecuteTrade(p, "X", dec(120), 20, models.TradeSell)
	require.NoError(t, err)

	assert.True(t, p.Balance.Equal(dec(97400)), "balance = %s", p.Balance)
	require.Len(t, p.Portfolio, 1)
	assert.Equal(t, 30, p.Portfolio[0].Quantity)
	assert.True(t, p.Portfolio[0].AveragePrice.Equal(dec(100)),
		"sell must not recompute the cost basis")

	require.Len(t, p.Transactions, 2)
	assert.Equal(t, models.TradeSell, p.Transactions[0].Type, "most recent first")
	assert.Equal(t, models.TradeBuy, p.Transactions[1].Type)
}

func TestExecuteTrade_UnknownSide(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")
	_, err := ExecuteTrade(p, "X", dec(10), 1, "SHORT")
	assert.ErrorIs(t, err, ErrUnknownSide)
}

func TestExecuteTrade_NoAliasing(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")
	p, err := ExecuteTrade(p, "SBIN", dec(800), 5, models.TradeBuy)
	require.NoError(t, err)

	updated, err := ExecuteTrade(p, "SBIN", dec(900), 5, models.TradeBuy)
	require.NoError(t, err)

	// Mutating the result must not reach back into the input.
	updated.Portfolio[0].Quantity = 999
	assert.Equal(t, 5, p.Portfolio[0].Quantity)
}

func TestReplay_ReproducesProfile(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")
	var err error

	steps := []struct {
		symbol string
		price  int64
		qty    int
		side   string
	}{
		{"RELIANCE", 2400, 10, models.TradeBuy},
		{"TCS", 3800, 5, models.TradeBuy},
		{"RELIANCE", 2600, 10, models.TradeBuy},
		{"RELIANCE", 2700, 15, models.TradeSell},
		{"TCS", 4000, 5, models.TradeSell},
		{"INFY", 1500, 20, models.TradeBuy},
	}
	for _, s := range steps {
		p, err = ExecuteTrade(p, s.symbol, dec(s.price), s.qty, s.side)
		require.NoError(t, err)
	}

	assert.NoError(t, Replay(p))
}

func TestReplay_DetectsTampering(t *testing.T) {
	p := models.DefaultProfile("trader@test.com")
	p, err := ExecuteTrade(p, "WIPRO", dec(490), 10, models.TradeBuy)
	require.NoError(t, err)

	p.Balance = p.Balance.Add(dec(1))
	assert.Error(t, Replay(p))
}
