package market

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteClient struct {
	calls int64
	fn    func(symbol string) (Quote, error)
}

func (c *fakeQuoteClient) Quote(_ context.Context, symbol string) (Quote, error) {
	atomic.AddInt64(&c.calls, 1)
	return c.fn(symbol)
}

func newTestProvider(client QuoteClient) *Provider {
	p := NewProvider(client, time.Minute)
	p.chunkDelay = 0 // no pacing in tests
	return p
}

func seedPrice(symbol string) float64 {
	for _, s := range models.Catalog {
		if s.Symbol == symbol {
			return s.Price
		}
	}
	return 0
}

func TestFetchQuotes_RateLimitDegradesToSimulation(t *testing.T) {
	client := &fakeQuoteClient{fn: func(string) (Quote, error) {
		return Quote{}, ErrRateLimited
	}}
	p := newTestProvider(client)

	snap := p.FetchQuotes(context.Background())

	assert.False(t, snap.IsLive)
	assert.Len(t, snap.Stocks, len(models.Catalog), "degraded result is still complete")
	for _, s := range snap.Stocks {
		assert.Greater(t, s.Price, 0.0, "no missing entry for %s", s.Symbol)
	}
	// The first rate-limited chunk must abort the rest of the cycle.
	assert.LessOrEqual(t, atomic.LoadInt64(&client.calls), int64(defaultChunkSize))
}

func TestFetchQuotes_NoValidDataDegradesToSimulation(t *testing.T) {
	client := &fakeQuoteClient{fn: func(string) (Quote, error) {
		return Quote{Current: 0, PreviousClose: 0}, nil // no-data response
	}}
	p := newTestProvider(client)

	snap := p.FetchQuotes(context.Background())

	assert.False(t, snap.IsLive)
	assert.Len(t, snap.Stocks, len(models.Catalog))
	assert.EqualValues(t, len(models.Catalog), atomic.LoadInt64(&client.calls),
		"invalid data is not rate limiting, all chunks run")
}

func TestFetchQuotes_SimulatedJitterIsBounded(t *testing.T) {
	p := newTestProvider(nil) // no client at all

	snap := p.FetchQuotes(context.Background())

	assert.False(t, snap.IsLive)
	for _, s := range snap.Stocks {
		base := seedPrice(s.Symbol)
		assert.InDelta(t, base, s.Price, base*fullJitter+1e-9,
			"%s jitter outside ±0.8%%", s.Symbol)
	}
}

func TestFetchQuotes_LiveMergeAndCurrencyHeuristic(t *testing.T) {
	client := &fakeQuoteClient{fn: func(symbol string) (Quote, error) {
		switch symbol {
		case "RELIANCE.NS":
			return Quote{Current: 2500, Change: 10, PercentChange: 0.4, DayHigh: 2510, DayLow: 2480, PreviousClose: 2490}, nil
		case "AAPL":
			// USD quote, below the threshold: must be scaled to INR.
			return Quote{Current: 180, Change: 2, PercentChange: 1.12, DayHigh: 182, DayLow: 178, PreviousClose: 178}, nil
		default:
			return Quote{}, errors.New("boom")
		}
	}}
	p := newTestProvider(client)

	snap := p.FetchQuotes(context.Background())
	require.True(t, snap.IsLive, "one live symbol is enough for live mode")
	require.Len(t, snap.Stocks, len(models.Catalog))

	byn := map[string]models.Stock{}
	for _, s := range snap.Stocks {
		byn[s.Symbol] = s
	}

	rel := byn["RELIANCE"]
	assert.Equal(t, 2500.0, rel.Price, "domestic quote taken as-is")
	assert.Equal(t, 0.4, rel.ChangePercent)

	aapl := byn["AAPL"]
	assert.InDelta(t, 180*usdToINR, aapl.Price, 1e-9, "USD quote converted")
	assert.InDelta(t, 2*usdToINR, aapl.Change, 1e-9)

	// Symbols without live data fall back to a small jitter, never go missing.
	tcs := byn["TCS"]
	base := seedPrice("TCS")
	assert.InDelta(t, base, tcs.Price, base*partialJitter+1e-9)

	// Fundamentals are catalog data the live feed does not carry.
	assert.NotEmpty(t, rel.MarketCap)
	assert.Greater(t, rel.PERatio, 0.0)
}

func TestFetchQuotes_UpdatesSnapshot(t *testing.T) {
	p := newTestProvider(nil)
	before := p.Snapshot().UpdatedAt

	p.FetchQuotes(context.Background())
	after := p.Snapshot()

	assert.False(t, after.UpdatedAt.Before(before))
	assert.Len(t, after.Stocks, len(models.Catalog))
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	p := newTestProvider(nil)

	snap := p.Snapshot()
	snap.Stocks[0].Price = math.Inf(1)

	assert.NotEqual(t, math.Inf(1), p.Snapshot().Stocks[0].Price)
}

func TestQuerySymbol(t *testing.T) {
	assert.Equal(t, "RELIANCE.NS", querySymbol("RELIANCE"))
	assert.Equal(t, "AAPL", querySymbol("AAPL"))
}
