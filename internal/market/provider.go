package market

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
)

const (
	// Finnhub allows ~60 requests/minute; five at a time with a pause
	// between chunks stays under the burst limit.
	defaultChunkSize  = 5
	defaultChunkDelay = 800 * time.Millisecond

	fullJitter    = 0.008 // ±0.8% in simulated mode
	partialJitter = 0.002 // ±0.2% for symbols missing from a live batch

	// Live US quotes arrive in USD; catalog prices are INR-scale. A quoted
	// price under the threshold for a non-domestic symbol is assumed USD.
	usdPriceThreshold = 5000.0
	usdToINR          = 83.5
)

// Snapshot is the quote set handed to consumers. It is always complete:
// every catalog symbol is present, live or simulated.
type Snapshot struct {
	Stocks    []models.Stock `json:"stocks"`
	IsLive    bool           `json:"is_live"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Provider keeps the catalog quoted: live Finnhub data when available,
// simulated movement otherwise. Consumers read the latest snapshot; fetch
// cycles never surface errors.
type Provider struct {
	client     QuoteClient
	chunkSize  int
	chunkDelay time.Duration
	interval   time.Duration

	inFlight atomic.Bool

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewProvider seeds the snapshot from the static catalog so consumers have
// usable data before the first refresh. A nil client means simulated-only.
func NewProvider(client QuoteClient, interval time.Duration) *Provider {
	stocks := make([]models.Stock, len(models.Catalog))
	copy(stocks, models.Catalog)
	return &Provider{
		client:     client,
		chunkSize:  defaultChunkSize,
		chunkDelay: defaultChunkDelay,
		interval:   interval,
		snapshot: Snapshot{
			Stocks:    stocks,
			UpdatedAt: time.Now(),
		},
	}
}

// Snapshot returns a copy of the latest quote set.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.snapshot
	out.Stocks = make([]models.Stock, len(p.snapshot.Stocks))
	copy(out.Stocks, p.snapshot.Stocks)
	return out
}

// Run refreshes quotes on a fixed interval. A tick that fires while a fetch
// is still in flight is skipped, so slow cycles can never race each other.
func (p *Provider) Run(ctx context.Context) {
	p.tryRefresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tryRefresh(ctx)
		}
	}
}

func (p *Provider) tryRefresh(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		log.Println("quote refresh still in flight, skipping tick")
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		p.FetchQuotes(ctx)
	}()
}

// FetchQuotes runs one fetch cycle: the symbol universe is split into
// chunks, each chunk's per-symbol requests run concurrently, and a fixed
// delay separates chunks. A 429 aborts the remaining chunks. If the cycle
// was rate-limited or produced no valid quote at all, the whole catalog
// falls back to simulated movement.
func (p *Provider) FetchQuotes(ctx context.Context) Snapshot {
	base := p.Snapshot().Stocks

	if p.client == nil {
		return p.publish(simulate(base, fullJitter), false)
	}

	results := make(map[string]Quote)
	var resultsMu sync.Mutex
	var rateLimited atomic.Bool

	for start := 0; start < len(base); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(base) {
			end = len(base)
		}

		var wg sync.WaitGroup
		for _, stock := range base[start:end] {
			wg.Add(1)
			go func(symbol string) {
				defer wg.Done()
				q, err := p.client.Quote(ctx, querySymbol(symbol))
				if err != nil {
					if errors.Is(err, ErrRateLimited) {
						rateLimited.Store(true)
					}
					return
				}
				// Both prices zero means the feed has no data for the symbol.
				if q.Current == 0 && q.PreviousClose == 0 {
					return
				}
				resultsMu.Lock()
				results[symbol] = q
				resultsMu.Unlock()
			}(stock.Symbol)
		}
		wg.Wait()

		// Stop burning API credits once the service pushes back.
		if rateLimited.Load() {
			break
		}

		if end < len(base) {
			select {
			case <-time.After(p.chunkDelay):
			case <-ctx.Done():
				return p.publish(simulate(base, fullJitter), false)
			}
		}
	}

	if rateLimited.Load() || len(results) == 0 {
		log.Println("quote service rate limited or returned no data, switching to simulated mode")
		return p.publish(simulate(base, fullJitter), false)
	}

	return p.publish(mergeQuotes(base, results), true)
}

func (p *Provider) publish(stocks []models.Stock, isLive bool) Snapshot {
	snap := Snapshot{Stocks: stocks, IsLive: isLive, UpdatedAt: time.Now()}
	p.mu.Lock()
	p.snapshot = snap
	p.mu.Unlock()
	return snap
}

// querySymbol maps a catalog symbol to the quote service's ticker. NSE
// listings carry the ".NS" suffix.
func querySymbol(symbol string) string {
	if models.DomesticSymbols[symbol] {
		return symbol + ".NS"
	}
	return symbol
}

// mergeQuotes lays live quotes over the last-known catalog, preserving the
// fundamentals the feed does not carry. Symbols without live data get a
// small jitter so no subset of the catalog ever looks frozen.
func mergeQuotes(base []models.Stock, live map[string]Quote) []models.Stock {
	out := make([]models.Stock, len(base))
	for i, s := range base {
		q, ok := live[s.Symbol]
		if !ok {
			fluctuation := (rand.Float64()*2 - 1) * partialJitter
			s.Price *= 1 + fluctuation
			out[i] = s
			continue
		}

		price, change := q.Current, q.Change
		high, low := q.DayHigh, q.DayLow
		if !models.DomesticSymbols[s.Symbol] && price < usdPriceThreshold {
			price *= usdToINR
			change *= usdToINR
			high *= usdToINR
			low *= usdToINR
		}

		s.Price = price
		s.Change = change
		s.ChangePercent = q.PercentChange
		if high > s.High52 {
			s.High52 = high
		}
		if low > 0 && low < s.Low52 {
			s.Low52 = low
		}
		out[i] = s
	}
	return out
}

// simulate jitters every price around its last known value so the catalog
// keeps moving when live data is unavailable.
func simulate(base []models.Stock, magnitude float64) []models.Stock {
	out := make([]models.Stock, len(base))
	for i, s := range base {
		fluctuation := (rand.Float64()*2 - 1) * magnitude
		newPrice := s.Price * (1 + fluctuation)

		prevClose := s.Price
		if divisor := 1 + s.ChangePercent/100; divisor > 0 {
			prevClose = s.Price / divisor
		}

		s.Price = newPrice
		s.Change = newPrice - prevClose
		if prevClose != 0 {
			s.ChangePercent = (newPrice - prevClose) / prevClose * 100
		}
		out[i] = s
	}
	return out
}
