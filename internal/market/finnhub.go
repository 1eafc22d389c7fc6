package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrRateLimited means the quote service returned 429; the current fetch
	// cycle must stop issuing requests.
	ErrRateLimited = errors.New("quote service: rate limited")
)

// Quote is one symbol's live quote.
type Quote struct {
	Current       float64
	Change        float64
	PercentChange float64
	DayHigh       float64
	DayLow        float64
	DayOpen       float64
	PreviousClose float64
}

// QuoteClient fetches a single symbol's quote.
type QuoteClient interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

const finnhubBaseURL = "https://finnhub.io/api/v1/quote"

// FinnhubClient implements QuoteClient against the Finnhub quote endpoint.
type FinnhubClient struct {
	baseURL string
	apiKey  string
	cli     *http.Client
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	return &FinnhubClient{
		baseURL: finnhubBaseURL,
		apiKey:  apiKey,
		cli:     &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *FinnhubClient) Quote(ctx context.Context, symbol string) (Quote, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Quote{}, err
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return Quote{}, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("finnhub http %d for %s", resp.StatusCode, symbol)
	}

	var raw struct {
		C  float64 `json:"c"`  // current price
		D  float64 `json:"d"`  // change
		DP float64 `json:"dp"` // percent change
		H  float64 `json:"h"`  // day high
		L  float64 `json:"l"`  // day low
		O  float64 `json:"o"`  // day open
		PC float64 `json:"pc"` // previous close
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Quote{}, err
	}

	return Quote{
		Current:       raw.C,
		Change:        raw.D,
		PercentChange: raw.DP,
		DayHigh:       raw.H,
		DayLow:        raw.L,
		DayOpen:       raw.O,
		PreviousClose: raw.PC,
	}, nil
}
