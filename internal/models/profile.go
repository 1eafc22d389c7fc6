package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitialBalance is the virtual funding every new account starts with (₹1,00,000).
var InitialBalance = decimal.NewFromInt(100000)

// Trade sides
const (
	TradeBuy  = "BUY"
	TradeSell = "SELL"
)

// Transaction statuses
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
	StatusPending = "PENDING"
)

// PortfolioItem is one holding: a symbol, how many shares are held and the
// weighted average purchase price. Entries with zero quantity never persist.
type PortfolioItem struct {
	Symbol       string          `json:"symbol"`
	Quantity     int             `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// Transaction is an immutable record of one executed trade.
type Transaction struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Type      string          `json:"type"` // "BUY" or "SELL"
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
	Status    string          `json:"status"`
}

// UserProfile is the aggregate root for one authenticated identity.
// Balance and Portfolio are mutated only by the ledger; Transactions is
// append-only, most-recent-first.
type UserProfile struct {
	ID                  string          `json:"id"`
	Email               string          `json:"email"`
	Name                string          `json:"name,omitempty"`
	Avatar              string          `json:"avatar,omitempty"`
	Location            string          `json:"location,omitempty"`
	Bio                 string          `json:"bio,omitempty"`
	Balance             decimal.Decimal `json:"balance"`
	StartBalance        decimal.Decimal `json:"start_balance"`
	Portfolio           []PortfolioItem `json:"portfolio"`
	Transactions        []Transaction   `json:"transactions"`
	Watchlist           []string        `json:"watchlist"`
	TermsAccepted       bool            `json:"terms_accepted"`
	OnboardingCompleted bool            `json:"onboarding_completed"`
}

// DefaultProfile returns a freshly funded profile for an identity.
func DefaultProfile(identity string) UserProfile {
	return UserProfile{
		ID:           identity,
		Email:        identity,
		Balance:      InitialBalance,
		StartBalance: InitialBalance,
		Portfolio:    []PortfolioItem{},
		Transactions: []Transaction{},
		Watchlist:    []string{},
	}
}

// Clone returns a deep copy of the profile. The ledger works on copies so a
// rejected trade can never leave the caller's profile half-mutated.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Portfolio = make([]PortfolioItem, len(p.Portfolio))
	copy(out.Portfolio, p.Portfolio)
	out.Transactions = make([]Transaction, len(p.Transactions))
	copy(out.Transactions, p.Transactions)
	out.Watchlist = make([]string, len(p.Watchlist))
	copy(out.Watchlist, p.Watchlist)
	return out
}

// Holding returns the portfolio entry for symbol, or nil if none is held.
func (p *UserProfile) Holding(symbol string) *PortfolioItem {
	for i := range p.Portfolio {
		if p.Portfolio[i].Symbol == symbol {
			return &p.Portfolio[i]
		}
	}
	return nil
}
