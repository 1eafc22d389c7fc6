package models

import "github.com/shopspring/decimal"

// TradeRequest - what the client sends to buy or sell stocks
type TradeRequest struct {
	Identity string  `json:"identity" binding:"required,email"`
	Symbol   string  `json:"symbol" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// RegisterRequest - payload for account creation
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest - payload for sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest - partial metadata edit; nil fields are left untouched.
// Trade state (balance, portfolio, transactions) is never editable here.
type ProfileUpdateRequest struct {
	Name                *string   `json:"name"`
	Avatar              *string   `json:"avatar"`
	Location            *string   `json:"location"`
	Bio                 *string   `json:"bio"`
	Watchlist           *[]string `json:"watchlist"`
	TermsAccepted       *bool     `json:"terms_accepted"`
	OnboardingCompleted *bool     `json:"onboarding_completed"`
}

// HoldingView is a portfolio entry enriched with the current market quote.
type HoldingView struct {
	PortfolioItem
	CurrentPrice  decimal.Decimal `json:"current_price"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	InvestedValue decimal.Decimal `json:"invested_value"`
	UnrealizedPnL decimal.Decimal `json:"unrealized_pnl"`
}

// PortfolioResponse - what we send back to the client
type PortfolioResponse struct {
	Holdings    []HoldingView   `json:"holdings"`
	CashBalance decimal.Decimal `json:"cash_balance"`
	TotalValue  decimal.Decimal `json:"total_value"`
}
