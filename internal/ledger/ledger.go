package ledger

import (
	"errors"
	"time"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Validation rejections. These are expected, user-facing outcomes: the
// profile is left untouched and nothing is persisted.
var (
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrUnknownSide          = errors.New("unknown trade side")
)

// ExecuteTrade applies one BUY or SELL to a copy of the profile and returns
// the updated profile. The input is never mutated.
//
// BUY debits balance and folds the purchase into the weighted average cost
// of the holding. SELL credits balance and reduces the holding, removing it
// entirely when the quantity reaches zero; the average price of the
// remainder is left as-is. Every accepted trade is recorded as a SUCCESS
// transaction prepended to the history (most-recent-first).
func ExecuteTrade(profile models.UserProfile, symbol string, price decimal.Decimal, quantity int, side string) (models.UserProfile, error) {
	p := profile.Clone()
	qty := decimal.NewFromInt(int64(quantity))
	total := price.Mul(qty)

	switch side {
	case models.TradeBuy:
		if p.Balance.LessThan(total) {
			return models.UserProfile{}, ErrInsufficientFunds
		}
		p.Balance = p.Balance.Sub(total)

		if h := p.Holding(symbol); h != nil {
			held := decimal.NewFromInt(int64(h.Quantity))
			newQty := held.Add(qty)
			h.AveragePrice = h.AveragePrice.Mul(held).Add(total).Div(newQty)
			h.Quantity += quantity
		} else {
			p.Portfolio = append(p.Portfolio, models.PortfolioItem{
				Symbol:       symbol,
				Quantity:     quantity,
				AveragePrice: price,
			})
		}

	case models.TradeSell:
		h := p.Holding(symbol)
		if h == nil || h.Quantity < quantity {
			return models.UserProfile{}, ErrInsufficientHoldings
		}
		p.Balance = p.Balance.Add(total)
		h.Quantity -= quantity
		if h.Quantity == 0 {
			p.Portfolio = removeHolding(p.Portfolio, symbol)
		}

	default:
		return models.UserProfile{}, ErrUnknownSide
	}

	txn := models.Transaction{
		ID:        newTransactionID(),
		Symbol:    symbol,
		Type:      side,
		Quantity:  quantity,
		Price:     price,
		Total:     total,
		Timestamp: time.Now().UTC(),
		Status:    models.StatusSuccess,
	}
	p.Transactions = append([]models.Transaction{txn}, p.Transactions...)

	return p, nil
}

func removeHolding(items []models.PortfolioItem, symbol string) []models.PortfolioItem {
	out := items[:0]
	for _, it := range items {
		if it.Symbol != symbol {
			out = append(out, it)
		}
	}
	return out
}

// newTransactionID returns a time-ordered UUID so transaction ids sort
// roughly by creation time.
func newTransactionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
