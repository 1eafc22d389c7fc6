package ledger

import (
	"fmt"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/shopspring/decimal"
)

// Replay refolds the profile's transaction history, oldest first, starting
// from the initial funding and an empty portfolio, and verifies that the
// result matches the profile's current balance and holdings. A mismatch is a
// programming error in the trade path, not a recoverable condition.
func Replay(p models.UserProfile) error {
	balance := p.StartBalance
	holdings := map[string]models.PortfolioItem{}

	for i := len(p.Transactions) - 1; i >= 0; i-- {
		t := p.Transactions[i]
		qty := decimal.NewFromInt(int64(t.Quantity))
		total := t.Price.Mul(qty)

		switch t.Type {
		case models.TradeBuy:
			balance = balance.Sub(total)
			h, ok := holdings[t.Symbol]
			if !ok {
				holdings[t.Symbol] = models.PortfolioItem{Symbol: t.Symbol, Quantity: t.Quantity, AveragePrice: t.Price}
				continue
			}
			held := decimal.NewFromInt(int64(h.Quantity))
			h.AveragePrice = h.AveragePrice.Mul(held).Add(total).Div(held.Add(qty))
			h.Quantity += t.Quantity
			holdings[t.Symbol] = h
		case models.TradeSell:
			balance = balance.Add(total)
			h, ok := holdings[t.Symbol]
			if !ok || h.Quantity < t.Quantity {
				return fmt.Errorf("replay: sell of %d %s without matching holding", t.Quantity, t.Symbol)
			}
			h.Quantity -= t.Quantity
			if h.Quantity == 0 {
				delete(holdings, t.Symbol)
			} else {
				holdings[t.Symbol] = h
			}
		default:
			return fmt.Errorf("replay: unknown transaction type %q", t.Type)
		}
	}

	if !balance.Equal(p.Balance) {
		return fmt.Errorf("replay: balance %s does not match recorded %s", balance, p.Balance)
	}
	if len(holdings) != len(p.Portfolio) {
		return fmt.Errorf("replay: %d holdings replayed, %d recorded", len(holdings), len(p.Portfolio))
	}
	for _, item := range p.Portfolio {
		if item.Quantity <= 0 {
			return fmt.Errorf("replay: holding %s has non-positive quantity %d", item.Symbol, item.Quantity)
		}
		h, ok := holdings[item.Symbol]
		if !ok {
			return fmt.Errorf("replay: holding %s not reproduced by history", item.Symbol)
		}
		if h.Quantity != item.Quantity || !h.AveragePrice.Equal(item.AveragePrice) {
			return fmt.Errorf("replay: holding %s diverged: %d@%s vs %d@%s",
				item.Symbol, h.Quantity, h.AveragePrice, item.Quantity, item.AveragePrice)
		}
	}
	return nil
}
