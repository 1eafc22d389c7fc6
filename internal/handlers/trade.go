package handlers

import (
	"errors"
	"net/http"

	"github.com/Dhakshin2007/TradeoBull/internal/ledger"
	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/Dhakshin2007/TradeoBull/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BuyStock handles POST /api/trades/buy
func (h *Handler) BuyStock(c *gin.Context) {
	h.executeTrade(c, models.TradeBuy)
}

// SellStock handles POST /api/trades/sell
func (h *Handler) SellStock(c *gin.Context) {
	h.executeTrade(c, models.TradeSell)
}

func (h *Handler) executeTrade(c *gin.Context, side string) {
	var req models.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.Processor.Submit(c.Request.Context(), ledger.Trade{
		Identity: req.Identity,
		Symbol:   req.Symbol,
		Side:     side,
		Quantity: req.Quantity,
		Price:    decimal.NewFromFloat(req.Price),
	})

	if result.Err != nil {
		switch {
		case errors.Is(result.Err, ledger.ErrInsufficientFunds),
			errors.Is(result.Err, ledger.ErrInsufficientHoldings),
			errors.Is(result.Err, store.ErrNoIdentity):
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Trade failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Trade executed successfully",
		"transaction": result.Transaction,
		"new_balance": result.Profile.Balance,
	})
}

// GetPortfolio handles GET /api/portfolio/:identity
func (h *Handler) GetPortfolio(c *gin.Context) {
	profile, err := h.Store.Load(c.Request.Context(), c.Param("identity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prices := make(map[string]decimal.Decimal)
	for _, s := range h.Market.Snapshot().Stocks {
		prices[s.Symbol] = decimal.NewFromFloat(s.Price)
	}

	holdings := make([]models.HoldingView, 0, len(profile.Portfolio))
	totalValue := profile.Balance
	for _, item := range profile.Portfolio {
		price, ok := prices[item.Symbol]
		if !ok {
			// Symbol left the catalog; value it at cost.
			price = item.AveragePrice
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		value := price.Mul(qty)
		invested := item.AveragePrice.Mul(qty)

		holdings = append(holdings, models.HoldingView{
			PortfolioItem: item,
			CurrentPrice:  price,
			CurrentValue:  value,
			InvestedValue: invested,
			UnrealizedPnL: value.Sub(invested),
		})
		totalValue = totalValue.Add(value)
	}

	c.JSON(http.StatusOK, models.PortfolioResponse{
		Holdings:    holdings,
		CashBalance: profile.Balance,
		TotalValue:  totalValue,
	})
}

// GetTradeHistory handles GET /api/trades/:identity
func (h *Handler) GetTradeHistory(c *gin.Context) {
	profile, err := h.Store.Load(c.Request.Context(), c.Param("identity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trades := profile.Transactions
	if len(trades) > 50 {
		trades = trades[:50]
	}

	c.JSON(http.StatusOK, gin.H{
		"trades": trades,
		"count":  len(trades),
	})
}

// GetStocks handles GET /api/stocks
func (h *Handler) GetStocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Market.Snapshot())
}
