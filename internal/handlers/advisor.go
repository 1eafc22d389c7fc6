package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMarketSentiment handles GET /api/advisor/sentiment
func (h *Handler) GetMarketSentiment(c *gin.Context) {
	snap := h.Market.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"sentiment": h.Advisor.MarketSentiment(c.Request.Context(), snap.Stocks),
		"is_live":   snap.IsLive,
	})
}

// GetStockAnalysis handles GET /api/advisor/analysis/:symbol
func (h *Handler) GetStockAnalysis(c *gin.Context) {
	symbol := c.Param("symbol")
	for _, s := range h.Market.Snapshot().Stocks {
		if s.Symbol == symbol {
			c.JSON(http.StatusOK, gin.H{
				"symbol":   symbol,
				"analysis": h.Advisor.StockAnalysis(c.Request.Context(), s),
			})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Unknown symbol"})
}

// Chat handles POST /api/advisor/chat
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reply": h.Advisor.ChatReply(c.Request.Context(), req.Message),
	})
}
