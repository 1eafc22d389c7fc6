package advisor

import (
	"context"
	"testing"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFallbacksWithoutClient(t *testing.T) {
	a := New(context.Background(), "")
	ctx := context.Background()

	assert.Equal(t, fallbackSentiment, a.MarketSentiment(ctx, models.Catalog))
	assert.Equal(t, fallbackAnalysis, a.StockAnalysis(ctx, models.Catalog[0]))
	assert.Equal(t, fallbackChat, a.ChatReply(ctx, "should I buy RELIANCE?"))
}

func TestSentimentWithEmptySnapshot(t *testing.T) {
	a := New(context.Background(), "")
	assert.Equal(t, fallbackSentiment, a.MarketSentiment(context.Background(), nil))
}
