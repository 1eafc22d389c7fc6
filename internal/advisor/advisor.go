package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Dhakshin2007/TradeoBull/internal/models"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Fallback strings returned when the text-completion service is unavailable.
const (
	fallbackSentiment = "Market is volatile. Trade with caution."
	fallbackAnalysis  = "No analysis available."
	fallbackChat      = "Sorry, I'm having trouble thinking right now."
)

var errNoClient = errors.New("advisor: no client configured")

// Advisor wraps the Gemini text-completion service for market commentary
// and the beginner-mentor chat. Every call degrades to a static fallback,
// never an error.
type Advisor struct {
	client *genai.Client
}

// New builds an Advisor. An empty API key yields a fallback-only advisor.
func New(ctx context.Context, apiKey string) *Advisor {
	if apiKey == "" {
		log.Println("no Gemini API key configured, advisor will serve fallbacks")
		return &Advisor{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("gemini client init failed, advisor will serve fallbacks: %v", err)
		return &Advisor{}
	}
	return &Advisor{client: client}
}

func (a *Advisor) generate(ctx context.Context, prompt string) (string, error) {
	if a.client == nil {
		return "", errNoClient
	}
	resp, err := a.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("advisor: empty response")
	}
	return text, nil
}

// MarketSentiment summarizes sentiment from the top of the quote set.
func (a *Advisor) MarketSentiment(ctx context.Context, stocks []models.Stock) string {
	n := len(stocks)
	if n > 5 {
		n = 5
	}
	lines := make([]string, 0, n)
	for _, s := range stocks[:n] {
		lines = append(lines, fmt.Sprintf("%s: ₹%.2f (%.2f%%)", s.Symbol, s.Price, s.ChangePercent))
	}

	prompt := fmt.Sprintf(
		"You are a senior financial analyst for the Indian Stock Market. "+
			"Based on this market snapshot: %s. "+
			"Provide a 2-sentence summary of the current market sentiment (Bullish/Bearish/Neutral) "+
			"and a quick tip for a beginner investor.",
		strings.Join(lines, ", "))

	text, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("sentiment generation failed: %v", err)
		return fallbackSentiment
	}
	return text
}

// StockAnalysis gives a short beginner-friendly take on one stock.
func (a *Advisor) StockAnalysis(ctx context.Context, stock models.Stock) string {
	prompt := fmt.Sprintf(
		"Analyze the stock %s (%s) currently trading at ₹%.2f. The sector is %s. "+
			"Provide a brief, beginner-friendly analysis (max 50 words) on what factors "+
			"usually drive this stock's price in the Indian market.",
		stock.Name, stock.Symbol, stock.Price, stock.Sector)

	text, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("analysis generation failed for %s: %v", stock.Symbol, err)
		return fallbackAnalysis
	}
	return text
}

// ChatReply answers a user message as the in-app trading mentor.
func (a *Advisor) ChatReply(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(
		"You are 'Genius', a friendly and helpful trading mentor for beginners on the 'TradeoBull' app. "+
			"The user asks: %q. Provide a short, simple answer (max 3 sentences). "+
			"Avoid complex financial jargon. If asked about specific Buy/Sell advice, "+
			"say you are a simulator AI and cannot give financial advice.",
		message)

	text, err := a.generate(ctx, prompt)
	if err != nil {
		log.Printf("chat generation failed: %v", err)
		return fallbackChat
	}
	return text
}
