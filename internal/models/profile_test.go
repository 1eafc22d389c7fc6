package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("fresh@test.com")

	assert.Equal(t, "fresh@test.com", p.ID)
	assert.Equal(t, "fresh@test.com", p.Email)
	assert.True(t, p.Balance.Equal(InitialBalance))
	assert.True(t, p.StartBalance.Equal(InitialBalance))
	assert.Empty(t, p.Portfolio)
	assert.Empty(t, p.Transactions)
	assert.False(t, p.TermsAccepted)
	assert.False(t, p.OnboardingCompleted)
}

func TestProfileJSONRoundTrip(t *testing.T) {
	p := DefaultProfile("blob@test.com")
	p.Portfolio = []PortfolioItem{{Symbol: "ITC", Quantity: 4, AveragePrice: InitialBalance.Div(InitialBalance)}}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var got UserProfile
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.Balance.Equal(p.Balance))
	require.Len(t, got.Portfolio, 1)
	assert.True(t, got.Portfolio[0].AveragePrice.Equal(p.Portfolio[0].AveragePrice))
}

func TestClone_NoSharedSlices(t *testing.T) {
	p := DefaultProfile("clone@test.com")
	p.Portfolio = []PortfolioItem{{Symbol: "TCS", Quantity: 1, AveragePrice: InitialBalance}}
	p.Watchlist = []string{"TCS"}

	c := p.Clone()
	c.Portfolio[0].Quantity = 99
	c.Watchlist[0] = "INFY"

	assert.Equal(t, 1, p.Portfolio[0].Quantity)
	assert.Equal(t, "TCS", p.Watchlist[0])
}

func TestCatalogIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range Catalog {
		assert.False(t, seen[s.Symbol], "duplicate symbol %s", s.Symbol)
		seen[s.Symbol] = true
		assert.Greater(t, s.Price, 0.0, "%s needs a seed price", s.Symbol)
		assert.NotEmpty(t, s.Name)
	}
	for sym := range DomesticSymbols {
		assert.True(t, seen[sym], "domestic symbol %s missing from catalog", sym)
	}
	assert.Len(t, CatalogSymbols(), len(Catalog))
}
