package models

// Stock is a read-only catalog entry. Price/change fields are refreshed by
// the market data provider; fundamentals are static catalog data. Prices are
// display values in INR; trades take the price from the request, so all
// ledger money math stays decimal.
type Stock struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     string  `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	PBRatio       float64 `json:"pb_ratio"`
	ROE           float64 `json:"roe"`
	DivYield      float64 `json:"div_yield"`
	High52        float64 `json:"high_52"`
	Low52         float64 `json:"low_52"`
}
