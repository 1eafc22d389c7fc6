package models

// DomesticSymbols marks the NSE-listed part of the universe. Quote lookups
// for these use the ".NS" suffix; everything else is a US listing whose live
// price may arrive in USD and need conversion.
var DomesticSymbols = map[string]bool{
	"RELIANCE":   true,
	"TCS":        true,
	"HDFCBANK":   true,
	"INFY":       true,
	"ICICIBANK":  true,
	"SBIN":       true,
	"BHARTIARTL": true,
	"ITC":        true,
	"TATAMOTORS": true,
	"WIPRO":      true,
}

// Catalog is the fixed symbol universe. Prices here are the seed values used
// until the first live refresh, and the base for simulated movement when the
// quote service is unavailable. US entries are pre-scaled to INR.
var Catalog = []Stock{
	{Symbol: "RELIANCE", Name: "Reliance Industries", Sector: "Energy", Description: "India's largest conglomerate spanning energy, retail and telecom.", Price: 2450.50, MarketCap: "₹16,58,000 Cr", PERatio: 23.4, PBRatio: 2.1, ROE: 9.2, DivYield: 0.34, High52: 3024.90, Low52: 2221.05},
	{Symbol: "TCS", Name: "Tata Consultancy Services", Sector: "IT", Description: "Global IT services and consulting leader.", Price: 3890.20, MarketCap: "₹14,10,000 Cr", PERatio: 29.8, PBRatio: 12.5, ROE: 46.9, DivYield: 1.25, High52: 4592.25, Low52: 3311.00},
	{Symbol: "HDFCBANK", Name: "HDFC Bank", Sector: "Banking", Description: "India's largest private sector bank.", Price: 1645.75, MarketCap: "₹12,50,000 Cr", PERatio: 18.9, PBRatio: 2.8, ROE: 17.1, DivYield: 1.10, High52: 1794.00, Low52: 1363.55},
	{Symbol: "INFY", Name: "Infosys", Sector: "IT", Description: "Digital services and consulting multinational.", Price: 1512.30, MarketCap: "₹6,30,000 Cr", PERatio: 24.1, PBRatio: 7.2, ROE: 31.8, DivYield: 2.40, High52: 1980.00, Low52: 1358.35},
	{Symbol: "ICICIBANK", Name: "ICICI Bank", Sector: "Banking", Description: "Leading private sector bank and financial services group.", Price: 1108.40, MarketCap: "₹7,80,000 Cr", PERatio: 17.5, PBRatio: 3.1, ROE: 18.7, DivYield: 0.72, High52: 1257.80, Low52: 970.15},
	{Symbol: "SBIN", Name: "State Bank of India", Sector: "Banking", Description: "India's largest public sector bank.", Price: 795.60, MarketCap: "₹7,10,000 Cr", PERatio: 10.2, PBRatio: 1.6, ROE: 17.3, DivYield: 1.72, High52: 912.00, Low52: 680.00},
	{Symbol: "BHARTIARTL", Name: "Bharti Airtel", Sector: "Telecom", Description: "Top-tier telecom operator across India and Africa.", Price: 1540.85, MarketCap: "₹9,20,000 Cr", PERatio: 68.4, PBRatio: 9.8, ROE: 14.9, DivYield: 0.52, High52: 1779.00, Low52: 1097.10},
	{Symbol: "ITC", Name: "ITC Limited", Sector: "FMCG", Description: "Diversified FMCG, hotels and paperboards group.", Price: 438.25, MarketCap: "₹5,48,000 Cr", PERatio: 26.7, PBRatio: 7.4, ROE: 28.3, DivYield: 3.12, High52: 528.50, Low52: 399.35},
	{Symbol: "TATAMOTORS", Name: "Tata Motors", Sector: "Auto", Description: "Automobile maker, owner of Jaguar Land Rover.", Price: 952.10, MarketCap: "₹3,50,000 Cr", PERatio: 11.1, PBRatio: 3.7, ROE: 36.9, DivYield: 0.31, High52: 1179.00, Low52: 696.25},
	{Symbol: "WIPRO", Name: "Wipro", Sector: "IT", Description: "IT services and product engineering company.", Price: 489.95, MarketCap: "₹2,55,000 Cr", PERatio: 21.3, PBRatio: 3.4, ROE: 16.1, DivYield: 0.20, High52: 580.00, Low52: 385.05},
	{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", Description: "Consumer electronics and services giant.", Price: 14620.00, MarketCap: "$3.4T", PERatio: 33.1, PBRatio: 47.2, ROE: 147.3, DivYield: 0.44, High52: 19700.00, Low52: 13850.00},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Description: "Search, advertising and cloud computing conglomerate.", Price: 13870.00, MarketCap: "$2.1T", PERatio: 26.4, PBRatio: 6.8, ROE: 30.9, DivYield: 0.46, High52: 16430.00, Low52: 10690.00},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Sector: "Technology", Description: "Software, cloud and AI infrastructure leader.", Price: 34900.00, MarketCap: "$3.1T", PERatio: 35.7, PBRatio: 12.3, ROE: 38.5, DivYield: 0.72, High52: 38420.00, Low52: 29050.00},
	{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Auto", Description: "Electric vehicles and energy storage manufacturer.", Price: 20870.00, MarketCap: "$1.1T", PERatio: 72.8, PBRatio: 13.9, ROE: 20.4, DivYield: 0.00, High52: 40100.00, Low52: 15680.00},
	{Symbol: "AMZN", Name: "Amazon.com", Sector: "E-Commerce", Description: "E-commerce and cloud computing behemoth.", Price: 15030.00, MarketCap: "$2.3T", PERatio: 42.6, PBRatio: 8.9, ROE: 22.6, DivYield: 0.00, High52: 20190.00, Low52: 13340.00},
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Sector: "Semiconductors", Description: "GPU and AI accelerator designer.", Price: 11450.00, MarketCap: "$3.3T", PERatio: 55.2, PBRatio: 51.7, ROE: 119.2, DivYield: 0.03, High52: 12530.00, Low52: 6310.00},
	{Symbol: "META", Name: "Meta Platforms", Sector: "Technology", Description: "Social media and metaverse company.", Price: 48650.00, MarketCap: "$1.5T", PERatio: 27.9, PBRatio: 9.4, ROE: 36.1, DivYield: 0.33, High52: 61600.00, Low52: 38200.00},
	{Symbol: "NFLX", Name: "Netflix Inc.", Sector: "Media", Description: "Streaming entertainment service.", Price: 74300.00, MarketCap: "$380B", PERatio: 44.8, PBRatio: 17.6, ROE: 38.4, DivYield: 0.00, High52: 104800.00, Low52: 50100.00},
}

// CatalogSymbols returns the symbol universe in catalog order.
func CatalogSymbols() []string {
	out := make([]string, len(Catalog))
	for i, s := range Catalog {
		out[i] = s.Symbol
	}
	return out
}
