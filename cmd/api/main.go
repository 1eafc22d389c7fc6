package main

import (
	"context"
	"log"
	"os"

	"github.com/Dhakshin2007/TradeoBull/internal/advisor"
	"github.com/Dhakshin2007/TradeoBull/internal/auth"
	"github.com/Dhakshin2007/TradeoBull/internal/config"
	"github.com/Dhakshin2007/TradeoBull/internal/handlers"
	"github.com/Dhakshin2007/TradeoBull/internal/ledger"
	"github.com/Dhakshin2007/TradeoBull/internal/market"
	"github.com/Dhakshin2007/TradeoBull/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults or environment variables")
	}
	cfg := config.FromEnv()
	ctx := context.Background()

	// Durable tier: Postgres holds profiles and credentials
	db, err := store.Open(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()
	if err := store.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Failed to prepare schema: ", err)
	}

	// Fast tier: Redis when reachable, in-process cache otherwise
	var cache store.Cache
	if redisCache, err := store.NewRedisCache(cfg.RedisAddr); err != nil {
		log.Printf("Redis unavailable (%v), using in-process cache", err)
		cache = store.NewMemoryCache()
	} else {
		cache = redisCache
	}

	profiles := store.NewProfileStore(cache, store.NewPostgresRemote(db))
	gateway := auth.NewPostgresGateway(db)

	// Market data: live Finnhub quotes with simulated fallback
	var quotes market.QuoteClient
	if cfg.FinnhubAPIKey != "" {
		quotes = market.NewFinnhubClient(cfg.FinnhubAPIKey)
	} else {
		log.Println("No Finnhub API key found, market data will be simulated")
	}
	provider := market.NewProvider(quotes, cfg.QuoteInterval)
	go provider.Run(ctx)

	adv := advisor.New(ctx, cfg.GeminiAPIKey)

	// Trade processor with per-identity serialization
	processor := ledger.NewProcessor(profiles, cfg.TradeWorkers)
	processor.Start()
	defer processor.Stop()

	h := handlers.New(profiles, gateway, processor, provider, adv)

	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// API routes
	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		api.POST("/trades/buy", h.BuyStock)
		api.POST("/trades/sell", h.SellStock)
		api.GET("/trades/:identity", h.GetTradeHistory)

		api.GET("/portfolio/:identity", h.GetPortfolio)
		api.PUT("/profile/:identity", h.UpdateProfile)
		api.POST("/account/reset", h.ResetAccount)

		api.GET("/stocks", h.GetStocks)

		api.GET("/advisor/sentiment", h.GetMarketSentiment)
		api.GET("/advisor/analysis/:symbol", h.GetStockAnalysis)
		api.POST("/advisor/chat", h.Chat)
	}

	// WebSocket endpoint
	router.GET("/ws/prices", h.StreamPrices)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	log.Println("🚀 Server starting on http://localhost:" + cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
