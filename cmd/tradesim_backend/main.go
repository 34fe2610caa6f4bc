package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/tradesim/tradesim_backend/internal/core/services"
	"github.com/tradesim/tradesim_backend/internal/handlers"
	"github.com/tradesim/tradesim_backend/internal/middleware"
	"github.com/tradesim/tradesim_backend/internal/platform/market"
	"github.com/tradesim/tradesim_backend/pkg/config"
)

// @title TradeSim Account API
// @version 1.0
// @description Single-user brokerage account simulator: funds, trades, holdings and portfolio valuation against a mock price feed.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build the price oracle from config, falling back to the fixture table
	priceTable, err := market.ParsePriceTable(cfg.PriceTable)
	if err != nil {
		logger.Error("Failed to parse PRICE_TABLE", slog.String("error", err.Error()))
		os.Exit(1)
	}
	oracle := market.NewStaticOracle(priceTable)

	// One account per server process, injected into the handlers. There is no
	// persistence: a restart starts a fresh simulation.
	accountService := services.NewAccountService(oracle, market.SystemClock{})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CORS for browser front-ends
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Per-IP rate limiting
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, accountService, oracle)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
