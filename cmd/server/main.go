package main // Entry point package

import (
	"log"  // Logging library
	"time" // Session TTL and date defaults

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/sleeperbus/booking-web/internal/api"        // Booking API client and catalog cache
	"github.com/sleeperbus/booking-web/internal/config"     // Internal config loader
	"github.com/sleeperbus/booking-web/internal/handler"    // UI flow handlers
	"github.com/sleeperbus/booking-web/internal/middleware" // Submit rate limiting
	"github.com/sleeperbus/booking-web/internal/router"     // Internal router setup
	"github.com/sleeperbus/booking-web/internal/session"    // Per-visitor state
	"github.com/sleeperbus/booking-web/internal/view"       // HTML renderer
)

func main() {
	// Load .env when present; in production the environment is real.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load() // Load environment config

	// Redis is optional: without it the catalog cache and the submit
	// limiter silently disable themselves.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, catalog cache and rate limiting disabled")
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	catalog := api.NewCachedCatalog(client, rdb, config.LoadCacheConfig())

	sessions := session.NewManager(cfg.SessionTTL, func() string {
		return time.Now().Format("2006-01-02")
	})

	e := echo.New()
	e.Renderer = view.NewRenderer()
	e.Static("/static", "static")

	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterBooking(e, handler.NewBookingHandler(catalog, sessions), limit)
	router.RegisterManage(e, handler.NewManageHandler(catalog, sessions), limit)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, catalog, sessions), cfg.JWTSecret, limit)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
