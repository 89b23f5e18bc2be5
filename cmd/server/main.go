package main // Entry point package

import (
	"log" // Logging library

	_ "github.com/joho/godotenv/autoload" // Load .env before config runs
	"github.com/labstack/echo/v4"         // Echo web framework

	"github.com/venueverse/venue-verse/internal/config"
	"github.com/venueverse/venue-verse/internal/database"
	"github.com/venueverse/venue-verse/internal/handler"
	"github.com/venueverse/venue-verse/internal/middleware"
	"github.com/venueverse/venue-verse/internal/queue"
	"github.com/venueverse/venue-verse/internal/repository"
	"github.com/venueverse/venue-verse/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable; response cache and rate limiter disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	venues := repository.NewVenueRepo(db)
	bookings := repository.NewBookingRepo(db)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	browseH := handler.NewBuyerBrowseHandler(venues)
	buyerBookingsH := handler.NewBuyerBookingHandler(venues, bookings)
	sellerVenuesH := handler.NewSellerVenueHandler(venues)
	sellerBookingsH := handler.NewSellerBookingHandler(bookings)

	e := echo.New()

	// Rate limit the whole API; the limiter fails open when Redis is down.
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	browseCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBuyer(e, browseH, buyerBookingsH, cfg.JWTSecret, browseCache)
	router.RegisterSeller(e, sellerVenuesH, sellerBookingsH, cfg.JWTSecret)

	// Background consumer writes booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer: stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
