package main

import (
	"fmt"
	"log"
	"os"

	"github.com/accold/mtg-price-api/config"
	httpDelivery "github.com/accold/mtg-price-api/internal/delivery/http"
	"github.com/accold/mtg-price-api/internal/domain"
	"github.com/accold/mtg-price-api/internal/infrastructure/cache"
	"github.com/accold/mtg-price-api/internal/infrastructure/tcgplayer"
	"github.com/accold/mtg-price-api/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MTG Price API v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache: type=%s ttl=%s", cfg.Cache.Type, cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	resultCache := buildCache(cfg)

	scraper, err := tcgplayer.New(tcgplayer.Config{
		BaseURL:       cfg.Scraper.BaseURL,
		Headless:      cfg.Scraper.Headless,
		BrowserBin:    cfg.Scraper.BrowserBin,
		RenderDelay:   cfg.Scraper.RenderDelay,
		RatePerMinute: cfg.Scraper.RatePerMinute,
	})
	if err != nil {
		log.Fatalf("Failed to start browser scraper: %v", err)
	}
	defer scraper.Close()

	log.Printf("Scraper: %s (headless=%v, rate=%d/min)",
		cfg.Scraper.BaseURL, cfg.Scraper.Headless, cfg.Scraper.RatePerMinute)

	// Initialize usecase layer
	priceService := usecase.NewPriceService(
		resultCache,
		scraper,
		usecase.PriceServiceConfig{
			CacheTTL:      cfg.Cache.TTL,
			SearchTimeout: cfg.Scraper.SearchTimeout,
			DefaultName:   cfg.Chat.DefaultName,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(priceService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCache picks the cache implementation from configuration. Config
// validation has already rejected unknown types.
func buildCache(cfg *config.Config) domain.ResultCache {
	if cfg.Cache.Type == "lru" {
		return cache.NewLRU(cfg.Cache.LRUSize, cfg.Cache.TTL)
	}
	return cache.NewMemory()
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
