package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/accold/mtg-price-api/config"
	pluginDelivery "github.com/accold/mtg-price-api/internal/delivery/plugin"
	"github.com/accold/mtg-price-api/internal/domain"
	"github.com/accold/mtg-price-api/internal/infrastructure/cache"
	"github.com/accold/mtg-price-api/internal/infrastructure/tcgplayer"
	"github.com/accold/mtg-price-api/internal/usecase"
)

// One-shot shim for chatbot automation hosts: the remaining arguments form
// the card search term, and the response envelope is printed as JSON.
func main() {
	user := flag.String("user", "", "display name of the requesting chat user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	priceService := usecase.NewPriceService(
		buildCache(cfg),
		scraper,
		usecase.PriceServiceConfig{
			CacheTTL:      cfg.Cache.TTL,
			SearchTimeout: cfg.Scraper.SearchTimeout,
			DefaultName:   cfg.Chat.DefaultName,
		},
	)

	bot := pluginDelivery.NewBot(priceService)
	resp := bot.Execute(context.Background(), flag.Args(), *user)

	encoder := json.NewEncoder(os.Stdout)
	if err := encoder.Encode(resp); err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
}

// buildCache picks the cache implementation from configuration. A one-shot
// invocation never sees a cache hit, but the service contract wants one.
func buildCache(cfg *config.Config) domain.ResultCache {
	if cfg.Cache.Type == "lru" {
		return cache.NewLRU(cfg.Cache.LRUSize, cfg.Cache.TTL)
	}
	return cache.NewMemory()
}

func init() {
	// Keep diagnostics on stderr so stdout stays pure JSON for the host.
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
