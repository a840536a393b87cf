package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/accold/mtg-price-api/internal/domain"
)

// PriceServiceConfig holds configuration for the price service.
type PriceServiceConfig struct {
	CacheTTL      time.Duration
	SearchTimeout time.Duration
	DefaultName   string
}

// PriceService answers card price lookups with caching.
// Flow: validate -> check cache -> scrape -> resolve -> cache -> format.
type PriceService struct {
	cache         domain.ResultCache
	scraper       domain.CardScraper
	cacheTTL      time.Duration
	searchTimeout time.Duration
	defaultName   string
}

// NewPriceService creates a new price service with dependencies.
func NewPriceService(
	cache domain.ResultCache,
	scraper domain.CardScraper,
	config PriceServiceConfig,
) *PriceService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Second
	}
	searchTimeout := config.SearchTimeout
	if searchTimeout == 0 {
		searchTimeout = 45 * time.Second
	}
	defaultName := config.DefaultName
	if defaultName == "" {
		defaultName = "Streamer"
	}

	return &PriceService{
		cache:         cache,
		scraper:       scraper,
		cacheTTL:      cacheTTL,
		searchTimeout: searchTimeout,
		defaultName:   defaultName,
	}
}

// LookupPrice resolves a search term to a formatted chat message for
// displayName. The message is always usable as-is; the error reports the
// failure class (ErrInvalidQuery, wrapped ErrScrapeFailure) for callers
// that need a success flag.
func (s *PriceService) LookupPrice(ctx context.Context, searchTerm, displayName string) (string, error) {
	if displayName == "" {
		displayName = s.defaultName
	}
	term := strings.TrimSpace(searchTerm)
	if term == "" {
		return fmt.Sprintf("%s, please provide a card name!", displayName), domain.ErrInvalidQuery
	}

	cacheKey := strings.ToLower(term)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
		// Cached results carry no display name; formatting per request
		// substitutes the current requester.
		return FormatMessage(*cached, displayName), nil
	}

	scrapeCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	raw, err := s.scraper.Search(scrapeCtx, term)
	if err != nil {
		log.Printf("[PRICE] scrape failed for %q: %v", term, err)
		failure := domain.MatchResult{
			Outcome:    domain.OutcomeAdapterFailure,
			SearchTerm: term,
			Detail:     err.Error(),
		}
		// Failures stay uncached so the next request retries.
		return FormatMessage(failure, displayName),
			fmt.Errorf("%w: %v", domain.ErrScrapeFailure, err)
	}

	result := Resolve(term, raw)
	if err := s.cache.Set(ctx, cacheKey, &result, s.cacheTTL); err != nil {
		log.Printf("[PRICE] cache set failed for %q: %v", cacheKey, err)
	}

	return FormatMessage(result, displayName), nil
}
