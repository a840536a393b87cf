package domain

import "errors"

var (
	// ErrInvalidQuery is returned when the search term is empty or whitespace-only
	ErrInvalidQuery = errors.New("search term is empty")

	// ErrScrapeFailure is returned when the marketplace scrape fails
	ErrScrapeFailure = errors.New("marketplace scrape failed")

	// ErrCacheMiss is returned when a key is absent or expired in the cache
	ErrCacheMiss = errors.New("cache miss")
)
