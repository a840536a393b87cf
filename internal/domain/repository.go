package domain

import (
	"context"
	"time"
)

// CardScraper drives the marketplace search page and returns raw product
// cards in page order. Implementations own navigation, selector waiting,
// and DOM text extraction; callers only see records or a failure.
type CardScraper interface {
	Search(ctx context.Context, term string) ([]RawCandidate, error)
}

// ResultCache stores resolved match results keyed by lowercased search term.
// Get returns ErrCacheMiss for absent or expired keys.
type ResultCache interface {
	Get(ctx context.Context, key string) (*MatchResult, error)
	Set(ctx context.Context, key string, result *MatchResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
