package tcgplayer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/time/rate"

	"github.com/accold/mtg-price-api/internal/domain"
)

// Search-page selectors. These track TCGPlayer's markup and are the first
// thing to check when scrapes start coming back empty.
const (
	searchInputSelector = "#autocomplete-input"
	productCardSelector = ".product-card"
	titleSelector       = ".product-card__title.truncate"
	setNameSelector     = ".product-card__set-name__variant"
	marketPriceSelector = ".product-card__market-price--value"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36"

// Config holds scraper configuration.
type Config struct {
	// BaseURL is the marketplace page carrying the search box.
	BaseURL string
	// Headless runs Chromium without a display. Off is useful for selector
	// debugging only.
	Headless bool
	// BrowserBin points at an explicit Chromium binary (system Chromium in
	// Docker); empty auto-detects.
	BrowserBin string
	// RenderDelay is how long to let result cards render after submitting
	// the search.
	RenderDelay time.Duration
	// RatePerMinute caps searches against the marketplace.
	RatePerMinute int
}

// Scraper drives a headless Chromium against the TCGPlayer search page and
// extracts raw product cards. It implements domain.CardScraper. One browser
// is shared across requests; each search gets its own page.
type Scraper struct {
	browser     *rod.Browser
	limiter     *rate.Limiter
	baseURL     string
	renderDelay time.Duration
}

// New launches Chromium and connects to it. Callers must Close the scraper
// to release the browser.
func New(config Config) (*Scraper, error) {
	config = withDefaults(config)

	l := launcher.New().
		Headless(config.Headless).
		NoSandbox(true).
		Leakless(false)
	if config.BrowserBin != "" {
		l = l.Bin(config.BrowserBin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	log.Printf("[SCRAPE] browser ready at %s", controlURL)

	// Searches hit a third-party site; pace them politely.
	limiter := rate.NewLimiter(rate.Limit(float64(config.RatePerMinute)/60.0), 2)

	return &Scraper{
		browser:     browser,
		limiter:     limiter,
		baseURL:     config.BaseURL,
		renderDelay: config.RenderDelay,
	}, nil
}

// withDefaults fills the zero-value fields of a Config.
func withDefaults(config Config) Config {
	if config.BaseURL == "" {
		config.BaseURL = "https://www.tcgplayer.com/"
	}
	if config.RenderDelay == 0 {
		config.RenderDelay = 2500 * time.Millisecond
	}
	if config.RatePerMinute <= 0 {
		config.RatePerMinute = 12
	}
	return config
}

// Close releases the browser.
func (s *Scraper) Close() error {
	if s.browser == nil {
		return nil
	}
	return s.browser.Close()
}

// Search runs one marketplace search and returns the raw product cards in
// page order. The page is closed on every exit path; the caller's context
// bounds the whole interaction.
func (s *Scraper) Search(ctx context.Context, term string) ([]domain.RawCandidate, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	rawPage, err := s.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	// Close through the original handle so a cancelled search context cannot
	// also cancel the close and leak the page.
	defer func() {
		if closeErr := rawPage.Close(); closeErr != nil {
			log.Printf("[SCRAPE] page close: %v", closeErr)
		}
	}()

	page := rawPage.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: userAgent}); err != nil {
		return nil, fmt.Errorf("failed to set user agent: %w", err)
	}

	if err := page.Navigate(s.baseURL); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", s.baseURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load search page: %w", err)
	}

	searchInput, err := page.Element(searchInputSelector)
	if err != nil {
		return nil, fmt.Errorf("search input not found: %w", err)
	}
	if err := searchInput.Input(term); err != nil {
		return nil, fmt.Errorf("failed to type search term: %w", err)
	}
	if err := searchInput.Type(input.Enter); err != nil {
		return nil, fmt.Errorf("failed to submit search: %w", err)
	}

	// Result cards render client-side after the search navigates.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.renderDelay):
	}

	cards, err := page.Elements(productCardSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to query product cards: %w", err)
	}

	raw := make([]domain.RawCandidate, 0, len(cards))
	for _, card := range cards {
		raw = append(raw, extractCandidate(card))
	}
	log.Printf("[SCRAPE] %q: %d product cards", term, len(raw))
	return raw, nil
}

// extractCandidate pulls title, set name, and market price text out of one
// product card. Missing nodes degrade to empty text ("N/A" for the price)
// rather than failing the whole scrape; the normalizer drops unusable rows.
func extractCandidate(card *rod.Element) domain.RawCandidate {
	return domain.RawCandidate{
		Title:     elementText(card, titleSelector, ""),
		SetName:   elementText(card, setNameSelector, ""),
		PriceText: elementText(card, marketPriceSelector, "N/A"),
	}
}

func elementText(parent *rod.Element, selector, fallback string) string {
	has, el, err := parent.Has(selector)
	if err != nil || !has {
		return fallback
	}
	text, err := el.Text()
	if err != nil {
		return fallback
	}
	return strings.TrimSpace(text)
}
