package usecase

import (
	"strconv"
	"strings"

	"github.com/accold/mtg-price-api/internal/domain"
)

// ParsePrice converts display price text into a PriceQuote. It is pure and
// total: text that does not contain a usable non-negative number yields a
// quote with a nil amount, never an error.
func ParsePrice(text string) domain.PriceQuote {
	quote := domain.PriceQuote{DisplayText: text}
	if text == "" || text == "N/A" {
		return quote
	}

	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return quote
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return quote
	}
	quote.Amount = &amount
	return quote
}
