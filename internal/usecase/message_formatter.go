package usecase

import (
	"fmt"

	"github.com/accold/mtg-price-api/internal/domain"
)

// Chat integrations hard-cap message length; anything longer is cut to 387
// characters plus a three-character ellipsis marker.
const (
	maxMessageLen = 390
	truncateAt    = 387
)

// FormatMessage renders a MatchResult as a single chat line addressed to
// displayName.
func FormatMessage(result domain.MatchResult, displayName string) string {
	var msg string
	switch result.Outcome {
	case domain.OutcomeMatched:
		msg = formatMatched(result, displayName)
	case domain.OutcomeNoFuzzyMatch:
		f := result.Fallback
		msg = fmt.Sprintf("%s, no exact match for '%s'. Found: %s (%s) | Price: %s",
			displayName, result.SearchTerm, f.Title, f.SetName, f.PriceText)
	case domain.OutcomeNoCandidatesScraped:
		msg = fmt.Sprintf("%s, no product cards found for %q", displayName, result.SearchTerm)
	case domain.OutcomeAdapterFailure:
		msg = fmt.Sprintf("%s, failed to fetch card/product %q - %s",
			displayName, result.SearchTerm, result.Detail)
	}
	return truncateMessage(msg)
}

func formatMatched(result domain.MatchResult, displayName string) string {
	nonFoil, foil := result.BestNonFoil, result.BestFoil
	switch {
	case nonFoil != nil && foil != nil:
		return fmt.Sprintf("%s, Card: %s (%s) | Regular: %s | Foil: %s",
			displayName, nonFoil.CleanTitle, nonFoil.SetName, nonFoil.PriceText, foil.PriceText)
	case nonFoil != nil:
		return fmt.Sprintf("%s, Card: %s (%s) | Market: %s | Foil: Not found",
			displayName, nonFoil.Title, nonFoil.SetName, nonFoil.PriceText)
	case foil != nil:
		return fmt.Sprintf("%s, Card: %s (%s) | Regular: Not found | Foil: %s",
			displayName, foil.CleanTitle, foil.SetName, foil.PriceText)
	}
	// Unreachable for results produced by Resolve: a matched result always
	// carries at least one best candidate.
	return displayName + ", "
}

// truncateMessage counts characters, not bytes, so a cut inside a multibyte
// card name never produces invalid UTF-8.
func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxMessageLen {
		return msg
	}
	return string(runes[:truncateAt]) + "..."
}
