package usecase

import (
	"regexp"
	"strings"

	"github.com/accold/mtg-price-api/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	foilMarkerRegex = regexp.MustCompile(`(?i)\(foil\)`)

	// specialVariantRegex flags promo/alt-art/serialized printings that the
	// prioritizer should avoid when a main-set printing is available.
	specialVariantRegex = regexp.MustCompile(
		`(?i)(serialized|prestige|hyperspace|showcase|alternate art|extended art|organized play|promo)`,
	)
)

// NormalizeCandidates converts raw scraped product cards into Candidates.
// Records whose title is empty after trimming are dropped; everything else
// maps to exactly one Candidate, in the original scrape order.
func NormalizeCandidates(raw []domain.RawCandidate) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(raw))
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		if title == "" {
			continue
		}
		candidates = append(candidates, deriveCandidate(
			title,
			strings.TrimSpace(r.SetName),
			strings.TrimSpace(r.PriceText),
		))
	}
	return candidates
}

// deriveCandidate builds one Candidate from trimmed fields. Only the
// parenthesized "(foil)" marker is stripped when deriving CleanTitle; a bare
// "foil" word stays so card names like "Foil Mystic" keep their meaning.
func deriveCandidate(title, setName, priceText string) domain.Candidate {
	return domain.Candidate{
		Title:      title,
		SetName:    setName,
		PriceText:  priceText,
		IsFoil:     strings.Contains(strings.ToLower(title), "foil"),
		IsSpecial:  specialVariantRegex.MatchString(title + " " + setName),
		CleanTitle: strings.ToLower(strings.TrimSpace(foilMarkerRegex.ReplaceAllString(title, ""))),
	}
}
