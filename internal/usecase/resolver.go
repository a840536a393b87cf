package usecase

import (
	"github.com/accold/mtg-price-api/internal/domain"
)

// Resolve runs the full pipeline over raw scraped records: normalize, match,
// partition by foil status, prioritize each partition. It is pure and total:
// every input maps to exactly one MatchResult and it never fails.
func Resolve(searchTerm string, raw []domain.RawCandidate) domain.MatchResult {
	result := domain.MatchResult{SearchTerm: searchTerm}

	candidates := NormalizeCandidates(raw)
	if len(candidates) == 0 {
		result.Outcome = domain.OutcomeNoCandidatesScraped
		return result
	}

	matching := MatchingSet(searchTerm, candidates)
	if len(matching) == 0 {
		// Degrade to a best-effort answer: the first scraped candidate.
		fallback := candidates[0]
		result.Outcome = domain.OutcomeNoFuzzyMatch
		result.Fallback = &fallback
		return result
	}

	var nonFoil, foil []domain.Candidate
	for _, c := range matching {
		if c.IsFoil {
			foil = append(foil, c)
		} else {
			nonFoil = append(nonFoil, c)
		}
	}

	result.Outcome = domain.OutcomeMatched
	result.BestNonFoil = prioritize(nonFoil)
	result.BestFoil = prioritize(foil)
	return result
}
