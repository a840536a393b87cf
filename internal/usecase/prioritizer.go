package usecase

import (
	"sort"

	"github.com/accold/mtg-price-api/internal/domain"
)

// prioritize picks the single best candidate from a same-foil-status group.
// Main-set candidates with a parseable price are preferred; if none exist,
// any candidate with a parseable price qualifies. The cheapest wins, with
// original scrape order breaking ties. A group where nothing parses falls
// back to its first candidate.
func prioritize(cands []domain.Candidate) *domain.Candidate {
	if len(cands) == 0 {
		return nil
	}

	pool := filterPriced(cands, true)
	if len(pool) == 0 {
		pool = filterPriced(cands, false)
	}
	if len(pool) == 0 {
		first := cands[0]
		return &first
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return *ParsePrice(pool[i].PriceText).Amount < *ParsePrice(pool[j].PriceText).Amount
	})
	best := pool[0]
	return &best
}

// filterPriced keeps candidates whose price parses; mainSetOnly additionally
// excludes special variants. The returned slice is a copy, so sorting it
// never reorders the caller's group.
func filterPriced(cands []domain.Candidate, mainSetOnly bool) []domain.Candidate {
	var out []domain.Candidate
	for _, c := range cands {
		if mainSetOnly && c.IsSpecial {
			continue
		}
		if ParsePrice(c.PriceText).Amount == nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
