package usecase

import (
	"strings"
	"testing"

	"github.com/accold/mtg-price-api/internal/domain"
)

func TestResolve(t *testing.T) {
	t.Run("matched result with regular and foil printings", func(t *testing.T) {
		raw := []domain.RawCandidate{
			{Title: "Pikachu", PriceText: "$3.50", SetName: "Base Set"},
			{Title: "Pikachu (Foil)", PriceText: "$8.00", SetName: "Base Set"},
		}

		result := Resolve("pikachu", raw)
		if result.Outcome != domain.OutcomeMatched {
			t.Fatalf("Outcome = %v, want Matched", result.Outcome)
		}
		if result.BestNonFoil == nil || result.BestNonFoil.PriceText != "$3.50" {
			t.Errorf("BestNonFoil = %+v, want the $3.50 printing", result.BestNonFoil)
		}
		if result.BestFoil == nil || result.BestFoil.PriceText != "$8.00" {
			t.Errorf("BestFoil = %+v, want the $8.00 printing", result.BestFoil)
		}

		msg := FormatMessage(result, "Ash")
		want := "Ash, Card: pikachu (Base Set) | Regular: $3.50 | Foil: $8.00"
		if msg != want {
			t.Errorf("message = %q, want %q", msg, want)
		}
	})

	t.Run("empty scrape yields NoCandidatesScraped", func(t *testing.T) {
		result := Resolve("pikachu", nil)
		if result.Outcome != domain.OutcomeNoCandidatesScraped {
			t.Fatalf("Outcome = %v, want NoCandidatesScraped", result.Outcome)
		}

		msg := FormatMessage(result, "Ash")
		if !strings.Contains(msg, "no product cards found") {
			t.Errorf("message = %q, want it to mention no product cards", msg)
		}
	})

	t.Run("all-empty titles also yield NoCandidatesScraped", func(t *testing.T) {
		raw := []domain.RawCandidate{{Title: ""}, {Title: "  "}}
		result := Resolve("pikachu", raw)
		if result.Outcome != domain.OutcomeNoCandidatesScraped {
			t.Fatalf("Outcome = %v, want NoCandidatesScraped", result.Outcome)
		}
	})

	t.Run("no fuzzy match falls back to the first scraped candidate", func(t *testing.T) {
		raw := []domain.RawCandidate{
			{Title: "Blastoise", PriceText: "$12.00", SetName: "Base Set"},
			{Title: "Venusaur", PriceText: "$10.00", SetName: "Base Set"},
		}

		result := Resolve("pikachu", raw)
		if result.Outcome != domain.OutcomeNoFuzzyMatch {
			t.Fatalf("Outcome = %v, want NoFuzzyMatch", result.Outcome)
		}
		if result.Fallback == nil || result.Fallback.Title != "Blastoise" {
			t.Errorf("Fallback = %+v, want the first scraped candidate", result.Fallback)
		}
		if result.BestNonFoil != nil || result.BestFoil != nil {
			t.Error("fallback results must not carry best candidates")
		}
	})

	t.Run("foil-only matches leave BestNonFoil empty", func(t *testing.T) {
		raw := []domain.RawCandidate{
			{Title: "Pikachu (Foil)", PriceText: "$8.00", SetName: "Base Set"},
		}

		result := Resolve("pikachu", raw)
		if result.Outcome != domain.OutcomeMatched {
			t.Fatalf("Outcome = %v, want Matched", result.Outcome)
		}
		if result.BestNonFoil != nil {
			t.Errorf("BestNonFoil = %+v, want nil", result.BestNonFoil)
		}
		if result.BestFoil == nil {
			t.Fatal("BestFoil = nil, want the foil printing")
		}
	})

	t.Run("never panics on malformed input", func(t *testing.T) {
		raw := []domain.RawCandidate{
			{Title: "", SetName: "", PriceText: ""},
			{Title: "???", SetName: "", PriceText: "not a price"},
		}
		result := Resolve("", raw)
		if result.Outcome == "" {
			t.Error("every input must map to exactly one outcome")
		}
	})
}
