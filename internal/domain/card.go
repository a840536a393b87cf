package domain

// RawCandidate is one product card as scraped off the marketplace search
// page. Nothing is guaranteed at this stage: titles may be empty and the
// price text may be missing or "N/A".
type RawCandidate struct {
	Title     string `json:"title"`
	SetName   string `json:"setName"`
	PriceText string `json:"priceText"`
}

// Candidate is a normalized product card considered for matching.
// CleanTitle is always lowercase with the "(foil)" marker stripped, and a
// Candidate with an empty Title is never constructed.
type Candidate struct {
	Title      string `json:"title"`
	SetName    string `json:"setName"`
	PriceText  string `json:"priceText"`
	IsFoil     bool   `json:"isFoil"`
	IsSpecial  bool   `json:"isSpecial"`
	CleanTitle string `json:"cleanTitle"`
}

// PriceQuote is a display price paired with its parsed numeric value.
// Amount is nil exactly when DisplayText does not contain a usable number.
type PriceQuote struct {
	Amount      *float64 `json:"amount,omitempty"`
	DisplayText string   `json:"displayText"`
}

// Outcome is the terminal tag of one pipeline run.
type Outcome string

const (
	// OutcomeMatched means at least one candidate passed matching; the best
	// non-foil and/or foil candidate is present.
	OutcomeMatched Outcome = "matched"

	// OutcomeNoCandidatesScraped means the adapter succeeded but produced
	// nothing usable.
	OutcomeNoCandidatesScraped Outcome = "no_candidates_scraped"

	// OutcomeNoFuzzyMatch means candidates were scraped but none passed
	// matching; Fallback carries the first scraped candidate instead.
	OutcomeNoFuzzyMatch Outcome = "no_fuzzy_match"

	// OutcomeAdapterFailure means the scrape itself failed; Detail carries
	// the error text.
	OutcomeAdapterFailure Outcome = "adapter_failure"
)

// MatchResult is the single answer of one pipeline run.
type MatchResult struct {
	Outcome     Outcome    `json:"outcome"`
	BestNonFoil *Candidate `json:"bestNonFoil,omitempty"`
	BestFoil    *Candidate `json:"bestFoil,omitempty"`
	Fallback    *Candidate `json:"fallback,omitempty"`
	SearchTerm  string     `json:"searchTerm"`
	Detail      string     `json:"detail,omitempty"`
}
