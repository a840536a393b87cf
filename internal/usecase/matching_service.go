package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/accold/mtg-price-api/internal/domain"
)

var nonWordRegex = regexp.MustCompile(`[^a-z0-9]+`)

// matchRatio is the fraction of search words that must land on a title word
// for the fuzzy test to pass (floored, minimum one word).
const matchRatio = 0.8

// MatchingSet returns the candidates the search term plausibly refers to,
// preserving scrape order.
func MatchingSet(term string, candidates []domain.Candidate) []domain.Candidate {
	var matched []domain.Candidate
	for _, c := range candidates {
		if Matches(term, c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Matches reports whether the search term refers to the candidate. The
// order-sensitive shortcut fires when the normalized term is a substring of
// the normalized title or clean title; otherwise the word-level fuzzy test
// runs against both title forms.
func Matches(term string, c domain.Candidate) bool {
	norm := normalizeForMatch(term)
	if norm != "" &&
		(strings.Contains(normalizeForMatch(c.Title), norm) ||
			strings.Contains(normalizeForMatch(c.CleanTitle), norm)) {
		return true
	}
	return fuzzyMatch(term, c.Title) || fuzzyMatch(term, c.CleanTitle)
}

// fuzzyMatch is the word-overlap heuristic: each lowercase search word must
// land on some title word, and at least 80% of them (minimum one) have to
// land. Word order is irrelevant.
func fuzzyMatch(term, title string) bool {
	searchWords := strings.Fields(strings.ToLower(term))
	if len(searchWords) == 0 {
		return false
	}
	titleWords := strings.Fields(strings.ToLower(title))

	matched := 0
	for _, w := range searchWords {
		for _, tw := range titleWords {
			if wordsAlike(w, tw) {
				matched++
				break
			}
		}
	}

	need := int(float64(len(searchWords)) * matchRatio)
	if need < 1 {
		need = 1
	}
	return matched >= need
}

// wordsAlike tolerates containment ("char" in "charizard") and a differing
// final character ("bolts" vs "boltz"), which absorbs simple plurals and
// one-letter typos.
func wordsAlike(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	diff := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if diff < -1 || diff > 1 {
		return false
	}
	return dropLastRune(a) == dropLastRune(b)
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// normalizeForMatch lowercases and strips every non-alphanumeric rune so the
// substring shortcut survives punctuation and spacing differences.
func normalizeForMatch(s string) string {
	return nonWordRegex.ReplaceAllString(strings.ToLower(s), "")
}
