package menu

import (
	"strings"
	"unicode/utf8"

	"github.com/seafood-house/pos-backend/internal/textfold"
)

// Filter returns the visible subset of catalog matching the search query and
// the active category tab. Hidden items are always excluded. When category is
// CategoryAll no tab restriction applies; an empty query returns the
// category-filtered set unchanged. Matching is an accent-insensitive
// substring test on folded names and the result preserves catalog order.
func Filter(catalog []Item, query, category string) []Item {
	out := make([]Item, 0, len(catalog))
	folded := textfold.Fold(query)
	for _, it := range catalog {
		if it.Hidden {
			continue
		}
		if category != CategoryAll && it.CategoryID != category {
			continue
		}
		if folded != "" && !strings.Contains(textfold.Fold(it.Name), folded) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// maxSuggestions caps the secondary suggestion feed.
const maxSuggestions = 3

// SearchSuggestions surfaces up to three extra items alongside a primary
// search result set. An item qualifies when at least two of three signals
// hold: same category as the top hit, price within ±20% of the top hit, or
// positional name similarity against the query above 0.6 (only checked for
// folded queries longer than 2 characters). Items already in the primary
// results are excluded.
func SearchSuggestions(catalog, results []Item, query string) []Item {
	folded := textfold.Fold(query)
	if folded == "" {
		return nil
	}

	inResults := make(map[string]bool, len(results))
	for _, r := range results {
		inResults[r.ID] = true
	}
	var top *Item
	if len(results) > 0 {
		top = &results[0]
	}

	out := make([]Item, 0, maxSuggestions)
	for _, it := range catalog {
		if it.Hidden || inResults[it.ID] {
			continue
		}
		signals := 0
		if top != nil && it.CategoryID == top.CategoryID {
			signals++
		}
		if top != nil && float64(it.Price) >= float64(top.Price)*0.8 && float64(it.Price) <= float64(top.Price)*1.2 {
			signals++
		}
		if utf8.RuneCountInString(folded) > 2 && positionalSimilarity(textfold.Fold(it.Name), folded) > 0.6 {
			signals++
		}
		if signals >= 2 {
			out = append(out, it)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// positionalSimilarity compares runes at equal indices up to the shorter
// string's length and divides matches by the longer rune count. Not an edit
// distance: the suggestion feed depends on these exact scores.
func positionalSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 0
	}
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(matches) / float64(longer)
}
