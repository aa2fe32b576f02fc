package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []Item {
	return []Item{
		{ID: "1", Name: "Gà chiên", Price: 90000, CategoryID: "appetizer"},
		{ID: "2", Name: "Tôm hấp", Price: 80000, CategoryID: "shrimp"},
		{ID: "3", Name: "Hàu nướng", Price: 120000, CategoryID: "oyster"},
		{ID: "4", Name: "Bia", Price: 20000, CategoryID: "drink"},
		{ID: "5", Name: "Chè đậu", Price: 25000, CategoryID: "dessert", Hidden: true},
		{ID: "6", Name: "Gà nướng", Price: 95000, CategoryID: "appetizer"},
	}
}

func TestFilterFoldsAccentsAndCase(t *testing.T) {
	catalog := sampleCatalog()

	got := Filter(catalog, "ga", CategoryAll)
	assert.Len(t, got, 2)
	assert.Equal(t, "Gà chiên", got[0].Name)
	assert.Equal(t, "Gà nướng", got[1].Name)

	// accented query against accented name, mixed case
	got = Filter(catalog, "TÔM", CategoryAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterExcludesHidden(t *testing.T) {
	got := Filter(sampleCatalog(), "", CategoryAll)
	for _, it := range got {
		assert.False(t, it.Hidden, "hidden item %s leaked into results", it.ID)
	}
	assert.Len(t, got, 5)

	// hidden stays excluded even when the query matches it
	got = Filter(sampleCatalog(), "che", CategoryAll)
	assert.Empty(t, got)
}

func TestFilterByCategory(t *testing.T) {
	catalog := sampleCatalog()

	got := Filter(catalog, "", "appetizer")
	assert.Len(t, got, 2)

	// query applies on top of the tab restriction
	got = Filter(catalog, "chien", "appetizer")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// nothing in tab
	got = Filter(catalog, "", "dessert")
	assert.Empty(t, got)
}

func TestFilterEmptyInputs(t *testing.T) {
	assert.Empty(t, Filter(nil, "ga", CategoryAll))
	assert.Empty(t, Filter([]Item{}, "", CategoryAll))
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	catalog := sampleCatalog()
	got := Filter(catalog, "", CategoryAll)
	prev := -1
	for _, it := range got {
		idx := -1
		for i, c := range catalog {
			if c.ID == it.ID {
				idx = i
			}
		}
		assert.Greater(t, idx, prev, "result order diverged from catalog order")
		prev = idx
	}
}

func TestSearchSuggestionsTwoOfThreeSignals(t *testing.T) {
	catalog := []Item{
		{ID: "1", Name: "Gà chiên", Price: 90000, CategoryID: "appetizer"},
		// same category + price within 20% of the top hit: qualifies
		{ID: "2", Name: "Nem rán", Price: 95000, CategoryID: "appetizer"},
		// same category only: does not qualify
		{ID: "3", Name: "Súp cua", Price: 300000, CategoryID: "appetizer"},
		// price band only: does not qualify
		{ID: "4", Name: "Hàu nướng", Price: 100000, CategoryID: "oyster"},
	}
	results := Filter(catalog, "ga chien", CategoryAll)
	assert.Len(t, results, 1)

	sugg := SearchSuggestions(catalog, results, "ga chien")
	assert.Len(t, sugg, 1)
	assert.Equal(t, "2", sugg[0].ID)
}

func TestSearchSuggestionsExcludePrimaryResults(t *testing.T) {
	catalog := sampleCatalog()
	results := Filter(catalog, "ga", CategoryAll)
	sugg := SearchSuggestions(catalog, results, "ga")
	for _, s := range sugg {
		for _, r := range results {
			assert.NotEqual(t, r.ID, s.ID, "primary result resurfaced as suggestion")
		}
	}
}

func TestSearchSuggestionsNoPrimaryHits(t *testing.T) {
	// with no top hit only the similarity signal can fire, which is never
	// enough on its own
	catalog := sampleCatalog()
	results := Filter(catalog, "xyzzy", CategoryAll)
	assert.Empty(t, results)
	assert.Empty(t, SearchSuggestions(catalog, results, "xyzzy"))
}

func TestPositionalSimilarity(t *testing.T) {
	// per-index comparison over the longer length, not edit distance
	assert.InDelta(t, 1.0, positionalSimilarity("bia", "bia"), 1e-9)
	assert.InDelta(t, 3.0/7.0, positionalSimilarity("bia", "bia hoi"), 1e-9)
	// a single leading insertion destroys the score, unlike edit distance
	assert.InDelta(t, 0.0, positionalSimilarity("abia", "bia"), 1e-9)
	// multi-byte runes count as one position each
	assert.InDelta(t, 2.0/3.0, positionalSimilarity("chè", "che"), 1e-9)
	assert.Equal(t, 0.0, positionalSimilarity("", ""))
}
