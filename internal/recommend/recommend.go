// Package recommend implements the rule-based up-sell scorer shown on the
// ordering screen. "AI" in the product copy, a deterministic heuristic in
// practice: category affinity, price banding, time of day and a
// main-course-wants-a-drink rule.
package recommend

import (
	"sort"

	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/seafood-house/pos-backend/internal/menu"
)

// Clock abstracts the hour-of-day input so the scorer stays pure and the
// time rules are testable. Hour is local time, 0-23.
type Clock interface {
	Hour() int
}

// DefaultTopN is the suggestion list length on the ordering screen.
const DefaultTopN = 3

// score thresholds and weights of the heuristic; an item needs at least
// qualifyScore points to be suggested.
const (
	categoryWeight      = 2.0
	priceWeight         = 1.0
	timeWeight          = 1.5
	complementaryWeight = 2.0
	qualifyScore        = 2.0
)

// mainCourseCategories trigger the complementary-drink rule.
var mainCourseCategories = map[string]bool{"oyster": true, "shrimp": true}

// Recommend scores every catalog item not already in the cart and returns
// the qualifying top-N by price descending (stable, so catalog order breaks
// ties). An empty cart yields no recommendations. Callers pass the visible
// catalog snapshot; hidden items should already be filtered out.
func Recommend(entries []cart.Entry, catalog []menu.Item, hour, topN int) []menu.Item {
	if len(entries) == 0 {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	cartCategories := make(map[string]bool, len(entries))
	inCart := make(map[string]bool, len(entries))
	priceSum := 0
	hasMainCourse := false
	for _, e := range entries {
		cartCategories[e.CategoryID] = true
		inCart[e.ID] = true
		// average weights each distinct entry once, not by quantity
		priceSum += e.Price
		if mainCourseCategories[e.CategoryID] {
			hasMainCourse = true
		}
	}
	avgPrice := float64(priceSum) / float64(len(entries))

	isLunch := hour >= 11 && hour <= 14
	isDinner := hour >= 17 && hour <= 22

	qualified := make([]menu.Item, 0)
	for _, it := range catalog {
		if inCart[it.ID] || it.Hidden {
			continue
		}
		score := 0.0
		if cartCategories[it.CategoryID] {
			score += categoryWeight
		}
		// an all-zero-price cart gives no price signal
		if avgPrice > 0 && float64(it.Price) >= avgPrice*0.8 && float64(it.Price) <= avgPrice*1.2 {
			score += priceWeight
		}
		if (isLunch && it.CategoryID == "appetizer") || (isDinner && it.CategoryID == "dessert") {
			score += timeWeight
		}
		if hasMainCourse && it.CategoryID == "drink" {
			score += complementaryWeight
		}
		if score >= qualifyScore {
			qualified = append(qualified, it)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Price > qualified[j].Price
	})
	if len(qualified) > topN {
		qualified = qualified[:topN]
	}
	return qualified
}
