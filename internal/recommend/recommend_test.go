package recommend

import (
	"testing"

	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/seafood-house/pos-backend/internal/menu"
	"github.com/stretchr/testify/assert"
)

func entry(it menu.Item, qty int) cart.Entry {
	return cart.Entry{Item: it, Quantity: qty}
}

var (
	tomHap  = menu.Item{ID: "1", Name: "Tôm hấp", Price: 80000, CategoryID: "shrimp"}
	biaItem = menu.Item{ID: "2", Name: "Bia", Price: 20000, CategoryID: "drink"}
)

func TestEmptyCartNoRecommendations(t *testing.T) {
	catalog := []menu.Item{tomHap, biaItem}
	assert.Empty(t, Recommend(nil, catalog, 12, DefaultTopN))
	assert.Empty(t, Recommend([]cart.Entry{}, catalog, 19, DefaultTopN))
}

func TestEmptyCatalogNoRecommendations(t *testing.T) {
	entries := []cart.Entry{entry(tomHap, 1)}
	assert.Empty(t, Recommend(entries, nil, 12, DefaultTopN))
}

func TestComplementaryDrinkForMainCourse(t *testing.T) {
	// shrimp in the cart at dinner time suggests the drink
	catalog := []menu.Item{tomHap, biaItem}
	entries := []cart.Entry{entry(tomHap, 1)}

	got := Recommend(entries, catalog, 19, DefaultTopN)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID, "drink should qualify via the complementary rule alone")
}

func TestCartItemsNeverRecommended(t *testing.T) {
	catalog := []menu.Item{tomHap, biaItem}
	entries := []cart.Entry{entry(tomHap, 1), entry(biaItem, 2)}
	got := Recommend(entries, catalog, 19, DefaultTopN)
	assert.Empty(t, got)
}

func TestCategoryMatchAloneQualifies(t *testing.T) {
	other := menu.Item{ID: "3", Name: "Tôm nướng", Price: 500000, CategoryID: "shrimp"}
	catalog := []menu.Item{tomHap, other}
	entries := []cart.Entry{entry(tomHap, 1)}

	// hour 3: no time signal; price way out of band; category alone = 2 points
	got := Recommend(entries, catalog, 3, DefaultTopN)
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestPriceBandBoundaries(t *testing.T) {
	base := menu.Item{ID: "b", Name: "Base", Price: 100000, CategoryID: "oyster"}
	inBand := menu.Item{ID: "in", Name: "In", Price: 115000, CategoryID: "oyster"}
	outBand := menu.Item{ID: "out", Name: "Out", Price: 130000, CategoryID: "dessert"}
	edge := menu.Item{ID: "edge", Name: "Edge", Price: 120000, CategoryID: "oyster"}

	entries := []cart.Entry{entry(base, 1)}
	catalog := []menu.Item{inBand, outBand, edge}

	// hour 3: no time bonus. inBand/edge get category(2)+price(1)=3,
	// outBand gets nothing.
	got := Recommend(entries, catalog, 3, DefaultTopN)
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, "in")
	assert.Contains(t, ids, "edge", "1.2x boundary is inclusive")
	assert.NotContains(t, ids, "out")
}

func TestAveragePriceWeighsEntriesNotQuantities(t *testing.T) {
	cheap := menu.Item{ID: "c", Name: "Cheap", Price: 10000, CategoryID: "drink"}
	dear := menu.Item{ID: "d", Name: "Dear", Price: 90000, CategoryID: "oyster"}
	// avg = (10000+90000)/2 = 50000 regardless of quantity 10 on the cheap one
	entries := []cart.Entry{entry(cheap, 10), entry(dear, 1)}

	inBand := menu.Item{ID: "x", Name: "X", Price: 55000, CategoryID: "drink"}
	catalog := []menu.Item{inBand}

	// oyster in cart => complementary drink (2) + price in [40000,60000] (1)
	got := Recommend(entries, catalog, 3, DefaultTopN)
	assert.Len(t, got, 1)
}

func TestZeroAveragePriceGivesNoPriceSignal(t *testing.T) {
	free := menu.Item{ID: "f", Name: "Free", Price: 0, CategoryID: "dessert"}
	zeroToo := menu.Item{ID: "z", Name: "Zero", Price: 0, CategoryID: "appetizer"}
	entries := []cart.Entry{entry(free, 1)}

	// no division-by-zero qualification: price 0 vs avg 0 must not count
	got := Recommend(entries, []menu.Item{zeroToo}, 3, DefaultTopN)
	assert.Empty(t, got)
}

func TestTimeOfDayRules(t *testing.T) {
	main := menu.Item{ID: "m", Name: "Hàu", Price: 100000, CategoryID: "oyster"}
	appetizer := menu.Item{ID: "a", Name: "Gỏi", Price: 50000, CategoryID: "appetizer"}
	dessert := menu.Item{ID: "d", Name: "Chè", Price: 30000, CategoryID: "dessert"}
	entries := []cart.Entry{entry(main, 1)}
	catalog := []menu.Item{appetizer, dessert}

	// lunch: appetizer gets 1.5, not enough alone; dessert gets nothing
	assert.Empty(t, Recommend(entries, catalog, 12, DefaultTopN))

	// add price signal: appetizer at 90000 is in [80000,120000] => 1+1.5 >= 2
	appetizer.Price = 90000
	got := Recommend(entries, []menu.Item{appetizer}, 12, DefaultTopN)
	assert.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	// same item outside lunch hours no longer qualifies
	assert.Empty(t, Recommend(entries, []menu.Item{appetizer}, 15, DefaultTopN))

	// dinner: dessert in price band qualifies
	dessert.Price = 85000
	got = Recommend(entries, []menu.Item{dessert}, 20, DefaultTopN)
	assert.Len(t, got, 1)
	assert.Equal(t, "d", got[0].ID)
}

func TestRankingPriceDescendingStableTopN(t *testing.T) {
	main := menu.Item{ID: "m", Name: "Tôm", Price: 100000, CategoryID: "shrimp"}
	entries := []cart.Entry{entry(main, 1)}
	catalog := []menu.Item{
		{ID: "d1", Name: "Bia", Price: 20000, CategoryID: "drink"},
		{ID: "d2", Name: "Rượu", Price: 90000, CategoryID: "drink"},
		{ID: "d3", Name: "Trà", Price: 20000, CategoryID: "drink"},
		{ID: "d4", Name: "Nước", Price: 15000, CategoryID: "drink"},
	}

	got := Recommend(entries, catalog, 3, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, "d2", got[0].ID)
	// d1 and d3 tie on price; catalog order decides
	assert.Equal(t, "d1", got[1].ID)
	assert.Equal(t, "d3", got[2].ID)
}
