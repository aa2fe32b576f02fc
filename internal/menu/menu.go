package menu

// Item represents one orderable dish and maps to a `food_items` document.
// JSON tags follow the camelCase convention used across the API; firestore
// tags match the document field names written by the management screens.
type Item struct {
	ID          string `json:"id" firestore:"-"`
	Name        string `json:"name" firestore:"name"`
	Description string `json:"description,omitempty" firestore:"description"`
	Price       int    `json:"price" firestore:"price"`
	CategoryID  string `json:"categoryId" firestore:"category_id"`
	ImageURL    string `json:"image,omitempty" firestore:"image"`
	Hidden      bool   `json:"hidden" firestore:"hidden"`
}

// CategoryAll is the pseudo-category that disables tab filtering.
const CategoryAll = "all"

// Categories lists the ordering tabs in display order.
var Categories = []string{"drink", "oyster", "shrimp", "appetizer", "dessert"}

// KnownCategory reports whether id names a real category tab.
func KnownCategory(id string) bool {
	for _, c := range Categories {
		if c == id {
			return true
		}
	}
	return false
}
