package table

// Table status values. A table flips to ordered when an invoice is opened
// for it and back to available once the bill is settled.
const (
	StatusAvailable = "available"
	StatusOrdered   = "ordered"
)

// Table maps to a `tables` document.
type Table struct {
	ID          string `json:"id" firestore:"-"`
	TableNumber int    `json:"tableNumber" firestore:"table_number"`
	Seats       int    `json:"seats" firestore:"seats"`
	Status      string `json:"status" firestore:"status"`
}

func ValidStatus(s string) bool {
	return s == StatusAvailable || s == StatusOrdered
}
