package payment

import (
	"time"

	"github.com/seafood-house/pos-backend/internal/order"
)

// Record maps to a `payment_history` document. The mixed field naming
// (invoiceId vs user_id) matches what the payment screens have always
// written; changing it would orphan existing history.
type Record struct {
	ID          string              `json:"id" firestore:"-"`
	InvoiceID   string              `json:"invoiceId" firestore:"invoiceId"`
	TableNumber int                 `json:"tableNumber" firestore:"tableNumber"`
	TotalAmount int                 `json:"totalAmount" firestore:"totalAmount"`
	PaidAt      time.Time           `json:"paidAt" firestore:"paid_at"`
	UserID      string              `json:"userId" firestore:"user_id"`
	Items       []order.InvoiceItem `json:"items" firestore:"items"`
}

// Summary is the revenue report: overall totals plus per-day buckets,
// newest day first.
type Summary struct {
	TotalRevenue int            `json:"totalRevenue"`
	TotalOrders  int            `json:"totalOrders"`
	Daily        []DailyRevenue `json:"daily"`
}

type DailyRevenue struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}
