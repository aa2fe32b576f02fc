package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seafood-house/pos-backend/internal/cart"
)

var ErrEmptyCart = errors.New("cart is empty")

// Invoice maps to an `invoices` document. Ordered dishes live in the
// `invoice_items` subcollection, one document each.
type Invoice struct {
	ID          string    `json:"invoiceId" firestore:"-"`
	Date        time.Time `json:"date" firestore:"date"`
	TotalAmount int       `json:"totalAmount" firestore:"total_amount"`
	UserID      string    `json:"userId" firestore:"user_id"`
	TableNumber int       `json:"tableNumber" firestore:"table_number"`
}

type InvoiceItem struct {
	FoodItemID string `json:"foodItemId" firestore:"food_item_id"`
	Quantity   int    `json:"quantity" firestore:"quantity"`
	Price      int    `json:"price" firestore:"price"`
}

// TableContext identifies where an order is being placed. A non-empty
// InvoiceID appends the new round of dishes to an open invoice instead of
// creating one.
type TableContext struct {
	TableID     string `json:"tableId"`
	TableNumber int    `json:"tableNumber"`
	UserID      string `json:"userId"`
	InvoiceID   string `json:"invoiceId,omitempty"`
}

// Submitter is the boundary to the invoice store. The checkout flow only
// needs the resulting invoice id or an error.
type Submitter interface {
	Submit(ctx context.Context, entries []cart.Entry, tc TableContext) (string, error)
}

// InMemorySubmitter records submissions for tests and local runs.
type InMemorySubmitter struct {
	mu          sync.Mutex
	Submissions map[string][]cart.Entry
	FailWith    error
}

func NewInMemorySubmitter() *InMemorySubmitter {
	return &InMemorySubmitter{Submissions: make(map[string][]cart.Entry)}
}

func (s *InMemorySubmitter) Submit(ctx context.Context, entries []cart.Entry, tc TableContext) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return "", s.FailWith
	}
	id := tc.InvoiceID
	if id == "" {
		id = uuid.NewString()
	}
	s.Submissions[id] = append(s.Submissions[id], entries...)
	return id, nil
}
