package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seafood-house/pos-backend/internal/order"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// Repository settles invoices and serves payment history. Settling is one
// atomic step against the backing store: record the payment, free the table
// and reset the invoice.
type Repository interface {
	Settle(ctx context.Context, invoiceID, tableID string) (Record, error)
	History(ctx context.Context) ([]Record, error)
}

// OpenInvoice seeds the in-memory repository with a payable invoice.
type OpenInvoice struct {
	Invoice order.Invoice
	Items   []order.InvoiceItem
}

// InMemoryRepository is used for tests and local runs.
type InMemoryRepository struct {
	mu       sync.Mutex
	invoices map[string]OpenInvoice
	records  []Record
	// TableStatus tracks the simulated table flips for assertions.
	TableStatus map[string]string
	now         func() time.Time
}

func NewInMemoryRepository(invoices map[string]OpenInvoice) *InMemoryRepository {
	if invoices == nil {
		invoices = make(map[string]OpenInvoice)
	}
	return &InMemoryRepository{
		invoices:    invoices,
		TableStatus: make(map[string]string),
		now:         time.Now,
	}
}

// SetNow overrides the clock for deterministic history ordering in tests.
func (r *InMemoryRepository) SetNow(now func() time.Time) { r.now = now }

func (r *InMemoryRepository) Settle(ctx context.Context, invoiceID, tableID string) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	open, ok := r.invoices[invoiceID]
	if !ok {
		return Record{}, ErrInvoiceNotFound
	}

	rec := Record{
		ID:          uuid.NewString(),
		InvoiceID:   invoiceID,
		TableNumber: open.Invoice.TableNumber,
		TotalAmount: open.Invoice.TotalAmount,
		PaidAt:      r.now(),
		UserID:      open.Invoice.UserID,
		Items:       open.Items,
	}
	r.records = append(r.records, rec)
	delete(r.invoices, invoiceID)
	if tableID != "" {
		r.TableStatus[tableID] = "available"
	}
	return rec, nil
}

func (r *InMemoryRepository) History(ctx context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// newest first
	out := make([]Record, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}
