package payment

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/seafood-house/pos-backend/internal/order"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	historyCollection      = "payment_history"
	invoicesCollection     = "invoices"
	invoiceItemsCollection = "invoice_items"
	tablesCollection       = "tables"
)

type FirestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{client: client}
}

// Settle reads the invoice and its items, then commits one batch: append
// the payment record, free the table and reset the invoice document.
func (r *FirestoreRepository) Settle(ctx context.Context, invoiceID, tableID string) (Record, error) {
	invoiceRef := r.client.Collection(invoicesCollection).Doc(invoiceID)
	doc, err := invoiceRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Record{}, ErrInvoiceNotFound
		}
		return Record{}, fmt.Errorf("load invoice %s: %w", invoiceID, err)
	}
	var inv order.Invoice
	if err := doc.DataTo(&inv); err != nil {
		return Record{}, fmt.Errorf("decode invoice %s: %w", invoiceID, err)
	}

	items, err := r.invoiceItems(ctx, invoiceRef)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		InvoiceID:   invoiceID,
		TableNumber: inv.TableNumber,
		TotalAmount: inv.TotalAmount,
		PaidAt:      time.Now(),
		UserID:      inv.UserID,
		Items:       items,
	}

	recRef := r.client.Collection(historyCollection).Doc(uuid.NewString())
	batch := r.client.Batch()
	batch.Set(recRef, rec)
	if tableID != "" {
		tableRef := r.client.Collection(tablesCollection).Doc(tableID)
		batch.Update(tableRef, []firestore.Update{{Path: "status", Value: "available"}})
	}
	// reset rather than delete so the table's standing invoice doc keeps
	// its id across seatings
	batch.Set(invoiceRef, order.Invoice{})
	if _, err := batch.Commit(ctx); err != nil {
		return Record{}, fmt.Errorf("settle invoice %s: %w", invoiceID, err)
	}
	rec.ID = recRef.ID
	return rec, nil
}

func (r *FirestoreRepository) invoiceItems(ctx context.Context, invoiceRef *firestore.DocumentRef) ([]order.InvoiceItem, error) {
	iter := invoiceRef.Collection(invoiceItemsCollection).Documents(ctx)
	defer iter.Stop()

	items := make([]order.InvoiceItem, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list invoice items: %w", err)
		}
		var it order.InvoiceItem
		if err := doc.DataTo(&it); err != nil {
			return nil, fmt.Errorf("decode invoice item %s: %w", doc.Ref.ID, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *FirestoreRepository) History(ctx context.Context) ([]Record, error) {
	iter := r.client.Collection(historyCollection).OrderBy("paid_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]Record, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list payment history: %w", err)
		}
		var rec Record
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode payment %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}
