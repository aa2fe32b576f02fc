package order

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/seafood-house/pos-backend/internal/cart"
)

const (
	invoicesCollection     = "invoices"
	invoiceItemsCollection = "invoice_items"
	tablesCollection       = "tables"
)

// FirestoreSubmitter writes finalized carts to the `invoices` collection.
// A new order creates the invoice, batches one `invoice_items` document per
// dish and marks the table as ordered; ordering again on an open invoice
// appends items and bumps the running total.
type FirestoreSubmitter struct {
	client *firestore.Client
}

func NewFirestoreSubmitter(client *firestore.Client) *FirestoreSubmitter {
	return &FirestoreSubmitter{client: client}
}

func (s *FirestoreSubmitter) Submit(ctx context.Context, entries []cart.Entry, tc TableContext) (string, error) {
	if tc.InvoiceID != "" {
		return s.appendToInvoice(ctx, entries, tc)
	}
	return s.createInvoice(ctx, entries, tc)
}

func (s *FirestoreSubmitter) createInvoice(ctx context.Context, entries []cart.Entry, tc TableContext) (string, error) {
	total := 0
	for _, e := range entries {
		total += e.Price * e.Quantity
	}

	ref, _, err := s.client.Collection(invoicesCollection).Add(ctx, Invoice{
		Date:        time.Now(),
		TotalAmount: total,
		UserID:      tc.UserID,
		TableNumber: tc.TableNumber,
	})
	if err != nil {
		return "", fmt.Errorf("create invoice: %w", err)
	}

	batch := s.client.Batch()
	for _, e := range entries {
		itemRef := ref.Collection(invoiceItemsCollection).NewDoc()
		batch.Set(itemRef, InvoiceItem{FoodItemID: e.ID, Quantity: e.Quantity, Price: e.Price})
	}
	if tc.TableID != "" {
		tableRef := s.client.Collection(tablesCollection).Doc(tc.TableID)
		batch.Update(tableRef, []firestore.Update{{Path: "status", Value: "ordered"}})
	}
	if _, err := batch.Commit(ctx); err != nil {
		return "", fmt.Errorf("write invoice items: %w", err)
	}
	return ref.ID, nil
}

func (s *FirestoreSubmitter) appendToInvoice(ctx context.Context, entries []cart.Entry, tc TableContext) (string, error) {
	ref := s.client.Collection(invoicesCollection).Doc(tc.InvoiceID)
	doc, err := ref.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("load invoice %s: %w", tc.InvoiceID, err)
	}

	var inv Invoice
	if err := doc.DataTo(&inv); err != nil {
		return "", fmt.Errorf("decode invoice %s: %w", tc.InvoiceID, err)
	}
	newTotal := inv.TotalAmount
	for _, e := range entries {
		newTotal += e.Price * e.Quantity
	}

	batch := s.client.Batch()
	for _, e := range entries {
		itemRef := ref.Collection(invoiceItemsCollection).NewDoc()
		batch.Set(itemRef, InvoiceItem{FoodItemID: e.ID, Quantity: e.Quantity, Price: e.Price})
	}
	batch.Update(ref, []firestore.Update{{Path: "total_amount", Value: newTotal}})
	if _, err := batch.Commit(ctx); err != nil {
		return "", fmt.Errorf("append invoice items: %w", err)
	}
	return tc.InvoiceID, nil
}
