package order

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/seafood-house/pos-backend/internal/menu"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarts struct {
	entries map[string][]cart.Entry
	cleared []string
}

func (f *fakeCarts) Entries(table string) []cart.Entry { return f.entries[table] }
func (f *fakeCarts) Clear(table string)                { f.cleared = append(f.cleared, table) }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func twoDishes() []cart.Entry {
	return []cart.Entry{
		{Item: menu.Item{ID: "tom", Name: "Tôm hấp", Price: 80000, CategoryID: "shrimp"}, Quantity: 2},
		{Item: menu.Item{ID: "bia", Name: "Bia", Price: 20000, CategoryID: "drink"}, Quantity: 1},
	}
}

func TestCheckoutSubmitsAndClears(t *testing.T) {
	carts := &fakeCarts{entries: map[string][]cart.Entry{"t1": twoDishes()}}
	sub := NewInMemorySubmitter()
	s := NewService(carts, sub, quietLogger())

	id, err := s.Checkout(context.Background(), "t1", TableContext{TableID: "t1", TableNumber: 5, UserID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Len(t, sub.Submissions[id], 2)
	assert.Equal(t, []string{"t1"}, carts.cleared)
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	carts := &fakeCarts{entries: map[string][]cart.Entry{"t1": twoDishes()}}
	sub := NewInMemorySubmitter()
	sub.FailWith = errors.New("firestore unavailable")
	s := NewService(carts, sub, quietLogger())

	_, err := s.Checkout(context.Background(), "t1", TableContext{TableID: "t1"})
	require.Error(t, err)
	assert.Empty(t, carts.cleared, "cart must not be cleared on submission failure")
}

func TestCheckoutEmptyCart(t *testing.T) {
	carts := &fakeCarts{entries: map[string][]cart.Entry{}}
	s := NewService(carts, NewInMemorySubmitter(), quietLogger())

	_, err := s.Checkout(context.Background(), "t1", TableContext{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutAppendsToOpenInvoice(t *testing.T) {
	carts := &fakeCarts{entries: map[string][]cart.Entry{"t1": twoDishes()}}
	sub := NewInMemorySubmitter()
	s := NewService(carts, sub, quietLogger())

	id, err := s.Checkout(context.Background(), "t1", TableContext{TableID: "t1", InvoiceID: "inv-9"})
	require.NoError(t, err)
	assert.Equal(t, "inv-9", id)
	assert.Len(t, sub.Submissions["inv-9"], 2)
}
