package order

import (
	"context"

	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/sirupsen/logrus"
)

// CartSource exposes the session carts the checkout flow reads and clears.
// *cart.Service satisfies it.
type CartSource interface {
	Entries(table string) []cart.Entry
	Clear(table string)
}

type Service struct {
	carts     CartSource
	submitter Submitter
	log       *logrus.Logger
}

func NewService(carts CartSource, submitter Submitter, log *logrus.Logger) *Service {
	return &Service{carts: carts, submitter: submitter, log: log}
}

// Checkout submits the session cart for table. On success the cart is
// cleared; on failure it is left untouched so the staff can retry, and the
// error is surfaced since it affects money and table state.
func (s *Service) Checkout(ctx context.Context, table string, tc TableContext) (string, error) {
	entries := s.carts.Entries(table)
	if len(entries) == 0 {
		return "", ErrEmptyCart
	}

	invoiceID, err := s.submitter.Submit(ctx, entries, tc)
	if err != nil {
		s.log.WithError(err).WithField("table", table).Error("order submission failed")
		return "", err
	}

	s.carts.Clear(table)
	s.log.WithFields(logrus.Fields{"table": table, "invoice": invoiceID, "items": len(entries)}).Info("order submitted")
	return invoiceID, nil
}
