package payment

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Service struct {
	repo Repository
	log  *logrus.Logger
}

func NewService(repo Repository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Settle closes out an invoice. Failures are surfaced: payment touches
// money and table state, so the caller must know to retry.
func (s *Service) Settle(ctx context.Context, invoiceID, tableID string) (Record, error) {
	rec, err := s.repo.Settle(ctx, invoiceID, tableID)
	if err != nil {
		return Record{}, err
	}
	s.log.WithFields(logrus.Fields{"invoice": invoiceID, "amount": rec.TotalAmount}).Info("invoice settled")
	return rec, nil
}

func (s *Service) History(ctx context.Context) ([]Record, error) {
	return s.repo.History(ctx)
}

// Revenue aggregates payment history into the revenue report: grand totals
// plus per-day buckets, newest day first (history is already newest-first).
func (s *Service) Revenue(ctx context.Context) (Summary, error) {
	records, err := s.repo.History(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Daily: make([]DailyRevenue, 0)}
	idx := make(map[string]int)
	for _, rec := range records {
		sum.TotalRevenue += rec.TotalAmount
		sum.TotalOrders++

		day := rec.PaidAt.Format("2006-01-02")
		i, ok := idx[day]
		if !ok {
			i = len(sum.Daily)
			idx[day] = i
			sum.Daily = append(sum.Daily, DailyRevenue{Date: day})
		}
		sum.Daily[i].Revenue += rec.TotalAmount
		sum.Daily[i].Orders++
	}
	return sum, nil
}
