package table

import (
	"context"
	"strconv"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns tables filtered by status ("available"/"ordered", empty for
// all) and an optional table-number search, matching the front-of-house
// overview screen.
func (s *Service) List(ctx context.Context, statusFilter, query string) ([]Table, error) {
	tables, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		if statusFilter != "" && t.Status != statusFilter {
			continue
		}
		if query != "" && !strings.Contains(strconv.Itoa(t.TableNumber), query) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Table, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, t Table) (Table, error) {
	return s.repo.Create(ctx, t)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
