package menu

import "context"

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Catalog returns the full catalog snapshot, hidden items included. Ordering
// views apply Filter on top of this.
func (s *Service) Catalog(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

// Search runs the filter pipeline plus the search-linked suggestion feed
// over the current catalog.
func (s *Service) Search(ctx context.Context, query, category string) (results, suggestions []Item, err error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	results = Filter(catalog, query, category)
	if category == CategoryAll {
		suggestions = SearchSuggestions(catalog, results, query)
	}
	return results, suggestions, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, it Item) (Item, error) {
	return s.repo.Create(ctx, it)
}

func (s *Service) Update(ctx context.Context, id string, it Item) (Item, error) {
	return s.repo.Update(ctx, id, it)
}

func (s *Service) Hide(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
