package table

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("table not found")

type Repository interface {
	List(ctx context.Context) ([]Table, error)
	GetByID(ctx context.Context, id string) (Table, error)
	Create(ctx context.Context, t Table) (Table, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Table
}

func NewInMemoryRepository(seed []Table) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Table, 0, len(seed))}
	for _, t := range seed {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if t.Status == "" {
			t.Status = StatusAvailable
		}
		r.storage = append(r.storage, t)
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Table, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.storage {
		if t.ID == id {
			return t, nil
		}
	}
	return Table{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, t Table) (Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusAvailable
	}
	r.storage = append(r.storage, t)
	return t, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
