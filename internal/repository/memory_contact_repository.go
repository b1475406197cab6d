package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/portfolio-site/internal/domain"
)

// memoryContactRepository keeps submissions in process memory. It is used
// when no Postgres DSN is configured.
type memoryContactRepository struct {
	mu    sync.RWMutex
	items map[string]domain.ContactSubmission
	now   func() time.Time
}

// NewMemoryContactMessageRepository builds an in-memory repository.
func NewMemoryContactMessageRepository() ContactMessageRepository {
	return &memoryContactRepository{
		items: make(map[string]domain.ContactSubmission),
		now:   time.Now,
	}
}

func (r *memoryContactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.CreatedAt = r.now().UTC()
	r.items[sub.ID] = *sub
	return nil
}

func (r *memoryContactRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &sub, nil
}

func (r *memoryContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	r.mu.RLock()
	all := make([]domain.ContactSubmission, 0, len(r.items))
	for _, sub := range r.items {
		all = append(all, sub)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *memoryContactRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
