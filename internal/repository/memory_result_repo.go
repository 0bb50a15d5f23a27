package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"face-quiz/internal/domain"
)

// MemoryResultRepository implementa ResultRepository en memoria, para
// tests y para correr el servicio sin base de datos.
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results map[string]domain.TestResult
}

func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{results: make(map[string]domain.TestResult)}
}

func (r *MemoryResultRepository) Save(ctx context.Context, result domain.TestResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = result
	return nil
}

func (r *MemoryResultRepository) ListByUser(ctx context.Context, userID string) ([]domain.TestResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.TestResult
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryResultRepository) Get(ctx context.Context, id string) (domain.TestResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.results[id]
	if !ok {
		return domain.TestResult{}, pgx.ErrNoRows
	}
	return res, nil
}
