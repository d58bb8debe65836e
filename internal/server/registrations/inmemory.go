package registrations

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
)

// InMemoryRepository keeps registrations in a mutex-guarded map.
// Registrations are immutable once stored; only Upsert replaces them.
type InMemoryRepository struct {
	mu   sync.RWMutex
	regs map[string]*Registration
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{regs: make(map[string]*Registration)}
}

func (r *InMemoryRepository) Create(ctx context.Context, reg *Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regs[reg.User]; ok {
		return common.ErrorAlreadyExists
	}

	stored := *reg
	stored.CreatedAt = time.Now()
	r.regs[reg.User] = &stored
	return nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, reg *Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *reg
	stored.CreatedAt = time.Now()
	r.regs[reg.User] = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, user string) (*Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.regs[user]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return reg, nil
}
