package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
)

// InMemoryRepository keeps sessions in a mutex-guarded map. Expiry is
// enforced lazily in Take and by the background reaper started with Run.
type InMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sessions: make(map[string]*Session)}
}

func (r *InMemoryRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.AuthID]; ok {
		return common.ErrorAlreadyExists
	}

	stored := *s
	r.sessions[s.AuthID] = &stored
	return nil
}

func (r *InMemoryRepository) Take(ctx context.Context, authID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[authID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.sessions, authID)

	if time.Now().After(s.ExpiresAt) {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

// Run reaps expired sessions every interval until ctx is cancelled.
func (r *InMemoryRepository) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.reap(time.Now())
		}
	}
}

func (r *InMemoryRepository) reap(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
		}
	}
}

// Len reports the number of stored sessions. Intended for tests and
// metrics hooks.
func (r *InMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
