// Package adminsessionrepo keeps admin sessions in process memory. A restart logs
// every admin out.
package adminsessionrepo

import (
	"context"
	"sync"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
)

// Repository implements ports.AdminSessionRepository. Sessions are immutable, so
// they are shared without cloning.
type Repository struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*admin.Session
}

func NewRepository() *Repository {
	return &Repository{sessions: make(map[kernel.UUID]*admin.Session)}
}

func (r *Repository) Add(_ context.Context, s *admin.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	return nil
}

func (r *Repository) Get(_ context.Context, id kernel.UUID) (*admin.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return s, nil
}

func (r *Repository) Delete(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *Repository) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.IsExpired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
