package game

import (
	"fmt"
	"slices"
	"sync"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// Registry owns the live sessions, keyed by id.
type Registry struct {
	mu       sync.RWMutex
	sessions *intmap.Map[uint64, *Session]
	lastID   uint64
	log      *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		sessions: intmap.New[uint64, *Session](64),
		log:      log,
	}
}

// Create starts a new session and returns it.
func (r *Registry) Create(cfg Config, source PieceSource) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.lastID + 1
	s, err := NewSession(id, cfg, source, r.log)
	if err != nil {
		return nil, err
	}
	r.lastID = id
	r.sessions.Put(id, s)
	r.log.Info("session created", zap.Uint64("session", id),
		zap.Int("columns", cfg.Columns), zap.Int("rows", cfg.Rows))
	return s, nil
}

// Get looks a session up by id.
func (r *Registry) Get(id uint64) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete drops a session.
func (r *Registry) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions.Get(id); !ok {
		return fmt.Errorf("%w: %d", ErrSessionNotFound, id)
	}
	r.sessions.Del(id)
	r.log.Info("session deleted", zap.Uint64("session", id))
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions.Len()
}

// IDs returns the live session ids in ascending order.
func (r *Registry) IDs() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uint64, 0, r.sessions.Len())
	r.sessions.ForEach(func(id uint64, _ *Session) bool {
		ids = append(ids, id)
		return true
	})
	slices.Sort(ids)
	return ids
}
