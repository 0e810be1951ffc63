package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/plus3/fallblock/blocks"
	"go.uber.org/zap"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrGameOver        = errors.New("game over")
)

// Stats counts what happened in a session.
type Stats struct {
	Ticks       int64 `json:"ticks"`
	Pieces      int64 `json:"pieces"`
	Descents    int64 `json:"descents"`
	Refinements int64 `json:"refinements"`
	Landings    int64 `json:"landings"`
	GameOver    bool  `json:"game_over"`
	// Version changes whenever the board may have changed.
	Version uint64 `json:"version"`
}

// Snapshot is a copy of a session's state, safe to use without the session lock.
type Snapshot struct {
	ID      uint64
	Columns int
	Rows    []blocks.Row
	Active  *blocks.Piece
	Stats   Stats
}

// Session is one game: a board, its falling piece and the systems that drive it.
// All methods are safe for concurrent use; sessions share nothing.
type Session struct {
	ID uint64

	mu        sync.Mutex
	cfg       Config
	board     *blocks.Board
	scheduler *Scheduler
	stats     Stats
	log       *zap.Logger
}

// NewSession builds a session. With a nil source pieces only arrive through Put.
func NewSession(id uint64, cfg Config, source PieceSource, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		ID:        id,
		cfg:       cfg,
		board:     blocks.NewBoard(cfg.Columns, cfg.Rows),
		scheduler: NewScheduler(),
		log:       log.With(zap.Uint64("session", id)),
	}
	s.scheduler.Register(&GravitySystem{FallSpeed: cfg.FallSpeed})
	if source != nil {
		s.scheduler.Register(&SpawnSystem{Source: source})
	}
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Put places p as the falling piece.
func (s *Session) Put(p blocks.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stats.GameOver {
		return ErrGameOver
	}
	if err := s.board.Put(p); err != nil {
		return fmt.Errorf("session %d: %w", s.ID, err)
	}
	s.stats.Pieces++
	s.stats.Version++
	return nil
}

// Tick runs every system once. dt is the time since the previous tick in seconds.
func (s *Session) Tick(dt float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stats.GameOver {
		return ErrGameOver
	}
	s.stats.Ticks++
	s.stats.Version++
	s.scheduler.Once(&Frame{
		DeltaTime: dt,
		Tick:      s.stats.Ticks,
		Session:   s,
		Board:     s.board,
		Log:       s.log,
	})
	return nil
}

// Run ticks the session at the given interval until ctx is done or the game ends.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Tick(dt); err != nil {
				return err
			}
		}
	}
}

// Reset empties the board and clears the stats.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board.Reset()
	s.stats = Stats{Version: s.stats.Version + 1}
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// SchedulerStats returns per-system timings.
func (s *Session) SchedulerStats() *SchedulerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.GetStats()
}

// Snapshot copies the board and stats.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:      s.ID,
		Columns: s.board.Columns(),
		Rows:    s.board.Rows(),
		Stats:   s.stats,
	}
	if p, ok := s.board.Active(); ok {
		snap.Active = &p
	}
	return snap
}
