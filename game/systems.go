package game

import (
	"go.uber.org/zap"
)

// GravitySystem moves the active piece down, cutting it on uneven terrain when the
// session allows it.
type GravitySystem struct {
	// FallSpeed is rows per second; zero falls one row per tick.
	FallSpeed   float64
	accumulator float64
}

func (s *GravitySystem) Execute(frame *Frame) {
	before, ok := frame.Board.Active()
	if !ok {
		return
	}

	if s.FallSpeed > 0 {
		s.accumulator += frame.DeltaTime
		if s.accumulator < 1/s.FallSpeed {
			return
		}
		s.accumulator = 0
	}

	stats := &frame.Session.stats
	if !frame.Board.CheckDescent(frame.Session.cfg.CutIfBlocked) {
		stats.Landings++
		frame.Log.Debug("piece landed",
			zap.Int("x", before.X()), zap.Int("y", before.Y()), zap.Int("cells", before.Cells()))
		return
	}

	after, _ := frame.Board.Active()
	if !after.Equal(before) {
		stats.Refinements++
		frame.Log.Debug("piece cut",
			zap.Int("cells_before", before.Cells()), zap.Int("cells_after", after.Cells()))
	}
	if err := frame.Board.Descend(); err != nil {
		frame.Log.Error("descend after free check", zap.Error(err))
		return
	}
	stats.Descents++
}

// SpawnSystem places the next piece from the session's source once nothing is falling.
// A piece that cannot be placed ends the game.
type SpawnSystem struct {
	Source PieceSource
}

func (s *SpawnSystem) Execute(frame *Frame) {
	if _, falling := frame.Board.Active(); falling || frame.Session.stats.GameOver {
		return
	}

	next, err := s.Source.Next()
	if err != nil {
		frame.Log.Warn("piece source failed", zap.Error(err))
		frame.Session.stats.GameOver = true
		return
	}

	cfg := frame.Session.cfg
	piece := next.Moved((cfg.Columns-next.Width())/2-next.X(), cfg.SpawnRow-next.Y())
	if err := frame.Board.Put(piece); err != nil {
		frame.Log.Info("game over", zap.Error(err), zap.Int64("tick", frame.Tick))
		frame.Session.stats.GameOver = true
		return
	}
	frame.Session.stats.Pieces++
}
