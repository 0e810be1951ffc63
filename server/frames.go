package server

import (
	"errors"
	"net/http"

	"github.com/bluele/gcache"
	"github.com/labstack/echo/v4"
	"github.com/plus3/fallblock/render"
	"go.uber.org/zap"
)

// frameKey identifies one rendering of one session; a new board version is a new key.
type frameKey struct {
	Session uint64
	Version uint64
}

func (s *Server) frame(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	snap := sess.Snapshot()
	key := frameKey{Session: snap.ID, Version: snap.Stats.Version}

	cached, err := s.frames.Get(key)
	if err == nil {
		c.Response().Header().Set("X-Frame-Cache", "hit")
		return c.String(http.StatusOK, cached.(string))
	}
	if !errors.Is(err, gcache.KeyNotFoundError) {
		s.log.Warn("frame cache", zap.Error(err))
	}

	text := render.Rows(snap.Rows) + "\n"
	if err := s.frames.Set(key, text); err != nil {
		s.log.Warn("frame cache", zap.Error(err))
	}
	c.Response().Header().Set("X-Frame-Cache", "miss")
	return c.String(http.StatusOK, text)
}
