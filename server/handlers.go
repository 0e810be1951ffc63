package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/plus3/fallblock/blocks"
	"github.com/plus3/fallblock/game"
	"github.com/plus3/fallblock/render"
)

type createRequest struct {
	Columns   int     `json:"columns"`
	Rows      int     `json:"rows"`
	Cut       *bool   `json:"cut"`
	SpawnRow  int     `json:"spawn_row"`
	FallSpeed float64 `json:"fall_speed"`
	// Source is "cycle", "random" or "" for pieces sent by the client only.
	Source string `json:"source"`
	Seed   uint64 `json:"seed"`
}

type pieceRequest struct {
	Masks []uint64 `json:"masks"`
	X     int      `json:"x"`
	Y     int      `json:"y"`
}

// maxTickCount bounds one tick request; the session stays locked for every tick.
const maxTickCount = 10_000

type tickRequest struct {
	Count int `json:"count"`
}

type pieceView struct {
	Masks  []uint64 `json:"masks"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Width  int      `json:"width"`
	Length int      `json:"length"`
}

type sessionView struct {
	ID      uint64     `json:"id"`
	Columns int        `json:"columns"`
	Rows    []string   `json:"rows"`
	Active  *pieceView `json:"active,omitempty"`
	Stats   game.Stats `json:"stats"`
}

func newPieceView(p blocks.Piece) *pieceView {
	return &pieceView{
		Masks:  p.Masks(),
		X:      p.X(),
		Y:      p.Y(),
		Width:  p.Width(),
		Length: p.Length(),
	}
}

func newSessionView(snap game.Snapshot) sessionView {
	v := sessionView{
		ID:      snap.ID,
		Columns: snap.Columns,
		Rows:    make([]string, len(snap.Rows)),
		Stats:   snap.Stats,
	}
	for i, r := range snap.Rows {
		v.Rows[i] = render.Row(r)
	}
	if snap.Active != nil {
		v.Active = newPieceView(*snap.Active)
	}
	return v
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"sessions": s.Registry.Len()})
}

func (s *Server) createSession(c echo.Context) error {
	req := createRequest{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg := game.DefaultConfig()
	if req.Columns != 0 {
		cfg.Columns = req.Columns
	}
	if req.Rows != 0 {
		cfg.Rows = req.Rows
	}
	if req.Cut != nil {
		cfg.CutIfBlocked = *req.Cut
	}
	cfg.SpawnRow = req.SpawnRow
	cfg.FallSpeed = req.FallSpeed

	var source game.PieceSource
	switch req.Source {
	case "":
	case "cycle":
		source = game.NewCycleSource()
	case "random":
		source = game.NewRandomSource(req.Seed)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown source %q", req.Source))
	}

	sess, err := s.Registry.Create(cfg, source)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, newSessionView(sess.Snapshot()))
}

func (s *Server) listSessions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]uint64{"ids": s.Registry.IDs()})
}

func (s *Server) getSession(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionView(sess.Snapshot()))
}

func (s *Server) deleteSession(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	if err := s.Registry.Delete(sess.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) putPiece(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	req := pieceRequest{}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := blocks.NewPiece(req.Masks, req.X, req.Y)
	if err != nil {
		return httpError(err)
	}
	if err := sess.Put(p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, newSessionView(sess.Snapshot()))
}

func (s *Server) tick(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	req := tickRequest{Count: 1}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if req.Count < 1 || req.Count > maxTickCount {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("count must be within 1..%d", maxTickCount))
	}

	// One tick is one gravity step, whatever the session's fall speed.
	dt := 0.0
	if speed := sess.Config().FallSpeed; speed > 0 {
		dt = 1 / speed
	}
	for range req.Count {
		if err := sess.Tick(dt); err != nil {
			return httpError(err)
		}
	}
	return c.JSON(http.StatusOK, newSessionView(sess.Snapshot()))
}

func (s *Server) reset(c echo.Context) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	sess.Reset()
	return c.JSON(http.StatusOK, newSessionView(sess.Snapshot()))
}
