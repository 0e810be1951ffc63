// Package server exposes game sessions over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bluele/gcache"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/plus3/fallblock/blocks"
	"github.com/plus3/fallblock/game"
	"go.uber.org/zap"
)

// DefaultFrameCacheSize bounds the rendered frames kept in memory.
const DefaultFrameCacheSize = 128

type Server struct {
	Registry *game.Registry

	echo   *echo.Echo
	frames gcache.Cache
	log    *zap.Logger
}

// New wires the routes for registry. frameCacheSize <= 0 uses DefaultFrameCacheSize.
func New(registry *game.Registry, log *zap.Logger, frameCacheSize int) *Server {
	if frameCacheSize <= 0 {
		frameCacheSize = DefaultFrameCacheSize
	}
	s := &Server{
		Registry: registry,
		echo:     echo.New(),
		frames:   gcache.New(frameCacheSize).LRU().Build(),
		log:      log,
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(s.logRequests)

	e.GET("/health", s.health)
	e.POST("/sessions", s.createSession)
	e.GET("/sessions", s.listSessions)
	e.GET("/sessions/:id", s.getSession)
	e.DELETE("/sessions/:id", s.deleteSession)
	e.POST("/sessions/:id/pieces", s.putPiece)
	e.POST("/sessions/:id/tick", s.tick)
	e.POST("/sessions/:id/reset", s.reset)
	e.GET("/sessions/:id/frame", s.frame)
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.Debug("request",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().Status),
			zap.Error(err))
		return nil
	}
}

// httpError maps domain errors onto status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, blocks.ErrSpaceOccupied), errors.Is(err, game.ErrGameOver):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, blocks.ErrOutOfBounds), errors.Is(err, blocks.ErrEmptyShape),
		errors.Is(err, blocks.ErrIndexOutOfRange), errors.Is(err, blocks.ErrValueTooWide):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

func (s *Server) session(c echo.Context) (*game.Session, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid session id")
	}
	sess, err := s.Registry.Get(id)
	if err != nil {
		return nil, httpError(err)
	}
	return sess, nil
}
