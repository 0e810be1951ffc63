package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/fallblock/game"
	"github.com/plus3/fallblock/logger"
	"github.com/plus3/fallblock/render/ebitenrender"
	"go.uber.org/zap"
)

// Game implements ebiten.Game around one auto-playing session.
type Game struct {
	session *game.Session
	style   ebitenrender.Style
	log     *zap.Logger
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		g.log.Info("reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// Game over is shown, not fatal; R starts again.
	_ = g.session.Tick(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.style.Draw(screen, snap.Rows, snap.Active)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return g.style.Size(cfg.Columns, cfg.Rows)
}

func main() {
	cfg := game.DefaultConfig()
	cfg.FallSpeed = 8
	flag.IntVar(&cfg.Columns, "columns", cfg.Columns, "Board width in cells.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board height in cells.")
	flag.BoolVar(&cfg.CutIfBlocked, "cut", cfg.CutIfBlocked, "Split pieces that land on uneven terrain.")
	flag.Float64Var(&cfg.FallSpeed, "speed", cfg.FallSpeed, "Rows per second.")
	seed := flag.Uint64("seed", 1, "Seed for the random piece source.")
	flag.Parse()

	log := logger.Named("gui")
	session, err := game.NewSession(1, cfg, game.NewRandomSource(*seed), log)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	g := &Game{session: session, style: ebitenrender.DefaultStyle(), log: log}
	w, h := g.style.Size(cfg.Columns, cfg.Rows)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("fallblock")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("game loop", zap.Error(err))
	}
}
