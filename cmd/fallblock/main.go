package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/fallblock/game"
	"github.com/plus3/fallblock/logger"
	"github.com/plus3/fallblock/render"
	"go.uber.org/zap"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Columns, "columns", cfg.Columns, "Board width in cells.")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board height in cells.")
	flag.BoolVar(&cfg.CutIfBlocked, "cut", cfg.CutIfBlocked, "Split pieces that land on uneven terrain.")
	flag.IntVar(&cfg.SpawnRow, "spawn-row", cfg.SpawnRow, "Row new pieces are placed at.")
	ticks := flag.Int("ticks", 1000, "Maximum number of ticks to simulate.")
	seed := flag.Uint64("seed", 1, "Seed for the random piece source; 0 cycles the seven shapes instead.")
	showBoard := flag.Bool("board", true, "Print the final board.")
	rules := flag.String("log", "info+:*", "zapfilter rules for log output.")
	flag.Parse()

	if err := logger.SetRules(*rules); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log rules: %v\n", err)
		os.Exit(2)
	}
	log := logger.Named("fallblock")
	defer func() { _ = log.Sync() }()

	var source game.PieceSource = game.NewCycleSource()
	if *seed != 0 {
		source = game.NewRandomSource(*seed)
	}

	session, err := game.NewSession(1, cfg, source, log)
	if err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	log.Info("starting simulation", zap.Int("ticks", *ticks),
		zap.Int("columns", cfg.Columns), zap.Int("rows", cfg.Rows), zap.Bool("cut", cfg.CutIfBlocked))

	report := &Report{
		Config: cfg,
		Seed:   *seed,
		TickTime: Stats{
			Samples: make([]time.Duration, 0, *ticks),
		},
	}

	startTime := time.Now()
	for range *ticks {
		tickStart := time.Now()
		err := session.Tick(0)
		if errors.Is(err, game.ErrGameOver) {
			break
		}
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
	}
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	report.Session = session.Stats()
	report.Systems = session.SchedulerStats().Systems

	log.Info("simulation finished", zap.Int64("ticks", report.Session.Ticks), zap.Bool("game_over", report.Session.GameOver))

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal("failed to generate report", zap.Error(err))
	}
	if *showBoard {
		snap := session.Snapshot()
		fmt.Println(render.Rows(snap.Rows))
	}
}
