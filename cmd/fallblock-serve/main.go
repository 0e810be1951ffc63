package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/fallblock/game"
	"github.com/plus3/fallblock/logger"
	"github.com/plus3/fallblock/server"
	"go.uber.org/zap"
)

func main() {
	addr := flag.String("addr", ":8080", "Address to listen on.")
	frames := flag.Int("frames", server.DefaultFrameCacheSize, "Number of rendered frames to cache.")
	rules := flag.String("log", logger.DefaultRules, "zapfilter rules for log output.")
	flag.Parse()

	if err := logger.SetRules(*rules); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log rules: %v\n", err)
		os.Exit(2)
	}
	log := logger.Named("serve")
	defer func() { _ = log.Sync() }()

	registry := game.NewRegistry(logger.Named("game"))
	srv := server.New(registry, logger.Named("http"), *frames)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Start(*addr) }()

	select {
	case err := <-errc:
		if err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", zap.Error(err))
		}
	}
}
