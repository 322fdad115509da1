package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/tucojack/internal/config"
	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/stores"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
	"github.com/fadedpez/tucojack/pkg/terminal"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to a file so they don't tear through the table
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.NewLoggerWithWriter(logFile, logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, backend := stores.Open(ctx, cfg, logger)
	defer store.Close()
	if backend != cfg.StatsBackend {
		pterm.Warning.Printfln("Stats backend %q is unavailable, using %q instead", cfg.StatsBackend, backend)
	}

	session, err := blackjack.NewSession(ctx, store, blackjack.WithLogger(logger))
	if err != nil {
		logger.LogError(err)
		pterm.Error.Printfln("Could not start the game: %v", err)
		os.Exit(1)
	}
	session.OnRoundReset(func(s *blackjack.Session) {
		logger.Debug("Table reset for round %s", s.RoundID())
	})

	if err := terminal.New(session, nil, nil).Run(ctx); err != nil {
		logger.LogError(err)
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}
}
