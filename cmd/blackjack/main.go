package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"blackjack/internal/blackjack"
	"blackjack/internal/config"
	"blackjack/internal/console"
	"blackjack/internal/events"
	"blackjack/internal/random"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}

	// 2. Diagnostics
	logOut := io.Discard
	if cfg.Debug {
		logOut = os.Stderr
	}
	logger := events.NewLogger(logOut)
	log.SetOutput(logOut)

	// 3. Shuffle Source
	rng, seed, err := random.NewRand(cfg.Seed)
	if err != nil {
		config.Exitf("Error seeding shuffler: %v", err)
	}
	log.Printf("Shuffle seed: %d", seed)

	// 4. Table
	table := blackjack.NewTable(console.New(os.Stdin, os.Stdout), rng, logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- table.Run(ctx) }()

	// 5. Wait for the player to leave or a shutdown signal
	select {
	case err := <-done:
		if err != nil {
			stop()
			config.Exitf("Error: %v", err)
		}
		log.Printf("Session ended after %d rounds.", table.Rounds)
	case <-ctx.Done():
		log.Println("Gracefully shutting down...")
	}
}
