package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/catalog"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/cli"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/config"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/engine"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/quiz"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger := zap.NewNop()
	if cfg.Debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	eng, err := engine.New(engine.Deps{
		History:  store.NewHistory(),
		Tasks:    store.NewTaskStore(),
		Activity: store.NewActivityLogWithCapacity(cfg.ActivityCapacity, time.Now),
		Quiz:     quiz.NewEngine(rng),
		Catalog:  catalog.New(rng),
		Rand:     rng,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("building chat engine: %w", err)
	}

	app := &cli.App{
		Engine: eng,
		Config: cfg,
	}

	// Detect interactive terminal for the shell entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
