package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"travelthreads/app/config"
	"travelthreads/app/logging"
	"travelthreads/app/repositories"
	"travelthreads/app/search"
	"travelthreads/app/seed"
	"travelthreads/app/services"
	"travelthreads/app/thread"
)

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("in-memory") {
		cfg.InMemory = opts.inMemory
	}
	if flags.Changed("seed") {
		cfg.SeedFile = opts.seedFile
	}
	if flags.Changed("categories") {
		cfg.CategoriesFile = opts.categoriesFile
	}
	if flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Changed("handle") {
		cfg.Handle = opts.handle
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// env is everything a command needs, built from one config: the journal,
// the tree it replays to and the search engine.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	journal  *repositories.BadgerMutationRepository
	tree     thread.Tree
	replayed int
	engine   *search.Engine
}

func newEnv(cmd *cobra.Command, opts *options) (*env, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	table := search.DefaultTable()
	if cfg.CategoriesFile != "" {
		if table, err = search.LoadTableFile(cfg.CategoriesFile); err != nil {
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
	}

	base := seed.Default()
	if cfg.SeedFile != "" {
		if base, err = seed.LoadFile(cfg.SeedFile); err != nil {
			return nil, fmt.Errorf("failed to load seed: %w", err)
		}
	}

	journal, err := repositories.OpenMutationRepository(cfg.JournalPath())
	if err != nil {
		return nil, err
	}
	tree, replayed, err := services.Restore(base, journal)
	if err != nil {
		journal.Close()
		return nil, err
	}
	logger.Debug("journal replayed", "mutations", replayed, "posts", tree.Len())

	return &env{
		cfg:      cfg,
		logger:   logger,
		journal:  journal,
		tree:     tree,
		replayed: replayed,
		engine:   search.NewEngine(table),
	}, nil
}

func (e *env) threadService() *services.ThreadService {
	mutator := thread.NewMutator(thread.WithViewer(e.cfg.Handle, e.cfg.Handle))
	return services.NewThreadService(e.tree, mutator, e.journal, e.logger)
}

func (e *env) Close() error {
	return e.journal.Close()
}
