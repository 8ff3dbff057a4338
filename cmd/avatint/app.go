package main

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/avatint/internal/avatar"
	"github.com/alexisbeaulieu97/avatint/internal/color"
	"github.com/alexisbeaulieu97/avatint/internal/config"
	"github.com/alexisbeaulieu97/avatint/internal/logger"
	"github.com/alexisbeaulieu97/avatint/internal/view"
)

// appContext bundles the services a command needs.
type appContext struct {
	cfg  *config.Config
	log  *logger.Logger
	view *view.View
}

func newLogger(flags *rootFlags, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: w})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func newApp(flags *rootFlags, log *logger.Logger) (*appContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		log.Error(err, "failed to load configuration", "path", flags.configPath)
		return nil, err
	}

	overrides, err := cfg.PartOverrides()
	if err != nil {
		return nil, err
	}
	state, err := avatar.NewState(overrides...)
	if err != nil {
		return nil, err
	}

	adj := color.NewAdjuster(cfg.Mode(), cfg.CacheSize())
	v := view.New(state, view.Options{Layout: cfg.Layout, Adjuster: adj, Logger: log})

	log.Debug("configuration loaded", "path", flags.configPath, "mode", string(adj.Mode()), "parts", len(overrides))
	return &appContext{cfg: cfg, log: log, view: v}, nil
}
