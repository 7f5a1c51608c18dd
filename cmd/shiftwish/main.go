package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pinyuchen/shiftwish/internal/api"
	"github.com/pinyuchen/shiftwish/internal/config"
	"github.com/pinyuchen/shiftwish/internal/session"
	"github.com/pinyuchen/shiftwish/internal/store"
	"github.com/pinyuchen/shiftwish/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("no backend URL configured: run `shiftwish config` or set SHIFTWISH_API_BASE_URL")
	}

	client, err := api.NewClient(cfg.API.BaseURL, api.WithLibrary(cfg.API.Library))
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}

	// The identity store is a convenience; a broken local db should
	// never keep the survey from opening.
	var st store.Store
	if db, err := store.Open(cfg.Storage.DBPath); err == nil {
		st = db
		defer func() { _ = db.Close() }()
	} else {
		fmt.Fprintf(os.Stderr, "warning: identity store unavailable: %v\n", err)
	}

	sess := session.New(client, st)
	if err := sess.RestoreIdentity(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: restoring identity: %v\n", err)
	}

	return ui.NewApp(sess, cfg).Execute()
}
