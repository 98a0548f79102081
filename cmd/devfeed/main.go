// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

// Package main is the entry point for the devfeed command.
//
// Devfeed builds a personalized learning feed from a static content catalog
// and a user's stored interest and language preferences, and prints the
// resulting sections as JSON.
//
// The command initializes components in the following order:
//
//  1. Configuration: load settings from defaults, config.yaml, and
//     environment variables (Koanf v2)
//  2. Logging: configure the global zerolog logger
//  3. Catalog: load and validate the content catalog snapshot
//  4. Preferences: read stored user preferences (corrupt or missing
//     preferences fall back to an empty profile)
//  5. Engine: rank projects and select topics, then emit sections
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CATALOG_PATH, PREFS_PATH, FEED_MIN_SCORE, ...)
//   - Config file (config.yaml, or the file named by CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
//	export CATALOG_PATH=/srv/devfeed/catalog.json
//	export PREFS_PATH=/home/user/.devfeed/prefs.json
//	./devfeed
package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/lenfi-dev/devfeed/internal/catalog"
	"github.com/lenfi-dev/devfeed/internal/config"
	"github.com/lenfi-dev/devfeed/internal/feed"
	"github.com/lenfi-dev/devfeed/internal/logging"
	"github.com/lenfi-dev/devfeed/internal/prefs"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Devfeed failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Path).
		Str("prefs", cfg.Prefs.Path).
		Msg("Devfeed starting")

	cat, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := prefs.NewStore(cfg.Prefs.Path, logging.Logger())
	profile := store.Profile()

	engine, err := feed.NewEngine(&cfg.Feed, logging.Logger())
	if err != nil {
		return fmt.Errorf("create feed engine: %w", err)
	}

	sections := engine.BuildSections(profile, cat)

	logging.Info().
		Int("sections", len(sections)).
		Msg("Feed built")

	out, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
