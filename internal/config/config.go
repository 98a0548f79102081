// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

// Package config loads the application configuration from layered sources:
// built-in defaults, an optional YAML file, and environment variables, in
// ascending priority.
package config

import (
	"fmt"
	"strings"

	"github.com/lenfi-dev/devfeed/internal/feed"
)

// Config is the root application configuration.
type Config struct {
	// Catalog locates the content catalog document.
	Catalog CatalogConfig `koanf:"catalog"`

	// Prefs locates the stored user preferences.
	Prefs PrefsConfig `koanf:"prefs"`

	// Feed configures the feed engine's limits and section labels.
	Feed feed.Config `koanf:"feed"`

	// Logging configures the global logger.
	Logging LoggingConfig `koanf:"logging"`
}

// CatalogConfig locates the content catalog.
type CatalogConfig struct {
	// Path is the catalog JSON file. Default: catalog.json
	Path string `koanf:"path"`
}

// PrefsConfig locates the user preference store.
type PrefsConfig struct {
	// Path is the preferences JSON file. Default: prefs.json
	Path string `koanf:"path"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: console
	Format string `koanf:"format"`

	// Caller includes file and line in log output. Default: false
	Caller bool `koanf:"caller"`
}

// validLogLevels are the accepted logging.level values.
var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true,
	"warning": true, "error": true, "fatal": true, "panic": true,
	"disabled": true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	if c.Prefs.Path == "" {
		return fmt.Errorf("prefs.path must not be empty")
	}
	if err := c.Feed.Validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level %q is not a valid log level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
