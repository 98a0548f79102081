// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages. The
// adapters (catalog, prefs) construct its inputs; the engine only reads them
// and allocates new outputs.

// Engine builds the personalized section list from a user profile and a
// content catalog snapshot. It holds no mutable state between calls and is
// safe for concurrent use: each BuildSections call is a pure function of its
// inputs.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a feed engine with the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "feed").Logger(),
	}, nil
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// BuildSections assembles the ordered section list for one recommendation
// computation.
//
// Order is fixed: the projects section first when non-empty, then one
// section per qualifying language in the profile's stored order. Sections
// are never reordered by size or score afterwards. Both sub-results empty
// yields an empty slice; rendering an empty state is the caller's concern.
//
// The catalog must be treated as an immutable snapshot for the duration of
// the call. Repeated calls with identical inputs produce identical output.
func (e *Engine) BuildSections(profile UserProfile, catalog *ContentCatalog) []Section {
	if catalog == nil {
		catalog = &ContentCatalog{}
	}

	sections := make([]Section, 0, 1+len(profile.Languages))

	ranked := RankProjects(catalog.Projects, profile.Interests, e.config.rankLimits())
	if len(ranked) > 0 {
		sections = append(sections, Section{
			Title:    e.config.Sections.ProjectsTitle,
			Kind:     SectionProjects,
			Projects: ranked,
		})
	}

	topics := SelectTopics(profile.Languages, catalog, e.config.topicLimits())
	for _, lt := range topics {
		sections = append(sections, Section{
			Title:  e.topicSectionTitle(lt),
			Kind:   SectionTopics,
			Topics: lt.Entries,
		})
	}

	e.logger.Debug().
		Int("interests", len(profile.Interests)).
		Int("languages", len(profile.Languages)).
		Int("projects", len(ranked)).
		Int("sections", len(sections)).
		Msg("sections built")

	return sections
}

// topicSectionTitle formats a language section title from icon, name and the
// configured suffix, tolerating empty icons or names.
func (e *Engine) topicSectionTitle(lt LanguageTopics) string {
	parts := make([]string, 0, 3)
	if lt.Icon != "" {
		parts = append(parts, lt.Icon)
	}
	if lt.Name != "" {
		parts = append(parts, lt.Name)
	}
	if e.config.Sections.TopicsSuffix != "" {
		parts = append(parts, e.config.Sections.TopicsSuffix)
	}
	return strings.Join(parts, " ")
}
