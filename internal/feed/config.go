// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import "fmt"

// Config contains all configuration for the feed engine.
type Config struct {
	// Limits contains the named selection and truncation limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Sections contains the display labels used when building sections.
	Sections SectionsConfig `json:"sections" koanf:"sections"`
}

// LimitsConfig centralizes the limit parameters that were inline truncations
// in earlier revisions, so tests can assert on them directly and callers can
// override them via configuration.
type LimitsConfig struct {
	// MinScore is the minimum relevance score for a project to be kept.
	// Default: 2.
	MinScore int `json:"min_score" koanf:"min_score"`

	// MaxProjects caps the projects section length.
	// Default: 12.
	MaxProjects int `json:"max_projects" koanf:"max_projects"`

	// MaxLanguages caps how many languages produce sections.
	// Default: 3.
	MaxLanguages int `json:"max_languages" koanf:"max_languages"`

	// MaxCategoriesPerLanguage caps contributing categories per language.
	// Default: 4.
	MaxCategoriesPerLanguage int `json:"max_categories_per_language" koanf:"max_categories_per_language"`

	// MaxItemsPerCategory caps items taken from each category.
	// Default: 3.
	MaxItemsPerCategory int `json:"max_items_per_category" koanf:"max_items_per_category"`

	// MaxItemsPerLanguage caps the flattened per-language entry count.
	// Default: 10.
	MaxItemsPerLanguage int `json:"max_items_per_language" koanf:"max_items_per_language"`
}

// SectionsConfig contains the display labels for built sections.
type SectionsConfig struct {
	// ProjectsTitle is the fixed title of the projects section.
	// Default: "Recommended Projects".
	ProjectsTitle string `json:"projects_title" koanf:"projects_title"`

	// TopicsSuffix is appended to a language's icon and name to form its
	// section title (e.g. "🟨 JavaScript Essentials").
	// Default: "Essentials".
	TopicsSuffix string `json:"topics_suffix" koanf:"topics_suffix"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MinScore:                 2,
			MaxProjects:              12,
			MaxLanguages:             3,
			MaxCategoriesPerLanguage: 4,
			MaxItemsPerCategory:      3,
			MaxItemsPerLanguage:      10,
		},
		Sections: SectionsConfig{
			ProjectsTitle: "Recommended Projects",
			TopicsSuffix:  "Essentials",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.MinScore < 0 {
		return fmt.Errorf("limits.min_score must be non-negative, got %d", c.Limits.MinScore)
	}
	if c.Limits.MaxProjects < 1 {
		return fmt.Errorf("limits.max_projects must be positive, got %d", c.Limits.MaxProjects)
	}
	if c.Limits.MaxLanguages < 1 {
		return fmt.Errorf("limits.max_languages must be positive, got %d", c.Limits.MaxLanguages)
	}
	if c.Limits.MaxCategoriesPerLanguage < 1 {
		return fmt.Errorf("limits.max_categories_per_language must be positive, got %d", c.Limits.MaxCategoriesPerLanguage)
	}
	if c.Limits.MaxItemsPerCategory < 1 {
		return fmt.Errorf("limits.max_items_per_category must be positive, got %d", c.Limits.MaxItemsPerCategory)
	}
	if c.Limits.MaxItemsPerLanguage < 1 {
		return fmt.Errorf("limits.max_items_per_language must be positive, got %d", c.Limits.MaxItemsPerLanguage)
	}
	if c.Sections.ProjectsTitle == "" {
		return fmt.Errorf("sections.projects_title must not be empty")
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All fields are value types, a shallow copy is a deep copy.
	out := *c
	return &out
}

// rankLimits projects the config onto the ranker's limit parameters.
func (c *Config) rankLimits() RankLimits {
	return RankLimits{
		MinScore:    c.Limits.MinScore,
		MaxProjects: c.Limits.MaxProjects,
	}
}

// topicLimits projects the config onto the selector's limit parameters.
func (c *Config) topicLimits() TopicLimits {
	return TopicLimits{
		MaxLanguages:             c.Limits.MaxLanguages,
		MaxCategoriesPerLanguage: c.Limits.MaxCategoriesPerLanguage,
		MaxItemsPerCategory:      c.Limits.MaxItemsPerCategory,
		MaxItemsPerLanguage:      c.Limits.MaxItemsPerLanguage,
	}
}
