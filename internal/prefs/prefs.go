// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

// Package prefs reads stored user preferences and exposes them as a feed
// profile.
//
// Preferences live in a small JSON document with two boolean maps:
//
//	{
//	  "userInterests": {"web": true, "ai": false},
//	  "userLanguages": {"javascript": true, "python": true}
//	}
//
// Reading is deliberately forgiving: a missing or corrupt document yields an
// empty profile (everything deselected) with a warning log, never an error.
// The feed must render for a user whose preference store was wiped or
// half-written.
//
// Language selection order is significant downstream (the first selections
// win when the topic selector truncates), so the decoder preserves JSON
// document key order for userLanguages instead of using a Go map.
package prefs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/lenfi-dev/devfeed/internal/feed"
)

// document is the wire shape of a preferences file.
type document struct {
	Interests map[feed.InterestTag]bool `json:"userInterests"`
	Languages languageSelection         `json:"userLanguages"`
}

// languageSelection decodes a JSON boolean map into the selected language
// IDs in document key order. Deselected (false) entries are dropped during
// decoding.
type languageSelection []feed.LanguageID

// UnmarshalJSON implements ordered decoding via the token stream.
func (ls *languageSelection) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*ls = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("languages: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("languages: expected object, got %v", tok)
	}

	var out languageSelection
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("languages: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("languages: expected string key, got %v", keyTok)
		}

		var selected bool
		if err := dec.Decode(&selected); err != nil {
			return fmt.Errorf("language %q: %w", key, err)
		}
		if selected {
			out = append(out, feed.LanguageID(key))
		}
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("languages: %w", err)
	}

	*ls = out
	return nil
}

// Store reads user preferences from a JSON file.
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore creates a preference store backed by the file at path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "prefs").Logger(),
	}
}

// Profile reads the stored preferences and converts them to a feed profile.
// A missing, empty, or corrupt document yields an empty profile.
func (s *Store) Profile() feed.UserProfile {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).
			Msg("Preferences unreadable, using empty profile")
		return feed.UserProfile{}
	}
	defer f.Close()

	profile, err := decode(f)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).
			Msg("Preferences corrupt, using empty profile")
		return feed.UserProfile{}
	}

	s.logger.Debug().
		Int("interests", len(profile.Interests)).
		Int("languages", len(profile.Languages)).
		Msg("Loaded user preferences")

	return profile
}

// Parse decodes a preferences document from r. Unlike Store.Profile it
// surfaces decode errors so callers can distinguish corruption from an
// intentionally empty document.
func Parse(r io.Reader) (feed.UserProfile, error) {
	return decode(r)
}

func decode(r io.Reader) (feed.UserProfile, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return feed.UserProfile{}, fmt.Errorf("decode preferences: %w", err)
	}

	profile := feed.UserProfile{Languages: doc.Languages}
	for tag, selected := range doc.Interests {
		if !selected {
			continue
		}
		if profile.Interests == nil {
			profile.Interests = make(map[feed.InterestTag]struct{})
		}
		profile.Interests[tag] = struct{}{}
	}

	return profile, nil
}
