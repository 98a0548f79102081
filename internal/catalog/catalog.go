// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

// Package catalog loads the static content catalog consumed by the feed
// engine.
//
// The catalog is a JSON document loaded once at process start and treated as
// an immutable snapshot afterwards. Category order within a language is
// significant (the topic selector falls back to catalog order), so the
// decoder preserves JSON document order instead of round-tripping through a
// Go map.
//
// Loading fails fast with a descriptive error on structural malformation;
// sparse optional fields decode to empty values and are never an error.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/lenfi-dev/devfeed/internal/feed"
	"github.com/lenfi-dev/devfeed/internal/validation"
)

// document is the wire shape of a catalog file. Unknown fields (step lists,
// code samples, usage notes) are ignored: the engine only scores and selects
// on the fields below.
type document struct {
	Projects  []projectDoc                    `json:"projects" validate:"omitempty,dive"`
	Languages map[feed.LanguageID]languageDoc `json:"languages" validate:"omitempty,dive"`
}

type projectDoc struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Difficulty  string   `json:"difficulty"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type languageDoc struct {
	Name       string       `json:"name" validate:"required"`
	Icon       string       `json:"icon"`
	Categories categoryList `json:"categories" validate:"omitempty,dive"`
}

type categoryDoc struct {
	Name  string     `json:"name"`
	Items []feed.Item `json:"items"`
}

// categoryList decodes a JSON categories object into an ordered slice,
// preserving document key order. A plain map would lose the order the
// selector needs.
type categoryList []feed.Category

// UnmarshalJSON implements ordered decoding via the token stream.
func (cl *categoryList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*cl = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("categories: expected object, got %v", tok)
	}

	var out categoryList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("categories: expected string key, got %v", keyTok)
		}

		var entry categoryDoc
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("category %q: %w", key, err)
		}
		out = append(out, feed.Category{
			ID:    feed.CategoryID(key),
			Name:  entry.Name,
			Items: entry.Items,
		})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}

	*cl = out
	return nil
}

// Load decodes and validates a catalog snapshot from r.
func Load(r io.Reader) (*feed.ContentCatalog, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validation.ValidateStruct(&doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return doc.toCatalog(), nil
}

// LoadFile decodes and validates a catalog snapshot from a file.
func LoadFile(path string) (*feed.ContentCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	cat, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// toCatalog converts the wire document into the engine's catalog type.
func (d *document) toCatalog() *feed.ContentCatalog {
	out := &feed.ContentCatalog{}

	if len(d.Projects) > 0 {
		out.Projects = make([]feed.Project, len(d.Projects))
		for i, p := range d.Projects {
			out.Projects[i] = feed.Project{
				ID:          p.ID,
				Title:       p.Title,
				Icon:        p.Icon,
				Difficulty:  p.Difficulty,
				Duration:    p.Duration,
				Description: p.Description,
				Tags:        p.Tags,
			}
		}
	}

	if len(d.Languages) > 0 {
		out.Languages = make(map[feed.LanguageID]feed.Language, len(d.Languages))
		for id, lang := range d.Languages {
			out.Languages[id] = feed.Language{
				Name:       lang.Name,
				Icon:       lang.Icon,
				Categories: lang.Categories,
			}
		}
	}

	return out
}
