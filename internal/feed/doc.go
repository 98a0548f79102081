// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

// Package feed implements the interest-based content recommendation engine.
//
// The engine selects, scores, ranks and groups catalog content (tutorial
// projects and per-language reference topics) into a personalized section
// list, driven by the user's stored interest tags and favorite-language
// selections.
//
// # Pipeline
//
//	UserProfile + ContentCatalog
//	    -> RankProjects   (keyword scoring, threshold, stable sort, cap)
//	    -> SelectTopics   (bounded, priority-ordered per-language items)
//	    -> BuildSections  (projects section first, then language sections)
//
// # Purity and concurrency
//
// The engine is synchronous and side-effect-free: one call consumes
// immutable snapshots of its inputs and returns a fresh value. There is no
// I/O, no caching and no shared mutable state, so a single Engine may be
// used from any number of goroutines without locking. Callers wanting
// memoization must key on their own (profile, catalog-version) hash.
//
// # Failure semantics
//
// Sparse data is never an error: empty interest sets, missing languages,
// absent optional text fields and empty catalogs all resolve to empty or
// partial results. Structural validation of raw input documents is the
// adapters' job (see internal/catalog and internal/prefs).
package feed
