// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

// InterestTag identifies a coarse topic category a user can opt into
// (e.g. "backend", "ai"). The set of known tags is fixed; see keywords.go.
type InterestTag string

// LanguageID identifies a programming language in the catalog
// (e.g. "javascript", "python").
type LanguageID string

// CategoryID identifies a category within a language's reference content
// (e.g. "basics", "oop").
type CategoryID string

// UserProfile holds the user's stored preferences as consumed by the engine.
// Both fields are the filtered true-subset of the underlying boolean maps:
// untouched or unset keys never appear here.
type UserProfile struct {
	// Interests is the set of interest tags toggled on.
	// Iteration order carries no meaning; interests are an unordered set.
	Interests map[InterestTag]struct{} `json:"interests"`

	// Languages lists the languages toggled on, in toggle/storage order.
	// This order is presentation order and must be preserved.
	Languages []LanguageID `json:"languages"`
}

// HasInterest reports whether the given tag is active in the profile.
func (p UserProfile) HasInterest(tag InterestTag) bool {
	_, ok := p.Interests[tag]
	return ok
}

// Project is a tutorial project from the content catalog.
// Difficulty, Duration and Icon are display metadata passed through unscored.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Item is a single reference entry within a category (title plus description).
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Category groups reference items under a language.
type Category struct {
	ID    CategoryID `json:"id"`
	Name  string     `json:"name"`
	Items []Item     `json:"items,omitempty"`
}

// Language is a per-language branch of the content catalog.
//
// Categories is an ordered slice rather than a map: the selector falls back
// to catalog document order for categories outside the priority list, and Go
// map iteration would not preserve it. The catalog adapter keeps JSON
// document order when decoding.
type Language struct {
	Name       string     `json:"name"`
	Icon       string     `json:"icon,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

// ContentCatalog is the immutable content snapshot one recommendation
// computation reads. The engine never mutates it.
type ContentCatalog struct {
	Projects  []Project               `json:"projects,omitempty"`
	Languages map[LanguageID]Language `json:"languages,omitempty"`
}

// ScoredProject pairs a project with its relevance score and the interests
// that produced it. Built fresh per computation, never persisted.
type ScoredProject struct {
	Project Project `json:"project"`

	// Score is the accumulated keyword-match score (always >= 0).
	Score int `json:"score"`

	// MatchedInterests lists the interests that contributed at least one
	// keyword hit, sorted for deterministic output.
	MatchedInterests []InterestTag `json:"matched_interests,omitempty"`
}

// TopicEntry is a single language-reference item selected for a language
// section. It carries enough identifiers (LanguageID/CategoryID/ItemIndex)
// for the caller to re-fetch full item detail from the catalog.
type TopicEntry struct {
	LanguageID   LanguageID `json:"language_id"`
	LanguageName string     `json:"language_name"`
	LanguageIcon string     `json:"language_icon,omitempty"`
	CategoryID   CategoryID `json:"category_id"`
	CategoryName string     `json:"category_name"`
	ItemIndex    int        `json:"item_index"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
}

// LanguageTopics holds the selected topic entries for one language,
// in final presentation order.
type LanguageTopics struct {
	Language LanguageID   `json:"language"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon,omitempty"`
	Entries  []TopicEntry `json:"entries"`
}

// SectionKind discriminates the item type a Section carries.
type SectionKind int

const (
	// SectionProjects marks a section of ranked projects.
	SectionProjects SectionKind = iota
	// SectionTopics marks a per-language section of topic entries.
	SectionTopics
)

// String returns a human-readable section kind name.
func (k SectionKind) String() string {
	switch k {
	case SectionProjects:
		return "projects"
	case SectionTopics:
		return "topics"
	default:
		return "unknown"
	}
}

// Section is a named, ordered group of content items ready for rendering.
// Exactly one of Projects or Topics is populated, per Kind.
type Section struct {
	Title    string          `json:"title"`
	Kind     SectionKind     `json:"kind"`
	Projects []ScoredProject `json:"projects,omitempty"`
	Topics   []TopicEntry    `json:"topics,omitempty"`
}
