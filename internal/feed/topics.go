// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

// priorityCategories lists the categories surfaced first within each
// language section, in this order. Categories outside the list follow in
// catalog document order.
var priorityCategories = []CategoryID{
	"basics", "fundamentals", "arrays", "functions", "oop",
}

// TopicLimits holds the named limit parameters for topic selection.
type TopicLimits struct {
	// MaxLanguages caps how many of the user's languages produce sections.
	MaxLanguages int

	// MaxCategoriesPerLanguage caps how many categories contribute per
	// language after priority ordering.
	MaxCategoriesPerLanguage int

	// MaxItemsPerCategory caps how many items each category contributes.
	MaxItemsPerCategory int

	// MaxItemsPerLanguage caps the flattened per-language entry count.
	MaxItemsPerLanguage int
}

// SelectTopics picks a bounded, diversified set of reference items for the
// user's selected languages.
//
// Languages are taken in the order given (toggle/storage order), never
// re-sorted by popularity or score. Within a language, categories are
// promoted by the fixed priority list and otherwise keep catalog order.
// A language that yields zero entries is omitted entirely. Languages
// missing from the catalog are skipped the same way.
func SelectTopics(languages []LanguageID, catalog *ContentCatalog, limits TopicLimits) []LanguageTopics {
	if catalog == nil || len(languages) == 0 {
		return nil
	}

	selected := languages
	if limits.MaxLanguages > 0 && len(selected) > limits.MaxLanguages {
		selected = selected[:limits.MaxLanguages]
	}

	out := make([]LanguageTopics, 0, len(selected))
	for _, id := range selected {
		lang, ok := catalog.Languages[id]
		if !ok {
			continue
		}

		entries := selectLanguageEntries(id, lang, limits)
		if len(entries) == 0 {
			continue
		}

		out = append(out, LanguageTopics{
			Language: id,
			Name:     lang.Name,
			Icon:     lang.Icon,
			Entries:  entries,
		})
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// selectLanguageEntries builds the flattened topic entry list for one
// language, applying category and item caps.
func selectLanguageEntries(id LanguageID, lang Language, limits TopicLimits) []TopicEntry {
	categories := orderCategories(lang.Categories)
	if limits.MaxCategoriesPerLanguage > 0 && len(categories) > limits.MaxCategoriesPerLanguage {
		categories = categories[:limits.MaxCategoriesPerLanguage]
	}

	var entries []TopicEntry
	for _, cat := range categories {
		items := cat.Items
		if limits.MaxItemsPerCategory > 0 && len(items) > limits.MaxItemsPerCategory {
			items = items[:limits.MaxItemsPerCategory]
		}
		for idx, item := range items {
			entries = append(entries, TopicEntry{
				LanguageID:   id,
				LanguageName: lang.Name,
				LanguageIcon: lang.Icon,
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				ItemIndex:    idx,
				Title:        item.Title,
				Description:  item.Description,
			})
		}
	}

	if limits.MaxItemsPerLanguage > 0 && len(entries) > limits.MaxItemsPerLanguage {
		entries = entries[:limits.MaxItemsPerLanguage]
	}
	return entries
}

// orderCategories places priority categories first (in priority-list order)
// and keeps catalog order for the remainder. The input slice is not
// modified.
func orderCategories(categories []Category) []Category {
	if len(categories) == 0 {
		return nil
	}

	byID := make(map[CategoryID]int, len(categories))
	for i, c := range categories {
		// First occurrence wins if a catalog repeats an ID.
		if _, seen := byID[c.ID]; !seen {
			byID[c.ID] = i
		}
	}

	ordered := make([]Category, 0, len(categories))
	promoted := make(map[CategoryID]struct{}, len(priorityCategories))

	for _, id := range priorityCategories {
		if i, ok := byID[id]; ok {
			ordered = append(ordered, categories[i])
			promoted[id] = struct{}{}
		}
	}
	for _, c := range categories {
		if _, ok := promoted[c.ID]; ok {
			// Skip only the occurrence that was promoted; a duplicate ID
			// later in the catalog keeps its slot.
			delete(promoted, c.ID)
			continue
		}
		ordered = append(ordered, c)
	}

	return ordered
}
