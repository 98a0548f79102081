// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import (
	"sort"
	"strings"
)

// Field weights for keyword matches. A title hit is the strongest signal,
// a tag hit is a deliberate label by the content author, a description hit
// is the weakest.
const (
	weightTitle       = 3
	weightTag         = 2
	weightDescription = 1
)

// scoreField is one weighted matching rule. Keeping the rules in a table
// rather than scattered conditionals makes each weight independently
// testable and tunable.
type scoreField struct {
	name   string
	weight int
	// values extracts the field strings to test, already lowercased.
	values func(p searchableProject) []string
}

// searchableProject caches the lowercased fields of a project so each
// keyword test does no repeated case folding.
type searchableProject struct {
	title       string
	tags        []string
	description string
}

var scoreFields = []scoreField{
	{
		name:   "title",
		weight: weightTitle,
		values: func(p searchableProject) []string {
			if p.title == "" {
				return nil
			}
			return []string{p.title}
		},
	},
	{
		name:   "tag",
		weight: weightTag,
		values: func(p searchableProject) []string { return p.tags },
	},
	{
		name:   "description",
		weight: weightDescription,
		values: func(p searchableProject) []string {
			if p.description == "" {
				return nil
			}
			return []string{p.description}
		},
	},
}

// ScoreProject computes the relevance score of one project against the
// active interest set, together with the interests that matched.
//
// For each active interest, every keyword is tested by case-insensitive
// substring containment against the weighted fields above. All hits
// accumulate additively with no per-interest cap, so a project matching
// several keywords of one interest scores each of them. Absent fields
// contribute zero. The function is pure, and interest iteration order does
// not affect the result (summation is commutative; the matched set is
// returned sorted).
func ScoreProject(p Project, interests map[InterestTag]struct{}) (int, []InterestTag) {
	if len(interests) == 0 {
		return 0, nil
	}

	sp := searchableProject{
		title:       strings.ToLower(p.Title),
		description: strings.ToLower(p.Description),
	}
	if len(p.Tags) > 0 {
		sp.tags = make([]string, len(p.Tags))
		for i, t := range p.Tags {
			sp.tags[i] = strings.ToLower(t)
		}
	}

	score := 0
	matched := make(map[InterestTag]struct{})

	for tag := range interests {
		for _, kw := range KeywordsFor(tag) {
			if kw == "" {
				continue
			}
			hits := 0
			for _, rule := range scoreFields {
				for _, v := range rule.values(sp) {
					if strings.Contains(v, kw) {
						score += rule.weight
						hits++
					}
				}
			}
			if hits > 0 {
				matched[tag] = struct{}{}
			}
		}
	}

	return score, sortedInterests(matched)
}

// sortedInterests flattens a matched-interest set into a sorted slice so
// repeated computations produce byte-identical output.
func sortedInterests(set map[InterestTag]struct{}) []InterestTag {
	if len(set) == 0 {
		return nil
	}
	out := make([]InterestTag, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
