// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import "sort"

// RankLimits holds the named limit parameters for project ranking.
type RankLimits struct {
	// MinScore is the minimum relevance score a project must reach to be
	// kept. The default of 2 requires at least one title or tag hit, or
	// two description hits; a single weak description hit is insufficient.
	MinScore int

	// MaxProjects caps the ranked result length.
	MaxProjects int
}

// RankProjects filters, scores, sorts and truncates the project collection
// for the given active interests.
//
// An empty interest set returns an empty result: absence of signal means no
// recommendations, not "everything". The sort is stable and descending by
// score, so equal-score projects retain their original catalog order. That
// tie-break is a documented property the section builder and its callers
// rely on, not an implementation accident.
func RankProjects(projects []Project, interests map[InterestTag]struct{}, limits RankLimits) []ScoredProject {
	if len(interests) == 0 {
		return nil
	}

	scored := make([]ScoredProject, 0, len(projects))
	for _, p := range projects {
		score, matched := ScoreProject(p, interests)
		if score < limits.MinScore {
			continue
		}
		scored = append(scored, ScoredProject{
			Project:          p,
			Score:            score,
			MatchedInterests: matched,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limits.MaxProjects > 0 && len(scored) > limits.MaxProjects {
		scored = scored[:limits.MaxProjects]
	}

	return scored
}
