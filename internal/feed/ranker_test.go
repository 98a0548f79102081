// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import (
	"fmt"
	"testing"
)

func defaultRankLimits() RankLimits {
	return RankLimits{MinScore: 2, MaxProjects: 12}
}

func TestRankProjects_EmptyInterests(t *testing.T) {
	projects := []Project{
		{ID: "p1", Title: "Build a REST API", Tags: []string{"Backend"}},
		{ID: "p2", Title: "Docker Pipeline"},
	}

	if got := RankProjects(projects, nil, defaultRankLimits()); got != nil {
		t.Errorf("RankProjects(nil interests) = %v, want nil", got)
	}
	if got := RankProjects(projects, map[InterestTag]struct{}{}, defaultRankLimits()); got != nil {
		t.Errorf("RankProjects(empty interests) = %v, want nil", got)
	}
}

func TestRankProjects_Threshold(t *testing.T) {
	projects := []Project{
		// Single description hit ("deploy") scores 1: below threshold.
		{ID: "weak", Title: "First Steps", Description: "Deploy your project"},
		// Single tag hit ("docker") scores 2: at threshold.
		{ID: "tagged", Title: "First Steps", Tags: []string{"Docker"}},
		// Two description hits ("deploy", "pipeline") score 2: at threshold.
		{ID: "twodesc", Title: "First Steps", Description: "Deploy via a pipeline"},
	}

	got := RankProjects(projects, interests("devops"), defaultRankLimits())

	ids := make([]string, len(got))
	for i, sp := range got {
		ids[i] = sp.Project.ID
	}
	if len(got) != 2 {
		t.Fatalf("ranked %v, want exactly [tagged twodesc]", ids)
	}
	for _, sp := range got {
		if sp.Project.ID == "weak" {
			t.Error("score-1 project survived the threshold")
		}
		if sp.Score < 2 {
			t.Errorf("project %s kept with score %d < 2", sp.Project.ID, sp.Score)
		}
	}
}

func TestRankProjects_StableOrder(t *testing.T) {
	// Both score 3 via a single title hit.
	postgres := Project{ID: "postgres", Title: "Postgres Guide"}
	redis := Project{ID: "redis", Title: "Redis Guide"}

	tests := []struct {
		name     string
		projects []Project
		wantIDs  []string
	}{
		{
			name:     "catalog order postgres first",
			projects: []Project{postgres, redis},
			wantIDs:  []string{"postgres", "redis"},
		},
		{
			name:     "catalog order redis first",
			projects: []Project{redis, postgres},
			wantIDs:  []string{"redis", "postgres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankProjects(tt.projects, interests("database"), defaultRankLimits())
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ranked %d projects, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].Project.ID != want {
					t.Errorf("position %d = %s, want %s", i, got[i].Project.ID, want)
				}
				if got[i].Score != 3 {
					t.Errorf("project %s score = %d, want 3", got[i].Project.ID, got[i].Score)
				}
			}
		})
	}
}

func TestRankProjects_SortsDescending(t *testing.T) {
	projects := []Project{
		{ID: "low", Title: "First Steps", Tags: []string{"Docker"}},            // 2
		{ID: "high", Title: "Docker and Kubernetes Pipeline"},                  // 9
		{ID: "mid", Title: "Terraform Guide", Description: "Deploy anywhere"},  // 4
	}

	got := RankProjects(projects, interests("devops"), defaultRankLimits())
	if len(got) != 3 {
		t.Fatalf("ranked %d projects, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not non-increasing: %d before %d", got[i-1].Score, got[i].Score)
		}
	}
	if got[0].Project.ID != "high" || got[2].Project.ID != "low" {
		t.Errorf("order = [%s %s %s], want [high mid low]",
			got[0].Project.ID, got[1].Project.ID, got[2].Project.ID)
	}
}

func TestRankProjects_Truncates(t *testing.T) {
	projects := make([]Project, 20)
	for i := range projects {
		projects[i] = Project{
			ID:    fmt.Sprintf("p%02d", i),
			Title: fmt.Sprintf("SQL Basics %d", i),
		}
	}

	got := RankProjects(projects, interests("database"), defaultRankLimits())
	if len(got) != 12 {
		t.Fatalf("ranked %d projects, want limit of 12", len(got))
	}
	// Equal scores: truncation keeps the first twelve in catalog order.
	for i, sp := range got {
		want := fmt.Sprintf("p%02d", i)
		if sp.Project.ID != want {
			t.Errorf("position %d = %s, want %s", i, sp.Project.ID, want)
		}
	}
}
