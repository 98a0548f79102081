// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import (
	"reflect"
	"testing"
)

func interests(tags ...InterestTag) map[InterestTag]struct{} {
	set := make(map[InterestTag]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func TestScoreProject(t *testing.T) {
	tests := []struct {
		name        string
		project     Project
		interests   map[InterestTag]struct{}
		wantScore   int
		wantMatched []InterestTag
	}{
		{
			name:      "no active interests scores zero",
			project:   Project{Title: "Build a REST API"},
			interests: nil,
			wantScore: 0,
		},
		{
			name: "title hit weighs three",
			// "postgres" hits the title only.
			project:     Project{Title: "Postgres Guide"},
			interests:   interests("database"),
			wantScore:   3,
			wantMatched: []InterestTag{"database"},
		},
		{
			name: "tag hit weighs two",
			// "docker" hits one tag only.
			project:     Project{Title: "First Steps", Tags: []string{"Docker"}},
			interests:   interests("devops"),
			wantScore:   2,
			wantMatched: []InterestTag{"devops"},
		},
		{
			name: "description hit weighs one",
			// "deploy" hits the description only.
			project:     Project{Title: "First Steps", Description: "Deploy your project"},
			interests:   interests("devops"),
			wantScore:   1,
			wantMatched: []InterestTag{"devops"},
		},
		{
			name: "matching is case-insensitive",
			project: Project{
				Title: "POSTGRES GUIDE",
				Tags:  []string{"SQL"},
			},
			interests:   interests("database"),
			wantScore:   5, // postgres title +3, sql tag +2
			wantMatched: []InterestTag{"database"},
		},
		{
			name: "rest api scenario accumulates all keyword hits",
			project: Project{
				Title: "Build a REST API",
				Tags:  []string{"Backend", "Node.js"},
			},
			interests: interests("backend"),
			// title: "rest" +3, "api" +3; tags: "backend" +2, "node" +2.
			wantScore:   10,
			wantMatched: []InterestTag{"backend"},
		},
		{
			name: "same interest accumulates without cap",
			project: Project{
				Title:       "Docker and Kubernetes Pipeline",
				Description: "A CI/CD deploy walkthrough",
			},
			interests: interests("devops"),
			// title: docker +3, kubernetes +3, pipeline +3;
			// description: ci/cd +1, deploy +1.
			wantScore:   11,
			wantMatched: []InterestTag{"devops"},
		},
		{
			name: "multiple interests merge into sorted matched set",
			project: Project{
				Title: "Fullstack App with Postgres",
				Tags:  []string{"React"},
			},
			interests: interests("web", "database", "frontend"),
			// web: fullstack title +3, react tag +2;
			// database: postgres title +3;
			// frontend: react tag +2.
			wantScore:   10,
			wantMatched: []InterestTag{"database", "frontend", "web"},
		},
		{
			name:      "absent fields contribute zero",
			project:   Project{},
			interests: interests("backend", "web", "cloud"),
			wantScore: 0,
		},
		{
			name:      "unknown interest tag scores nothing",
			project:   Project{Title: "Build a REST API"},
			interests: interests("quantum"),
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := ScoreProject(tt.project, tt.interests)
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
			if !reflect.DeepEqual(matched, tt.wantMatched) {
				t.Errorf("matched = %v, want %v", matched, tt.wantMatched)
			}
		})
	}
}

func TestScoreProject_Deterministic(t *testing.T) {
	p := Project{
		Title:       "Fullstack Website with Postgres and Docker",
		Tags:        []string{"React", "SQL", "Docker"},
		Description: "Deploy a website backed by a database",
	}
	set := interests("web", "database", "devops", "backend")

	wantScore, wantMatched := ScoreProject(p, set)
	for i := 0; i < 50; i++ {
		score, matched := ScoreProject(p, set)
		if score != wantScore {
			t.Fatalf("run %d: score = %d, want %d", i, score, wantScore)
		}
		if !reflect.DeepEqual(matched, wantMatched) {
			t.Fatalf("run %d: matched = %v, want %v", i, matched, wantMatched)
		}
	}
}
