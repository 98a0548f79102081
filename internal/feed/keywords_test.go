// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

import (
	"strings"
	"testing"
)

func TestKeywordsFor_Totality(t *testing.T) {
	tags := []InterestTag{
		"web", "mobile", "backend", "frontend", "database", "devops",
		"ai", "blockchain", "iot", "gamedev", "security", "cloud",
	}

	for _, tag := range tags {
		t.Run(string(tag), func(t *testing.T) {
			kws := KeywordsFor(tag)
			if len(kws) < 6 || len(kws) > 10 {
				t.Errorf("len(KeywordsFor(%q)) = %d, want 6-10", tag, len(kws))
			}
			for _, kw := range kws {
				if kw == "" {
					t.Errorf("KeywordsFor(%q) contains empty keyword", tag)
				}
				if kw != strings.ToLower(kw) {
					t.Errorf("keyword %q for %q is not lowercase", kw, tag)
				}
			}
			if !KnownInterests(tag) {
				t.Errorf("KnownInterests(%q) = false, want true", tag)
			}
		})
	}
}

func TestKeywordsFor_UnknownTag(t *testing.T) {
	if kws := KeywordsFor("quantum"); len(kws) != 0 {
		t.Errorf("KeywordsFor(unknown) = %v, want empty", kws)
	}
	if KnownInterests("quantum") {
		t.Error("KnownInterests(unknown) = true, want false")
	}
}

func TestKeywordsFor_BackendContainsAPI(t *testing.T) {
	// The ranking scenario for "Build a REST API" relies on "api" being an
	// explicit backend keyword.
	found := false
	for _, kw := range KeywordsFor("backend") {
		if kw == "api" {
			found = true
		}
	}
	if !found {
		t.Error(`backend keyword set does not contain "api"`)
	}
}
