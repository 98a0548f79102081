// Devfeed - Interest-Based Learning Feed Engine
// Copyright 2026 LenFi Development
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lenfi-dev/devfeed

package feed

// interestKeywords maps each known interest tag to the lowercase keywords
// used for relevance matching. The table is static and never mutated at
// runtime. Keywords are matched by case-insensitive substring containment,
// so multi-word entries like "react native" match as written.
var interestKeywords = map[InterestTag][]string{
	"web": {
		"web", "website", "fullstack", "frontend", "react", "html", "css", "javascript",
	},
	"mobile": {
		"mobile", "android", "ios", "flutter", "react native", "swift", "kotlin", "app",
	},
	"backend": {
		"backend", "server", "api", "rest", "node", "express", "graphql", "microservice",
	},
	"frontend": {
		"frontend", "ui", "react", "vue", "angular", "css", "component",
	},
	"database": {
		"database", "sql", "mongodb", "postgres", "redis", "nosql", "query", "schema",
	},
	"devops": {
		"devops", "docker", "kubernetes", "ci/cd", "deploy", "pipeline", "terraform",
	},
	"ai": {
		"ai", "machine learning", "neural", "tensorflow", "pytorch", "nlp", "model", "llm",
	},
	"blockchain": {
		"blockchain", "crypto", "ethereum", "solidity", "web3", "smart contract", "nft",
	},
	"iot": {
		"iot", "arduino", "raspberry pi", "sensor", "embedded", "mqtt", "esp32",
	},
	"gamedev": {
		"game", "unity", "unreal", "godot", "gamedev", "sprite", "physics",
	},
	"security": {
		"security", "encryption", "auth", "vulnerability", "oauth", "jwt", "https",
	},
	"cloud": {
		"cloud", "aws", "azure", "gcp", "serverless", "lambda", "s3", "hosting",
	},
}

// KeywordsFor returns the keyword set for an interest tag. Unknown tags
// yield an empty set, never an error: the scorer simply accumulates nothing
// for them.
func KeywordsFor(tag InterestTag) []string {
	return interestKeywords[tag]
}

// KnownInterests reports whether the tag has a keyword entry.
func KnownInterests(tag InterestTag) bool {
	_, ok := interestKeywords[tag]
	return ok
}
