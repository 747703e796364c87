// Package pkg provides the core libraries for ghprofile GitHub profile lookups.
//
// # Overview
//
// A lookup fetches one user profile, then that user's latest repositories,
// and formats both for display. The pkg directory is organized as:
//
//  1. [integrations] - HTTP client and the GitHub API client
//  2. [lookup] - Orchestration (profile → repositories → presentation)
//  3. [profile] - View model, formatting rules and HTML components
//  4. [errors] - Error codes and user-facing messages
//  5. [observability] - Hooks for logging and metrics
//
// # Architecture
//
// The data flow of one search:
//
//	username
//	   ↓
//	integrations/github.FetchUser   (GET /users/{username})
//	   ↓
//	integrations/github.FetchRepos  (GET {repos_url}?sort=updated&per_page=6)
//	   ↓
//	profile.Build                   (fallbacks, dates, links)
//	   ↓
//	lookup.Transition               (error / profile visibility)
//	   ↓
//	terminal, HTML page or JSON
//
// [integrations]: github.com/matzehuels/ghprofile/pkg/integrations
// [lookup]: github.com/matzehuels/ghprofile/pkg/lookup
// [profile]: github.com/matzehuels/ghprofile/pkg/profile
// [errors]: github.com/matzehuels/ghprofile/pkg/errors
// [observability]: github.com/matzehuels/ghprofile/pkg/observability
package pkg
