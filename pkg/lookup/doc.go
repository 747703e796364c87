// Package lookup runs the fetch-and-render pipeline behind every search.
//
// # Architecture
//
// A lookup has three strictly sequential stages:
//
//  1. Profile: fetch the user record for the trimmed username
//  2. Repositories: fetch the latest repositories from the profile's listing
//  3. Present: format both into a [profile.Profile]
//
// [Runner] executes the stages and reports the first failure. [Transition]
// folds an outcome into a [profile.ViewState] without side effects, and
// [Controller] owns the state of one interactive search box.
//
// # Overlapping Searches
//
// Every search started on a [Controller] receives a fresh token. Starting a
// search cancels the context of the one still in flight, and a finished search
// only updates the state while its token is the latest. A slow response can
// therefore never overwrite the result of a newer search.
//
// # Usage
//
//	runner := lookup.NewRunner(github.NewClient(github.Options{}), logger)
//	ctrl := lookup.NewController(runner)
//	state, applied := ctrl.Search(ctx, "octocat")
package lookup
