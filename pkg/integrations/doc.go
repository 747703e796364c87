// Package integrations provides the shared HTTP layer for API clients.
//
// # Overview
//
// Provider-specific clients live in subpackages:
//
//   - [github]: GitHub REST API (user profiles and repository listings)
//
// # Client Pattern
//
// Provider clients embed [Client] and add typed fetch methods:
//
//	client := github.NewClient(github.Options{})
//	user, err := client.FetchUser(ctx, "octocat")
//
// [Client] handles:
//   - default request headers (Accept, User-Agent)
//   - status classification into [StatusError] and [NetworkError]
//   - JSON decoding of response bodies
//   - request/response events for [observability.HTTPHooks]
//
// Responses are never cached and failed requests are never retried: every
// call reaches the API and every failure reaches the caller.
//
// [github]: github.com/matzehuels/ghprofile/pkg/integrations/github
// [observability.HTTPHooks]: github.com/matzehuels/ghprofile/pkg/observability.HTTPHooks
package integrations
