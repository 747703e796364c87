// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// The client performs the two requests behind a profile lookup:
//
//   - [Client.FetchUser]: GET /users/{username}
//   - [Client.FetchRepos]: GET {repos_url}?sort=updated&per_page=6
//
// # Usage
//
//	client := github.NewClient(github.Options{UserAgent: "ghprofile/dev"})
//
//	user, err := client.FetchUser(ctx, "octocat")
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err)) // e.g. "User Not Found 404!"
//	    return
//	}
//	repos, err := client.FetchRepos(ctx, user)
//
// # Errors
//
// Failures are [errors.Error] values whose Message is meant for end users:
//
//   - blank username: "Enter a valid username" (no request is made)
//   - any non-success status on the profile: "User Not Found 404!"
//   - transport failures or non-JSON bodies listing repositories:
//     "Error fetching repos: <cause>"
//
// A repository listing that answers with a non-success status or with a JSON
// value other than an array, such as a rate-limit message, counts as empty.
//   - transport or decoding failures on the profile: the cause's own message
//
// Requests are unauthenticated, never cached and never retried.
//
// [errors.Error]: github.com/matzehuels/ghprofile/pkg/errors.Error
package github
