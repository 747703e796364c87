package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/matzehuels/ghprofile/pkg/errors"
	"github.com/matzehuels/ghprofile/pkg/integrations"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"

	// RepoPageSize caps the repository listing.
	RepoPageSize = 6

	// RepoSort orders the listing by most recently updated first.
	RepoSort = "updated"
)

// Options configures a Client. The zero value talks to [DefaultBaseURL]
// through an HTTP client without a timeout.
type Options struct {
	BaseURL    string
	HTTPClient integrations.Doer
	UserAgent  string
}

// Client fetches user profiles and repository listings from the GitHub API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. Requests are unauthenticated.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}

	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}

	return &Client{
		Client:  integrations.NewClient(opts.HTTPClient, headers),
		baseURL: base,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchUser retrieves the profile of username.
//
// Blank input fails with an INVALID_INPUT error before any request is made.
// Every non-success status is reported as USER_NOT_FOUND. Transport and
// decoding failures are reported as NETWORK_ERROR carrying the underlying
// message.
func (c *Client) FetchUser(ctx context.Context, username string) (*User, error) {
	name, err := apperrors.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	var u User
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(name))
	if err := c.Get(ctx, endpoint, &u); err != nil {
		var se *integrations.StatusError
		if errors.As(err, &se) {
			return nil, apperrors.UserNotFound(err)
		}
		return nil, apperrors.Network(err)
	}
	return &u, nil
}

// FetchRepos retrieves the most recently updated repositories of user, at
// most [RepoPageSize] of them.
//
// A non-success status or a JSON body that is not an array yields an empty
// list. Transport failures and bodies that are not JSON are reported as
// REPO_FETCH_FAILED with the message "Error fetching repos: <cause>".
func (c *Client) FetchRepos(ctx context.Context, user *User) ([]Repo, error) {
	endpoint, err := c.ReposURL(user)
	if err != nil {
		return nil, apperrors.RepoFetch(err)
	}

	var raw json.RawMessage
	if err := c.Get(ctx, endpoint, &raw); err != nil {
		var se *integrations.StatusError
		if errors.As(err, &se) {
			return []Repo{}, nil
		}
		return nil, apperrors.RepoFetch(err)
	}

	repos, err := decodeRepos(raw)
	if err != nil {
		return nil, apperrors.RepoFetch(err)
	}
	if len(repos) > RepoPageSize {
		repos = repos[:RepoPageSize]
	}
	return repos, nil
}

// decodeRepos decodes a listing body. Anything other than a JSON array, such
// as an API error object, decodes to an empty list.
func decodeRepos(raw json.RawMessage) ([]Repo, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || body[0] != '[' {
		return []Repo{}, nil
	}
	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ReposURL returns the listing endpoint for user with the sort and page size
// query parameters applied. Profiles without a repos_url fall back to
// /users/{login}/repos.
func (c *Client) ReposURL(user *User) (string, error) {
	if user == nil {
		return "", errors.New("no profile to list repositories for")
	}
	raw := user.ReposURL
	if raw == "" {
		raw = fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(user.Login))
	}
	return integrations.WithQuery(raw, url.Values{
		"sort":     {RepoSort},
		"per_page": {strconv.Itoa(RepoPageSize)},
	})
}
