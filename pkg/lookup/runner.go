package lookup

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/ghprofile/pkg/errors"
	"github.com/matzehuels/ghprofile/pkg/integrations/github"
	"github.com/matzehuels/ghprofile/pkg/observability"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

// Fetcher retrieves the records a lookup needs. [github.Client] implements it.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (*github.User, error)
	FetchRepos(ctx context.Context, user *github.User) ([]github.Repo, error)
}

// Result is the outcome of a successful lookup.
type Result struct {
	Username string
	User     *github.User
	Repos    []github.Repo
	Profile  *profile.Profile
	Stats    Stats
}

// Stats contains timing information for a lookup.
type Stats struct {
	UserTime  time.Duration
	ReposTime time.Duration
}

// Runner executes lookups against a Fetcher. It holds no per-search state and
// may be shared between goroutines.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute trims input and runs profile fetch, repository fetch and
// formatting in order. Blank input fails with INVALID_INPUT before the
// Fetcher is called.
func (r *Runner) Execute(ctx context.Context, input string) (*Result, error) {
	username, err := apperrors.ValidateUsername(input)
	if err != nil {
		return nil, err
	}

	hooks := observability.Lookup()
	hooks.OnLookupStart(ctx, username)
	start := time.Now()

	res, err := r.execute(ctx, username)

	repoCount := 0
	if res != nil {
		repoCount = len(res.Repos)
	}
	hooks.OnLookupComplete(ctx, username, repoCount, time.Since(start), err)
	return res, err
}

func (r *Runner) execute(ctx context.Context, username string) (*Result, error) {
	res := &Result{Username: username}

	userStart := time.Now()
	user, err := r.Fetcher.FetchUser(ctx, username)
	if err != nil {
		r.Logger.Debug("profile fetch failed", "username", username, "error", err)
		return nil, err
	}
	res.User = user
	res.Stats.UserTime = time.Since(userStart)
	r.Logger.Debug("fetched profile",
		"username", username,
		"public_repos", user.PublicRepos,
		"duration", res.Stats.UserTime)

	reposStart := time.Now()
	repos, err := r.Fetcher.FetchRepos(ctx, user)
	if err != nil {
		r.Logger.Debug("repository fetch failed", "username", username, "error", err)
		return nil, err
	}
	res.Repos = repos
	res.Stats.ReposTime = time.Since(reposStart)
	r.Logger.Debug("fetched repositories",
		"username", username,
		"count", len(repos),
		"duration", res.Stats.ReposTime)

	res.Profile = profile.Build(user, repos)
	return res, nil
}
