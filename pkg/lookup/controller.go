package lookup

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/ghprofile/pkg/observability"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

// Search is one issued search. It is created by [Controller.Begin] and
// completed by [Controller.Run].
type Search struct {
	Token string
	Query string

	ctx    context.Context
	cancel context.CancelFunc
}

// Controller owns the view state of one search box and applies results only
// for the latest issued search. It is safe for concurrent use.
type Controller struct {
	runner *Runner

	mu     sync.Mutex
	state  profile.ViewState
	latest string
	cancel context.CancelFunc
}

// NewController creates a controller with an idle, empty view state.
func NewController(runner *Runner) *Controller {
	return &Controller{runner: runner}
}

// State returns a copy of the current view state.
func (c *Controller) State() profile.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Begin issues a new search for input. The previous in-flight search is
// cancelled and the error region is hidden.
func (c *Controller) Begin(ctx context.Context, input string) *Search {
	sctx, cancel := context.WithCancel(ctx)
	s := &Search{
		Token:  uuid.NewString(),
		Query:  strings.TrimSpace(input),
		ctx:    sctx,
		cancel: cancel,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
	}
	c.latest = s.Token
	c.cancel = cancel
	c.state = Begin(c.state, s.Query)
	return s
}

// Run executes s and applies its outcome. It returns the state after the
// search and whether the outcome was applied; a superseded search leaves the
// state unchanged and reports false.
func (c *Controller) Run(s *Search) (profile.ViewState, bool) {
	defer s.cancel()

	res, err := c.runner.Execute(s.ctx, s.Query)
	var p *profile.Profile
	if res != nil {
		p = res.Profile
	}
	return c.apply(s, p, err)
}

// Search issues and runs a search for input in one call.
func (c *Controller) Search(ctx context.Context, input string) (profile.ViewState, bool) {
	return c.Run(c.Begin(ctx, input))
}

// Latest reports whether token belongs to the most recently issued search.
func (c *Controller) Latest(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token == c.latest
}

func (c *Controller) apply(s *Search, p *profile.Profile, err error) (profile.ViewState, bool) {
	c.mu.Lock()
	if s.Token != c.latest {
		state := c.state
		c.mu.Unlock()
		c.runner.Logger.Debug("dropping superseded search", "query", s.Query)
		observability.Lookup().OnLookupSuperseded(s.ctx, s.Query)
		return state, false
	}
	c.state = Transition(c.state, p, err)
	c.cancel = nil
	state := c.state
	c.mu.Unlock()
	return state, true
}
