package lookup

import (
	"context"
	"strings"

	apperrors "github.com/matzehuels/ghprofile/pkg/errors"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

// Begin returns prev prepared for a new search of query: the error region is
// hidden and everything else is left as it was.
func Begin(prev profile.ViewState, query string) profile.ViewState {
	next := prev
	next.Query = query
	next.ErrorVisible = false
	next.ErrorMessage = ""
	return next
}

// Transition folds the outcome of a search into prev.
//
// A validation failure shows the error and leaves the profile region
// untouched. Any other failure shows the error and hides the profile. A
// success shows the profile and hides the error.
func Transition(prev profile.ViewState, p *profile.Profile, err error) profile.ViewState {
	next := prev
	switch {
	case apperrors.Is(err, apperrors.ErrCodeInvalidInput):
		next.ErrorVisible = true
		next.ErrorMessage = apperrors.UserMessage(err)
	case err != nil:
		next.ErrorVisible = true
		next.ErrorMessage = apperrors.UserMessage(err)
		next.ProfileVisible = false
	default:
		next.ErrorVisible = false
		next.ErrorMessage = ""
		next.ProfileVisible = true
		next.Profile = p
	}
	return next
}

// Resolve runs one search from an empty state and returns the resulting view
// with the lookup result, which is nil on failure.
func Resolve(ctx context.Context, r *Runner, input string) (profile.ViewState, *Result, error) {
	state := Begin(profile.ViewState{}, strings.TrimSpace(input))
	res, err := r.Execute(ctx, input)
	if err != nil {
		return Transition(state, nil, err), nil, err
	}
	return Transition(state, res.Profile, nil), res, nil
}
