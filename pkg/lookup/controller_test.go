package lookup

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/matzehuels/ghprofile/pkg/errors"
	"github.com/matzehuels/ghprofile/pkg/observability"
)

func TestControllerSearch(t *testing.T) {
	c := NewController(NewRunner(newStub(), quietLogger()))

	state, applied := c.Search(context.Background(), "octocat")
	if !applied {
		t.Fatal("latest search not applied")
	}
	if !state.ProfileVisible || state.ErrorVisible {
		t.Errorf("state = %+v, want profile shown", state)
	}
	if c.State().Profile.Header.Username != "@octocat" {
		t.Errorf("stored profile = %+v", c.State().Profile)
	}
}

func TestControllerBlankKeepsProfile(t *testing.T) {
	f := newStub()
	c := NewController(NewRunner(f, quietLogger()))
	c.Search(context.Background(), "octocat")

	state, _ := c.Search(context.Background(), "   ")
	if !state.ErrorVisible || state.ErrorMessage != "Enter a valid username" {
		t.Errorf("state = %+v, want validation error", state)
	}
	if !state.ProfileVisible {
		t.Error("blank input hid the profile")
	}
	if f.calls() != 1 {
		t.Errorf("FetchUser calls = %d, want 1", f.calls())
	}
}

func TestControllerFailureHidesProfile(t *testing.T) {
	f := newStub()
	c := NewController(NewRunner(f, quietLogger()))
	c.Search(context.Background(), "octocat")

	f.userErr = apperrors.UserNotFound(errors.New("status 404"))
	state, _ := c.Search(context.Background(), "ghost")
	if state.ProfileVisible {
		t.Error("profile still visible after failure")
	}
	if state.ErrorMessage != "User Not Found 404!" {
		t.Errorf("ErrorMessage = %q", state.ErrorMessage)
	}
}

func TestControllerSupersededSearch(t *testing.T) {
	h := &recordingLookupHooks{}
	observability.SetLookupHooks(h)
	defer observability.Reset()

	slow := newStub()
	slow.block = make(chan struct{})
	c := NewController(NewRunner(slow, quietLogger()))

	first := c.Begin(context.Background(), "slow")
	done := make(chan bool)
	go func() {
		_, applied := c.Run(first)
		done <- applied
	}()

	second := c.Begin(context.Background(), "fast")
	if c.Latest(first.Token) {
		t.Fatal("first token still latest")
	}

	// The first search is cancelled by Begin and must not be applied.
	if applied := <-done; applied {
		t.Error("superseded search was applied")
	}

	close(slow.block)
	state, applied := c.Run(second)
	if !applied {
		t.Fatal("latest search not applied")
	}
	if state.Profile == nil || state.Profile.Header.Username != "@fast" {
		t.Errorf("profile = %+v, want @fast", state.Profile)
	}
	if state.ErrorVisible {
		t.Errorf("cancelled search leaked an error: %q", state.ErrorMessage)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.dropped) != 1 || h.dropped[0] != "slow" {
		t.Errorf("dropped = %v, want [slow]", h.dropped)
	}
}

func TestControllerTokensUnique(t *testing.T) {
	c := NewController(NewRunner(newStub(), quietLogger()))
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		s := c.Begin(context.Background(), "x")
		if seen[s.Token] {
			t.Fatalf("duplicate token %q", s.Token)
		}
		seen[s.Token] = true
		s.cancel()
	}
}
