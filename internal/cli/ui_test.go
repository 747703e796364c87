package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/ghprofile/pkg/profile"
)

func TestRenderProfile(t *testing.T) {
	p := &profile.Profile{
		Header: profile.Header{Name: "The Octocat", Username: "@octocat", Bio: "No bio available", Location: "Not specified", Joined: "Jan 25, 2011"},
		Stats:  profile.Stats{Followers: 3, Following: 1, Repositories: 8},
		Info: profile.AdditionalInfo{
			Company: "GitHub",
			Blog:    profile.BlogLink("https://www.example.com"),
			Twitter: profile.TwitterLink(""),
		},
		Repos: []profile.RepoCard{{Name: "hello-world", Description: "d", Language: "Go", Stars: 5, Forks: 2, Updated: "Jul 16, 2025"}},
	}

	out := renderProfile(p)
	for _, want := range []string{
		"The Octocat", "@octocat", "Joined Jan 25, 2011",
		"followers", "repositories", "GitHub", "example.com", "Not existed",
		"Latest Repositories", "hello-world", "Jul 16, 2025",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("renderProfile() missing %q", want)
		}
	}
}

func TestRenderReposEmpty(t *testing.T) {
	if got := renderRepos(nil); !strings.Contains(got, "No repositories found") {
		t.Errorf("renderRepos(nil) = %q", got)
	}
}

func TestRenderProfileNil(t *testing.T) {
	if got := renderProfile(nil); got != "" {
		t.Errorf("renderProfile(nil) = %q", got)
	}
}
