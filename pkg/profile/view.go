package profile

import (
	"fmt"

	"github.com/matzehuels/ghprofile/pkg/integrations/github"
)

// Stat label suffixes.
const (
	LabelFollowers    = "followers"
	LabelFollowing    = "following"
	LabelRepositories = "repositories"
)

// ViewState is everything a front end needs to draw the search page: the
// visibility of the error and profile regions and their content.
type ViewState struct {
	Query          string   `json:"query,omitempty"`
	ErrorVisible   bool     `json:"error_visible"`
	ErrorMessage   string   `json:"error_message,omitempty"`
	ProfileVisible bool     `json:"profile_visible"`
	Profile        *Profile `json:"profile,omitempty"`
}

// Profile is the formatted view of one user and their latest repositories.
type Profile struct {
	Header Header         `json:"header"`
	Stats  Stats          `json:"stats"`
	Info   AdditionalInfo `json:"additional_info"`
	Repos  []RepoCard     `json:"repos"`
}

// Header is the identity block at the top of a profile.
type Header struct {
	AvatarURL  string `json:"avatar_url"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Bio        string `json:"bio"`
	Location   string `json:"location"`
	Joined     string `json:"joined"`
	ProfileURL string `json:"profile_url"`
}

// Stats holds the three profile counters.
type Stats struct {
	Followers    int `json:"followers"`
	Following    int `json:"following"`
	Repositories int `json:"repositories"`
}

// Labels returns the counters with their suffixes, in display order.
func (s Stats) Labels() []string {
	return []string{
		fmt.Sprintf("%d %s", s.Followers, LabelFollowers),
		fmt.Sprintf("%d %s", s.Following, LabelFollowing),
		fmt.Sprintf("%d %s", s.Repositories, LabelRepositories),
	}
}

// Link is an anchor target with its visible text.
type Link struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// AdditionalInfo holds company, blog and twitter.
type AdditionalInfo struct {
	Company string `json:"company"`
	Blog    Link   `json:"blog"`
	Twitter Link   `json:"twitter"`
}

// RepoCard is one repository in the latest repositories list.
type RepoCard struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Updated     string `json:"updated"`
}

// Build formats user and repos into a Profile. Repository order is kept.
func Build(user *github.User, repos []github.Repo) *Profile {
	return &Profile{
		Header: BuildHeader(user),
		Stats:  BuildStats(user),
		Info:   BuildAdditionalInfo(user),
		Repos:  BuildRepoCards(repos),
	}
}

// BuildHeader formats the identity block of user.
func BuildHeader(user *github.User) Header {
	return Header{
		AvatarURL:  user.AvatarURL,
		Name:       orDefault(user.Name, FallbackName),
		Username:   "@" + user.Login,
		Bio:        orDefault(user.Bio, FallbackBio),
		Location:   orDefault(user.Location, FallbackUnspecified),
		Joined:     FormatDate(user.CreatedAt),
		ProfileURL: user.HTMLURL,
	}
}

// BuildStats copies the counters of user.
func BuildStats(user *github.User) Stats {
	return Stats{
		Followers:    user.Followers,
		Following:    user.Following,
		Repositories: user.PublicRepos,
	}
}

// BuildAdditionalInfo formats company, blog and twitter of user.
func BuildAdditionalInfo(user *github.User) AdditionalInfo {
	return AdditionalInfo{
		Company: orDefault(user.Company, FallbackUnspecified),
		Blog:    BlogLink(user.Blog),
		Twitter: TwitterLink(user.TwitterUsername),
	}
}

// BuildRepoCards formats repos. The result is never nil.
func BuildRepoCards(repos []github.Repo) []RepoCard {
	cards := make([]RepoCard, 0, len(repos))
	for _, r := range repos {
		cards = append(cards, RepoCard{
			Name:        r.Name,
			URL:         r.HTMLURL,
			Description: orDefault(r.Description, FallbackDescription),
			Language:    orDefault(r.Language, FallbackLanguage),
			Stars:       r.Stars,
			Forks:       r.Forks,
			Updated:     FormatDate(r.UpdatedAt),
		})
	}
	return cards
}
