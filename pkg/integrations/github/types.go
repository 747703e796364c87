package github

import "time"

// User is a GitHub profile record as returned by GET /users/{username}.
// Fields the API reports as null decode to their zero value.
type User struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	Bio             string    `json:"bio"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	PublicRepos     int       `json:"public_repos"`
	Location        string    `json:"location"`
	Company         string    `json:"company"`
	Blog            string    `json:"blog"`
	TwitterUsername string    `json:"twitter_username"`
	CreatedAt       time.Time `json:"created_at"`
	HTMLURL         string    `json:"html_url"`
	ReposURL        string    `json:"repos_url"`
}

// Repo is one entry of a user's repository listing.
type Repo struct {
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
