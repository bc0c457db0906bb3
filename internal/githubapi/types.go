// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (types.go) defines the wire types returned by the API client
// and the issue/pull-request state filter values accepted by the list
// endpoints.
package githubapi

import "time"

// State filters issue and pull request listings.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
	StateAll    State = "all"
)

// Valid reports whether s is one of the states the GitHub API accepts.
func (s State) Valid() bool {
	switch s {
	case StateOpen, StateClosed, StateAll:
		return true
	}
	return false
}

// Repository holds the metadata returned by GET /repos/{owner}/{repo}.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Owner       Owner     `json:"owner"`
	Private     bool      `json:"private"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Watchers    int       `json:"subscribers_count"`
	OpenIssues  int       `json:"open_issues_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Owner identifies the account a repository belongs to.
type Owner struct {
	Login string `json:"login"`
}

// Release holds one entry from GET /repos/{owner}/{repo}/releases.
type Release struct {
	ID          int64      `json:"id"`
	TagName     string     `json:"tag_name"`
	Name        string     `json:"name"`
	PublishedAt *time.Time `json:"published_at"`
}

// Issue holds one entry from GET /repos/{owner}/{repo}/issues.
//
// The issues endpoint conflates issues and pull requests: entries that
// are really pull requests carry a non-nil PullRequest link. The client
// uses that discriminator to exclude them from GetIssues results.
type Issue struct {
	ID          int64            `json:"id"`
	Number      int              `json:"number"`
	Title       string           `json:"title"`
	State       State            `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	ClosedAt    *time.Time       `json:"closed_at"`
	PullRequest *PullRequestLink `json:"pull_request,omitempty"`
}

// PullRequestLink marks an issues-endpoint entry as a pull request.
type PullRequestLink struct {
	URL string `json:"url"`
}

// PullRequest holds one entry from GET /repos/{owner}/{repo}/pulls.
type PullRequest struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     State      `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at"`
}
