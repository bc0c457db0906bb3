// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (bundle.go) defines the bundle type and the serial fetch that
// fills it. Pagination is inherently sequential, so the four categories
// are fetched one after another; parallelism across repositories belongs
// to the caller, with one client per repository.
package metrics

import (
	"context"
	"fmt"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
)

// RepoData is the complete data bundle for one repository. It is built
// once by FetchRepoData and never mutated afterwards.
type RepoData struct {
	Repository   *githubapi.Repository   `json:"repository"`
	Releases     []githubapi.Release     `json:"releases"`
	Issues       []githubapi.Issue       `json:"issues"`
	PullRequests []githubapi.PullRequest `json:"pull_requests"`
}

// FetchRepoData fetches every data category for owner/repo. Issues and
// pull requests are fetched across all states. Any fetch failure aborts
// the bundle; there are no partial bundles.
func FetchRepoData(ctx context.Context, api githubapi.API, owner, repo string) (*RepoData, error) {
	repository, err := api.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	releases, err := api.GetReleases(ctx, owner, repo)
	if err != nil {
		return nil, err
	}
	issues, err := api.GetIssues(ctx, owner, repo, githubapi.StateAll)
	if err != nil {
		return nil, err
	}
	prs, err := api.GetPullRequests(ctx, owner, repo, githubapi.StateAll)
	if err != nil {
		return nil, err
	}

	data := &RepoData{
		Repository:   repository,
		Releases:     releases,
		Issues:       issues,
		PullRequests: prs,
	}
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("validating data for %s/%s: %w", owner, repo, err)
	}
	return data, nil
}
