// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (mock.go) implements the API contract with canned data keyed
// by owner/repo, for development and tests without network access. The
// apache/iceberg-python fixtures are deliberately malformed (zero IDs,
// missing timestamps, invalid states) to exercise downstream validation
// failure paths.
package githubapi

import (
	"context"
	"fmt"
	"time"
)

// Mock implements API with static fixture data. Fixtures can be replaced
// per scenario with the Set* methods before handing the mock to a caller.
type Mock struct {
	repositories map[string]Repository
	releases     map[string][]Release
	issues       map[string][]Issue
	pullRequests map[string][]PullRequest
}

// NewMock builds a mock pre-loaded with the default fixture set:
// delta-io/delta-rs and apache/hudi-rs are well-formed,
// apache/iceberg-python fails validation on purpose.
func NewMock() *Mock {
	m := &Mock{
		repositories: map[string]Repository{},
		releases:     map[string][]Release{},
		issues:       map[string][]Issue{},
		pullRequests: map[string][]PullRequest{},
	}
	loadDefaultFixtures(m)
	return m
}

// SetRepository overrides the repository fixture for owner/repo.
func (m *Mock) SetRepository(owner, repo string, r Repository) {
	m.repositories[fullName(owner, repo)] = r
}

// SetReleases overrides the release fixtures for owner/repo.
func (m *Mock) SetReleases(owner, repo string, releases []Release) {
	m.releases[fullName(owner, repo)] = releases
}

// SetIssues overrides the issue fixtures for owner/repo.
func (m *Mock) SetIssues(owner, repo string, issues []Issue) {
	m.issues[fullName(owner, repo)] = issues
}

// SetPullRequests overrides the pull request fixtures for owner/repo.
func (m *Mock) SetPullRequests(owner, repo string, prs []PullRequest) {
	m.pullRequests[fullName(owner, repo)] = prs
}

// GetRepository returns the repository fixture. Unknown repositories get
// a generic well-formed record so ad-hoc targets still work in mock mode.
func (m *Mock) GetRepository(_ context.Context, owner, repo string) (*Repository, error) {
	if r, ok := m.repositories[fullName(owner, repo)]; ok {
		return &r, nil
	}
	r := Repository{
		ID:        1,
		Name:      repo,
		FullName:  fullName(owner, repo),
		Owner:     Owner{Login: owner},
		HTMLURL:   fmt.Sprintf("https://github.com/%s/%s", owner, repo),
		CreatedAt: fixtureTime("2020-01-01T00:00:00Z"),
		UpdatedAt: fixtureTime("2023-01-01T00:00:00Z"),
	}
	return &r, nil
}

// GetReleases returns the release fixtures. Unknown repositories get an
// empty set, not nil, so their bundles still validate.
func (m *Mock) GetReleases(_ context.Context, owner, repo string) ([]Release, error) {
	if releases, ok := m.releases[fullName(owner, repo)]; ok {
		return releases, nil
	}
	return []Release{}, nil
}

// GetIssues returns the issue fixtures filtered by state.
func (m *Mock) GetIssues(_ context.Context, owner, repo string, state State) ([]Issue, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("invalid issue state %q", state)
	}
	all, ok := m.issues[fullName(owner, repo)]
	if state == StateAll {
		if !ok {
			return []Issue{}, nil
		}
		return all, nil
	}
	filtered := []Issue{}
	for _, issue := range all {
		if issue.State == state {
			filtered = append(filtered, issue)
		}
	}
	return filtered, nil
}

// GetPullRequests returns the pull request fixtures filtered by state.
// Fixtures store open entries before closed ones, so StateAll preserves
// the open-first ordering of the live client.
func (m *Mock) GetPullRequests(_ context.Context, owner, repo string, state State) ([]PullRequest, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("invalid pull request state %q", state)
	}
	all, ok := m.pullRequests[fullName(owner, repo)]
	if state == StateAll {
		if !ok {
			return []PullRequest{}, nil
		}
		return all, nil
	}
	filtered := []PullRequest{}
	for _, pr := range all {
		if pr.State == state {
			filtered = append(filtered, pr)
		}
	}
	return filtered, nil
}

func fullName(owner, repo string) string {
	return owner + "/" + repo
}

func fixtureTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("bad fixture timestamp: " + value)
	}
	return t
}
