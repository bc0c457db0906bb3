package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
)

func timePtr(t time.Time) *time.Time { return &t }

func validBundle() *RepoData {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	closed := created.AddDate(0, 0, 3)
	return &RepoData{
		Repository: &githubapi.Repository{
			ID:       1,
			Name:     "r",
			FullName: "o/r",
			Owner:    githubapi.Owner{Login: "o"},
			HTMLURL:  "https://github.com/o/r",
		},
		Releases: []githubapi.Release{
			{ID: 1, TagName: "v1.0.0"},
		},
		Issues: []githubapi.Issue{
			{ID: 10, State: githubapi.StateOpen, CreatedAt: created},
			{ID: 11, State: githubapi.StateClosed, CreatedAt: created, ClosedAt: timePtr(closed)},
		},
		PullRequests: []githubapi.PullRequest{
			{ID: 20, State: githubapi.StateOpen, CreatedAt: created},
		},
	}
}

func TestValidateAcceptsWellFormedBundle(t *testing.T) {
	assert.NoError(t, Validate(validBundle()))
}

func TestValidateRejectsClosedItemWithoutClosingTimestamp(t *testing.T) {
	data := validBundle()
	data.Issues[1].ClosedAt = nil

	err := Validate(data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Contains(t, validationErr.Violations[0], "issue[1]")
	assert.Contains(t, validationErr.Violations[0], "closed without closing timestamp")
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	data := &RepoData{
		Repository: &githubapi.Repository{Owner: githubapi.Owner{Login: "o"}},
		Releases:   []githubapi.Release{{ID: 0, TagName: ""}},
		Issues: []githubapi.Issue{
			{ID: 0, State: githubapi.State("OPEN")},
			{ID: 2, State: githubapi.StateClosed, CreatedAt: created},
		},
		PullRequests: []githubapi.PullRequest{
			{ID: 3, State: githubapi.State("done"), CreatedAt: created},
		},
	}

	err := Validate(data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	// name + html_url, release id + tag, issue0 id + state + created,
	// issue1 missing closed_at, pr state.
	assert.Len(t, validationErr.Violations, 9)
	assert.Contains(t, err.Error(), "9 violations")
}

func TestValidateRejectsMissingSequences(t *testing.T) {
	data := validBundle()
	data.Releases = nil
	data.Issues = nil

	err := Validate(data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "releases sequence missing")
	assert.Contains(t, validationErr.Violations, "issues sequence missing")
}

func TestValidateRejectsLeakedPullRequest(t *testing.T) {
	data := validBundle()
	data.Issues[0].PullRequest = &githubapi.PullRequestLink{URL: "https://api.github.com/repos/o/r/pulls/1"}

	err := Validate(data)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations[0], "pull request leaked into issues")
}

func TestValidateNilBundle(t *testing.T) {
	err := Validate(nil)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
