package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
)

func closedIssue(id int64, created time.Time, days int) githubapi.Issue {
	closed := created.AddDate(0, 0, days)
	return githubapi.Issue{ID: id, State: githubapi.StateClosed, CreatedAt: created, ClosedAt: &closed}
}

func TestExtractMetadataCounts(t *testing.T) {
	created := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	data := &RepoData{
		Repository: &githubapi.Repository{
			FullName: "o/r",
			Stars:    42,
			Forks:    7,
			Watchers: 5,
		},
		Releases: []githubapi.Release{
			{ID: 1, TagName: "v1"},
			{ID: 2, TagName: "v2"},
		},
		Issues: []githubapi.Issue{
			{ID: 10, State: githubapi.StateOpen, CreatedAt: created},
			closedIssue(11, created, 2),
			closedIssue(12, created, 4),
		},
		PullRequests: []githubapi.PullRequest{
			{ID: 20, State: githubapi.StateOpen, CreatedAt: created},
		},
	}

	summary := ExtractMetadata(data)

	assert.Equal(t, "o/r", summary.Repo)
	assert.Equal(t, 42, summary.Stars)
	assert.Equal(t, 7, summary.Forks)
	assert.Equal(t, 5, summary.Watchers)
	assert.Equal(t, 2, summary.ReleaseCount)
	assert.Equal(t, 1, summary.OpenIssues)
	assert.Equal(t, 2, summary.ClosedIssues)
	assert.Equal(t, 1, summary.OpenPRs)
	assert.Equal(t, 0, summary.ClosedPRs)
}

func TestExtractMetadataAveragesClosedLifetimes(t *testing.T) {
	created := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	data := &RepoData{
		Repository: &githubapi.Repository{FullName: "o/r"},
		Releases:   []githubapi.Release{},
		Issues: []githubapi.Issue{
			closedIssue(1, created, 1),
			closedIssue(2, created, 3),
			closedIssue(3, created, 5),
		},
		PullRequests: []githubapi.PullRequest{},
	}

	summary := ExtractMetadata(data)

	require.NotNil(t, summary.AvgDaysToCloseIssues)
	assert.InDelta(t, 3.0, *summary.AvgDaysToCloseIssues, 1e-9)
}

func TestExtractMetadataNoClosuresMeansUndefinedAverage(t *testing.T) {
	created := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	data := &RepoData{
		Repository: &githubapi.Repository{FullName: "o/r"},
		Releases:   []githubapi.Release{},
		Issues: []githubapi.Issue{
			{ID: 1, State: githubapi.StateOpen, CreatedAt: created},
		},
		PullRequests: []githubapi.PullRequest{},
	}

	summary := ExtractMetadata(data)

	// Undefined, not zero: a repo that has never closed anything is not
	// a repo that closes everything instantly.
	assert.Nil(t, summary.AvgDaysToCloseIssues)
	assert.Nil(t, summary.AvgDaysToClosePRs)
}

func TestExtractMetadataFractionalDays(t *testing.T) {
	created := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	closed := created.Add(36 * time.Hour)
	data := &RepoData{
		Repository: &githubapi.Repository{FullName: "o/r"},
		Releases:   []githubapi.Release{},
		Issues:     []githubapi.Issue{},
		PullRequests: []githubapi.PullRequest{
			{ID: 1, State: githubapi.StateClosed, CreatedAt: created, ClosedAt: &closed},
		},
	}

	summary := ExtractMetadata(data)

	require.NotNil(t, summary.AvgDaysToClosePRs)
	assert.InDelta(t, 1.5, *summary.AvgDaysToClosePRs, 1e-9)
}
