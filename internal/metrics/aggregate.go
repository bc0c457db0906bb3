// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (aggregate.go) computes the summary from a validated bundle.
// Pure functions, no I/O.
package metrics

import (
	"time"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
)

// Summary is the aggregated view of one repository, consumed by report
// writers. The average-days fields are nil when the repository has no
// closed items of that kind; "no closures yet" is distinct from
// "closes in zero days".
type Summary struct {
	Repo                 string   `json:"repo"`
	Stars                int      `json:"stars"`
	Forks                int      `json:"forks"`
	Watchers             int      `json:"watchers"`
	ReleaseCount         int      `json:"release_count"`
	OpenIssues           int      `json:"open_issue_count"`
	ClosedIssues         int      `json:"closed_issue_count"`
	OpenPRs              int      `json:"open_pr_count"`
	ClosedPRs            int      `json:"closed_pr_count"`
	AvgDaysToCloseIssues *float64 `json:"avg_days_to_close_issues"`
	AvgDaysToClosePRs    *float64 `json:"avg_days_to_close_prs"`
}

// ExtractMetadata reduces a validated bundle to its summary.
func ExtractMetadata(data *RepoData) Summary {
	summary := Summary{
		Repo:         data.Repository.FullName,
		Stars:        data.Repository.Stars,
		Forks:        data.Repository.Forks,
		Watchers:     data.Repository.Watchers,
		ReleaseCount: len(data.Releases),
	}

	for _, issue := range data.Issues {
		switch issue.State {
		case githubapi.StateOpen:
			summary.OpenIssues++
		case githubapi.StateClosed:
			summary.ClosedIssues++
		}
	}
	for _, pr := range data.PullRequests {
		switch pr.State {
		case githubapi.StateOpen:
			summary.OpenPRs++
		case githubapi.StateClosed:
			summary.ClosedPRs++
		}
	}

	summary.AvgDaysToCloseIssues = avgDaysToClose(issueClosures(data.Issues))
	summary.AvgDaysToClosePRs = avgDaysToClose(prClosures(data.PullRequests))
	return summary
}

// closure is one closed item's lifetime.
type closure struct {
	createdAt time.Time
	closedAt  time.Time
}

func issueClosures(issues []githubapi.Issue) []closure {
	closures := make([]closure, 0, len(issues))
	for _, issue := range issues {
		if issue.State == githubapi.StateClosed && issue.ClosedAt != nil && !issue.CreatedAt.IsZero() {
			closures = append(closures, closure{createdAt: issue.CreatedAt, closedAt: *issue.ClosedAt})
		}
	}
	return closures
}

func prClosures(prs []githubapi.PullRequest) []closure {
	closures := make([]closure, 0, len(prs))
	for _, pr := range prs {
		if pr.State == githubapi.StateClosed && pr.ClosedAt != nil && !pr.CreatedAt.IsZero() {
			closures = append(closures, closure{createdAt: pr.CreatedAt, closedAt: *pr.ClosedAt})
		}
	}
	return closures
}

// avgDaysToClose returns the mean time-to-close in fractional days, or
// nil when there is nothing closed to average over.
func avgDaysToClose(closures []closure) *float64 {
	if len(closures) == 0 {
		return nil
	}
	var totalDays float64
	for _, c := range closures {
		totalDays += c.closedAt.Sub(c.createdAt).Hours() / 24
	}
	avg := totalDays / float64(len(closures))
	return &avg
}
