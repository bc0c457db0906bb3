// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (validate.go) checks a bundle's shape before aggregation. The
// validator collects every violation it finds rather than stopping at the
// first, so one run surfaces the full defect report.
package metrics

import (
	"fmt"
	"strings"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
)

// ValidationError reports every shape violation found in a bundle.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid repository data (%d violations): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// Validate checks the bundle shape: repository identity present, item
// identifiers non-zero, states in vocabulary, creation timestamps set,
// and a closing timestamp on every closed item. Returns nil or a
// *ValidationError listing all violations.
func Validate(data *RepoData) error {
	var violations []string

	add := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	if data == nil {
		return &ValidationError{Violations: []string{"bundle is nil"}}
	}

	switch {
	case data.Repository == nil:
		add("repository metadata missing")
	default:
		if data.Repository.Name == "" {
			add("repository name is empty")
		}
		if data.Repository.Owner.Login == "" {
			add("repository owner is empty")
		}
		if data.Repository.HTMLURL == "" {
			add("repository html_url is empty")
		}
	}

	if data.Releases == nil {
		add("releases sequence missing")
	}
	for i, release := range data.Releases {
		if release.ID == 0 {
			add("release[%d]: identifier is zero", i)
		}
		if release.TagName == "" {
			add("release[%d]: tag name is empty", i)
		}
	}

	if data.Issues == nil {
		add("issues sequence missing")
	}
	for i, issue := range data.Issues {
		if issue.ID == 0 {
			add("issue[%d]: identifier is zero", i)
		}
		if issue.State != githubapi.StateOpen && issue.State != githubapi.StateClosed {
			add("issue[%d]: invalid state %q", i, issue.State)
		}
		if issue.CreatedAt.IsZero() {
			add("issue[%d]: creation timestamp missing", i)
		}
		if issue.State == githubapi.StateClosed && issue.ClosedAt == nil {
			add("issue[%d]: closed without closing timestamp", i)
		}
		if issue.PullRequest != nil {
			add("issue[%d]: pull request leaked into issues", i)
		}
	}

	if data.PullRequests == nil {
		add("pull_requests sequence missing")
	}
	for i, pr := range data.PullRequests {
		if pr.ID == 0 {
			add("pull_request[%d]: identifier is zero", i)
		}
		if pr.State != githubapi.StateOpen && pr.State != githubapi.StateClosed {
			add("pull_request[%d]: invalid state %q", i, pr.State)
		}
		if pr.CreatedAt.IsZero() {
			add("pull_request[%d]: creation timestamp missing", i)
		}
		if pr.State == githubapi.StateClosed && pr.ClosedAt == nil {
			add("pull_request[%d]: closed without closing timestamp", i)
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
