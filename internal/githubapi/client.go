// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (client.go) defines the typed client facade. New selects the
// live or the mock implementation exactly once, from explicit
// configuration; call sites never branch on the execution mode.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Config holds the construction-time configuration for a client.
type Config struct {
	// Token is the bearer credential attached to live requests.
	// Unauthenticated calls work but get a much smaller rate quota.
	Token string

	// APIURL overrides the GitHub REST API host, for GitHub Enterprise
	// Server or tests. Defaults to https://api.github.com.
	APIURL string

	// UseMock selects the canned-data implementation instead of live
	// network calls.
	UseMock bool

	// RetryAttempts bounds the attempts per logical request. Default 3.
	RetryAttempts int

	// RetryDelay is the backoff delay before the first retry; each
	// further retry doubles it. Default 5s.
	RetryDelay time.Duration

	// RequestTimeout applies to each individual HTTP request. Default 30s.
	RequestTimeout time.Duration

	// PageSize is the per_page value for paginated endpoints. Default 100.
	PageSize int

	// Logger receives structured debug/warn output from the client core.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

func (c *Config) applyDefaults() {
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = defaultRetryAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultRetryDelay
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.PageSize <= 0 {
		c.PageSize = defaultPageSize
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// API is the repository-data contract shared by the live client and the
// mock provider.
type API interface {
	GetRepository(ctx context.Context, owner, repo string) (*Repository, error)
	GetReleases(ctx context.Context, owner, repo string) ([]Release, error)
	GetIssues(ctx context.Context, owner, repo string, state State) ([]Issue, error)
	GetPullRequests(ctx context.Context, owner, repo string, state State) ([]PullRequest, error)
}

// New builds an API implementation from cfg. The live/mock decision is
// made here and only here.
func New(cfg Config) API {
	cfg.applyDefaults()
	if cfg.UseMock {
		cfg.Logger.Info("using mock GitHub API")
		return NewMock()
	}
	return newLiveClient(cfg)
}

// liveClient implements API against the real GitHub REST API.
type liveClient struct {
	retry    *retryController
	pageSize int
	logger   *zap.Logger
}

func newLiveClient(cfg Config) *liveClient {
	exec := newRESTExecutor(cfg, cfg.Logger)
	policy := retryPolicy{
		maxAttempts: cfg.RetryAttempts,
		baseDelay:   cfg.RetryDelay,
		multiplier:  backoffMultiplier,
	}
	return &liveClient{
		retry:    newRetryController(exec, policy, cfg.Logger),
		pageSize: cfg.PageSize,
		logger:   cfg.Logger,
	}
}

// GetRepository fetches repository metadata. Single request, no
// pagination.
func (c *liveClient) GetRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	path := fmt.Sprintf("/repos/%s/%s", owner, repo)
	resp, err := c.retry.execute(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}
	var repository Repository
	if err := json.Unmarshal(resp.body, &repository); err != nil {
		return nil, fmt.Errorf("decoding repository %s/%s: %w", owner, repo, err)
	}
	return &repository, nil
}

// GetReleases fetches every release of the repository.
func (c *liveClient) GetReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	path := fmt.Sprintf("/repos/%s/%s/releases", owner, repo)
	releases := []Release{}
	err := c.paginate(ctx, path, nil, func(raw json.RawMessage) error {
		var release Release
		if err := json.Unmarshal(raw, &release); err != nil {
			return fmt.Errorf("decoding release: %w", err)
		}
		releases = append(releases, release)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching releases for %s/%s: %w", owner, repo, err)
	}
	return releases, nil
}

// GetIssues fetches issues in the given state. The underlying endpoint
// also returns pull requests; entries carrying the pull-request
// discriminator are dropped so the result contains true issues only.
func (c *liveClient) GetIssues(ctx context.Context, owner, repo string, state State) ([]Issue, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("invalid issue state %q", state)
	}
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, repo)
	params := url.Values{"state": []string{string(state)}}

	issues := []Issue{}
	err := c.paginate(ctx, path, params, func(raw json.RawMessage) error {
		var issue Issue
		if err := json.Unmarshal(raw, &issue); err != nil {
			return fmt.Errorf("decoding issue: %w", err)
		}
		if issue.PullRequest != nil {
			return nil
		}
		issues = append(issues, issue)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching issues for %s/%s: %w", owner, repo, err)
	}
	return issues, nil
}

// GetPullRequests fetches pull requests in the given state. The pulls
// endpoint has no "all" value, so StateAll issues two fetches and
// concatenates them, open first. Items are de-duplicated by ID with the
// first occurrence winning, in case a pull request changes state between
// the two fetches.
func (c *liveClient) GetPullRequests(ctx context.Context, owner, repo string, state State) ([]PullRequest, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("invalid pull request state %q", state)
	}
	if state == StateAll {
		open, err := c.GetPullRequests(ctx, owner, repo, StateOpen)
		if err != nil {
			return nil, err
		}
		closed, err := c.GetPullRequests(ctx, owner, repo, StateClosed)
		if err != nil {
			return nil, err
		}
		return dedupePullRequests(open, closed), nil
	}

	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	params := url.Values{"state": []string{string(state)}}

	prs := []PullRequest{}
	err := c.paginate(ctx, path, params, func(raw json.RawMessage) error {
		var pr PullRequest
		if err := json.Unmarshal(raw, &pr); err != nil {
			return fmt.Errorf("decoding pull request: %w", err)
		}
		prs = append(prs, pr)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s pull requests for %s/%s: %w", state, owner, repo, err)
	}
	return prs, nil
}

// dedupePullRequests concatenates the open and closed sets preserving
// order, keeping the first occurrence of any ID seen twice.
func dedupePullRequests(open, closed []PullRequest) []PullRequest {
	seen := make(map[int64]bool, len(open)+len(closed))
	result := make([]PullRequest, 0, len(open)+len(closed))
	for _, pr := range open {
		if seen[pr.ID] {
			continue
		}
		seen[pr.ID] = true
		result = append(result, pr)
	}
	for _, pr := range closed {
		if seen[pr.ID] {
			continue
		}
		seen[pr.ID] = true
		result = append(result, pr)
	}
	return result
}
