// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (rest.go) implements the request executor: a single HTTP call
// with a fixed per-request timeout and the standard GitHub headers. The
// executor never retries; classification of the raw result and all retry
// decisions belong to the retry controller.
package githubapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	acceptHeader  = "application/vnd.github+json"
	apiVersion    = "2022-11-28"
	defaultAPIURL = "https://api.github.com"
)

// response is the classified result of one request attempt. The body is
// fully read so the connection can be reused; status interpretation is
// left to the caller.
type response struct {
	statusCode int
	header     http.Header
	body       []byte
}

// executor issues a single HTTP request. Implemented by restExecutor for
// live traffic and by test doubles in retry tests.
type executor interface {
	do(ctx context.Context, method, rawURL string, params url.Values) (*response, error)
}

// restExecutor performs real HTTP calls against the GitHub REST API.
type restExecutor struct {
	httpClient *http.Client
	apiURL     string
	logger     *zap.Logger
}

// newRESTExecutor builds an executor with the per-request timeout and,
// when a token is configured, a bearer-credential transport.
func newRESTExecutor(cfg Config, logger *zap.Logger) *restExecutor {
	httpClient := &http.Client{}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = cfg.RequestTimeout

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	return &restExecutor{
		httpClient: httpClient,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		logger:     logger,
	}
}

// do executes one request and returns the raw classified result. rawURL
// is either an endpoint path (joined with the configured API host) or an
// absolute URL, as handed out by pagination Link headers. A non-nil error
// is always a *TransportError; HTTP error statuses come back as a normal
// response for the caller to interpret.
func (e *restExecutor) do(ctx context.Context, method, rawURL string, params url.Values) (*response, error) {
	target := rawURL
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = e.apiURL + target
	}
	if len(params) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target = target + separator + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	e.logger.Debug("api call",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode))

	return &response{
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       body,
	}, nil
}
