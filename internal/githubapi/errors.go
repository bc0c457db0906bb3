// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (errors.go) defines the error taxonomy for API calls. The
// retry layer uses these types to decide what is worth retrying: transport
// failures and 5xx responses are transient, 4xx responses are caller bugs
// and fail immediately. Rate-limit responses are handled as control flow
// and never surface as errors.
package githubapi

import "fmt"

// TransportError indicates the request never produced an HTTP response
// (connection failure, timeout, DNS error). Transient; the retry layer
// will attempt the request again.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError indicates the request kept failing with 5xx responses or
// transport errors until the retry budget ran out. StatusCode is 0 when
// the final attempt failed before receiving a response; Err then carries
// the underlying transport failure.
type ServerError struct {
	StatusCode int
	URL        string
	Attempts   int
	Err        error
}

func (e *ServerError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("request to %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
	}
	return fmt.Sprintf("server error %d for %s after %d attempts", e.StatusCode, e.URL, e.Attempts)
}

func (e *ServerError) Unwrap() error { return e.Err }

// ClientError indicates a 4xx response other than the rate-limit
// signature: bad owner/repo, bad credentials, bad parameters. Never
// retried.
type ClientError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error %d for %s: %s", e.StatusCode, e.URL, e.Body)
}
