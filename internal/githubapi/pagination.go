// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (pagination.go) assembles complete result sets from endpoints
// that split them across pages. GitHub advertises the next page through a
// Link response header; a page shorter than the requested page size also
// ends the sequence, which covers servers that omit the header on the
// final full page.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const defaultPageSize = 100

// paginate fetches successive pages of path until the result set is
// complete, invoking fn for every item in page order. Any page failure
// aborts the whole sequence; callers never see partial results.
func (c *liveClient) paginate(ctx context.Context, path string, params url.Values, fn func(json.RawMessage) error) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("per_page", strconv.Itoa(c.pageSize))

	target := path
	for {
		resp, err := c.retry.execute(ctx, http.MethodGet, target, params)
		if err != nil {
			return err
		}

		var items []json.RawMessage
		if err := json.Unmarshal(resp.body, &items); err != nil {
			return fmt.Errorf("decoding page from %s: %w", target, err)
		}
		for _, item := range items {
			if err := fn(item); err != nil {
				return err
			}
		}

		next, ok := nextPageLink(resp.header.Get("Link"))
		if !ok || len(items) < c.pageSize {
			return nil
		}

		// The next-page URL already carries the query parameters.
		target = next
		params = nil
	}
}

// nextPageLink extracts the rel="next" URL from a GitHub Link header.
//
// The header looks like:
//
//	<https://api.github.com/repos/o/r/issues?per_page=100&page=2>; rel="next",
//	<https://api.github.com/repos/o/r/issues?per_page=100&page=9>; rel="last"
//
// Returns the URL and true when a next page is advertised.
func nextPageLink(linkHeader string) (string, bool) {
	for _, link := range strings.Split(linkHeader, ",") {
		if !strings.Contains(link, `rel="next"`) {
			continue
		}
		if urlPart, _, ok := strings.Cut(link, ">"); ok {
			urlPart = strings.TrimSpace(urlPart)
			if target, ok := strings.CutPrefix(urlPart, "<"); ok {
				return target, true
			}
		}
	}
	return "", false
}
