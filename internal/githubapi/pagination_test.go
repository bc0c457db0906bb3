package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newMockedClient builds a live client wired to httpmock, with instant
// retry sleeps so failure tests stay fast.
func newMockedClient(t *testing.T, pageSize int) *liveClient {
	t.Helper()
	c := newLiveClient(Config{
		RetryAttempts:  3,
		RetryDelay:     time.Millisecond,
		RequestTimeout: 5 * time.Second,
		PageSize:       pageSize,
		Logger:         zap.NewNop(),
	})
	c.retry.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func releasePage(baseID int, count int) []map[string]any {
	page := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		page = append(page, map[string]any{
			"id":       baseID + i,
			"tag_name": fmt.Sprintf("v0.%d.0", baseID+i),
		})
	}
	return page
}

func pagedResponder(t *testing.T, pages [][]map[string]any, baseURL string) httpmock.Responder {
	t.Helper()
	page := 0
	return func(req *http.Request) (*http.Response, error) {
		require.Less(t, page, len(pages), "requested more pages than exist")
		resp, err := httpmock.NewJsonResponse(http.StatusOK, pages[page])
		require.NoError(t, err)
		if page < len(pages)-1 {
			resp.Header.Set("Link", fmt.Sprintf(`<%s?per_page=2&page=%d>; rel="next"`, baseURL, page+2))
		}
		page++
		return resp, nil
	}
}

func TestPaginateAssemblesAllPagesInOrder(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	baseURL := "https://api.github.com/repos/o/r/releases"
	pages := [][]map[string]any{
		releasePage(1, 2),
		releasePage(3, 2),
		releasePage(5, 1), // partial page ends the sequence
	}
	httpmock.RegisterResponder("GET", baseURL, pagedResponder(t, pages, baseURL))

	c := newMockedClient(t, 2)
	releases, err := c.GetReleases(context.Background(), "o", "r")
	require.NoError(t, err)

	require.Len(t, releases, 5)
	for i, release := range releases {
		assert.Equal(t, int64(i+1), release.ID, "items must keep per-page order")
	}
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

func TestPaginateStopsOnExactMultipleWithoutNextLink(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	baseURL := "https://api.github.com/repos/o/r/releases"
	// A single full page with no Link header: the sequence is complete.
	httpmock.RegisterResponder("GET", baseURL,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, releasePage(1, 2)))

	c := newMockedClient(t, 2)
	releases, err := c.GetReleases(context.Background(), "o", "r")
	require.NoError(t, err)
	assert.Len(t, releases, 2)
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "no speculative fetch past the last page")
}

func TestPaginateStopsOnUndersizedPageDespiteNextLink(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	baseURL := "https://api.github.com/repos/o/r/releases"
	httpmock.RegisterResponder("GET", baseURL, func(req *http.Request) (*http.Response, error) {
		resp, err := httpmock.NewJsonResponse(http.StatusOK, releasePage(1, 1))
		require.NoError(t, err)
		resp.Header.Set("Link", fmt.Sprintf(`<%s?per_page=2&page=2>; rel="next"`, baseURL))
		return resp, nil
	})

	c := newMockedClient(t, 2)
	releases, err := c.GetReleases(context.Background(), "o", "r")
	require.NoError(t, err)
	assert.Len(t, releases, 1)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestPaginateDiscardsPartialResultsOnPageFailure(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	baseURL := "https://api.github.com/repos/o/r/releases"
	page := 0
	httpmock.RegisterResponder("GET", baseURL, func(req *http.Request) (*http.Response, error) {
		page++
		if page == 1 {
			resp, err := httpmock.NewJsonResponse(http.StatusOK, releasePage(1, 2))
			require.NoError(t, err)
			resp.Header.Set("Link", fmt.Sprintf(`<%s?per_page=2&page=2>; rel="next"`, baseURL))
			return resp, nil
		}
		return httpmock.NewStringResponse(http.StatusInternalServerError, "boom"), nil
	})

	c := newMockedClient(t, 2)
	releases, err := c.GetReleases(context.Background(), "o", "r")
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Nil(t, releases, "no partial result set on failure")
}

func TestNextPageLink(t *testing.T) {
	header := `<https://api.github.com/repos/o/r/issues?per_page=100&page=2>; rel="next", ` +
		`<https://api.github.com/repos/o/r/issues?per_page=100&page=9>; rel="last"`
	next, ok := nextPageLink(header)
	require.True(t, ok)
	assert.Equal(t, "https://api.github.com/repos/o/r/issues?per_page=100&page=2", next)

	_, ok = nextPageLink(`<https://api.github.com/x?page=1>; rel="prev"`)
	assert.False(t, ok)

	_, ok = nextPageLink("")
	assert.False(t, ok)
}
