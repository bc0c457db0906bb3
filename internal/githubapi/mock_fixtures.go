// Package githubapi provides a resilient client for the GitHub REST API.
//
// This file (mock_fixtures.go) holds the default fixture set for the mock
// provider. Counts and dates mirror real snapshots of the three lakehouse
// client repositories the tool was first used against.
package githubapi

import "time"

func loadDefaultFixtures(m *Mock) {
	loadDeltaRS(m)
	loadIcebergPython(m)
	loadHudiRS(m)
}

func loadDeltaRS(m *Mock) {
	m.SetRepository("delta-io", "delta-rs", Repository{
		ID:          123456789,
		Name:        "delta-rs",
		FullName:    "delta-io/delta-rs",
		Owner:       Owner{Login: "delta-io"},
		Description: "Native Rust implementation of Delta Lake",
		HTMLURL:     "https://github.com/delta-io/delta-rs",
		Stars:       2705,
		Forks:       468,
		Watchers:    37,
		CreatedAt:   fixtureTime("2020-01-01T00:00:00Z"),
		UpdatedAt:   fixtureTime("2023-01-01T00:00:00Z"),
	})
	m.SetReleases("delta-io", "delta-rs", makeReleases(1, 89, "v0.15.0"))

	issues := makeIssues(1000, 139, StateOpen, "2023-01-01T00:00:00Z", "")
	issues = append(issues, makeIssues(2000, 1130, StateClosed, "2023-01-01T00:00:00Z", "2023-05-15T00:00:00Z")...)
	m.SetIssues("delta-io", "delta-rs", issues)

	prs := makePullRequests(3000, 17, StateOpen, "2023-01-01T00:00:00Z", "")
	prs = append(prs, makePullRequests(4000, 1973, StateClosed, "2023-01-01T00:00:00Z", "2023-01-10T00:00:00Z")...)
	m.SetPullRequests("delta-io", "delta-rs", prs)
}

// loadIcebergPython installs records that violate the bundle shape rules:
// zero identifiers, unset creation timestamps, out-of-vocabulary states
// and closed items without a closing timestamp.
func loadIcebergPython(m *Mock) {
	m.SetRepository("apache", "iceberg-python", Repository{
		Name:     "",
		FullName: "apache/iceberg-python",
		Owner:    Owner{Login: "apache"},
		Stars:    -695,
	})
	m.SetReleases("apache", "iceberg-python", []Release{
		{ID: 0, TagName: "", Name: ""},
	})
	m.SetIssues("apache", "iceberg-python", []Issue{
		{ID: 0, Number: -500, Title: "broken open issue", State: State("OPEN")},
		{ID: 91, Number: 501, Title: "closed without closing date", State: StateClosed,
			CreatedAt: fixtureTime("2023-01-01T00:00:00Z")},
		{ID: 92, Number: 502, Title: "unknown state", State: State("done"),
			CreatedAt: fixtureTime("2023-01-01T00:00:00Z")},
	})
	m.SetPullRequests("apache", "iceberg-python", []PullRequest{
		{ID: 0, Number: 600, Title: "broken pr", State: StateOpen},
		{ID: 93, Number: 601, Title: "closed pr missing dates", State: StateClosed},
	})
}

func loadHudiRS(m *Mock) {
	m.SetRepository("apache", "hudi-rs", Repository{
		ID:          456789123,
		Name:        "hudi-rs",
		FullName:    "apache/hudi-rs",
		Owner:       Owner{Login: "apache"},
		Description: "Rust implementation of Apache Hudi",
		HTMLURL:     "https://github.com/apache/hudi-rs",
		Stars:       209,
		Forks:       42,
		Watchers:    17,
		CreatedAt:   fixtureTime("2022-01-01T00:00:00Z"),
		UpdatedAt:   fixtureTime("2023-01-01T00:00:00Z"),
	})
	m.SetReleases("apache", "hudi-rs", makeReleases(500, 3, "v0.1.0"))

	issues := makeIssues(5000, 28, StateOpen, "2023-01-01T00:00:00Z", "")
	issues = append(issues, makeIssues(6000, 62, StateClosed, "2023-01-01T00:00:00Z", "2023-02-15T00:00:00Z")...)
	m.SetIssues("apache", "hudi-rs", issues)

	prs := makePullRequests(7000, 13, StateOpen, "2023-01-01T00:00:00Z", "")
	prs = append(prs, makePullRequests(8000, 222, StateClosed, "2023-01-01T00:00:00Z", "2023-01-09T00:00:00Z")...)
	m.SetPullRequests("apache", "hudi-rs", prs)
}

func makeReleases(baseID int64, count int, tag string) []Release {
	published := fixtureTime("2023-01-01T00:00:00Z")
	releases := make([]Release, 0, count)
	for i := 0; i < count; i++ {
		releases = append(releases, Release{
			ID:          baseID + int64(i),
			TagName:     tag,
			Name:        "Release " + tag,
			PublishedAt: &published,
		})
	}
	return releases
}

func makeIssues(baseID int64, count int, state State, createdAt, closedAt string) []Issue {
	var closed *time.Time
	if closedAt != "" {
		t := fixtureTime(closedAt)
		closed = &t
	}
	issues := make([]Issue, 0, count)
	for i := 0; i < count; i++ {
		issues = append(issues, Issue{
			ID:        baseID + int64(i),
			Number:    int(baseID) + i,
			Title:     "Issue",
			State:     state,
			CreatedAt: fixtureTime(createdAt),
			ClosedAt:  closed,
		})
	}
	return issues
}

func makePullRequests(baseID int64, count int, state State, createdAt, closedAt string) []PullRequest {
	var closed *time.Time
	if closedAt != "" {
		t := fixtureTime(closedAt)
		closed = &t
	}
	prs := make([]PullRequest, 0, count)
	for i := 0; i < count; i++ {
		prs = append(prs, PullRequest{
			ID:        baseID + int64(i),
			Number:    int(baseID) + i,
			Title:     "Pull request",
			State:     state,
			CreatedAt: fixtureTime(createdAt),
			ClosedAt:  closed,
		})
	}
	return prs
}
