// gh-repo-metrics fetches repository metadata, releases, issues and pull
// requests from the GitHub REST API, validates the collected data and
// aggregates it into summary metrics for comparison reports.
//
// Usage:
//
//	gh-repo-metrics fetch --repo delta-io/delta-rs
//	gh-repo-metrics fetch --input repos.txt --markdown report.md
package main

import (
	"github.com/mona-actions/gh-repo-metrics/cmd"
)

// Version is the current version of gh-repo-metrics.
// It can be overridden at build time using:
//
//	go build -ldflags="-X main.Version=v1.0.0"
var Version = "dev"

func main() {
	cmd.Version = Version
	cmd.Execute()
}
