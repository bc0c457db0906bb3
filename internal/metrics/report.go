// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (report.go) shapes summaries for the report writers: the JSON
// artifact structure and the comparison table with one column per
// repository.
package metrics

import (
	"fmt"
	"time"
)

// Report is the JSON artifact produced by one run.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Summaries   []Summary `json:"summaries"`
}

// ComparisonRows lays the summaries out as table rows: a header row with
// repository names, then one row per metric. Undefined averages render
// as "n/a".
func ComparisonRows(summaries []Summary) [][]string {
	header := []string{"Metric"}
	for _, s := range summaries {
		header = append(header, s.Repo)
	}

	rows := [][]string{header}
	addRow := func(name string, value func(Summary) string) {
		row := []string{name}
		for _, s := range summaries {
			row = append(row, value(s))
		}
		rows = append(rows, row)
	}

	addRow("stars", func(s Summary) string { return fmt.Sprintf("%d", s.Stars) })
	addRow("forks", func(s Summary) string { return fmt.Sprintf("%d", s.Forks) })
	addRow("watchers", func(s Summary) string { return fmt.Sprintf("%d", s.Watchers) })
	addRow("releases", func(s Summary) string { return fmt.Sprintf("%d", s.ReleaseCount) })
	addRow("open issues", func(s Summary) string { return fmt.Sprintf("%d", s.OpenIssues) })
	addRow("closed issues", func(s Summary) string { return fmt.Sprintf("%d", s.ClosedIssues) })
	addRow("avg days until issue was closed", func(s Summary) string { return formatAvg(s.AvgDaysToCloseIssues) })
	addRow("open PRs", func(s Summary) string { return fmt.Sprintf("%d", s.OpenPRs) })
	addRow("closed PRs", func(s Summary) string { return fmt.Sprintf("%d", s.ClosedPRs) })
	addRow("avg days until PR was closed", func(s Summary) string { return formatAvg(s.AvgDaysToClosePRs) })

	return rows
}

func formatAvg(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", *v)
}
