package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonRows(t *testing.T) {
	avgIssues := 134.21
	summaries := []Summary{
		{
			Repo: "delta-io/delta-rs", Stars: 2705, Forks: 468, Watchers: 37,
			ReleaseCount: 89, OpenIssues: 139, ClosedIssues: 1130,
			OpenPRs: 17, ClosedPRs: 1973, AvgDaysToCloseIssues: &avgIssues,
		},
		{
			Repo: "apache/hudi-rs", Stars: 209, Forks: 42, Watchers: 17,
			ReleaseCount: 3, OpenIssues: 28, ClosedIssues: 62,
			OpenPRs: 13, ClosedPRs: 222,
		},
	}

	rows := ComparisonRows(summaries)

	require.Len(t, rows, 11)
	assert.Equal(t, []string{"Metric", "delta-io/delta-rs", "apache/hudi-rs"}, rows[0])
	assert.Equal(t, []string{"stars", "2705", "209"}, rows[1])
	assert.Equal(t, []string{"avg days until issue was closed", "134.2", "n/a"}, rows[7])
	assert.Equal(t, []string{"avg days until PR was closed", "n/a", "n/a"}, rows[10])
}

func TestFormatAvgRoundsToOneDecimal(t *testing.T) {
	v := 2.34
	assert.Equal(t, "2.3", formatAvg(&v))
	assert.Equal(t, "n/a", formatAvg(nil))
}
