package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownTable(t *testing.T) {
	rows := [][]string{
		{"Metric", "delta-io/delta-rs"},
		{"Stars", "2705"},
		{"Forks", "468"},
	}

	got := RenderMarkdownTable(rows)

	want := "" +
		"| Metric | delta-io/delta-rs |\n" +
		"|--------|-------------------|\n" +
		"| Stars  | 2705              |\n" +
		"| Forks  | 468               |\n"
	assert.Equal(t, want, got)
}

func TestRenderMarkdownTableEmpty(t *testing.T) {
	assert.Empty(t, RenderMarkdownTable(nil))
}

func TestRenderMarkdownTableHeaderOnly(t *testing.T) {
	got := RenderMarkdownTable([][]string{{"a", "bb"}})

	assert.Equal(t, "| a | bb |\n|---|----|\n", got)
}
