// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (runner.go) orchestrates a run: resolve targets, fetch and
// validate each repository's bundle, aggregate summaries, and hand the
// results to the report writers. Repositories are processed sequentially;
// each gets its own API client so no rate limit state is shared.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
	"github.com/mona-actions/gh-repo-metrics/internal/output"
)

// Config holds all options for one run.
type Config struct {
	Repos        []string // owner/repo references (mutually exclusive with InputFile)
	InputFile    string   // file with one owner/repo per line
	OutputFile   string   // JSON report path
	MarkdownFile string   // optional markdown report path
	FailFast     bool     // stop at the first failing repository
	Verbose      bool     // enable debug output

	API githubapi.Config // client construction options (mock toggle, token, retry tuning)
}

// Run executes a full collection run. With FailFast disabled, failing
// repositories are reported and skipped; the run fails only when nothing
// could be collected. Context cancellation always aborts immediately.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if cfg.Verbose {
		pterm.EnableDebugMessages()
	}

	targets, err := loadTargets(cfg.Repos, cfg.InputFile)
	if err != nil {
		return err
	}

	summaries := make([]Summary, 0, len(targets))
	var failed int

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		// One client per repository: each gets its own rate limit state.
		clientCfg := cfg.API
		clientCfg.Logger = logger
		api := githubapi.New(clientCfg)

		summary, err := collectOne(ctx, api, target, logger)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			pterm.Warning.Printf("⚠ %s: %v\n", target, err)
			if cfg.FailFast {
				return fmt.Errorf("collecting %s: %w", target, err)
			}
			failed++
			continue
		}

		pterm.Success.Printf("✓ %s\n", target)
		summaries = append(summaries, *summary)
	}

	if len(summaries) == 0 {
		return fmt.Errorf("all %d repositories failed", failed)
	}

	report := Report{
		GeneratedAt: time.Now().UTC(),
		Summaries:   summaries,
	}
	if err := output.WriteJSON(cfg.OutputFile, report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	pterm.Info.Printf("Report written to %s\n", cfg.OutputFile)

	rows := ComparisonRows(summaries)
	if cfg.MarkdownFile != "" {
		if err := output.WriteMarkdown(cfg.MarkdownFile, output.RenderMarkdownTable(rows)); err != nil {
			return fmt.Errorf("writing markdown report: %w", err)
		}
		pterm.Info.Printf("Markdown report written to %s\n", cfg.MarkdownFile)
	}
	renderComparisonTable(rows)

	if failed > 0 {
		pterm.Warning.Printf("⚠ Completed with %d of %d repositories failing\n", failed, len(targets))
	} else {
		pterm.Success.Printf("✓ Complete! Processed %d repositories\n", len(targets))
	}
	return nil
}

// collectOne fetches, validates and aggregates a single repository.
func collectOne(ctx context.Context, api githubapi.API, target Target, logger *zap.Logger) (*Summary, error) {
	data, err := FetchRepoData(ctx, api, target.Owner, target.Repo)
	if err != nil {
		return nil, err
	}

	logger.Info("collected repository data",
		zap.String("repo", target.String()),
		zap.Int("releases", len(data.Releases)),
		zap.Int("issues", len(data.Issues)),
		zap.Int("pull_requests", len(data.PullRequests)))

	summary := ExtractMetadata(data)
	return &summary, nil
}

// renderComparisonTable prints the summaries side by side, one column per
// repository.
func renderComparisonTable(rows [][]string) {
	table := make(pterm.TableData, 0, len(rows))
	for _, row := range rows {
		table = append(table, row)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(table).Render(); err != nil {
		pterm.Warning.Printf("⚠ could not render table: %v\n", err)
	}
}
