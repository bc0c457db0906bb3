package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mona-actions/gh-repo-metrics/internal/githubapi"
	"github.com/mona-actions/gh-repo-metrics/internal/logging"
	"github.com/mona-actions/gh-repo-metrics/internal/metrics"
)

var (
	repoRefs      []string
	inputFile     string
	outputFile    string
	markdownFile  string
	retryAttempts int
	retryDelay    time.Duration
	timeout       time.Duration
	deadline      time.Duration
	failFast      bool
	verbose       bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch repository data and write the metrics report",
	Long: `Fetch metadata, releases, issues and pull requests for one or more
repositories, validate the collected data and write an aggregated
metrics report.

Examples:
  gh-repo-metrics fetch --repo delta-io/delta-rs
  gh-repo-metrics fetch --repo delta-io/delta-rs --repo apache/hudi-rs -v
  gh-repo-metrics fetch --input repos.txt -O report.json --markdown report.md
  gh-repo-metrics fetch --repo delta-io/delta-rs --mock   # canned data, no network

The GitHub token is read from --token or the GITHUB_TOKEN environment
variable. Unauthenticated requests work but get a small rate quota.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFile == "" {
			outputFile = fmt.Sprintf("repo-metrics-%s.json", time.Now().Format("2006-01-02"))
		}

		logger := logging.New(verbose)
		defer logger.Sync()

		config := metrics.Config{
			Repos:        repoRefs,
			InputFile:    inputFile,
			OutputFile:   outputFile,
			MarkdownFile: markdownFile,
			FailFast:     failFast,
			Verbose:      verbose,
			API: githubapi.Config{
				Token:          viper.GetString("token"),
				APIURL:         viper.GetString("api-url"),
				UseMock:        viper.GetBool("mock"),
				RetryAttempts:  retryAttempts,
				RetryDelay:     retryDelay,
				RequestTimeout: timeout,
			},
		}

		// Outer deadline bounds the total run including rate-limit waits,
		// which are otherwise limited only by the API's reset window.
		ctx, cancel := context.WithTimeout(context.Background(), deadline)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			if sig == syscall.SIGTERM {
				fmt.Fprintln(os.Stderr, "\nReceived termination signal (SIGTERM), shutting down gracefully...")
				cancel()
				return
			}
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully... (press Ctrl-C again to force quit)")
			cancel()
			<-sigChan
			fmt.Fprintln(os.Stderr, "\nForce quitting...")
			os.Exit(130)
		}()

		return metrics.Run(ctx, config, logger)
	},
}

// init registers the fetch command, its flags, and the environment
// bindings (GITHUB_TOKEN, GITHUB_API_URL, GITHUB_USE_MOCK).
func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringArrayVarP(&repoRefs, "repo", "r", nil, "Repository to analyze as owner/repo (repeatable)")
	fetchCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File with list of repositories to analyze, one owner/repo per line")
	fetchCmd.Flags().StringVarP(&outputFile, "output", "O", "", "Output file path (default: repo-metrics-YYYY-MM-DD.json)")
	fetchCmd.Flags().StringVar(&markdownFile, "markdown", "", "Also write the comparison table as a markdown file")
	fetchCmd.Flags().Bool("mock", false, "Use canned data instead of live API calls")
	fetchCmd.Flags().String("token", "", "GitHub token for authentication (default: GITHUB_TOKEN env)")
	fetchCmd.Flags().String("api-url", "", "GitHub API base URL, for GitHub Enterprise Server (default: https://api.github.com)")
	fetchCmd.Flags().IntVar(&retryAttempts, "retry-attempts", 3, "Maximum attempts per API request")
	fetchCmd.Flags().DurationVar(&retryDelay, "retry-delay", 5*time.Second, "Backoff delay before the first retry (doubles per retry)")
	fetchCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout per HTTP request")
	fetchCmd.Flags().DurationVar(&deadline, "deadline", 6*time.Hour, "Overall deadline for the whole run")
	fetchCmd.Flags().BoolVarP(&failFast, "fail-fast", "f", false, "Stop processing on first error")
	fetchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	viper.BindPFlag("token", fetchCmd.Flags().Lookup("token"))
	viper.BindPFlag("api-url", fetchCmd.Flags().Lookup("api-url"))
	viper.BindPFlag("mock", fetchCmd.Flags().Lookup("mock"))
	viper.BindEnv("token", "GITHUB_TOKEN")
	viper.BindEnv("api-url", "GITHUB_API_URL")
	viper.BindEnv("mock", "GITHUB_USE_MOCK")
}
