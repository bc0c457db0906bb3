// Package metrics assembles repository data bundles and reduces them to
// summary statistics.
//
// This file (targets.go) loads and validates the owner/repo targets for a
// run, either from repeated --repo flags or from an input file with one
// target per line.
package metrics

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// namePattern covers both GitHub account names and repository names:
// alphanumerics plus separators, no leading/trailing separator.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?$`)

// Target is one owner/repo pair to fetch.
type Target struct {
	Owner string
	Repo  string
}

func (t Target) String() string {
	return t.Owner + "/" + t.Repo
}

// parseTarget validates and splits an "owner/repo" reference.
func parseTarget(ref string) (Target, error) {
	owner, repo, ok := strings.Cut(ref, "/")
	if !ok {
		return Target{}, fmt.Errorf("invalid repository reference %q: expected owner/repo", ref)
	}
	if owner == "" || len(owner) > 39 || !namePattern.MatchString(owner) {
		return Target{}, fmt.Errorf("invalid repository owner %q", owner)
	}
	if repo == "" || len(repo) > 100 || !namePattern.MatchString(repo) {
		return Target{}, fmt.Errorf("invalid repository name %q", repo)
	}
	return Target{Owner: owner, Repo: repo}, nil
}

// parseTargetFile reads a target list file.
//
// File format:
//   - One owner/repo per line
//   - Empty lines are ignored
//   - Lines starting with # are treated as comments
//   - Leading/trailing whitespace is trimmed
//
// Duplicate targets are dropped, keeping the first occurrence.
func parseTargetFile(path string) ([]Target, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading repository list %s: %w", path, err)
	}

	normalized := strings.ReplaceAll(string(content), "\r\n", "\n")
	seen := make(map[string]bool)
	var targets []Target

	for i, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		target, err := parseTarget(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if seen[target.String()] {
			continue
		}
		seen[target.String()] = true
		targets = append(targets, target)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no valid repositories found in %s", path)
	}
	return targets, nil
}

// loadTargets resolves the run's target list from flags or a file.
func loadTargets(repos []string, inputFile string) ([]Target, error) {
	if len(repos) > 0 {
		targets := make([]Target, 0, len(repos))
		for _, ref := range repos {
			target, err := parseTarget(ref)
			if err != nil {
				return nil, err
			}
			targets = append(targets, target)
		}
		return targets, nil
	}
	if inputFile == "" {
		return nil, fmt.Errorf("must specify either --repo or --input")
	}
	return parseTargetFile(inputFile)
}
