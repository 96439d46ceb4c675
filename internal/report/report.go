// Package report builds the Markdown history reports. Every builder validates
// its parameters first, then resolves the repository, then runs git.
package report

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/masmgr/git-history-mcp/config"
	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/apperr"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
)

const dateLayout = "2006-01-02"

// Report is the rendered result of one operation.
type Report struct {
	Title      string
	Text       string
	Highlights []string // highlighted paths or commits, in report order
}

// Env carries the collaborators shared by all builders.
type Env struct {
	Runner   git.Runner
	Defaults config.DefaultsConfig
	Filter   *aggregation.PathFilter // applied to hotspot and churn paths, nil accepts all
	Logger   *zap.Logger
}

// NewEnv creates an Env from configuration.
func NewEnv(runner git.Runner, cfg *config.Config, logger *zap.Logger) (*Env, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	filter, err := aggregation.NewPathFilter(cfg.Filters.Include, cfg.Filters.Exclude)
	if err != nil {
		return nil, err
	}
	return &Env{
		Runner:   runner,
		Defaults: cfg.Defaults,
		Filter:   filter,
		Logger:   logger,
	}, nil
}

// parseDate parses an optional YYYY-MM-DD value. Empty means no bound.
func parseDate(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperr.Invalidf("%s must be a date in YYYY-MM-DD format, got %q", field, value)
	}
	return &t, nil
}

// parseRange parses both bounds and rejects an inverted range.
func parseRange(since, until string) (*time.Time, *time.Time, error) {
	s, err := parseDate("since", since)
	if err != nil {
		return nil, nil, err
	}
	u, err := parseDate("until", until)
	if err != nil {
		return nil, nil, err
	}
	if s != nil && u != nil && s.After(*u) {
		return nil, nil, apperr.Invalidf("since (%s) is after until (%s)", since, until)
	}
	return s, u, nil
}

func requirePositive(field string, v int) error {
	if v < 1 {
		return apperr.Invalidf("%s must be a positive integer, got %d", field, v)
	}
	return nil
}

// readLog runs the query in dir. A repository without any commit yields no
// records instead of an error.
func (e *Env) readLog(ctx context.Context, dir string, q git.LogQuery) ([]git.CommitRecord, error) {
	records, err := git.ReadLog(ctx, e.Runner, dir, q)
	if err != nil {
		if isUnbornHead(err) {
			e.Logger.Debug("repository has no commits", zap.String("dir", dir))
			return nil, nil
		}
		return nil, err
	}
	return records, nil
}

func isUnbornHead(err error) bool {
	if !errors.Is(err, apperr.CommandFailed) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "does not have any commits yet") ||
		strings.Contains(msg, "bad default revision 'HEAD'")
}

func dateRangeText(records []git.CommitRecord) string {
	first, last, ok := aggregation.DateRange(records)
	if !ok {
		return "N/A"
	}
	return first + " to " + last
}

// commitLine renders "short (refs) date author: subject" with the subject
// truncated to the configured width.
func (e *Env) commitLine(c git.CommitRecord) string {
	var b strings.Builder
	b.WriteString(c.ShortHash)
	if c.Refs != "" {
		b.WriteString(" (" + c.Refs + ")")
	}
	b.WriteString(" " + c.Date + " " + c.Author + ": ")
	b.WriteString(output.Truncate(c.Subject, e.Defaults.SubjectWidth))
	return b.String()
}

func pluralCommits(n int) string {
	if n == 1 {
		return "1 commit"
	}
	return strconv.Itoa(n) + " commits"
}

func pluralContributors(n int) string {
	if n == 1 {
		return "1 contributor"
	}
	return strconv.Itoa(n) + " contributors"
}
