package report

import (
	"context"
	"fmt"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// TimeframeParams are the arguments of get_commits_by_timeframe.
type TimeframeParams struct {
	RepoPath string
	Since    string
	Until    string
	Author   string // handed to git --author unchanged
}

// CommitsByTimeframe lists the commits in range, newest first.
func (e *Env) CommitsByTimeframe(ctx context.Context, p TimeframeParams) (*Report, error) {
	since, until, err := parseRange(p.Since, p.Until)
	if err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	records, err := e.readLog(ctx, r.Path, git.LogQuery{Since: since, Until: until, Author: p.Author})
	if err != nil {
		return nil, fmt.Errorf("commits by timeframe: %w", err)
	}

	const title = "Commits by Timeframe"
	doc := output.NewDocument(title)
	filters := output.FilterSummary(
		prefixed("since ", p.Since),
		prefixed("until ", p.Until),
		quoted("by author", p.Author),
	)
	if filters != "" {
		doc.Field("Filters", "%s", filters)
	}
	doc.Field("Total commits", "%d", len(records))
	if len(records) == 0 {
		doc.Blank()
		doc.Line("No commits found")
		return &Report{Title: title, Text: doc.String()}, nil
	}

	ranked := aggregation.RankAuthors(aggregation.AggregateAuthors(records))
	doc.Field("Date range", "%s", dateRangeText(records))
	doc.Field("Authors involved", "%d", len(ranked))
	doc.Blank()

	doc.Section("Commits by author")
	for _, a := range ranked {
		doc.Bullet("%s: %s", a.Name, pluralCommits(a.CommitCount))
	}
	doc.Blank()

	listed := aggregation.Top(records, e.Defaults.MaxListedCommits)
	lines := make([]string, 0, len(listed)+1)
	highlights := make([]string, 0, len(listed))
	for _, rec := range listed {
		lines = append(lines, e.commitLine(rec))
		highlights = append(highlights, rec.ShortHash)
	}
	if rest := len(records) - len(listed); rest > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more", rest))
	}
	doc.Section("Commits")
	doc.Code(lines)

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}

func quoted(label, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf("%s '%s'", label, value)
}
