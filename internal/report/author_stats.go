package report

import (
	"context"
	"fmt"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// AuthorStatsParams are the arguments of get_author_stats.
type AuthorStatsParams struct {
	RepoPath string
	Since    string
	Until    string
}

// AuthorStats counts commits per author name. Names are compared exactly,
// so differently spelled identities of one person stay separate.
func (e *Env) AuthorStats(ctx context.Context, p AuthorStatsParams) (*Report, error) {
	since, until, err := parseRange(p.Since, p.Until)
	if err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	records, err := e.readLog(ctx, r.Path, git.LogQuery{Since: since, Until: until})
	if err != nil {
		return nil, fmt.Errorf("author stats: %w", err)
	}

	const title = "Author Contribution Statistics"
	doc := output.NewDocument(title)
	if period := output.FilterSummary(prefixed("from ", p.Since), prefixed("until ", p.Until)); period != "" {
		doc.Field("Period", "%s", period)
	}
	if len(records) == 0 {
		doc.Line("No commits found in the selected period")
		return &Report{Title: title, Text: doc.String()}, nil
	}

	ranked := aggregation.RankAuthors(aggregation.AggregateAuthors(records))

	doc.Field("Total commits", "%d", len(records))
	doc.Field("Authors", "%d", len(ranked))
	doc.Blank()

	highlights := make([]string, 0, len(ranked))
	doc.Section("Commit counts by author")
	for _, a := range ranked {
		doc.Bullet("%s: %s", a.Name, pluralCommits(a.CommitCount))
		highlights = append(highlights, a.Name)
	}
	doc.Blank()

	doc.Section("Activity periods")
	for _, a := range ranked {
		doc.Bullet("%s: %s to %s (%d active days)", a.Name, a.FirstDate, a.LastDate, a.ActiveDays())
	}

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
