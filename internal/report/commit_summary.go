package report

import (
	"context"
	"fmt"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// CommitSummaryParams are the arguments of get_commit_summary.
type CommitSummaryParams struct {
	RepoPath string
	Limit    int
}

// CommitSummary summarizes the most recent Limit commits.
func (e *Env) CommitSummary(ctx context.Context, p CommitSummaryParams) (*Report, error) {
	if err := requirePositive("limit", p.Limit); err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	records, err := e.readLog(ctx, r.Path, git.LogQuery{MaxCount: p.Limit})
	if err != nil {
		return nil, fmt.Errorf("commit summary: %w", err)
	}

	title := fmt.Sprintf("Recent Commit Summary (Last %d commits)", p.Limit)
	doc := output.NewDocument(title)
	if len(records) == 0 {
		doc.Line("No commits found")
		return &Report{Title: title, Text: doc.String()}, nil
	}

	authors := aggregation.AggregateAuthors(records)

	doc.Field("Repository", "%s", r.Root)
	doc.Field("Total commits analyzed", "%d", len(records))
	doc.Field("Date range", "%s", dateRangeText(records))
	doc.Field("Active authors", "%d", len(authors))
	doc.Blank()

	doc.Section("Top contributors")
	for _, a := range aggregation.Top(aggregation.RankAuthors(authors), e.Defaults.TopContributors) {
		doc.Bullet("%s: %s", a.Name, pluralCommits(a.CommitCount))
	}
	doc.Blank()

	latest := records[0]
	doc.Section("Most recent commit")
	doc.Bullet("Hash: %s", latest.Hash)
	doc.Bullet("Author: %s <%s>", latest.Author, latest.AuthorEmail)
	doc.Bullet("Date: %s", latest.Date)
	doc.Bullet("Subject: %s", latest.Subject)
	doc.Blank()

	lines := make([]string, 0, len(records))
	highlights := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, e.commitLine(rec))
		highlights = append(highlights, rec.ShortHash)
	}
	doc.Section("Recent commits")
	doc.Code(lines)

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}
