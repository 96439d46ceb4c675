package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/apperr"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// FileHistoryParams are the arguments of analyze_file_history.
type FileHistoryParams struct {
	RepoPath string
	FilePath string
	Limit    int
}

// FileHistory reports the recent changes of one path. A path without
// history, including one that never existed, yields a successful report.
func (e *Env) FileHistory(ctx context.Context, p FileHistoryParams) (*Report, error) {
	filePath := strings.TrimSpace(p.FilePath)
	if filePath == "" {
		return nil, apperr.Invalidf("file_path is required")
	}
	if err := requirePositive("limit", p.Limit); err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	records, err := e.readLog(ctx, r.Path, git.LogQuery{
		MaxCount:  p.Limit,
		Paths:     []string{filePath},
		WithStats: true,
	})
	if err != nil {
		return nil, fmt.Errorf("file history: %w", err)
	}

	title := "File History Analysis: " + filePath
	if len(records) == 0 {
		doc := output.NewDocument(title)
		doc.Line("No history found for file: %s", filePath)
		return &Report{Title: title, Text: doc.String()}, nil
	}

	var added, deleted, binary, renames int
	for _, rec := range records {
		for _, f := range rec.Files {
			switch f.Kind() {
			case git.ChangeKindBinary:
				binary++
				continue
			case git.ChangeKindRenamed:
				renames++
			}
			added += f.Added
			deleted += f.Deleted
		}
	}

	doc := output.NewDocument(title)
	doc.Field("Total commits", "%d", len(records))
	if first, last, ok := aggregation.DateRange(records); ok {
		doc.Field("First commit", "%s", first)
		doc.Field("Last commit", "%s", last)
	}
	doc.Field("Total lines added", "%d", added)
	doc.Field("Total lines deleted", "%d", deleted)
	doc.Field("Net lines changed", "%d", added-deleted)
	if binary > 0 {
		doc.Field("Binary changes", "%d", binary)
	}
	if renames > 0 {
		doc.Field("Renames", "%d", renames)
	}
	doc.Blank()

	doc.Section("Contributors")
	for _, a := range aggregation.RankAuthors(aggregation.AggregateAuthors(records)) {
		doc.Bullet("%s: %s", a.Name, pluralCommits(a.CommitCount))
	}
	doc.Blank()

	lines := make([]string, 0, len(records))
	highlights := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, e.commitLine(rec))
		highlights = append(highlights, rec.ShortHash)
	}
	doc.Section(fmt.Sprintf("Recent commits (last %d)", len(records)))
	doc.Code(lines)

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}
