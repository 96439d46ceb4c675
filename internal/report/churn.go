package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// ChurnParams are the arguments of get_churn_stats.
type ChurnParams struct {
	RepoPath string
	Since    string
	Until    string
	Path     string // optional pathspec scope
	TopFiles int
}

// ChurnStats sums added and deleted lines over the range and ranks paths by
// combined churn. Binary paths have no line counts; they add nothing to the
// totals and are listed separately.
func (e *Env) ChurnStats(ctx context.Context, p ChurnParams) (*Report, error) {
	since, until, err := parseRange(p.Since, p.Until)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("top_files", p.TopFiles); err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	q := git.LogQuery{Since: since, Until: until, WithStats: true}
	scope := strings.TrimSpace(p.Path)
	if scope != "" {
		q.Paths = []string{scope}
	}
	records, err := e.readLog(ctx, r.Path, q)
	if err != nil {
		return nil, fmt.Errorf("churn stats: %w", err)
	}

	metrics := aggregation.NewFileMetricsAggregator(e.Filter).Process(records)
	added, deleted := aggregation.Totals(metrics)
	top := aggregation.Top(aggregation.RankByChurn(metrics), p.TopFiles)
	binaries := aggregation.BinaryPaths(metrics)

	const title = "Code Churn Statistics"
	doc := output.NewDocument(title)
	filters := output.FilterSummary(
		prefixed("since ", p.Since),
		prefixed("until ", p.Until),
		quoted("path", scope),
	)
	if filters != "" {
		doc.Field("Filters", "%s", filters)
	}
	doc.Field("Total commits considered", "%d", len(records))
	if n := commitsWithoutStats(records); n > 0 {
		doc.Field("Commits without line changes (merges, empty commits)", "%d", n)
	}
	if first, last, ok := aggregation.DateRange(records); ok {
		doc.Field("Date range", "%s to %s", first, last)
	}
	doc.Field("Total additions", "%d", added)
	doc.Field("Total deletions", "%d", deleted)
	doc.Field("Net change", "%d", added-deleted)
	doc.Blank()

	highlights := make([]string, 0, len(top))
	if len(top) == 0 {
		doc.Line("No line changes found")
	} else {
		doc.Section(fmt.Sprintf("Top files by churn (additions+deletions), top %d", len(top)))
		for i, m := range top {
			doc.Numbered(i+1, "%s: +%d / -%d (total %d)", m.Path, m.AddedLines, m.DeletedLines, m.ChurnTotal())
			highlights = append(highlights, m.Path)
		}
	}

	if len(binaries) > 0 {
		doc.Blank()
		doc.Section("Binary changes")
		for _, path := range binaries {
			doc.Bullet("%s: binary change in %s", path, pluralCommits(metrics[path].BinaryChanges))
		}
	}

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}

func commitsWithoutStats(records []git.CommitRecord) int {
	n := 0
	for _, rec := range records {
		if !rec.HasStats() {
			n++
		}
	}
	return n
}
