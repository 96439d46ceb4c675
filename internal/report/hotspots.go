package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/masmgr/git-history-mcp/internal/aggregation"
	"github.com/masmgr/git-history-mcp/internal/git"
	"github.com/masmgr/git-history-mcp/internal/output"
	"github.com/masmgr/git-history-mcp/internal/repo"
)

// HotspotsParams are the arguments of find_hotspots.
type HotspotsParams struct {
	RepoPath string
	Since    string
	Limit    int
}

// Hotspots ranks paths by the number of commits touching them.
func (e *Env) Hotspots(ctx context.Context, p HotspotsParams) (*Report, error) {
	since, err := parseDate("since", p.Since)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("limit", p.Limit); err != nil {
		return nil, err
	}
	r, err := repo.Resolve(p.RepoPath)
	if err != nil {
		return nil, err
	}

	records, err := e.readLog(ctx, r.Path, git.LogQuery{Since: since, WithStats: true})
	if err != nil {
		return nil, fmt.Errorf("hotspots: %w", err)
	}

	metrics := aggregation.NewFileMetricsAggregator(e.Filter).Process(records)
	top := aggregation.Top(aggregation.RankByChangeCount(metrics), p.Limit)

	title := fmt.Sprintf("File Change Hotspots (Top %d)", p.Limit)
	doc := output.NewDocument(title)
	if p.Since != "" {
		doc.Field("Period", "since %s", p.Since)
	}
	if len(top) == 0 {
		doc.Line("No file changes found")
		return &Report{Title: title, Text: doc.String()}, nil
	}
	doc.Field("Commits analyzed", "%d", len(records))
	doc.Field("Files changed", "%d", len(metrics))
	doc.Blank()

	highlights := make([]string, 0, len(top))
	doc.Section("Files with most changes")
	for i, m := range top {
		doc.Numbered(i+1, "%s: %d changes (+%d / -%d)", m.Path, m.CommitCount, m.AddedLines, m.DeletedLines)
		highlights = append(highlights, m.Path)
	}

	detailed := aggregation.Top(top, e.Defaults.HotspotDetailFiles)
	details, err := e.hotspotDetails(ctx, r.Root, since, detailed)
	if err != nil {
		return nil, fmt.Errorf("hotspot details: %w", err)
	}

	doc.Blank()
	doc.Section(fmt.Sprintf("Detailed analysis for top %d files", len(detailed)))
	for i, m := range detailed {
		doc.Blank()
		doc.Line("%s (%d changes, %s, last modified %s):", m.Path, m.CommitCount, pluralContributors(m.ContributorCount()), m.LastModified)
		lines := make([]string, 0, len(details[i]))
		for _, rec := range details[i] {
			lines = append(lines, e.commitLine(rec))
		}
		doc.Code(lines)
	}

	return &Report{Title: title, Text: doc.String(), Highlights: highlights}, nil
}

// hotspotDetails fetches the recent commits of each path concurrently, bounded
// by the same since date as the ranking. Paths are relative to the worktree
// root, so git runs there.
func (e *Env) hotspotDetails(ctx context.Context, root string, since *time.Time, files []*aggregation.FileMetrics) ([][]git.CommitRecord, error) {
	results := make([][]git.CommitRecord, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, m := range files {
		g.Go(func() error {
			records, err := e.readLog(gctx, root, git.LogQuery{
				MaxCount: e.Defaults.HotspotDetailCommits,
				Since:    since,
				Paths:    []string{m.Path},
			})
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.Logger.Debug("hotspot details fetched", zap.Int("files", len(files)))
	return results, nil
}
