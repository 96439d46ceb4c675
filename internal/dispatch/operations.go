package dispatch

import (
	"context"

	"github.com/masmgr/git-history-mcp/config"
	"github.com/masmgr/git-history-mcp/internal/report"
)

// Operation names.
const (
	OpCommitSummary      = "get_commit_summary"
	OpFileHistory        = "analyze_file_history"
	OpAuthorStats        = "get_author_stats"
	OpHotspots           = "find_hotspots"
	OpCommitsByTimeframe = "get_commits_by_timeframe"
	OpChurnStats         = "get_churn_stats"
)

func repoPathField() Field {
	return Field{Name: "repo_path", Type: TypeString,
		Description: "Path to the git repository (defaults to the server's working directory)"}
}

func dateField(name, description string) Field {
	return Field{Name: name, Type: TypeString, Format: "date", Description: description}
}

// RegisterAll registers the history operations backed by env. Defaults come
// from cfg so a config file can change them.
func RegisterAll(d *Dispatcher, env *report.Env, cfg config.DefaultsConfig) error {
	ops := []Operation{
		{
			Name:        OpCommitSummary,
			Description: "Get a summary of recent commits: count, date range, top contributors and the latest commit",
			Fields: []Field{
				repoPathField(),
				{Name: "limit", Type: TypeInteger, Default: cfg.CommitLimit, Description: "Number of recent commits to analyze"},
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.CommitSummary(ctx, report.CommitSummaryParams{
					RepoPath: a.String("repo_path"),
					Limit:    a.Int("limit"),
				}))
			},
		},
		{
			Name:        OpFileHistory,
			Description: "Analyze the change history of a specific file: commits, line totals and contributors",
			Fields: []Field{
				repoPathField(),
				{Name: "file_path", Type: TypeString, Required: true, Description: "Path of the file, relative to the repository"},
				{Name: "limit", Type: TypeInteger, Default: cfg.FileHistoryLimit, Description: "Maximum number of commits to analyze"},
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.FileHistory(ctx, report.FileHistoryParams{
					RepoPath: a.String("repo_path"),
					FilePath: a.String("file_path"),
					Limit:    a.Int("limit"),
				}))
			},
		},
		{
			Name:        OpAuthorStats,
			Description: "Get commit counts and activity periods per author",
			Fields: []Field{
				repoPathField(),
				dateField("since", "Only count commits on or after this date (YYYY-MM-DD)"),
				dateField("until", "Only count commits on or before this date (YYYY-MM-DD)"),
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.AuthorStats(ctx, report.AuthorStatsParams{
					RepoPath: a.String("repo_path"),
					Since:    a.String("since"),
					Until:    a.String("until"),
				}))
			},
		},
		{
			Name:        OpHotspots,
			Description: "Find the files changed most often",
			Fields: []Field{
				repoPathField(),
				dateField("since", "Only consider commits on or after this date (YYYY-MM-DD)"),
				{Name: "limit", Type: TypeInteger, Default: cfg.HotspotLimit, Description: "Number of files to report"},
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.Hotspots(ctx, report.HotspotsParams{
					RepoPath: a.String("repo_path"),
					Since:    a.String("since"),
					Limit:    a.Int("limit"),
				}))
			},
		},
		{
			Name:        OpCommitsByTimeframe,
			Description: "List commits in a date range, optionally by author",
			Fields: []Field{
				repoPathField(),
				dateField("since", "Start date (YYYY-MM-DD), inclusive"),
				dateField("until", "End date (YYYY-MM-DD), inclusive"),
				{Name: "author", Type: TypeString, Description: "Author name or pattern, matched by git"},
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.CommitsByTimeframe(ctx, report.TimeframeParams{
					RepoPath: a.String("repo_path"),
					Since:    a.String("since"),
					Until:    a.String("until"),
					Author:   a.String("author"),
				}))
			},
		},
		{
			Name:        OpChurnStats,
			Description: "Compute added and deleted line totals and the files with the highest churn",
			Fields: []Field{
				repoPathField(),
				dateField("since", "Start date (YYYY-MM-DD), inclusive"),
				dateField("until", "End date (YYYY-MM-DD), inclusive"),
				{Name: "path", Type: TypeString, Description: "Limit to this file or directory"},
				{Name: "top_files", Type: TypeInteger, Default: cfg.ChurnTopFiles, Description: "Number of files to rank"},
			},
			Handler: func(ctx context.Context, a Args) (string, error) {
				return text(env.ChurnStats(ctx, report.ChurnParams{
					RepoPath: a.String("repo_path"),
					Since:    a.String("since"),
					Until:    a.String("until"),
					Path:     a.String("path"),
					TopFiles: a.Int("top_files"),
				}))
			},
		},
	}

	for _, op := range ops {
		if err := d.Register(op); err != nil {
			return err
		}
	}
	return nil
}

func text(r *report.Report, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return r.Text, nil
}
