package aggregation

import (
	"github.com/masmgr/git-history-mcp/internal/git"
)

// FileMetrics holds aggregated change metrics for a single path.
type FileMetrics struct {
	Path          string
	CommitCount   int // commits touching the path
	AddedLines    int
	DeletedLines  int
	BinaryChanges int    // commits where git reported the path as binary
	LastModified  string // YYYY-MM-DD of the newest commit seen
	Contributors  map[string]struct{}
}

// NewFileMetrics creates a new FileMetrics instance.
func NewFileMetrics(path string) *FileMetrics {
	return &FileMetrics{
		Path:         path,
		Contributors: make(map[string]struct{}),
	}
}

// ChurnTotal returns total lines changed (added + deleted).
func (f *FileMetrics) ChurnTotal() int {
	return f.AddedLines + f.DeletedLines
}

// ContributorCount returns number of unique author names.
func (f *FileMetrics) ContributorCount() int {
	return len(f.Contributors)
}

// BinaryOnly reports whether every recorded change of the path was binary.
func (f *FileMetrics) BinaryOnly() bool {
	return f.BinaryChanges > 0 && f.BinaryChanges == f.CommitCount
}

// AddChange adds one commit's numstat entry to this path's metrics.
// Binary entries count as a change but contribute no lines.
func (f *FileMetrics) AddChange(commit git.CommitRecord, stat git.FileStat) {
	f.CommitCount++
	if stat.Binary {
		f.BinaryChanges++
	} else {
		f.AddedLines += stat.Added
		f.DeletedLines += stat.Deleted
	}

	if commit.Date > f.LastModified {
		f.LastModified = commit.Date
	}
	f.Contributors[commit.Author] = struct{}{}
}

// FileMetricsAggregator aggregates numstat entries per path.
// Paths are keyed as reported by git; renames are not followed.
type FileMetricsAggregator struct {
	metrics map[string]*FileMetrics
	filter  *PathFilter
}

// NewFileMetricsAggregator creates a new aggregator. A nil filter accepts
// every path.
func NewFileMetricsAggregator(filter *PathFilter) *FileMetricsAggregator {
	return &FileMetricsAggregator{
		metrics: make(map[string]*FileMetrics),
		filter:  filter,
	}
}

// Process aggregates all records and returns the per-path metrics.
func (a *FileMetricsAggregator) Process(records []git.CommitRecord) map[string]*FileMetrics {
	for _, rec := range records {
		a.processRecord(rec)
	}
	return a.metrics
}

func (a *FileMetricsAggregator) processRecord(rec git.CommitRecord) {
	for _, stat := range rec.Files {
		if !a.filter.Match(stat.Path) {
			continue
		}
		m, ok := a.metrics[stat.Path]
		if !ok {
			m = NewFileMetrics(stat.Path)
			a.metrics[stat.Path] = m
		}
		m.AddChange(rec, stat)
	}
}

// Totals sums added and deleted lines over all paths.
func Totals(metrics map[string]*FileMetrics) (added, deleted int) {
	for _, m := range metrics {
		added += m.AddedLines
		deleted += m.DeletedLines
	}
	return added, deleted
}
