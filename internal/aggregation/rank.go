package aggregation

import "sort"

// RankByChangeCount orders paths by commit count descending, ties broken by
// path ascending.
func RankByChangeCount(metrics map[string]*FileMetrics) []*FileMetrics {
	items := values(metrics)
	sort.Slice(items, func(i, j int) bool {
		if items[i].CommitCount != items[j].CommitCount {
			return items[i].CommitCount > items[j].CommitCount
		}
		return items[i].Path < items[j].Path
	})
	return items
}

// RankByChurn orders paths by added+deleted lines descending, ties broken by
// path ascending. Paths whose every change was binary have no line counts
// and are left out.
func RankByChurn(metrics map[string]*FileMetrics) []*FileMetrics {
	items := make([]*FileMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.BinaryOnly() {
			continue
		}
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool {
		ci, cj := items[i].ChurnTotal(), items[j].ChurnTotal()
		if ci != cj {
			return ci > cj
		}
		return items[i].Path < items[j].Path
	})
	return items
}

// BinaryPaths returns the paths with at least one binary change, sorted.
func BinaryPaths(metrics map[string]*FileMetrics) []string {
	var paths []string
	for _, m := range metrics {
		if m.BinaryChanges > 0 {
			paths = append(paths, m.Path)
		}
	}
	sort.Strings(paths)
	return paths
}

// RankAuthors orders authors by commit count descending, ties broken by name
// ascending.
func RankAuthors(authors map[string]*AuthorMetrics) []*AuthorMetrics {
	items := make([]*AuthorMetrics, 0, len(authors))
	for _, a := range authors {
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CommitCount != items[j].CommitCount {
			return items[i].CommitCount > items[j].CommitCount
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// Top returns at most n leading items. n <= 0 returns all of them.
func Top[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

func values(metrics map[string]*FileMetrics) []*FileMetrics {
	items := make([]*FileMetrics, 0, len(metrics))
	for _, m := range metrics {
		items = append(items, m)
	}
	return items
}
