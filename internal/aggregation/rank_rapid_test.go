package aggregation

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/masmgr/git-history-mcp/internal/git"
)

// --- Generators ---

func genFileStat() *rapid.Generator[git.FileStat] {
	return rapid.Custom(func(t *rapid.T) git.FileStat {
		path := fmt.Sprintf("f%d.go", rapid.IntRange(0, 8).Draw(t, "path"))
		if rapid.IntRange(0, 9).Draw(t, "binary") == 0 {
			return git.FileStat{Path: path, Binary: true}
		}
		return git.FileStat{
			Path:    path,
			Added:   rapid.IntRange(0, 500).Draw(t, "added"),
			Deleted: rapid.IntRange(0, 500).Draw(t, "deleted"),
		}
	})
}

func genRecords() *rapid.Generator[[]git.CommitRecord] {
	return rapid.Custom(func(t *rapid.T) []git.CommitRecord {
		n := rapid.IntRange(0, 20).Draw(t, "commits")
		records := make([]git.CommitRecord, n)
		for i := range records {
			records[i] = git.CommitRecord{
				Author: rapid.SampledFrom([]string{"alice", "bob", "carol"}).Draw(t, "author"),
				Date:   fmt.Sprintf("2025-01-%02d", rapid.IntRange(1, 28).Draw(t, "day")),
				Files:  rapid.SliceOfN(genFileStat(), 0, 5).Draw(t, "files"),
			}
		}
		return records
	})
}

// --- Properties ---

func TestRapidTotals_EqualPerFileSums(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")

		wantAdded, wantDeleted := 0, 0
		for _, rec := range records {
			for _, st := range rec.Files {
				wantAdded += st.Added
				wantDeleted += st.Deleted
			}
		}

		added, deleted := Totals(NewFileMetricsAggregator(nil).Process(records))
		if added != wantAdded || deleted != wantDeleted {
			t.Fatalf("Totals() = (%d, %d), expected (%d, %d)", added, deleted, wantAdded, wantDeleted)
		}
	})
}

func TestRapidRankByChangeCount_SortedAndComplete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		metrics := NewFileMetricsAggregator(nil).Process(genRecords().Draw(t, "records"))
		ranked := RankByChangeCount(metrics)

		if len(ranked) != len(metrics) {
			t.Fatalf("ranked %d paths, expected %d", len(ranked), len(metrics))
		}
		for i := 1; i < len(ranked); i++ {
			prev, cur := ranked[i-1], ranked[i]
			if prev.CommitCount < cur.CommitCount ||
				(prev.CommitCount == cur.CommitCount && prev.Path >= cur.Path) {
				t.Fatalf("order violated at %d: %s(%d) before %s(%d)", i, prev.Path, prev.CommitCount, cur.Path, cur.CommitCount)
			}
		}

		limit := rapid.IntRange(1, 20).Draw(t, "limit")
		top := Top(ranked, limit)
		if len(top) > limit {
			t.Fatalf("Top returned %d items, limit %d", len(top), limit)
		}
	})
}

func TestRapidRankAuthors_CountsSumToCommits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := genRecords().Draw(t, "records")
		ranked := RankAuthors(AggregateAuthors(records))

		sum := 0
		for i, a := range ranked {
			sum += a.CommitCount
			if i > 0 && ranked[i-1].CommitCount < a.CommitCount {
				t.Fatalf("authors not sorted by count at %d", i)
			}
		}
		if sum != len(records) {
			t.Fatalf("author counts sum to %d, expected %d", sum, len(records))
		}
	})
}
