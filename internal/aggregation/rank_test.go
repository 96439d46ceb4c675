package aggregation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/masmgr/git-history-mcp/internal/git"
)

func paths(items []*FileMetrics) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.Path
	}
	return out
}

func TestRankByChangeCount_TiesByPath(t *testing.T) {
	metrics := map[string]*FileMetrics{
		"b.go": {Path: "b.go", CommitCount: 2},
		"a.go": {Path: "a.go", CommitCount: 2},
		"c.go": {Path: "c.go", CommitCount: 5},
		"d.go": {Path: "d.go", CommitCount: 1},
	}

	got := paths(RankByChangeCount(metrics))
	want := []string{"c.go", "a.go", "b.go", "d.go"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestRankByChurn_SkipsBinaryOnly(t *testing.T) {
	metrics := map[string]*FileMetrics{
		"a.py":    {Path: "a.py", CommitCount: 1, AddedLines: 10},
		"b.py":    {Path: "b.py", CommitCount: 2, AddedLines: 5, DeletedLines: 7},
		"img.png": {Path: "img.png", CommitCount: 1, BinaryChanges: 1},
		"z.py":    {Path: "z.py", CommitCount: 1, AddedLines: 6, DeletedLines: 4},
	}

	got := paths(RankByChurn(metrics))
	want := []string{"b.py", "a.py", "z.py"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"img.png"}, BinaryPaths(metrics)); diff != "" {
		t.Fatalf("binary paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRankAuthors(t *testing.T) {
	records := []git.CommitRecord{
		{Author: "bob", Date: "2025-01-04"},
		{Author: "alice", Date: "2025-01-03"},
		{Author: "alice", Date: "2025-01-03"},
		{Author: "Alice", Date: "2025-01-02"},
		{Author: "alice", Date: "2025-01-01"},
		{Author: "carol", Date: "2025-01-01"},
	}

	ranked := RankAuthors(AggregateAuthors(records))

	var got []string
	for _, a := range ranked {
		got = append(got, a.Name)
	}
	// Case-sensitive identities; ties broken by name ascending ("Alice" < "bob" < "carol").
	want := []string{"alice", "Alice", "bob", "carol"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}

	alice := ranked[0]
	if alice.CommitCount != 3 || alice.FirstDate != "2025-01-01" || alice.LastDate != "2025-01-03" || alice.ActiveDays() != 2 {
		t.Errorf("alice = %+v (active days %d)", alice, alice.ActiveDays())
	}
}

func TestDateRange(t *testing.T) {
	if _, _, ok := DateRange(nil); ok {
		t.Fatal("DateRange(nil) should report no dates")
	}

	first, last, ok := DateRange([]git.CommitRecord{{Date: "2025-02-01"}, {Date: "2024-12-31"}, {Date: "2025-01-15"}})
	if !ok || first != "2024-12-31" || last != "2025-02-01" {
		t.Errorf("DateRange() = (%q, %q, %v)", first, last, ok)
	}
}

func TestTop(t *testing.T) {
	items := []int{1, 2, 3}
	tests := []struct {
		n    int
		want int
	}{
		{n: 0, want: 3},
		{n: 2, want: 2},
		{n: 10, want: 3},
	}
	for _, tt := range tests {
		if got := len(Top(items, tt.n)); got != tt.want {
			t.Errorf("len(Top(items, %d)) = %d, expected %d", tt.n, got, tt.want)
		}
	}
}
