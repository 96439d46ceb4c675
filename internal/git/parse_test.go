package git

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// header builds one pretty-format record the way logFormat renders it.
func header(hash, author, date, refs, subject string) string {
	return "\x1e" + strings.Join([]string{hash, hash[:7], author, author + "@example.com", date, refs, subject}, "\x00") + "\n"
}

func TestParseLog_HeadersOnly(t *testing.T) {
	out := header("1111111aaaa", "alice", "2025-03-02", "HEAD -> main", "Second") + "\x00" +
		header("2222222bbbb", "bob", "2025-03-01", "", "First")

	records, err := ParseLog([]byte(out))
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}

	want := []CommitRecord{
		{Hash: "1111111aaaa", ShortHash: "1111111", Author: "alice", AuthorEmail: "alice@example.com", Date: "2025-03-02", Refs: "HEAD -> main", Subject: "Second"},
		{Hash: "2222222bbbb", ShortHash: "2222222", Author: "bob", AuthorEmail: "bob@example.com", Date: "2025-03-01", Subject: "First"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLog_NumstatWithRenameAndBinary(t *testing.T) {
	body := "\n" +
		"10\t0\ta.py\x00" +
		"3\t4\t\x00old.go\x00new.go\x00" +
		"-\t-\timg.png\x00"
	out := header("3333333cccc", "alice", "2025-04-01", "", "Mixed change") + body

	records, err := ParseLog([]byte(out))
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, expected 1", len(records))
	}

	want := []FileStat{
		{Path: "a.py", Added: 10},
		{Path: "new.go", OldPath: "old.go", Added: 3, Deleted: 4},
		{Path: "img.png", Binary: true},
	}
	if diff := cmp.Diff(want, records[0].Files); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}
	if records[0].Files[1].Kind() != ChangeKindRenamed {
		t.Errorf("Kind() = %v, expected renamed", records[0].Files[1].Kind())
	}
	if records[0].Files[2].Kind() != ChangeKindBinary {
		t.Errorf("Kind() = %v, expected binary", records[0].Files[2].Kind())
	}
}

func TestParseLog_MergeCommitHasNoStats(t *testing.T) {
	out := header("4444444dddd", "alice", "2025-05-01", "", "Merge branch 'feature'") + "\x00" +
		header("5555555eeee", "bob", "2025-04-30", "", "Feature work") + "\n1\t1\tmain.go\x00"

	records, err := ParseLog([]byte(out))
	if err != nil {
		t.Fatalf("ParseLog: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, expected 2", len(records))
	}
	if records[0].HasStats() {
		t.Errorf("merge commit should carry no stats, got %v", records[0].Files)
	}
	if !records[1].HasStats() {
		t.Error("expected stats on the non-merge commit")
	}
}

func TestParseLog_Empty(t *testing.T) {
	for _, in := range []string{"", "\n", "\x00"} {
		records, err := ParseLog([]byte(in))
		if err != nil {
			t.Fatalf("ParseLog(%q): %v", in, err)
		}
		if len(records) != 0 {
			t.Fatalf("ParseLog(%q) = %d records, expected 0", in, len(records))
		}
	}
}

func TestParseLog_MalformedHeader(t *testing.T) {
	_, err := ParseLog([]byte("\x1eonly\x00two\n"))
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestParseNumstat_UnterminatedLastEntry(t *testing.T) {
	stats, err := parseNumstat([]byte("5\t3\tExternal/foo.js\n"))
	if err != nil {
		t.Fatalf("parseNumstat: %v", err)
	}
	if len(stats) != 1 || stats[0].Path != "External/foo.js" || stats[0].Added != 5 || stats[0].Deleted != 3 {
		t.Fatalf("stats = %#v", stats)
	}
}

func TestParseNumstat_BadCount(t *testing.T) {
	if _, err := parseNumstat([]byte("x\t1\ta.go\x00")); err == nil {
		t.Fatal("expected error for non-numeric count")
	}
}
