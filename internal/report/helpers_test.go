package report

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/masmgr/git-history-mcp/config"
	"github.com/masmgr/git-history-mcp/internal/git"
)

// createTestRepo creates an empty repository in a temporary directory.
func createTestRepo(t *testing.T) (string, *gogit.Repository) {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	r, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return dir, r
}

// commitFiles writes files and commits them as author at the given time.
func commitFiles(t *testing.T, r *gogit.Repository, author string, when time.Time, message string, files map[string]string) {
	t.Helper()
	commitFilesAt(t, r, author, when, when, message, files)
}

// commitFilesAt is commitFiles with distinct author and committer dates, as
// left behind by a rebase or cherry-pick.
func commitFilesAt(t *testing.T, r *gogit.Repository, author string, authored, committed time.Time, message string, files map[string]string) {
	t.Helper()
	w, err := r.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	for name, content := range files {
		path := filepath.Join(w.Filesystem.Root(), name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if _, err := w.Add(name); err != nil {
			t.Fatalf("Failed to add file: %v", err)
		}
	}

	_, err = w.Commit(message, &gogit.CommitOptions{
		Author:    &object.Signature{Name: author, Email: author + "@example.com", When: authored},
		Committer: &object.Signature{Name: author, Email: author + "@example.com", When: committed},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}

// lines returns n numbered lines of text.
func lines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		b.WriteString("line " + strconv.Itoa(i) + "\n")
	}
	return b.String()
}

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 12, 0, 0, 0, time.UTC)
}

// record renders one commit the way `git log -z --numstat` prints it.
func record(hash, author, date, subject string, stats ...string) string {
	out := "\x1e" + strings.Join([]string{hash, hash[:7], author, author + "@example.com", date, "", subject}, "\x00") + "\n"
	if len(stats) > 0 {
		out += "\n" + strings.Join(stats, "")
	}
	return out
}

func numstat(added, deleted, path string) string {
	return added + "\t" + deleted + "\t" + path + "\x00"
}

func newTestEnv(t *testing.T, runner git.Runner) *Env {
	t.Helper()
	env, err := NewEnv(runner, config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	return env
}
