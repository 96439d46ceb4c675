package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"

	"github.com/masmgr/git-history-mcp/internal/apperr"
)

// initRepo creates an empty repository and returns its canonical path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("Failed to initialize git repo: %v", err)
	}
	return dir
}

func TestResolve_RepositoryRoot(t *testing.T) {
	dir := initRepo(t)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Path != dir {
		t.Errorf("Path = %q, expected %q", r.Path, dir)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, expected %q", r.Root, dir)
	}
}

func TestResolve_Subdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "pkg", "inner")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	r, err := Resolve(filepath.Join(dir, "pkg", "..", "pkg", "inner"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Path != sub {
		t.Errorf("Path = %q, expected %q", r.Path, sub)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, expected %q", r.Root, dir)
	}
}

func TestResolve_Failures(t *testing.T) {
	plain := t.TempDir()
	file := filepath.Join(plain, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "Missing", path: filepath.Join(plain, "missing")},
		{name: "NotDirectory", path: file},
		{name: "NotRepository", path: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.path)
			if !errors.Is(err, apperr.InvalidRepository) {
				t.Fatalf("Resolve(%q) err = %v, expected InvalidRepository", tt.path, err)
			}
		})
	}
}

func TestResolve_EmptyUsesWorkingDirectory(t *testing.T) {
	dir := initRepo(t)
	t.Chdir(dir)

	r, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, expected %q", r.Root, dir)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{in: "~", want: home},
		{in: "~/src/app", want: filepath.Join(home, "src", "app")},
		{in: "/abs/path", want: "/abs/path"},
		{in: "~other/x", want: "~other/x"},
	}
	for _, tt := range tests {
		got, err := expandHome(tt.in)
		if err != nil {
			t.Fatalf("expandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("expandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
