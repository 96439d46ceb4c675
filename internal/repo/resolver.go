// Package repo resolves user-supplied repository paths.
package repo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/masmgr/git-history-mcp/internal/apperr"
)

// Repository is a validated repository location.
type Repository struct {
	Path string // absolute working directory for git subprocesses
	Root string // top of the worktree containing Path
}

// Resolve validates path and converts it into a Repository. An empty path
// means the process working directory. A leading "~" is expanded to the
// user's home directory.
func Resolve(path string) (*Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInvalidRepository, err, "cannot determine working directory")
		}
		path = wd
	}

	expanded, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidRepository, err, "cannot resolve "+path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Newf(apperr.KindInvalidRepository, "path does not exist: %s", abs)
		}
		return nil, apperr.Wrap(apperr.KindInvalidRepository, err, "cannot access "+abs)
	}
	if !info.IsDir() {
		return nil, apperr.Newf(apperr.KindInvalidRepository, "not a directory: %s", abs)
	}

	r, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, apperr.Newf(apperr.KindInvalidRepository, "not a git repository (or any parent): %s", abs)
		}
		return nil, apperr.Wrap(apperr.KindInvalidRepository, err, "cannot open repository at "+abs)
	}

	root := abs
	if wt, err := r.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{Path: abs, Root: root}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidRepository, err, "cannot expand ~")
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
