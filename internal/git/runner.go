package git

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/masmgr/git-history-mcp/internal/apperr"
)

// DefaultTimeout bounds a single git invocation when none is configured.
const DefaultTimeout = 30 * time.Second

// globalArgs precede every subcommand. They keep output free of pagers,
// colors and quoted paths regardless of the user's git config. Pathspecs are
// literal, so "pages/[id].tsx" names one file and ":(glob)" is not magic.
var globalArgs = []string{"--no-pager", "--literal-pathspecs", "-c", "color.ui=never", "-c", "core.quotepath=off"}

// RunnerOptions configures an ExecRunner.
type RunnerOptions struct {
	Binary  string        // executable name or path, default "git"
	Timeout time.Duration // per-call timeout, default DefaultTimeout
	Logger  *zap.Logger
}

// ExecRunner runs the git executable found on PATH.
type ExecRunner struct {
	binary  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecRunner creates a runner. The executable is looked up lazily on each
// call so a missing git fails the call, not the server.
func NewExecRunner(opts RunnerOptions) *ExecRunner {
	binary := strings.TrimSpace(opts.Binary)
	if binary == "" {
		binary = "git"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{binary: binary, timeout: timeout, logger: logger}
}

// Run executes cmd in dir. It spawns exactly one process and never retries.
func (r *ExecRunner) Run(ctx context.Context, dir string, cmd Command) (*CommandResult, error) {
	if !IsAllowed(cmd.Subcommand) {
		return nil, apperr.Invalidf("git subcommand %q is not allowed", cmd.Subcommand)
	}

	path, err := exec.LookPath(r.binary)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindToolUnavailable, err, "git is not installed or not in PATH")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := make([]string, 0, len(globalArgs)+1+len(cmd.Args))
	args = append(args, globalArgs...)
	args = append(args, cmd.Subcommand)
	args = append(args, cmd.Args...)

	proc := exec.CommandContext(ctx, path, args...)
	proc.Dir = dir
	proc.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	start := time.Now()
	runErr := proc.Run()
	elapsed := time.Since(start)

	result := &CommandResult{
		ExitCode: proc.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	r.logger.Debug("git command finished",
		zap.String("subcommand", cmd.Subcommand),
		zap.String("dir", dir),
		zap.Duration("elapsed", elapsed),
		zap.Int("exit_code", result.ExitCode),
	)

	if runErr == nil {
		return result, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, apperr.Newf(apperr.KindCommandTimeout, "git %s timed out after %s", cmd.Subcommand, r.timeout)
	}
	if ctx.Err() != nil {
		return nil, apperr.Wrap(apperr.KindCommandFailed, ctx.Err(), "git "+cmd.Subcommand+" cancelled")
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = exitErr.Error()
		}
		return nil, apperr.Newf(apperr.KindCommandFailed, "git %s failed: %s", cmd.Subcommand, msg)
	}
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) || errors.Is(runErr, fs.ErrPermission) {
		return nil, apperr.Wrap(apperr.KindToolUnavailable, runErr, "git could not be executed")
	}
	return nil, apperr.Wrap(apperr.KindCommandFailed, runErr, "git "+cmd.Subcommand)
}
