package git

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// logFormat prefixes each commit with 0x1e (record separator), then
// NUL-separated header fields, and ends the header with a newline. Combined
// with -z this makes the log and --numstat output reliably splittable into
// records.
const logFormat = "%x1e%H%x00%h%x00%an%x00%ae%x00%ad%x00%D%x00%s%n"

const headerFields = 7

// LogQuery describes a `git log` invocation.
type LogQuery struct {
	MaxCount  int        // 0 means unlimited
	Since     *time.Time // inclusive calendar day
	Until     *time.Time // inclusive calendar day
	Author    string     // passed through to --author
	Paths     []string   // restrict to these paths, matched literally
	WithStats bool       // include --numstat
}

// Command builds the argument vector for the query. User-supplied values are
// always attached to their option (--author=...) or placed after "--", so no
// value can be interpreted as an option.
func (q LogQuery) Command() Command {
	args := []string{
		"--no-color",
		"--date=short",
		"-z",
		"--pretty=format:" + logFormat,
	}
	if q.WithStats {
		args = append(args, "--numstat")
	}
	if q.MaxCount > 0 {
		args = append(args, "--max-count="+strconv.Itoa(q.MaxCount))
	}
	if q.Since != nil {
		args = append(args, "--since="+q.Since.Format("2006-01-02")+" 00:00:00")
	}
	if q.Until != nil {
		args = append(args, "--until="+q.Until.Format("2006-01-02")+" 23:59:59")
	}
	if q.Author != "" {
		args = append(args, "--author="+q.Author)
	}
	if len(q.Paths) > 0 {
		args = append(args, "--")
		args = append(args, q.Paths...)
	}
	return Command{Subcommand: "log", Args: args}
}

// ReadLog runs the query and parses its output into commit records, newest
// first.
func ReadLog(ctx context.Context, runner Runner, dir string, q LogQuery) ([]CommitRecord, error) {
	res, err := runner.Run(ctx, dir, q.Command())
	if err != nil {
		return nil, err
	}
	records, err := ParseLog([]byte(res.Stdout))
	if err != nil {
		return nil, fmt.Errorf("parse git log output: %w", err)
	}
	return records, nil
}
