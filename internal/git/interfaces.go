package git

import "context"

// Runner executes a read-only git command in a repository directory.
// This abstraction lets report builders be tested without spawning git.
type Runner interface {
	// Run executes cmd with dir as working directory.
	Run(ctx context.Context, dir string, cmd Command) (*CommandResult, error)
}

// Command is an allow-listed git subcommand plus its argument vector.
type Command struct {
	Subcommand string
	Args       []string
}

// CommandResult holds the captured output of a finished git process.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// allowedSubcommands lists the subcommands that never mutate a repository.
var allowedSubcommands = map[string]struct{}{
	"log":       {},
	"shortlog":  {},
	"show":      {},
	"diff":      {},
	"rev-parse": {},
	"ls-files":  {},
}

// IsAllowed reports whether the subcommand is on the read-only allow-list.
func IsAllowed(subcommand string) bool {
	_, ok := allowedSubcommands[subcommand]
	return ok
}

// Compile-time interface conformance checks.
var (
	_ Runner = (*ExecRunner)(nil)
	_ Runner = (*StubRunner)(nil)
)
