package git

import (
	"context"
	"sync"
)

// StubRunner is a test double for ExecRunner.
// It returns canned output without spawning processes and records every call.
type StubRunner struct {
	// Respond produces the result for a call. When nil, Stdout/Err are used.
	Respond func(dir string, cmd Command) (*CommandResult, error)
	Stdout  string
	Err     error

	mu    sync.Mutex
	calls []Command
}

// NewStubRunner creates a StubRunner answering every call with stdout.
func NewStubRunner(stdout string) *StubRunner {
	return &StubRunner{Stdout: stdout}
}

// Run records the call and returns the canned response.
func (s *StubRunner) Run(_ context.Context, dir string, cmd Command) (*CommandResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, cmd)
	s.mu.Unlock()

	if s.Respond != nil {
		return s.Respond(dir, cmd)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &CommandResult{Stdout: s.Stdout}, nil
}

// Calls returns the number of Run invocations.
func (s *StubRunner) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Commands returns a copy of the recorded commands.
func (s *StubRunner) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.calls))
	copy(out, s.calls)
	return out
}
