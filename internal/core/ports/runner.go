package ports

import "context"

// Command is an external process invocation.
type Command struct {
	// Argv is the program followed by its arguments.
	Argv []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env holds extra "KEY=VALUE" entries layered over the process environment.
	Env []string
}

// CommandRunner runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its standard output.
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
