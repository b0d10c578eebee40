package provision

import (
	"context"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
)

// Runner executes a single command on the target host under the session's
// current identity. Implemented by the SSH client; replaced by a scripted
// fake in tests.
type Runner interface {
	Run(ctx context.Context, inv sshx.Invocation) (sshx.Result, error)
}

// HookRenderer renders a named template with string context values.
// The deploy hook is the only template the orchestrator renders; the
// surrounding workflow may substitute its own implementation.
type HookRenderer interface {
	Render(name string, data map[string]string) (string, error)
}

// LocalGit registers the push destination in the local repository.
type LocalGit interface {
	EnsureRemote(ctx context.Context, name, url string) error
}

// Phase is one step of the bootstrap pipeline.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the phase against the run context.
	Provision(ctx *Context) error
}
