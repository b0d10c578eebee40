package provision

import (
	"fmt"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
)

const runtimePhaseName = "runtime"

// uvInstallCommand fetches and runs the vendor install script for uv,
// the Python toolchain manager. Re-running it on a host that already has
// uv is a no-op upgrade.
const uvInstallCommand = "curl -LsSf https://astral.sh/uv/install.sh | sh"

// RuntimePhase installs uv and the pinned Python version on the host.
type RuntimePhase struct{}

func (p *RuntimePhase) Name() string { return runtimePhaseName }

func (p *RuntimePhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("Installing uv...")
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{Command: uvInstallCommand}); err != nil {
		return fmt.Errorf("failed to install uv: %w", err)
	}

	version := ctx.Config.Project.RuntimeVersion
	ctx.Observer.Printf("Installing Python %s...", version)
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("$HOME/.local/bin/uv python install %s", version),
	}); err != nil {
		return fmt.Errorf("failed to install Python %s: %w", version, err)
	}

	return nil
}
