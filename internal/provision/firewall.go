package provision

import (
	"fmt"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
)

const firewallPhaseName = "firewall"

// Firewall commands, in mandatory order: the SSH allow rule must exist
// before the firewall is enabled, or the run locks itself out of the
// host it is configuring. Both commands are idempotent.
const (
	firewallAllowSSHCommand = "sudo ufw allow OpenSSH"
	firewallEnableCommand   = "sudo ufw --force enable"
)

// FirewallPhase enables ufw with a narrow allow-list.
type FirewallPhase struct{}

func (p *FirewallPhase) Name() string { return firewallPhaseName }

func (p *FirewallPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("Configuring firewall...")

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{Command: firewallAllowSSHCommand}); err != nil {
		return fmt.Errorf("failed to allow SSH through firewall: %w", err)
	}

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{Command: firewallEnableCommand}); err != nil {
		return fmt.Errorf("failed to enable firewall: %w", err)
	}

	return nil
}
