package provision

import (
	"fmt"

	"github.com/imamik/shipway/internal/config"
	sshx "github.com/imamik/shipway/internal/platform/ssh"
	"github.com/imamik/shipway/internal/util/naming"
)

// sudoAllowList is the fixed set of commands the deploy account may run
// with passwordless sudo: the package manager, the reboot the coordinator
// issues, and the firewall tool. Everything else requires the password.
const sudoAllowList = "NOPASSWD:SETENV: /usr/bin/apt-get, NOPASSWD: /usr/bin/apt-get, /usr/bin/systemctl reboot, /usr/sbin/ufw"

// ProvisionUser creates the deploy account on a fresh host. It runs only
// while the session identity is the administrative fallback: account
// creation, credential, sudo group membership, and the scoped sudoers
// drop-in, each as its own remote command. On completion the session
// switches to the new account and polling verifies it authenticates;
// a verification failure is fatal, not retried.
func ProvisionUser(ctx *Context) error {
	user := config.DeployUser
	ctx.Observer.Printf("Adding non-root user: %s", user)

	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("useradd -m %s", user),
	}); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user, err)
	}

	// The chpasswd pipe carries the credential in its literal text, so
	// this invocation is kept out of the logs entirely.
	ctx.Observer.Printf("  Setting password; will not display or log this.")
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command:     fmt.Sprintf("echo %q | chpasswd", user+":"+ctx.Session.Password),
		HideOutput:  true,
		SkipLogging: true,
	}); err != nil {
		return fmt.Errorf("failed to set password for %s: %w", user, err)
	}

	ctx.Observer.Printf("  Adding user to sudo group.")
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("usermod -aG sudo %s", user),
	}); err != nil {
		return fmt.Errorf("failed to add %s to sudo group: %w", user, err)
	}

	ctx.Observer.Printf("  Modifying /etc/sudoers.d.")
	sudoersLine := fmt.Sprintf("%s ALL=(ALL) %s", user, sudoAllowList)
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command: fmt.Sprintf("echo %q | sudo tee %s", sudoersLine, naming.SudoersFile(user)),
	}); err != nil {
		return fmt.Errorf("failed to install sudoers drop-in for %s: %w", user, err)
	}

	// Use the new account from this point forward, then prove it works.
	ctx.Session.User = user
	ctx.State.UserProvisioned = true
	ctx.Observer.Event(Event{
		Type:    EventUserProvisioned,
		Phase:   identityPhaseName,
		Message: fmt.Sprintf("created account %q", user),
	})

	ctx.Observer.Printf("  Ensuring connection...")
	available, err := CheckAvailable(ctx, ctx.Timeouts.PollDelay, ctx.Timeouts.PollTimeout)
	if err != nil {
		return err
	}
	if !available {
		return &VerificationError{User: user, Addr: ctx.Session.Address}
	}

	return nil
}
