package provision_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/shipway/internal/provision"
	shiptest "github.com/imamik/shipway/internal/testing"
)

func TestFirewallPhase_AllowsSSHBeforeEnabling(t *testing.T) {
	runner := shiptest.NewScriptedRunner()
	ctx := shiptest.NewContextBuilder().WithRunner(runner).Build()

	require.NoError(t, (&provision.FirewallPhase{}).Provision(ctx))

	cmds := runner.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "sudo ufw allow OpenSSH", cmds[0])
	assert.Equal(t, "sudo ufw --force enable", cmds[1])
}

func TestFirewallPhase_StopsOnAllowFailure(t *testing.T) {
	// If the allow rule cannot be installed, enabling would lock us out.
	runner := shiptest.NewScriptedRunner(&shiptest.Rule{
		Match: "ufw allow",
		Errs:  []error{errors.New("ufw: command not found")},
	})
	ctx := shiptest.NewContextBuilder().WithRunner(runner).Build()

	err := (&provision.FirewallPhase{}).Provision(ctx)

	require.Error(t, err)
	assert.Zero(t, runner.CallsMatching("enable"), "enable must not run after a failed allow")
}
