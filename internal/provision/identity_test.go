package provision_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/provision"
	shiptest "github.com/imamik/shipway/internal/testing"
)

func TestResolveIdentity_Override(t *testing.T) {
	runner := shiptest.NewScriptedRunner()
	ctx := shiptest.NewContextBuilder().
		WithRunner(runner).
		WithOverrideUser("ops").
		Build()

	require.NoError(t, provision.ResolveIdentity(ctx))

	assert.Equal(t, "ops", ctx.Session.User)
	assert.Equal(t, provision.IdentityOverride, ctx.State.IdentitySource)
	assert.Empty(t, runner.Invocations, "override must not probe at all")

	// Resolving again yields the same identity.
	ctx.State.IdentitySource = ""
	require.NoError(t, provision.ResolveIdentity(ctx))
	assert.Equal(t, "ops", ctx.Session.User)
	assert.Empty(t, runner.Invocations)
}

func TestResolveIdentity_DeployAccountExists(t *testing.T) {
	runner := shiptest.NewScriptedRunner()
	observer := &shiptest.RecordingObserver{}
	ctx := shiptest.NewContextBuilder().
		WithRunner(runner).
		WithObserver(observer).
		Build()

	require.NoError(t, provision.ResolveIdentity(ctx))

	assert.Equal(t, config.DeployUser, ctx.Session.User)
	assert.Equal(t, provision.IdentityProvisioned, ctx.State.IdentitySource)
	assert.False(t, ctx.State.UserProvisioned)
	assert.Equal(t, 1, runner.CallsMatching("uptime"))
	assert.Zero(t, runner.CallsMatching("useradd"), "existing account must not be re-provisioned")

	// The identity actually in effect is what gets logged.
	assert.Contains(t, observer.Logged()+eventMessages(observer), config.DeployUser)
}

func TestResolveIdentity_ProvisionsMissingAccount(t *testing.T) {
	// Fresh host scenario: the deploy probe is rejected, provisioning runs
	// under root, then the new account answers the verification probe.
	runner := shiptest.NewScriptedRunner(&shiptest.Rule{
		Match: "uptime",
		Errs:  []error{authFailed(), nil},
	})
	ctx := shiptest.NewContextBuilder().WithRunner(runner).Build()

	require.NoError(t, provision.ResolveIdentity(ctx))

	assert.Equal(t, config.DeployUser, ctx.Session.User)
	assert.Equal(t, provision.IdentityProvisioned, ctx.State.IdentitySource)
	assert.True(t, ctx.State.UserProvisioned)

	// All four provisioning sub-steps ran, exactly once each.
	assert.Equal(t, 1, runner.CallsMatching("useradd -m deploy"))
	assert.Equal(t, 1, runner.CallsMatching("chpasswd"))
	assert.Equal(t, 1, runner.CallsMatching("usermod -aG sudo deploy"))
	assert.Equal(t, 1, runner.CallsMatching("/etc/sudoers.d/deploy"))
}

func TestResolveIdentity_UnreachableIsFatal(t *testing.T) {
	runner := shiptest.NewScriptedRunner(&shiptest.Rule{
		Match: "uptime",
		Errs:  []error{unreachable()},
	})
	ctx := shiptest.NewContextBuilder().WithRunner(runner).Build()

	err := provision.ResolveIdentity(ctx)

	require.Error(t, err)
	assert.Zero(t, runner.CallsMatching("useradd"), "unreachable host must not trigger provisioning")
}

// eventMessages flattens recorded event messages for substring assertions.
func eventMessages(o *shiptest.RecordingObserver) string {
	var b strings.Builder
	for _, e := range o.Events {
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return b.String()
}
