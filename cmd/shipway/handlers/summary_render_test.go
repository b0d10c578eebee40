package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/shipway/internal/config"
	"github.com/imamik/shipway/internal/provision"
)

func TestRenderSummary(t *testing.T) {
	session := &config.Session{Address: "203.0.113.10", User: "deploy"}
	state := &provision.State{
		IdentitySource:  provision.IdentityProvisioned,
		UserProvisioned: true,
		Rebooted:        true,
		RemoteURL:       "deploy@203.0.113.10:/home/deploy/myapp.git",
	}

	out := renderSummary("myapp", session, state)

	assert.Contains(t, out, "shipway: myapp")
	assert.Contains(t, out, "203.0.113.10")
	assert.Contains(t, out, "deploy (provisioned)")
	assert.Contains(t, out, "deploy account created")
	assert.Contains(t, out, "host rebooted for pending updates")
	assert.Contains(t, out, "deploy@203.0.113.10:/home/deploy/myapp.git")
	assert.Contains(t, out, "git push deploy main")
}

func TestRenderSummary_AdoptedIdentity(t *testing.T) {
	session := &config.Session{Address: "203.0.113.10", User: "deploy"}
	state := &provision.State{
		IdentitySource: provision.IdentityOverride,
		RemoteURL:      "deploy@203.0.113.10:/home/deploy/myapp.git",
	}

	out := renderSummary("myapp", session, state)

	assert.Contains(t, out, "deploy (override)")
	assert.NotContains(t, out, "deploy account created")
	assert.NotContains(t, out, "host rebooted")
}
