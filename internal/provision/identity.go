package provision

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/imamik/shipway/internal/config"
	sshx "github.com/imamik/shipway/internal/platform/ssh"
)

// Identity resolution states and events. The machine makes the legal
// transitions explicit: an override or a successful probe resolves
// directly, a rejected probe detours through provisioning first.
const (
	StateUnresolved   = "unresolved"
	StateProvisioning = "provisioning"
	StateResolved     = "resolved"

	// EventOverride adopts an externally supplied identity without probing.
	EventOverride = "override"
	// EventAdopt adopts the deploy account after a successful probe.
	EventAdopt = "adopt"
	// EventFallback falls back to the administrative identity because the
	// deploy account was rejected (it does not exist yet).
	EventFallback = "fallback"
	// EventProvisioned adopts the deploy account created by this run.
	EventProvisioned = "provisioned"
)

// newIdentityMachine builds the resolver's state machine. Entering the
// resolved state installs the chosen identity into the session, so the
// identity can only ever be written through a legal transition.
func newIdentityMachine(ctx *Context) *fsm.FSM {
	return fsm.NewFSM(
		StateUnresolved,
		fsm.Events{
			{Name: EventOverride, Src: []string{StateUnresolved}, Dst: StateResolved},
			{Name: EventAdopt, Src: []string{StateUnresolved}, Dst: StateResolved},
			{Name: EventFallback, Src: []string{StateUnresolved}, Dst: StateProvisioning},
			{Name: EventProvisioned, Src: []string{StateProvisioning}, Dst: StateResolved},
		},
		fsm.Callbacks{
			"enter_" + StateResolved: func(_ context.Context, e *fsm.Event) {
				user := e.Args[0].(string)
				ctx.Session.User = user
				ctx.Observer.Event(Event{
					Type:    EventIdentityResolved,
					Phase:   identityPhaseName,
					Message: fmt.Sprintf("using identity %q", user),
				})
			},
			"enter_" + StateProvisioning: func(_ context.Context, _ *fsm.Event) {
				ctx.Session.User = config.AdminUser
				ctx.Observer.Printf("  Using %s for now...", config.AdminUser)
			},
		},
	)
}

const identityPhaseName = "identity"

// IdentityPhase resolves the login identity used by the rest of the run.
type IdentityPhase struct{}

func (p *IdentityPhase) Name() string { return identityPhaseName }

func (p *IdentityPhase) Provision(ctx *Context) error {
	return ResolveIdentity(ctx)
}

// ResolveIdentity determines which identity the run logs in as.
//
// An explicit override is adopted without any probing. Otherwise the
// well-known deploy account is tried with a trivial probe: success means
// it was provisioned by an earlier run and stands; an authentication
// rejection means it does not exist yet, so the resolver falls back to
// the administrative identity and provisions it. Any other probe failure
// means the host is not ready at all and is fatal to the run.
func ResolveIdentity(ctx *Context) error {
	ctx.Observer.Printf("Determining server username...")

	machine := newIdentityMachine(ctx)

	if override := ctx.Session.OverrideUser; override != "" {
		if err := machine.Event(ctx, EventOverride, override); err != nil {
			return fmt.Errorf("identity resolution: %w", err)
		}
		ctx.State.IdentitySource = IdentityOverride
		return nil
	}

	// Probe the well-known deploy account. The session user must be set
	// before the probe so the executor dials with the candidate identity.
	ctx.Session.User = config.DeployUser
	_, err := ctx.Runner.Run(ctx, sshx.Invocation{Command: probeCommand, HideOutput: true})

	switch {
	case err == nil:
		if err := machine.Event(ctx, EventAdopt, config.DeployUser); err != nil {
			return fmt.Errorf("identity resolution: %w", err)
		}

	case sshx.IsAuthFailed(err):
		// The deploy account does not exist yet. Fall back and create it.
		if err := machine.Event(ctx, EventFallback); err != nil {
			return fmt.Errorf("identity resolution: %w", err)
		}
		if err := ProvisionUser(ctx); err != nil {
			return err
		}
		if err := machine.Event(ctx, EventProvisioned, config.DeployUser); err != nil {
			return fmt.Errorf("identity resolution: %w", err)
		}

	default:
		// Unreachable or transport failure: the host is not ready at all.
		return fmt.Errorf("cannot resolve server identity: %w", err)
	}

	ctx.State.IdentitySource = IdentityProvisioned
	return nil
}
