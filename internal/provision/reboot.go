package provision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/looplab/fsm"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
)

// Reboot coordinator states. The connection dropping while the reboot
// command runs is the expected outcome of the Idle→Rebooting transition,
// not a fault; only a host that never comes back is an error.
const (
	StateIdle      = "idle"
	StateRebooting = "rebooting"

	eventReboot   = "reboot"
	eventComplete = "complete"
)

const rebootPhaseName = "reboot"

// rebootCommand restarts the host; it is on the deploy account's sudo
// allow-list.
const rebootCommand = "sudo systemctl reboot"

// rebootMarkerCommand lists the directory where the distribution drops
// its pending-reboot marker.
const rebootMarkerCommand = "ls /var/run"

// rebootPending reports whether a directory listing of /var/run contains
// the pending-reboot marker. The textual rule lives here alone so the
// parsing is a single point of change.
func rebootPending(listing string) bool {
	return strings.Contains(listing, "reboot-required")
}

func newRebootMachine(ctx *Context) *fsm.FSM {
	return fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: eventReboot, Src: []string{StateIdle}, Dst: StateRebooting},
			{Name: eventComplete, Src: []string{StateRebooting}, Dst: StateIdle},
		},
		fsm.Callbacks{
			"enter_" + StateRebooting: func(_ context.Context, _ *fsm.Event) {
				ctx.Observer.Event(Event{
					Type:    EventHostRebooting,
					Phase:   rebootPhaseName,
					Message: "reboot issued, waiting for the host to return",
				})
			},
		},
	)
}

// RebootPhase restarts the host when a prior package update requires it.
type RebootPhase struct{}

func (p *RebootPhase) Name() string { return rebootPhaseName }

func (p *RebootPhase) Provision(ctx *Context) error {
	_, err := RebootIfRequired(ctx)
	return err
}

// RebootIfRequired probes for the pending-reboot marker and, when it is
// present, coordinates a reboot: issue the command, pause, then poll
// until the host returns. Reports whether a reboot happened.
func RebootIfRequired(ctx *Context) (bool, error) {
	ctx.Observer.Printf("Checking if reboot required...")

	res, err := ctx.Runner.Run(ctx, sshx.Invocation{
		Command:    rebootMarkerCommand,
		HideOutput: true,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check for reboot marker: %w", err)
	}

	if !rebootPending(res.Stdout) {
		ctx.Observer.Printf("  No reboot required.")
		return false, nil
	}

	machine := newRebootMachine(ctx)
	if err := machine.Event(ctx, eventReboot); err != nil {
		return false, fmt.Errorf("reboot coordination: %w", err)
	}

	ctx.Observer.Printf("  Rebooting...")
	// The reboot tears down the connection; whatever error that produces
	// is the transition succeeding, so it is logged and not propagated.
	if _, err := ctx.Runner.Run(ctx, sshx.Invocation{Command: rebootCommand}); err != nil {
		ctx.Observer.Printf("  connection closed by reboot: %v", err)
	}

	// Pause before polling: probing immediately can still observe the
	// host "up" because shutdown has not actually started yet.
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-time.After(ctx.Timeouts.RebootPause):
	}

	available, err := CheckAvailable(ctx, ctx.Timeouts.PollDelay, ctx.Timeouts.PollTimeout)
	if err != nil {
		return false, err
	}
	if !available {
		return false, &RebootTimeoutError{Addr: ctx.Session.Address}
	}

	if err := machine.Event(ctx, eventComplete); err != nil {
		return false, fmt.Errorf("reboot coordination: %w", err)
	}

	ctx.State.Rebooted = true
	return true, nil
}
