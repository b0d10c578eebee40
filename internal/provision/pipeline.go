package provision

import (
	"fmt"
	"time"
)

// Pipeline returns the bootstrap phases in their mandatory order.
// Identity resolution must run first: every later phase executes under
// the identity it settles on.
func Pipeline() []Phase {
	return []Phase{
		&IdentityPhase{},
		&FirewallPhase{},
		&RebootPhase{},
		&RuntimePhase{},
		&GitEndpointPhase{},
	}
}

// RunPhases executes all bootstrap phases sequentially.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting host bootstrap with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()

		ctx.Observer.Event(Event{
			Type:    EventPhaseStarted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("starting (%d/%d)", i+1, len(phases)),
		})

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{
				Type:    EventPhaseFailed,
				Phase:   phase.Name(),
				Message: fmt.Sprintf("failed: %v", err),
			})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("completed in %v", time.Since(phaseStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Host bootstrap completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
