package provision

import (
	"errors"
	"time"

	sshx "github.com/imamik/shipway/internal/platform/ssh"
	"github.com/imamik/shipway/internal/util/retry"
)

// probeCommand is the side-effect-free command used to test that the host
// is reachable and the current identity authenticates.
const probeCommand = "uptime"

// CheckAvailable polls the host with a trivial probe until it answers or
// the budget is spent. The budget is floor(timeout/delay) attempts at a
// fixed interval. Only Unreachable outcomes are retried; any other
// failure (including AuthFailed) propagates unmodified. Returns true on
// the first successful probe, and false without error when every attempt
// was exhausted by unreachability; callers decide whether that is fatal.
func CheckAvailable(ctx *Context, delay, timeout time.Duration) (bool, error) {
	ctx.Observer.Printf("Checking if server is responding...")

	attempts := int(timeout / delay)
	if attempts < 1 {
		attempts = 1
	}

	err := retry.Do(ctx, func() error {
		_, probeErr := ctx.Runner.Run(ctx, sshx.Invocation{
			Command:    probeCommand,
			HideOutput: true,
		})
		if probeErr == nil {
			return nil
		}
		if sshx.IsUnreachable(probeErr) {
			ctx.Observer.Event(Event{
				Type:    EventHostWaiting,
				Message: "server not responding yet",
				Fields:  map[string]string{"wait": delay.String()},
			})
			return probeErr
		}
		return retry.Fatal(probeErr)
	},
		retry.WithMaxAttempts(attempts),
		retry.WithDelay(delay),
	)

	if err == nil {
		ctx.Observer.Event(Event{Type: EventHostAvailable, Message: "server is available"})
		return true, nil
	}

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		ctx.Observer.Printf("Server did not respond after %d attempts.", exhausted.Attempts)
		return false, nil
	}

	return false, err
}
